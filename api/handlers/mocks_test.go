package handlers

import (
	"context"
	"sync"

	"recipe-finder-app/core/domain"
)

// mockSearcher is a mock implementation of the RecipeSearcher interface
type mockSearcher struct {
	mu         sync.Mutex
	searchFunc func(ctx context.Context, ingredient string) (domain.SearchResult, error)
	calls      []string
}

func (m *mockSearcher) SearchByIngredient(ctx context.Context, ingredient string) (domain.SearchResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ingredient)
	m.mu.Unlock()
	if m.searchFunc != nil {
		return m.searchFunc(ctx, ingredient)
	}
	return domain.SearchResult{}, nil
}

func (m *mockSearcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// mockLogger records log entries
type mockLogger struct {
	mu   sync.Mutex
	logs []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, logEntry{Level: level, Message: msg, Fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

func (m *mockLogger) entries(level string) []logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []logEntry
	for _, e := range m.logs {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
