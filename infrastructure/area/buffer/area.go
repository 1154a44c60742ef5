// ABOUTME: In-memory results area backed by a mutex-guarded string builder
// ABOUTME: Used per web request and by the CLI as the controller's display region

package buffer

import (
	"html/template"
	"strings"
	"sync"
)

// Area implements interfaces.ResultsArea in memory
type Area struct {
	mu      sync.RWMutex
	content strings.Builder
}

// NewArea creates an empty results area
func NewArea() *Area {
	return &Area{}
}

// Replace discards the current content and stores fragment
func (a *Area) Replace(fragment template.HTML) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.content.Reset()
	a.content.WriteString(string(fragment))
}

// Append adds fragment after the current content
func (a *Area) Append(fragment template.HTML) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.content.WriteString(string(fragment))
}

// Clear removes all content
func (a *Area) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.content.Reset()
}

// Content returns the current content
func (a *Area) Content() template.HTML {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return template.HTML(a.content.String())
}
