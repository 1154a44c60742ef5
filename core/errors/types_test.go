package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "ingredient", Message: "cannot be empty"}

	assert.Equal(t, "invalid ingredient: cannot be empty", err.Error())
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{API: "themealdb", StatusCode: 503, Message: "service unavailable"}

	assert.Equal(t, "themealdb responded 503: service unavailable", err.Error())
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"direct", &ValidationError{Field: "ingredient"}, true},
		{"wrapped", WrapError(&ValidationError{Field: "ingredient"}, "submit"), true},
		{"other type", &ExternalAPIError{StatusCode: 500}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidation(tt.err))
		})
	}
}

func TestIsExternalAPI(t *testing.T) {
	wrapped := WrapError(&ExternalAPIError{StatusCode: 502, API: "themealdb"}, "search failed")

	assert.True(t, IsExternalAPI(wrapped))
	assert.False(t, IsExternalAPI(&ValidationError{}))
}

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", &ValidationError{Field: "ingredient"}, KindValidation},
		{"upstream status", &ExternalAPIError{StatusCode: 503}, KindUpstream},
		{"wrapped upstream", fmt.Errorf("search: %w", &ExternalAPIError{StatusCode: 429}), KindUpstream},
		{"transport", WrapError(errors.New("connection refused"), "failed to search recipes"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kind(tt.err))
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))

	base := errors.New("connection refused")
	err := WrapError(base, "failed to search recipes")

	assert.Equal(t, "failed to search recipes: connection refused", err.Error())
	assert.ErrorIs(t, err, base)
}
