// ABOUTME: Error types for recipe search
// ABOUTME: Separates blank-input validation from recipe API failures and classifies errors for logs

package errors

import (
	"errors"
	"fmt"
)

// Error kinds reported by Kind
const (
	KindValidation = "validation"
	KindUpstream   = "upstream"
	KindInternal   = "internal"
)

// ValidationError reports user input that cannot be searched
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ExternalAPIError reports a non-success response from the recipe API
type ExternalAPIError struct {
	API        string
	StatusCode int
	Message    string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("%s responded %d: %s", e.API, e.StatusCode, e.Message)
}

// IsValidation reports whether err wraps a *ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsExternalAPI reports whether err wraps an *ExternalAPIError
func IsExternalAPI(err error) bool {
	var target *ExternalAPIError
	return errors.As(err, &target)
}

// Kind classifies err for logging. Anything that is neither a validation
// nor a recipe API status failure is internal, including transport and
// decode errors.
func Kind(err error) string {
	switch {
	case IsValidation(err):
		return KindValidation
	case IsExternalAPI(err):
		return KindUpstream
	default:
		return KindInternal
	}
}

// WrapError prefixes err with message, keeping it unwrappable. A nil err
// stays nil.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
