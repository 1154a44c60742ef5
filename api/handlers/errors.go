// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"recipe-finder-app/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// message, when non-empty, replaces the default user-facing text.
func toHumaError(err error, message string) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		if message == "" {
			message = err.Error()
		}
		return huma.Error400BadRequest(message, err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
