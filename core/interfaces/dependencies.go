// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Carries the outbound HTTP client and logger shared by the recipe search path

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
