// Package core contains the business logic for the Recipe Finder.
// It has no web framework dependencies and can drive a web page, a
// fragment API or a command line equally.
//
// The core package is organized into several sub-packages:
//
// - domain: Recipe and SearchResult, including the no-matches sentinel
// - search: Recipe API client (filter by ingredient)
// - render: html/template rendering of cards, status panels and the page
// - controller: Submit, search, render and message flow over a results area
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger, results area)
//
// # Usage Example
//
//	import (
//	    "recipe-finder-app/core/controller"
//	    "recipe-finder-app/core/interfaces"
//	    "recipe-finder-app/core/render"
//	    "recipe-finder-app/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//
//	c := controller.New(controller.Options{
//	    Area:     area,
//	    Searcher: search.NewRecipeService(deps, search.DefaultBaseURL),
//	    Renderer: render.NewRenderer(render.DefaultDetailBaseURL),
//	    Logger:   logger,
//	})
//
//	if err := c.OnSubmit(ctx, "  chicken "); err != nil {
//	    // blank input: the alert was raised and the area left untouched
//	}
//	fmt.Println(area.Content())
//
// # Error Handling
//
// The core package uses custom error types:
//
// - ValidationError: Input validation failures
// - ExternalAPIError: Non-success responses from the recipe API
//
// The controller never shows these to users; every search failure renders
// the same generic message and is logged with its cause.
package core
