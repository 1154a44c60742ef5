// Package api provides the HTTP layer for the Recipe Finder application.
// It uses the Huma framework on a chi router for automatic OpenAPI
// documentation, request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and metrics wiring
// - handlers/: HTTP request handlers (HTML page, fragment API, health)
// - middleware/: request logging with request IDs, Prometheus metrics
//
// # Routes
//
//	GET /               search page with an empty results area
//	GET /search?i=      search page with the rendered results area
//	GET /api/search?i=  results area as an HTML fragment
//	GET /healthz        liveness
//	GET /metrics        Prometheus exposition
//	GET /openapi.json   OpenAPI document
//	GET /docs           interactive documentation
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//
//	handlers.NewSearchHandler(factory).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
//	handlers.NewPageHandler(factory, renderer, logger, stylesheetURL).RegisterRoutes(router)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Fragment API errors use the RFC 7807 format. A blank ingredient maps to
// 400 with the validation message as the detail. Upstream failures are not
// errors at this layer: the results area carries the generic message and
// the X-Search-State header reports "error".
package api
