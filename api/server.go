// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, request logging and Prometheus metrics

package api

import (
	"net/http"

	"recipe-finder-app/api/middleware"
	"recipe-finder-app/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiTitle   = "Recipe Finder API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
}

var corsOptions = cors.Options{
	AllowedOrigins:   []string{"*"},
	AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
	AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
	ExposedHeaders:   []string{"X-Request-ID", "X-Search-State"},
	AllowCredentials: false,
	MaxAge:           300, // Maximum value not ignored by any of major browsers
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests short-circuit
	router.Use(cors.Handler(corsOptions))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}
	router.Use(middleware.MetricsMiddleware)

	router.Handle("/metrics", promhttp.Handler())

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Search recipes by ingredient and render them as HTML cards"

	// The OpenAPI document is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}
