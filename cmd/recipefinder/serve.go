package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-finder-app/api"
	"recipe-finder-app/api/handlers"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search page and fragment API",
		Long: `Serve starts the HTTP server:

  GET /               search page
  GET /search?i=      search page with results
  GET /api/search?i=  results as an HTML fragment
  GET /healthz        liveness
  GET /metrics        Prometheus metrics
  GET /docs           API documentation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if port, _ := cmd.Flags().GetString("port"); port != "" {
				a.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}

	cmd.Flags().StringP("port", "p", "", "Override PORT")

	return cmd
}

// handler builds the router with every route registered
func (a *app) handler() http.Handler {
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: a.logger})

	handlers.NewSearchHandler(a.factory).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
	handlers.NewPageHandler(a.factory, a.renderer, a.logger, a.cfg.Server.StylesheetURL).RegisterRoutes(router)

	return router
}

// serve runs the HTTP server until ctx is cancelled, then shuts down gracefully
func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort("", a.cfg.Server.Port),
		Handler:      a.handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: a.cfg.Recipes.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server starting", map[string]interface{}{
			"address":      srv.Addr,
			"api_base_url": a.cfg.Recipes.APIBaseURL,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Server forced to shutdown", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
		a.logger.Info("Server stopped", nil)
		return nil
	})

	return g.Wait()
}
