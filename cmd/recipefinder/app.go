// ABOUTME: Application wiring shared by the serve and search commands
// ABOUTME: Builds config, logger, HTTP client, recipe service and controller factory

package main

import (
	"fmt"
	"io"

	"recipe-finder-app/core/controller"
	"recipe-finder-app/core/interfaces"
	"recipe-finder-app/core/render"
	"recipe-finder-app/core/search"
	stdhttp "recipe-finder-app/infrastructure/http/standard"
	"recipe-finder-app/infrastructure/logger/logrus"
	"recipe-finder-app/pkg/config"

	"github.com/spf13/cobra"
)

type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	renderer *render.Renderer
	factory  *controller.Factory
}

// loadApp reads configuration, applies command-line overrides and wires the
// components. Log output goes to the command's stderr.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return newApp(cfg, cmd.ErrOrStderr())
}

func newApp(cfg *config.Config, logOutput io.Writer) (*app, error) {
	logger, err := logrus.New(logrus.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Output: logOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.Recipes.Timeout, logger),
		Logger:     logger,
	}

	renderer := render.NewRenderer(cfg.Recipes.DetailBaseURL)

	return &app{
		cfg:      cfg,
		logger:   logger,
		renderer: renderer,
		factory: &controller.Factory{
			Searcher: search.NewRecipeService(deps, cfg.Recipes.APIBaseURL),
			Renderer: renderer,
			Logger:   logger,
			Messages: controller.DefaultMessages(),
		},
	}, nil
}

func (a *app) Close() error {
	return a.logger.Close()
}
