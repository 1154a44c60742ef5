package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for recipefinder.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipefinder",
		Short: "Search recipes by ingredient",
		Long: `Recipe Finder searches a public recipe API by ingredient and renders the
matches as HTML cards, either through a web server or once from the command line.

Configuration is read from the environment (PORT, RECIPES_API_BASE_URL,
RECIPES_DETAIL_BASE_URL, RECIPES_TIMEOUT, PAGE_STYLESHEET_URL, LOG_LEVEL,
LOG_FORMAT, LOG_FILE).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewSearchCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
