package main

import (
	"fmt"
	"strings"

	"recipe-finder-app/core/controller"
	"recipe-finder-app/infrastructure/area/buffer"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <ingredient...>",
		Short: "Search once and print the rendered results",
		Long: `Search runs one ingredient search and prints the rendered results area
(recipe cards, the no-results panel or the error panel) to stdout.

Multiple arguments are joined with spaces:
  recipefinder search chicken breast`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			area := buffer.NewArea()
			c := a.factory.New(area, controller.AlertFunc(func(message string) {
				fmt.Fprintln(cmd.ErrOrStderr(), message)
			}))

			if err := c.OnSubmit(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), area.Content())
			return nil
		},
	}
}
