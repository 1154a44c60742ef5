// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the recipe search contract consumed by the search controller

package interfaces

import (
	"context"

	"recipe-finder-app/core/domain"
)

// RecipeSearcher finds recipes that use an ingredient.
//
// A successful search returns either recipes or the no-matches sentinel
// (see domain.SearchResult.NoMatches). Transport, status and decode
// failures are returned as errors.
type RecipeSearcher interface {
	SearchByIngredient(ctx context.Context, ingredient string) (domain.SearchResult, error)
}
