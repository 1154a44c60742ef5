// ABOUTME: Recipe domain models for ingredient search results
// ABOUTME: Distinguishes the API's no-matches sentinel from an ordered list of recipes

package domain

// Recipe represents one recipe returned by an ingredient search
type Recipe struct {
	// Name is the recipe's display name
	Name string

	// ImageURL is the recipe's thumbnail image URL
	ImageURL string

	// ID is the opaque recipe identifier used to build the detail page URL
	ID string
}

// SearchResult is the outcome of a successful ingredient search.
//
// A nil Recipes slice is the no-matches sentinel: the recipe API reports
// "no matches" with a null or absent collection, never with an empty list.
type SearchResult struct {
	Recipes []Recipe
}

// NoMatches reports whether the result is the no-matches sentinel.
// Only an absent collection counts; a non-nil empty slice does not.
func (r SearchResult) NoMatches() bool {
	return r.Recipes == nil
}

// Len returns the number of recipes in the result
func (r SearchResult) Len() int {
	return len(r.Recipes)
}
