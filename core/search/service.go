// ABOUTME: Recipe service finds recipes by ingredient through TheMealDB filter endpoint
// ABOUTME: Provides the single-request search used by the controller independent of the UI layer

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"recipe-finder-app/core/domain"
	coreerrors "recipe-finder-app/core/errors"
	"recipe-finder-app/core/interfaces"
)

const (
	// DefaultBaseURL is the public TheMealDB v1 API root
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

	apiName      = "themealdb"
	filterPath   = "filter.php"
	maxBodyBytes = 4 << 20
)

// RecipeService handles ingredient search operations
type RecipeService struct {
	deps    interfaces.Dependencies
	baseURL string
}

// NewRecipeService creates a new recipe service instance.
// An empty baseURL selects DefaultBaseURL.
func NewRecipeService(deps interfaces.Dependencies, baseURL string) *RecipeService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &RecipeService{
		deps:    deps,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// filterResponse mirrors the filter endpoint body: {"meals": [...] | null}
type filterResponse struct {
	Meals []struct {
		StrMeal      string `json:"strMeal"`
		StrMealThumb string `json:"strMealThumb"`
		IDMeal       mealID `json:"idMeal"`
	} `json:"meals"`
}

// mealID accepts both string and numeric identifiers
type mealID string

func (id *mealID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = mealID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("idMeal must be a string or number: %w", err)
	}
	*id = mealID(n.String())
	return nil
}

// FilterURL builds the filter-by-ingredient request URL with the ingredient
// encoded as the "i" query parameter.
func (s *RecipeService) FilterURL(ingredient string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid recipe API base URL %q: %w", s.baseURL, err)
	}
	u = u.JoinPath(filterPath)

	params := url.Values{}
	params.Set("i", ingredient)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// SearchByIngredient issues one GET against the filter endpoint and decodes
// the matches. A null or absent "meals" collection yields the no-matches
// sentinel rather than an error.
func (s *RecipeService) SearchByIngredient(ctx context.Context, ingredient string) (domain.SearchResult, error) {
	if ingredient == "" {
		return domain.SearchResult{}, &coreerrors.ValidationError{
			Field:   "ingredient",
			Message: "cannot be empty",
		}
	}

	if s.deps.HTTPClient == nil {
		return domain.SearchResult{}, fmt.Errorf("HTTP client not configured")
	}

	apiURL, err := s.FilterURL(ingredient)
	if err != nil {
		return domain.SearchResult{}, err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Searching recipes", map[string]interface{}{
			"ingredient": ingredient,
			"url":        apiURL,
		})
	}

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		return domain.SearchResult{}, coreerrors.WrapError(err, "failed to search recipes")
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return domain.SearchResult{}, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status from filter endpoint",
			API:        apiName,
		}
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return domain.SearchResult{}, coreerrors.WrapError(err, "failed to read response")
	}

	var apiResponse filterResponse
	if err := json.Unmarshal(bodyBytes, &apiResponse); err != nil {
		return domain.SearchResult{}, coreerrors.WrapError(err, "failed to parse recipe results")
	}

	if apiResponse.Meals == nil {
		return domain.SearchResult{}, nil
	}

	recipes := make([]domain.Recipe, 0, len(apiResponse.Meals))
	for _, m := range apiResponse.Meals {
		recipes = append(recipes, domain.Recipe{
			Name:     m.StrMeal,
			ImageURL: m.StrMealThumb,
			ID:       string(m.IDMeal),
		})
	}

	return domain.SearchResult{Recipes: recipes}, nil
}
