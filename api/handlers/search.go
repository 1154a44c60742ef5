// ABOUTME: Recipe search fragment endpoint for the Huma API
// ABOUTME: Runs one controller submit and returns the results area as an HTML fragment

package handlers

import (
	"context"
	"net/http"

	"recipe-finder-app/core/controller"
	"recipe-finder-app/infrastructure/area/buffer"

	"github.com/danielgtaylor/huma/v2"
)

const htmlContentType = "text/html; charset=utf-8"

// SearchHandler serves the results area fragment
type SearchHandler struct {
	factory *controller.Factory
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(factory *controller.Factory) *SearchHandler {
	return &SearchHandler{factory: factory}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchRecipes",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search recipes by ingredient",
		Description: "Searches recipes that use the ingredient and returns the rendered results area as an HTML fragment: one card per recipe, a no-results panel, or an error panel",
		Tags:        []string{"Search"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Rendered results area",
				Content: map[string]*huma.MediaType{
					"text/html": {},
				},
			},
		},
	}, h.Search)
}

// SearchInput defines the input for the search operation
type SearchInput struct {
	Ingredient string `query:"i" doc:"Ingredient to search for; surrounding whitespace is ignored"`
}

// SearchOutput defines the output for the search operation
type SearchOutput struct {
	ContentType string `header:"Content-Type"`
	State       string `header:"X-Search-State" doc:"Outcome: populated, empty or error"`
	Body        []byte
}

// Search handles the GET /api/search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	area := buffer.NewArea()
	var alert string
	c := newRequestController(ctx, h.factory, area, controller.AlertFunc(func(message string) {
		alert = message
	}))

	if err := c.OnSubmit(ctx, input.Ingredient); err != nil {
		return nil, toHumaError(err, alert)
	}

	return &SearchOutput{
		ContentType: htmlContentType,
		State:       c.State().String(),
		Body:        []byte(area.Content()),
	}, nil
}
