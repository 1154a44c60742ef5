// ABOUTME: Search controller wires an ingredient submit to one recipe search and a render pass
// ABOUTME: Owns the results area and discards outcomes of searches superseded by a newer one

package controller

import (
	"context"
	"html/template"
	"strings"
	"sync"

	"recipe-finder-app/core/domain"
	coreerrors "recipe-finder-app/core/errors"
	"recipe-finder-app/core/interfaces"
)

// Renderer produces the markup the controller writes into its results area
type Renderer interface {
	Card(recipe domain.Recipe) (template.HTML, error)
	Loading(label string) (template.HTML, error)
	Message(text string) (template.HTML, error)
}

// Alerter surfaces a validation failure to the user
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to the Alerter interface
type AlertFunc func(message string)

// Alert calls f(message)
func (f AlertFunc) Alert(message string) {
	f(message)
}

// Options carries a controller's dependencies. Area, Searcher and Renderer
// are required.
type Options struct {
	Area     interfaces.ResultsArea
	Searcher interfaces.RecipeSearcher
	Renderer Renderer
	Alerter  Alerter
	Logger   interfaces.Logger
	Messages Messages
}

// Controller handles ingredient submits for one results area.
// It is safe for concurrent use; only the most recently started search
// writes its outcome.
type Controller struct {
	area     interfaces.ResultsArea
	searcher interfaces.RecipeSearcher
	renderer Renderer
	alerter  Alerter
	logger   interfaces.Logger
	messages Messages

	mu         sync.Mutex
	generation uint64
	state      State
}

// New creates a controller in the Idle state
func New(opts Options) *Controller {
	c := &Controller{
		area:     opts.Area,
		searcher: opts.Searcher,
		renderer: opts.Renderer,
		alerter:  opts.Alerter,
		logger:   opts.Logger,
		messages: opts.Messages.withDefaults(),
		state:    StateIdle,
	}
	if c.alerter == nil {
		c.alerter = AlertFunc(func(string) {})
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	return c
}

// State returns the current display state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnSubmit handles raw input from the search form. Blank input raises the
// validation alert, leaves the results area untouched and returns a
// *errors.ValidationError; anything else is searched after trimming.
func (c *Controller) OnSubmit(ctx context.Context, rawInput string) error {
	ingredient := strings.TrimSpace(rawInput)
	if ingredient == "" {
		c.alerter.Alert(c.messages.Validation)
		recordOutcome(outcomeValidation)
		return &coreerrors.ValidationError{
			Field:   "ingredient",
			Message: "cannot be empty",
		}
	}

	c.Search(ctx, ingredient)
	return nil
}

// Search shows the loading indicator, performs one recipe search and
// renders its outcome. Failures are logged and collapsed into the generic
// error message. If another search starts before this one finishes, this
// one's outcome is dropped.
func (c *Controller) Search(ctx context.Context, ingredient string) {
	gen := c.begin()

	result, err := c.searcher.SearchByIngredient(ctx, ingredient)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("Discarding stale recipe search result", map[string]interface{}{
			"ingredient": ingredient,
			"generation": gen,
			"current":    c.generation,
		})
		recordOutcome(outcomeStale)
		return
	}

	if err != nil {
		c.logger.Error("Recipe search failed", map[string]interface{}{
			"ingredient": ingredient,
			"error":      err.Error(),
			"error_kind": coreerrors.Kind(err),
		})
		c.showMessage(c.messages.GenericError)
		c.state = StateError
	} else {
		c.state = c.render(result)
	}

	recordOutcome(c.state.String())
	c.logger.Info("Recipe search completed", map[string]interface{}{
		"ingredient": ingredient,
		"outcome":    c.state.String(),
		"recipes":    result.Len(),
	})
}

// Render replaces the results area with one card per recipe, in order, or
// with the no-results message when result is the no-matches sentinel.
func (c *Controller) Render(result domain.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.render(result)
}

// ShowMessage replaces the results area with a single message panel
func (c *Controller) ShowMessage(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showMessage(text)
}

// begin starts a new search generation and shows the loading indicator.
func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	loading, err := c.renderer.Loading(c.messages.Loading)
	if err != nil {
		c.logger.Warn("Failed to render loading indicator", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.area.Replace(loading)
	c.state = StateLoading

	return c.generation
}

// render must be called with c.mu held
func (c *Controller) render(result domain.SearchResult) State {
	c.area.Clear()

	if result.NoMatches() {
		c.showMessage(c.messages.NoResults)
		return StateEmpty
	}

	for _, recipe := range result.Recipes {
		card, err := c.renderer.Card(recipe)
		if err != nil {
			c.logger.Error("Failed to render recipe card", map[string]interface{}{
				"recipe_id": recipe.ID,
				"error":     err.Error(),
			})
			c.showMessage(c.messages.GenericError)
			return StateError
		}
		c.area.Append(card)
	}

	return StatePopulated
}

// showMessage must be called with c.mu held
func (c *Controller) showMessage(text string) {
	panel, err := c.renderer.Message(text)
	if err != nil {
		c.logger.Error("Failed to render message", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.area.Replace(panel)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
