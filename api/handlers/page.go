// ABOUTME: HTML page handlers for the search form and its results
// ABOUTME: Served directly on the chi router since they return full documents

package handlers

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"recipe-finder-app/core/controller"
	coreerrors "recipe-finder-app/core/errors"
	"recipe-finder-app/core/interfaces"
	"recipe-finder-app/core/render"
	"recipe-finder-app/infrastructure/area/buffer"

	"github.com/go-chi/chi/v5"
)

const pageTitle = "Recipe Finder"

// PageHandler renders the search page
type PageHandler struct {
	factory       *controller.Factory
	renderer      *render.Renderer
	logger        interfaces.Logger
	stylesheetURL string
}

// NewPageHandler creates a new page handler
func NewPageHandler(factory *controller.Factory, renderer *render.Renderer, logger interfaces.Logger, stylesheetURL string) *PageHandler {
	return &PageHandler{
		factory:       factory,
		renderer:      renderer,
		logger:        logger,
		stylesheetURL: stylesheetURL,
	}
}

// RegisterRoutes registers page routes
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/search", h.Search)
}

// Index handles GET / with an empty results area
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, render.PageData{})
}

// Search handles GET /search?i=<ingredient>. A blank ingredient renders the
// validation alert inline with status 200.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := r.URL.Query().Get("i")

	area := buffer.NewArea()
	var alert string
	c := newRequestController(ctx, h.factory, area, controller.AlertFunc(func(message string) {
		alert = message
	}))

	// Validation failures surface through the alert
	if err := c.OnSubmit(ctx, raw); err != nil && !coreerrors.IsValidation(err) {
		h.logError(ctx, "Search submit failed", err)
	}

	h.write(w, r, render.PageData{
		Query:   raw,
		Alert:   alert,
		Results: template.HTML(area.Content()),
	})
}

func (h *PageHandler) write(w http.ResponseWriter, r *http.Request, data render.PageData) {
	data.Title = pageTitle
	data.StylesheetURL = h.stylesheetURL
	data.Action = "/search"

	var buf bytes.Buffer
	if err := h.renderer.WritePage(&buf, data); err != nil {
		h.logError(r.Context(), "Failed to render page", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *PageHandler) logError(ctx context.Context, msg string, err error) {
	if logger := withRequestID(ctx, h.logger); logger != nil {
		logger.Error(msg, map[string]interface{}{
			"error": err.Error(),
		})
	}
}
