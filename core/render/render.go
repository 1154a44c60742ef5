// ABOUTME: HTML rendering for recipe cards, status panels and the search page
// ABOUTME: Uses html/template so API-provided text is escaped for its context

package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/url"
	"strings"

	"recipe-finder-app/core/domain"
)

// DefaultDetailBaseURL is where recipe detail pages live; the recipe ID is
// appended as the last path segment.
const DefaultDetailBaseURL = "https://www.themealdb.com/meal"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Renderer turns recipes and status text into markup fragments.
// It holds no mutable state and is safe for concurrent use.
type Renderer struct {
	detailBaseURL string
}

// NewRenderer creates a renderer. An empty detailBaseURL selects
// DefaultDetailBaseURL.
func NewRenderer(detailBaseURL string) *Renderer {
	if detailBaseURL == "" {
		detailBaseURL = DefaultDetailBaseURL
	}
	return &Renderer{detailBaseURL: strings.TrimRight(detailBaseURL, "/")}
}

type cardData struct {
	Name      string
	ImageURL  string
	ID        string
	DetailURL string
}

// DetailURL returns the detail page link for a recipe ID
func (r *Renderer) DetailURL(id string) string {
	return r.detailBaseURL + "/" + url.PathEscape(id)
}

// WriteCard writes the card fragment for recipe to w
func (r *Renderer) WriteCard(w io.Writer, recipe domain.Recipe) error {
	return templates.ExecuteTemplate(w, "card", cardData{
		Name:      recipe.Name,
		ImageURL:  recipe.ImageURL,
		ID:        recipe.ID,
		DetailURL: r.DetailURL(recipe.ID),
	})
}

// Card returns the self-contained card fragment for recipe: image, name,
// ID label and a detail link opened in a new browsing context.
func (r *Renderer) Card(recipe domain.Recipe) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.WriteCard(&buf, recipe); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Loading returns the loading indicator with label as its hidden text
func (r *Renderer) Loading(label string) (template.HTML, error) {
	return execute("loading", label)
}

// Message returns a single informational panel containing text
func (r *Renderer) Message(text string) (template.HTML, error) {
	return execute("message", text)
}

// PageData is the input of the full search page
type PageData struct {
	Title         string
	StylesheetURL string
	Action        string
	Query         string
	Alert         string
	Results       template.HTML
}

// WritePage writes the full search page to w
func (r *Renderer) WritePage(w io.Writer, data PageData) error {
	return templates.ExecuteTemplate(w, "page", data)
}

func execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
