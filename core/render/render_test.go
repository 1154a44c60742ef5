package render

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"recipe-finder-app/core/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, fragment template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(fragment)))
	require.NoError(t, err)
	return doc
}

func TestNewRenderer_DefaultDetailBase(t *testing.T) {
	r := NewRenderer("")

	assert.Equal(t, "https://www.themealdb.com/meal/52977", r.DetailURL("52977"))
}

func TestNewRenderer_TrimsTrailingSlash(t *testing.T) {
	r := NewRenderer("http://detail.test/meal/")

	assert.Equal(t, "http://detail.test/meal/1", r.DetailURL("1"))
}

func TestCard_ContainsRecipeFields(t *testing.T) {
	r := NewRenderer("")
	recipe := domain.Recipe{Name: "Chicken Stew", ImageURL: "http://x/y.jpg", ID: "52977"}

	fragment, err := r.Card(recipe)
	require.NoError(t, err)

	doc := parseFragment(t, fragment)

	assert.Equal(t, "Chicken Stew", doc.Find(".card-title").Text())
	assert.Contains(t, doc.Find(".card-text").Text(), "52977")

	img := doc.Find("img")
	require.Equal(t, 1, img.Length())
	assert.Equal(t, "http://x/y.jpg", img.AttrOr("src", ""))
	assert.Equal(t, "Chicken Stew", img.AttrOr("alt", ""))

	link := doc.Find("a")
	require.Equal(t, 1, link.Length())
	assert.True(t, strings.HasSuffix(link.AttrOr("href", ""), "/52977"))
	assert.Equal(t, "_blank", link.AttrOr("target", ""))
}

func TestCard_IsSelfContained(t *testing.T) {
	r := NewRenderer("")

	fragment, err := r.Card(domain.Recipe{Name: "Beef Pie", ImageURL: "http://x/p.jpg", ID: "1"})
	require.NoError(t, err)

	doc := parseFragment(t, fragment)
	assert.Equal(t, 1, doc.Find("body").Children().Length(), "card should have a single root element")
	assert.Equal(t, 1, doc.Find(".card").Length())
}

func TestCard_EscapesAPIText(t *testing.T) {
	r := NewRenderer("")
	recipe := domain.Recipe{
		Name:     `<script>alert("x")</script>`,
		ImageURL: `javascript:alert(1)`,
		ID:       `1"><b>`,
	}

	fragment, err := r.Card(recipe)
	require.NoError(t, err)

	html := string(fragment)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>")
	assert.NotContains(t, html, "javascript:")

	doc := parseFragment(t, fragment)
	assert.Equal(t, `<script>alert("x")</script>`, doc.Find(".card-title").Text())
	assert.Equal(t, 0, doc.Find("script").Length())
}

func TestCard_DetailLinkEscapesID(t *testing.T) {
	r := NewRenderer("")

	fragment, err := r.Card(domain.Recipe{Name: "x", ID: "a/b c"})
	require.NoError(t, err)

	doc := parseFragment(t, fragment)
	assert.Equal(t, "https://www.themealdb.com/meal/a%2Fb%20c", doc.Find("a").AttrOr("href", ""))
}

func TestWriteCard_MatchesCard(t *testing.T) {
	r := NewRenderer("")
	recipe := domain.Recipe{Name: "Chicken Stew", ImageURL: "http://x/y.jpg", ID: "52977"}

	var buf bytes.Buffer
	require.NoError(t, r.WriteCard(&buf, recipe))

	fragment, err := r.Card(recipe)
	require.NoError(t, err)
	assert.Equal(t, string(fragment), buf.String())
}

func TestLoading(t *testing.T) {
	fragment, err := NewRenderer("").Loading("Loading...")
	require.NoError(t, err)

	doc := parseFragment(t, fragment)
	assert.Equal(t, 1, doc.Find(".spinner-border[role=status]").Length())
	assert.Equal(t, "Loading...", doc.Find(".visually-hidden").Text())
}

func TestMessage(t *testing.T) {
	fragment, err := NewRenderer("").Message("No recipes <found>")
	require.NoError(t, err)

	doc := parseFragment(t, fragment)
	panel := doc.Find(".alert")
	require.Equal(t, 1, panel.Length())
	assert.Equal(t, "No recipes <found>", strings.TrimSpace(panel.Text()))
	assert.NotContains(t, string(fragment), "<found>")
}

func TestWritePage(t *testing.T) {
	r := NewRenderer("")
	card, err := r.Card(domain.Recipe{Name: "Chicken Stew", ImageURL: "http://x/y.jpg", ID: "52977"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.WritePage(&buf, PageData{
		Title:         "Recipe Finder",
		StylesheetURL: "https://cdn.example/bootstrap.css",
		Action:        "/search",
		Query:         `chicken "thigh"`,
		Alert:         "Please enter an ingredient",
		Results:       card,
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "Recipe Finder", doc.Find("title").Text())
	assert.Equal(t, "/search", doc.Find("#searchForm").AttrOr("action", ""))
	assert.Equal(t, `chicken "thigh"`, doc.Find("input[name=i]").AttrOr("value", ""))
	assert.Equal(t, "Please enter an ingredient", doc.Find("#searchAlert").Text())
	assert.Equal(t, 1, doc.Find("#recipesContainer .card").Length())
	assert.Equal(t, "https://cdn.example/bootstrap.css", doc.Find("link[rel=stylesheet]").AttrOr("href", ""))
}

func TestWritePage_NoAlertNoStylesheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer("").WritePage(&buf, PageData{Title: "Recipe Finder", Action: "/search"}))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Find("#searchAlert").Length())
	assert.Equal(t, 0, doc.Find("link[rel=stylesheet]").Length())
	assert.Equal(t, 0, doc.Find("#recipesContainer").Children().Length())
}
