// ABOUTME: Results area abstraction written by the search controller
// ABOUTME: Holds exactly one of: loading indicator, recipe cards, or a message panel

package interfaces

import "html/template"

// ResultsArea is the single display region a search controller writes to.
// Its content is always already-escaped markup.
type ResultsArea interface {
	// Replace discards the current content and sets fragment as the only content.
	Replace(fragment template.HTML)

	// Append adds fragment after the current content.
	Append(fragment template.HTML)

	// Clear removes all content.
	Clear()

	// Content returns the current content.
	Content() template.HTML
}
