package docshelf

// Converter converts HTML to Markdown.
// The markdown side is canonical in docshelf: imported HTML pages are
// converted once and stored as markdown like any authored document.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
