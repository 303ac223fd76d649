package docshelf

// ExtractResult holds the content extracted from an HTML reference page
// during import.
type ExtractResult struct {
	// Title is the page title taken from metadata, falling back to the
	// first heading.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Used by import-html to turn an existing HTML reference page into a
// markdown document. Implementations are chained: when one finds no
// content, the next is tried.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns EINVALID for empty input and ENOTFOUND when no main content
	// could be identified.
	Extract(html string) (*ExtractResult, error)
}
