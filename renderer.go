package docshelf

// Format identifies a document output format.
type Format string

// Supported output formats.
const (
	FormatTerm     Format = "term"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// RenderOptions carries presentation settings shared by renderers.
type RenderOptions struct {
	// Color enables ANSI styling for terminal output. Renderers that do
	// not produce terminal output ignore it.
	Color bool

	// CollectionTitle is shown by page-producing renderers (HTML) as the
	// site title. Optional.
	CollectionTitle string
}

// Renderer produces one output representation of a document.
// Implementations must emit section text verbatim and in declaration order;
// a renderer decorates, it never rewrites.
type Renderer interface {
	// RenderDocument renders a complete document.
	RenderDocument(doc *Document, opts RenderOptions) (string, error)

	// Format returns the output format this renderer produces.
	Format() Format
}

// RendererRegistry manages renderers by output format.
type RendererRegistry interface {
	// Get returns the renderer for a format.
	// Returns nil if no renderer is registered for the format.
	Get(format Format) Renderer

	// Register adds a renderer for its format.
	// If a renderer is already registered for the format, it is replaced.
	Register(renderer Renderer)

	// List returns all registered formats.
	List() []Format
}

// ParseFormat validates a format string from a flag or API parameter.
// Returns EINVALID for unknown formats.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTerm, FormatMarkdown, FormatHTML, FormatJSON:
		return Format(s), nil
	}
	return "", Errorf(EINVALID, "unknown output format %q", s)
}
