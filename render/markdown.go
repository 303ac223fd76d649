package render

import (
	"strings"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.Renderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer emits a document as a normalized markdown page: the title
// as an H1 when the content does not already start with one, followed by the
// content verbatim.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// RenderDocument renders the document as markdown.
func (r *MarkdownRenderer) RenderDocument(doc *docshelf.Document, _ docshelf.RenderOptions) (string, error) {
	if doc == nil {
		return "", docshelf.Errorf(docshelf.EINVALID, "document required")
	}

	if doc.Title == "" || startsWithH1(doc.Content) {
		return doc.Content, nil
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(doc.Title)
	b.WriteString("\n\n")
	b.WriteString(doc.Content)
	return b.String(), nil
}

// Format returns the markdown format.
func (r *MarkdownRenderer) Format() docshelf.Format {
	return docshelf.FormatMarkdown
}

// startsWithH1 reports whether the first non-blank line of content is a
// level-1 heading.
func startsWithH1(content string) bool {
	for _, line := range strings.SplitAfter(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, "# ")
	}
	return false
}
