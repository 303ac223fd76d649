// Package chroma provides the ANSI terminal renderer: colored headings and
// syntax-highlighted code examples.
package chroma

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"
	"github.com/fwojciec/docshelf"
)

// Ensure Renderer implements docshelf.Renderer at compile time.
var _ docshelf.Renderer = (*Renderer)(nil)

// chromaStyle is the highlighting style used for code examples.
const chromaStyle = "monokai"

// headingColors styles ATX headings by level. Levels deeper than the list
// reuse the last entry.
var headingColors = []*color.Color{
	color.New(color.FgCyan, color.Bold, color.Underline),
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgCyan),
	color.New(color.FgBlue),
}

// Renderer renders documents for terminal display. Prose stays verbatim;
// headings gain color and code examples gain syntax highlighting. With
// color disabled the output is the plain authored text.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderDocument renders the document for the terminal.
func (r *Renderer) RenderDocument(doc *docshelf.Document, opts docshelf.RenderOptions) (string, error) {
	if doc == nil {
		return "", docshelf.Errorf(docshelf.EINVALID, "document required")
	}
	if !opts.Color {
		return doc.Content, nil
	}

	var b strings.Builder
	var code strings.Builder
	var language string
	var fence docshelf.FenceState

	for _, line := range strings.SplitAfter(doc.Content, "\n") {
		if line == "" {
			continue
		}
		trimmed := strings.TrimRight(line, "\r\n")
		wasOpen := fence.Open()
		toggled := fence.Observe(trimmed)

		switch {
		case toggled && !wasOpen:
			language = fenceLanguage(trimmed)
			code.Reset()
		case toggled && wasOpen:
			b.WriteString(highlight(code.String(), language))
		case wasOpen:
			code.WriteString(line)
		default:
			b.WriteString(styleLine(line, trimmed))
		}
	}

	// An unclosed fence runs to the end of the document.
	if fence.Open() {
		b.WriteString(highlight(code.String(), language))
	}

	return b.String(), nil
}

// Format returns the terminal format.
func (r *Renderer) Format() docshelf.Format {
	return docshelf.FormatTerm
}

// styleLine colors a heading line, leaving every other line untouched.
// line keeps its terminator; trimmed has it stripped.
func styleLine(line, trimmed string) string {
	level := headingLevel(trimmed)
	if level == 0 {
		return line
	}

	c := headingColors[min(level, len(headingColors))-1]
	terminator := line[len(trimmed):]
	return c.Sprint(trimmed) + terminator
}

// highlight runs the code through chroma for the language. Unknown
// languages fall back to chroma's lexer analysis; on any error the code is
// returned as written.
func highlight(code, language string) string {
	var b strings.Builder
	if err := quick.Highlight(&b, code, language, "terminal16m", chromaStyle); err != nil {
		return code
	}
	return b.String()
}

// headingLevel returns the ATX heading level of a line, or 0 for non-headings.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level == len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// fenceLanguage extracts the language tag from a fence opening line.
func fenceLanguage(line string) string {
	rest := strings.TrimLeft(strings.TrimLeft(line, " "), "`~")
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
