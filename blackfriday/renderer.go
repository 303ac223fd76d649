// Package blackfriday provides the HTML renderer: markdown to a standalone
// HTML page with syntax-highlighted code blocks.
package blackfriday

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/docshelf"
	"github.com/russross/blackfriday/v2"
)

// Ensure Renderer implements docshelf.Renderer at compile time.
var _ docshelf.Renderer = (*Renderer)(nil)

// chromaStyle is the highlighting style used for code blocks.
const chromaStyle = "github"

// Renderer renders documents as standalone HTML pages.
type Renderer struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
	page      *template.Template
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	style := styles.Get(chromaStyle)
	if style == nil {
		style = styles.Fallback
	}
	return &Renderer{
		formatter: chromahtml.New(chromahtml.WithClasses(false)),
		style:     style,
		page:      template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// RenderDocument renders the document as a complete HTML page.
func (r *Renderer) RenderDocument(doc *docshelf.Document, opts docshelf.RenderOptions) (string, error) {
	if doc == nil {
		return "", docshelf.Errorf(docshelf.EINVALID, "document required")
	}

	body := blackfriday.Run([]byte(doc.Content),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.AutoHeadingIDs),
		blackfriday.WithRenderer(&codeBlockRenderer{
			HTMLRenderer: blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
				Flags: blackfriday.CommonHTMLFlags,
			}),
			formatter: r.formatter,
			style:     r.style,
		}),
	)

	title := doc.Title
	if title == "" {
		title = doc.Slug
	}

	var out bytes.Buffer
	err := r.page.Execute(&out, pageData{
		Title:     title,
		SiteTitle: opts.CollectionTitle,
		Body:      template.HTML(body), //nolint:gosec // output of our own markdown renderer
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Format returns the HTML format.
func (r *Renderer) Format() docshelf.Format {
	return docshelf.FormatHTML
}

// codeBlockRenderer overrides fenced code block rendering with chroma
// highlighting, delegating every other node to blackfriday's HTML renderer.
type codeBlockRenderer struct {
	*blackfriday.HTMLRenderer
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

func (r *codeBlockRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	if node.Type != blackfriday.CodeBlock {
		return r.HTMLRenderer.RenderNode(w, node, entering)
	}

	language := string(node.CodeBlockData.Info)
	if i := strings.IndexAny(language, " \t"); i >= 0 {
		language = language[:i]
	}

	if err := highlight(w, string(node.Literal), language, r.formatter, r.style); err != nil {
		return r.HTMLRenderer.RenderNode(w, node, entering)
	}
	return blackfriday.GoToNext
}

// highlight writes the code as highlighted HTML.
func highlight(w io.Writer, code, language string, formatter *chromahtml.Formatter, style *chroma.Style) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return err
	}
	return formatter.Format(w, style, iterator)
}

// pageData feeds the page template.
type pageData struct {
	Title     string
	SiteTitle string
	Body      template.HTML
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}{{if .SiteTitle}} — {{.SiteTitle}}{{end}}</title>
<style>
body { max-width: 48rem; margin: 2rem auto; padding: 0 1rem; font-family: system-ui, sans-serif; line-height: 1.6; color: #1f2328; }
h1, h2, h3, h4, h5, h6 { line-height: 1.25; }
pre { padding: 1rem; overflow-x: auto; border-radius: 6px; }
code { font-family: ui-monospace, monospace; font-size: 0.9em; }
a { color: #0969da; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`
