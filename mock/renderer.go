package mock

import "github.com/fwojciec/docshelf"

var _ docshelf.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docshelf.Renderer.
type Renderer struct {
	RenderDocumentFn func(doc *docshelf.Document, opts docshelf.RenderOptions) (string, error)
	FormatFn         func() docshelf.Format
}

func (r *Renderer) RenderDocument(doc *docshelf.Document, opts docshelf.RenderOptions) (string, error) {
	return r.RenderDocumentFn(doc, opts)
}

func (r *Renderer) Format() docshelf.Format {
	return r.FormatFn()
}
