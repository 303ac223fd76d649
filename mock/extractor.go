package mock

import "github.com/fwojciec/docshelf"

var _ docshelf.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docshelf.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docshelf.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docshelf.ExtractResult, error) {
	return e.ExtractFn(html)
}
