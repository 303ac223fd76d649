package mock

import "github.com/fwojciec/docshelf"

var _ docshelf.Converter = (*Converter)(nil)

// Converter is a mock implementation of docshelf.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
