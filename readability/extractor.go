// Package readability provides the fallback HTML main-content extractor.
package readability

import (
	"strings"

	"github.com/fwojciec/docshelf"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docshelf.Extractor at compile time.
var _ docshelf.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docshelf.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docshelf.Errorf(docshelf.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, docshelf.Errorf(docshelf.ENOTFOUND, "no main content found")
	}

	return &docshelf.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
