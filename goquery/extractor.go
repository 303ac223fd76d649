// Package goquery provides a CSS-selector based HTML content extractor,
// used as the last resort behind the trafilatura and readability extractors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docshelf"
)

// Ensure Extractor implements docshelf.Extractor at compile time.
var _ docshelf.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first match with text wins.
var contentSelectors = []string{
	"main article",
	"article",
	"main",
	"div[role='main']",
	"#content",
	".content",
	".markdown-body",
	"body",
}

// boilerplateSelector matches elements stripped from the selected content.
const boilerplateSelector = "nav, aside, footer, header, script, style, noscript"

// Extractor extracts main content from HTML using CSS selectors.
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

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	for _, selector := range contentSelectors {
		selection := doc.Find(selector).First()
		if selection.Length() == 0 {
			continue
		}

		selection.Find(boilerplateSelector).Remove()
		if strings.TrimSpace(selection.Text()) == "" {
			continue
		}

		contentHTML, err := selection.Html()
		if err != nil {
			return nil, err
		}
		return &docshelf.ExtractResult{
			Title:       title,
			ContentHTML: contentHTML,
		}, nil
	}

	return nil, docshelf.Errorf(docshelf.ENOTFOUND, "no main content found")
}
