package ingest

import (
	"context"
	"fmt"

	"github.com/fwojciec/docshelf"
)

// HTMLImporter adds a single local HTML reference page to a collection:
// main content is extracted, converted to markdown, and stored as a regular
// document at the end of the collection.
type HTMLImporter struct {
	// Extractors are tried in order until one finds main content.
	Extractors []docshelf.Extractor
	Converter  docshelf.Converter
	Documents  docshelf.DocumentService
	Search     docshelf.SearchService
}

// Import converts rawHTML into a markdown document stored under the name.
// Returns ENOTFOUND when no extractor can identify main content.
func (h *HTMLImporter) Import(ctx context.Context, collection *docshelf.Collection, name, rawHTML string) (*docshelf.Document, error) {
	if name == "" {
		return nil, docshelf.Errorf(docshelf.EINVALID, "document name required")
	}

	extracted, err := h.extract(rawHTML)
	if err != nil {
		return nil, err
	}

	markdown, err := h.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", name, err)
	}

	position, err := h.nextPosition(ctx, collection.ID)
	if err != nil {
		return nil, err
	}

	doc := &docshelf.Document{
		CollectionID: collection.ID,
		FilePath:     name,
		Slug:         docshelf.SlugFromPath(name),
		Title:        extracted.Title,
		Content:      markdown,
		Origin:       docshelf.OriginExtracted,
		Position:     position,
	}
	if doc.Title == "" {
		doc.Title = doc.Slug
	}

	if err := h.Documents.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}
	if err := h.Search.IndexDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// extract runs the extractor chain until one succeeds.
func (h *HTMLImporter) extract(rawHTML string) (*docshelf.ExtractResult, error) {
	if len(h.Extractors) == 0 {
		return nil, docshelf.Errorf(docshelf.EINTERNAL, "no extractors configured")
	}

	var lastErr error
	for _, extractor := range h.Extractors {
		result, err := extractor.Extract(rawHTML)
		if err != nil {
			lastErr = err
			continue
		}
		if result.ContentHTML != "" {
			return result, nil
		}
		lastErr = docshelf.Errorf(docshelf.ENOTFOUND, "no main content found")
	}
	return nil, lastErr
}

// nextPosition returns one past the collection's highest document position.
func (h *HTMLImporter) nextPosition(ctx context.Context, collectionID string) (int, error) {
	docs, err := h.Documents.FindDocuments(ctx, docshelf.DocumentFilter{
		CollectionID: &collectionID,
		SortBy:       docshelf.SortByPosition,
	})
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}
	return docs[len(docs)-1].Position + 1, nil
}
