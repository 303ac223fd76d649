package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docshelf.SearchService.
type SearchService struct {
	IndexDocumentFn  func(ctx context.Context, doc *docshelf.Document) error
	RemoveDocumentFn func(ctx context.Context, documentID string) error
	SearchFn         func(ctx context.Context, collectionID, query string, limit int) ([]*docshelf.SearchResult, error)
}

func (s *SearchService) IndexDocument(ctx context.Context, doc *docshelf.Document) error {
	return s.IndexDocumentFn(ctx, doc)
}

func (s *SearchService) RemoveDocument(ctx context.Context, documentID string) error {
	return s.RemoveDocumentFn(ctx, documentID)
}

func (s *SearchService) Search(ctx context.Context, collectionID, query string, limit int) ([]*docshelf.SearchResult, error) {
	return s.SearchFn(ctx, collectionID, query, limit)
}
