package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docshelf.DocumentService.
type DocumentService struct {
	CreateDocumentFn              func(ctx context.Context, doc *docshelf.Document) error
	FindDocumentByIDFn            func(ctx context.Context, id string) (*docshelf.Document, error)
	FindDocumentsFn               func(ctx context.Context, filter docshelf.DocumentFilter) ([]*docshelf.Document, error)
	UpdateDocumentFn              func(ctx context.Context, id string, upd docshelf.DocumentUpdate) (*docshelf.Document, error)
	DeleteDocumentFn              func(ctx context.Context, id string) error
	DeleteDocumentsByCollectionFn func(ctx context.Context, collectionID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *docshelf.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docshelf.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter docshelf.DocumentFilter) ([]*docshelf.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd docshelf.DocumentUpdate) (*docshelf.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByCollection(ctx context.Context, collectionID string) error {
	return s.DeleteDocumentsByCollectionFn(ctx, collectionID)
}
