package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of docshelf.CollectionService.
type CollectionService struct {
	CreateCollectionFn   func(ctx context.Context, collection *docshelf.Collection) error
	FindCollectionByIDFn func(ctx context.Context, id string) (*docshelf.Collection, error)
	FindCollectionsFn    func(ctx context.Context, filter docshelf.CollectionFilter) ([]*docshelf.Collection, error)
	UpdateCollectionFn   func(ctx context.Context, id string, upd docshelf.CollectionUpdate) (*docshelf.Collection, error)
	DeleteCollectionFn   func(ctx context.Context, id string) error
}

func (s *CollectionService) CreateCollection(ctx context.Context, collection *docshelf.Collection) error {
	return s.CreateCollectionFn(ctx, collection)
}

func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*docshelf.Collection, error) {
	return s.FindCollectionByIDFn(ctx, id)
}

func (s *CollectionService) FindCollections(ctx context.Context, filter docshelf.CollectionFilter) ([]*docshelf.Collection, error) {
	return s.FindCollectionsFn(ctx, filter)
}

func (s *CollectionService) UpdateCollection(ctx context.Context, id string, upd docshelf.CollectionUpdate) (*docshelf.Collection, error) {
	return s.UpdateCollectionFn(ctx, id, upd)
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	return s.DeleteCollectionFn(ctx, id)
}
