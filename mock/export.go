package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.ExportStore = (*ExportStore)(nil)

// ExportStore is a mock implementation of docshelf.ExportStore.
type ExportStore struct {
	SaveFn   func(ctx context.Context, file *docshelf.ExportFile) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ExportStore) Save(ctx context.Context, file *docshelf.ExportFile) error {
	return s.SaveFn(ctx, file)
}

func (s *ExportStore) Commit() error {
	return s.CommitFn()
}

func (s *ExportStore) Abort() error {
	return s.AbortFn()
}
