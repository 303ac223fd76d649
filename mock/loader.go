package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.Loader = (*Loader)(nil)

// Loader is a mock implementation of docshelf.Loader.
type Loader struct {
	LoadDirFn    func(ctx context.Context, dir string, filter *docshelf.PathFilter) ([]*docshelf.SourceFile, error)
	LoadConfigFn func(ctx context.Context, dir string) (*docshelf.CollectionConfig, error)
}

func (l *Loader) LoadDir(ctx context.Context, dir string, filter *docshelf.PathFilter) ([]*docshelf.SourceFile, error) {
	return l.LoadDirFn(ctx, dir, filter)
}

func (l *Loader) LoadConfig(ctx context.Context, dir string) (*docshelf.CollectionConfig, error) {
	return l.LoadConfigFn(ctx, dir)
}
