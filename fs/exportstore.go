package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docshelf"
)

// Ensure ExportStore implements docshelf.ExportStore at compile time.
var _ docshelf.ExportStore = (*ExportStore)(nil)

// ExportStore implements docshelf.ExportStore with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit.
// It writes through the os package directly because the atomicity rests on a
// real directory rename.
type ExportStore struct {
	baseDir string
	name    string
}

// NewExportStore creates a new ExportStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExportStore(baseDir, name string) *ExportStore {
	return &ExportStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one file under the temporary directory.
func (s *ExportStore) Save(ctx context.Context, file *docshelf.ExportFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if file.Path == "" {
		return docshelf.Errorf(docshelf.EINVALID, "export file path required")
	}

	cleaned := path.Clean(file.Path)
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return docshelf.Errorf(docshelf.EINVALID, "path traversal in %q", file.Path)
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(cleaned))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, file.Data, 0644)
}

// Commit atomically replaces the final directory with the temporary one.
func (s *ExportStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
