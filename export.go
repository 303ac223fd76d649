package docshelf

import "context"

// ExportFile represents one rendered file to be written during an export.
type ExportFile struct {
	// Path is the destination relative to the export root, slash-separated.
	Path string

	// Data is the rendered content.
	Data []byte
}

// ExportStore persists exported files with atomic semantics.
// Save writes to a temporary location; Commit makes the export visible as a
// whole; Abort discards pending files. A reader never observes a partially
// written export.
type ExportStore interface {
	Save(ctx context.Context, file *ExportFile) error
	Commit() error
	Abort() error
}
