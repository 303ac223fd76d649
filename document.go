package docshelf

import (
	"context"
	"path"
	"strings"
	"time"
)

// Document origins. A file-origin document mirrors an authored file in the
// collection's content directory; an extracted document was converted from a
// single HTML page and has no on-disk source to verify against.
const (
	OriginFile      = "file"
	OriginExtracted = "extracted"
)

// Document represents one topic page: a title and an ordered sequence of
// sections. Content holds the authored markdown body verbatim; sections are
// derived from it on demand and never stored separately.
type Document struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collectionId"`
	FilePath     string    `json:"filePath"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ContentHash  string    `json:"contentHash"`
	Origin       string    `json:"origin"`
	Position     int       `json:"position"`
	WordCount    int       `json:"wordCount"`
	ImportedAt   time.Time `json:"importedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.CollectionID == "" {
		return Errorf(EINVALID, "document collection ID required")
	}
	if d.FilePath == "" {
		return Errorf(EINVALID, "document file path required")
	}
	if d.Origin != "" && d.Origin != OriginFile && d.Origin != OriginExtracted {
		return Errorf(EINVALID, "unknown document origin %q", d.Origin)
	}
	return nil
}

// Sections splits the document content into its ordered sections.
func (d *Document) Sections() []Section {
	return SplitSections(d.Content)
}

// SlugFromPath derives a document slug from a slash-separated relative file
// path by stripping the extension.
// Example: basics/variables.md → basics/variables
func SlugFromPath(filePath string) string {
	ext := path.Ext(filePath)
	return strings.TrimSuffix(filePath, ext)
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	// Returns ECONFLICT if the collection already has a document with the
	// same slug.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument updates an existing document.
	// Returns ENOTFOUND if the document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error

	// DeleteDocumentsByCollection removes all documents for a collection.
	DeleteDocumentsByCollection(ctx context.Context, collectionID string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByImportedAt SortOrder = "imported_at"
	SortByPosition   SortOrder = "position"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID           *string `json:"id"`
	CollectionID *string `json:"collectionId"`
	Slug         *string `json:"slug"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// DocumentUpdate represents fields that can be updated on a document.
type DocumentUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Position *int    `json:"position"`
}
