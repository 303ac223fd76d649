package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docshelf"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docshelf.DocumentService = (*DocumentService)(nil)

// DocumentService implements docshelf.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document. The content hash and word count are
// computed here so stored values always agree with the stored content.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docshelf.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM documents WHERE collection_id = ? AND slug = ?",
		doc.CollectionID, doc.Slug).Scan(&exists)
	if err == nil {
		return docshelf.Errorf(docshelf.ECONFLICT, "document %q already exists in collection", doc.Slug)
	}
	if err != sql.ErrNoRows {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ImportedAt = time.Now().UTC()
	doc.ContentHash = docshelf.HashContent(doc.Content)
	doc.WordCount = docshelf.CountWords(doc.Content)
	if doc.Origin == "" {
		doc.Origin = docshelf.OriginFile
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, collection_id, file_path, slug, title, content, content_hash, origin, position, word_count, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.CollectionID, doc.FilePath, doc.Slug, doc.Title, doc.Content, doc.ContentHash,
		doc.Origin, doc.Position, doc.WordCount, doc.ImportedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docshelf.Document, error) {
	var doc docshelf.Document
	var importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, collection_id, file_path, slug, title, content, content_hash, origin, position, word_count, imported_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.CollectionID, &doc.FilePath, &doc.Slug, &doc.Title,
		&doc.Content, &doc.ContentHash, &doc.Origin, &doc.Position, &doc.WordCount, &importedAt)

	if err == sql.ErrNoRows {
		return nil, docshelf.Errorf(docshelf.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if doc.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docshelf.DocumentFilter) ([]*docshelf.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, collection_id, file_path, slug, title, content, content_hash, origin, position, word_count, imported_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}

	switch filter.SortBy {
	case docshelf.SortByPosition:
		query.WriteString(" ORDER BY position ASC, file_path ASC")
	default:
		query.WriteString(" ORDER BY imported_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docshelf.Document
	for rows.Next() {
		var doc docshelf.Document
		var importedAt string

		if err := rows.Scan(&doc.ID, &doc.CollectionID, &doc.FilePath, &doc.Slug, &doc.Title,
			&doc.Content, &doc.ContentHash, &doc.Origin, &doc.Position, &doc.WordCount, &importedAt); err != nil {
			return nil, err
		}

		if doc.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd docshelf.DocumentUpdate) (*docshelf.Document, error) {
	// First check if document exists
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Title != nil {
		doc.Title = *upd.Title
	}
	if upd.Content != nil {
		doc.Content = *upd.Content
		doc.ContentHash = docshelf.HashContent(doc.Content)
		doc.WordCount = docshelf.CountWords(doc.Content)
	}
	if upd.Position != nil {
		doc.Position = *upd.Position
	}

	// Validate before persisting
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, content = ?, content_hash = ?, position = ?, word_count = ?
		WHERE id = ?
	`, doc.Title, doc.Content, doc.ContentHash, doc.Position, doc.WordCount, id)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document and its index entries.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sections_fts WHERE document_id = ?", id); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docshelf.Errorf(docshelf.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByCollection removes all documents for a collection along
// with their index entries.
func (s *DocumentService) DeleteDocumentsByCollection(ctx context.Context, collectionID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sections_fts WHERE collection_id = ?", collectionID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE collection_id = ?", collectionID)
	return err
}
