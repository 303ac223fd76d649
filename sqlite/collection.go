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
var _ docshelf.CollectionService = (*CollectionService)(nil)

// CollectionService implements docshelf.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

// CreateCollection creates a new collection.
func (s *CollectionService) CreateCollection(ctx context.Context, collection *docshelf.Collection) error {
	if err := collection.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM collections WHERE name = ?", collection.Name).Scan(&exists)
	if err == nil {
		return docshelf.Errorf(docshelf.ECONFLICT, "collection %q already exists", collection.Name)
	}
	if err != sql.ErrNoRows {
		return err
	}

	collection.ID = uuid.New().String()
	now := time.Now().UTC()
	collection.CreatedAt = now
	collection.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, title, description, source_path, base_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, collection.ID, collection.Name, collection.Title, collection.Description, collection.SourcePath,
		collection.BaseURL, collection.CreatedAt.Format(time.RFC3339), collection.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindCollectionByID retrieves a collection by ID.
func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*docshelf.Collection, error) {
	var collection docshelf.Collection
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, title, description, source_path, base_url, created_at, updated_at
		FROM collections
		WHERE id = ?
	`, id).Scan(&collection.ID, &collection.Name, &collection.Title, &collection.Description,
		&collection.SourcePath, &collection.BaseURL, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, docshelf.Errorf(docshelf.ENOTFOUND, "collection not found")
	}
	if err != nil {
		return nil, err
	}

	if collection.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if collection.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &collection, nil
}

// FindCollections retrieves collections matching the filter.
func (s *CollectionService) FindCollections(ctx context.Context, filter docshelf.CollectionFilter) ([]*docshelf.Collection, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, title, description, source_path, base_url, created_at, updated_at FROM collections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*docshelf.Collection
	for rows.Next() {
		var collection docshelf.Collection
		var createdAt, updatedAt string

		if err := rows.Scan(&collection.ID, &collection.Name, &collection.Title, &collection.Description,
			&collection.SourcePath, &collection.BaseURL, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if collection.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if collection.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		collections = append(collections, &collection)
	}

	return collections, rows.Err()
}

// UpdateCollection updates an existing collection.
func (s *CollectionService) UpdateCollection(ctx context.Context, id string, upd docshelf.CollectionUpdate) (*docshelf.Collection, error) {
	// First check if collection exists
	collection, err := s.FindCollectionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Title != nil {
		collection.Title = *upd.Title
	}
	if upd.Description != nil {
		collection.Description = *upd.Description
	}
	if upd.SourcePath != nil {
		collection.SourcePath = *upd.SourcePath
	}
	if upd.BaseURL != nil {
		collection.BaseURL = *upd.BaseURL
	}

	// Validate before persisting
	if err := collection.Validate(); err != nil {
		return nil, err
	}

	collection.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE collections
		SET title = ?, description = ?, source_path = ?, base_url = ?, updated_at = ?
		WHERE id = ?
	`, collection.Title, collection.Description, collection.SourcePath, collection.BaseURL,
		collection.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return collection, nil
}

// DeleteCollection permanently removes a collection. Its documents go with it
// through the foreign key cascade, so the section index is cleared here too.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sections_fts WHERE collection_id = ?", id); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docshelf.Errorf(docshelf.ENOTFOUND, "collection not found")
	}

	return nil
}
