package docshelf

import (
	"context"
	"time"
)

// Collection represents one shelf of topic documents loaded from a content
// directory. Each collection is an independent namespace; documents in
// different collections are unrelated.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourcePath  string    `json:"sourcePath"`
	BaseURL     string    `json:"baseUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the collection contains invalid fields.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "collection name required")
	}
	if c.SourcePath == "" {
		return Errorf(EINVALID, "collection source path required")
	}
	return nil
}

// DisplayTitle returns the title to show for the collection, falling back
// to the name when no title was configured.
func (c *Collection) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// CollectionConfig holds optional collection metadata read from a shelf.yml
// file at the root of a content directory.
type CollectionConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"base_url"`
}

// CollectionService represents a service for managing collections.
type CollectionService interface {
	// CreateCollection creates a new collection.
	// Returns ECONFLICT if a collection with the same name exists.
	CreateCollection(ctx context.Context, collection *Collection) error

	// FindCollectionByID retrieves a collection by ID.
	// Returns ENOTFOUND if the collection does not exist.
	FindCollectionByID(ctx context.Context, id string) (*Collection, error)

	// FindCollections retrieves collections matching the filter.
	FindCollections(ctx context.Context, filter CollectionFilter) ([]*Collection, error)

	// UpdateCollection updates an existing collection.
	// Returns ENOTFOUND if the collection does not exist.
	UpdateCollection(ctx context.Context, id string, upd CollectionUpdate) (*Collection, error)

	// DeleteCollection permanently removes a collection and its documents.
	// Returns ENOTFOUND if the collection does not exist.
	DeleteCollection(ctx context.Context, id string) error
}

// CollectionFilter represents a filter for FindCollections.
type CollectionFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CollectionUpdate represents fields that can be updated on a collection.
type CollectionUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SourcePath  *string `json:"sourcePath"`
	BaseURL     *string `json:"baseUrl"`
}
