package docshelf

import (
	"context"
	"strings"
	"unicode"
)

// SearchResult represents one section matched by a search query.
type SearchResult struct {
	DocumentID    string  `json:"documentId"`
	DocumentSlug  string  `json:"documentSlug"`
	DocumentTitle string  `json:"documentTitle"`
	Heading       string  `json:"heading"`
	Anchor        string  `json:"anchor"`
	Snippet       string  `json:"snippet"`
	Rank          float64 `json:"rank"`
}

// SearchService provides full-text search over the sections of a
// collection's documents.
type SearchService interface {
	// IndexDocument (re)indexes the sections of a document.
	IndexDocument(ctx context.Context, doc *Document) error

	// RemoveDocument drops a document's sections from the index.
	RemoveDocument(ctx context.Context, documentID string) error

	// Search returns sections of the collection matching query, best first.
	// Returns EINVALID for an empty query.
	Search(ctx context.Context, collectionID, query string, limit int) ([]*SearchResult, error)
}

// TermFilter answers probabilistic term-membership questions for a keyed set
// of texts, typically one key per collection. False positives are possible;
// false negatives are not. It is a pre-filter only: a positive answer must
// still be confirmed by the index.
type TermFilter interface {
	// Add records the terms of a text under the key.
	Add(key string, terms []string)

	// MayContain reports whether any text under the key might contain all
	// the terms. Unknown keys report true so they are never skipped
	// unverified.
	MayContain(key string, terms []string) bool
}

// Tokenize splits text into lowercase search terms on any rune that is not a
// letter or digit, mirroring how the search index tokenizes content.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
