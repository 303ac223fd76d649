package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/docshelf"
)

// Compile-time interface verification.
var _ docshelf.SearchService = (*SearchService)(nil)

// SearchService implements docshelf.SearchService on an FTS5 table holding
// one row per document section.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// IndexDocument replaces the indexed sections of a document.
func (s *SearchService) IndexDocument(ctx context.Context, doc *docshelf.Document) error {
	if doc.ID == "" {
		return docshelf.Errorf(docshelf.EINVALID, "document ID required")
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM sections_fts WHERE document_id = ?", doc.ID); err != nil {
		return err
	}

	for _, section := range doc.Sections() {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO sections_fts (document_id, collection_id, heading, anchor, body)
			VALUES (?, ?, ?, ?, ?)
		`, doc.ID, doc.CollectionID, section.Heading, section.Anchor, sectionText(section))
		if err != nil {
			return err
		}
	}

	return nil
}

// RemoveDocument drops a document's sections from the index.
func (s *SearchService) RemoveDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sections_fts WHERE document_id = ?", documentID)
	return err
}

// Search returns sections of the collection matching query, best first.
// Heading matches weigh more than body matches.
func (s *SearchService) Search(ctx context.Context, collectionID, query string, limit int) ([]*docshelf.SearchResult, error) {
	match := buildMatchExpr(query)
	if match == "" {
		return nil, docshelf.Errorf(docshelf.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT sections_fts.document_id, d.slug, d.title, sections_fts.heading, sections_fts.anchor,
			snippet(sections_fts, 4, '[', ']', '…', 12),
			bm25(sections_fts, 0, 0, 5.0, 0, 1.0) AS rank
		FROM sections_fts
		JOIN documents d ON d.id = sections_fts.document_id
		WHERE sections_fts MATCH ? AND sections_fts.collection_id = ?
		ORDER BY rank
		LIMIT ?
	`, match, collectionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*docshelf.SearchResult
	for rows.Next() {
		var result docshelf.SearchResult

		if err := rows.Scan(&result.DocumentID, &result.DocumentSlug, &result.DocumentTitle,
			&result.Heading, &result.Anchor, &result.Snippet, &result.Rank); err != nil {
			return nil, err
		}

		results = append(results, &result)
	}

	return results, rows.Err()
}

// buildMatchExpr turns a raw user query into an FTS5 MATCH expression. Terms
// are quoted individually so query punctuation cannot alter the expression
// syntax. Returns "" when the query holds no searchable terms.
func buildMatchExpr(query string) string {
	terms := docshelf.Tokenize(query)
	if len(terms) == 0 {
		return ""
	}

	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = `"` + term + `"`
	}
	return strings.Join(quoted, " ")
}

// sectionText returns the section body without its heading line, which is
// indexed separately under the heading column.
func sectionText(section docshelf.Section) string {
	if section.Level == 0 {
		return section.Body
	}
	if i := strings.IndexByte(section.Body, '\n'); i >= 0 {
		return section.Body[i+1:]
	}
	return ""
}
