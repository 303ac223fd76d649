package bloom

import (
	"context"

	"github.com/fwojciec/docshelf"
)

// Ensure SearchService implements docshelf.SearchService at compile time.
var _ docshelf.SearchService = (*SearchService)(nil)

// SearchService screens queries through a term filter before delegating to
// the wrapped service. A query whose terms cannot all occur anywhere in the
// collection returns no results without touching the index.
type SearchService struct {
	inner  docshelf.SearchService
	filter docshelf.TermFilter
}

// NewSearchService creates a SearchService wrapping inner.
func NewSearchService(inner docshelf.SearchService, filter docshelf.TermFilter) *SearchService {
	return &SearchService{inner: inner, filter: filter}
}

// IndexDocument indexes the document and records its terms in the filter.
func (s *SearchService) IndexDocument(ctx context.Context, doc *docshelf.Document) error {
	if err := s.inner.IndexDocument(ctx, doc); err != nil {
		return err
	}
	s.filter.Add(doc.CollectionID, documentTerms(doc))
	return nil
}

// Warm seeds the filter with the terms of documents that were indexed by an
// earlier process. The filter starts empty on every start, so a process that
// only searches must warm it from stored documents before the pre-filter can
// rule anything out.
func (s *SearchService) Warm(docs []*docshelf.Document) {
	for _, doc := range docs {
		s.filter.Add(doc.CollectionID, documentTerms(doc))
	}
}

// documentTerms returns the terms recorded for a document. Warm must derive
// the same terms IndexDocument records.
func documentTerms(doc *docshelf.Document) []string {
	return docshelf.Tokenize(doc.Title + " " + doc.Content)
}

// RemoveDocument removes the document from the index. Bloom filters cannot
// forget, so the document's terms stay in the filter as extra false
// positives until the filter is rebuilt.
func (s *SearchService) RemoveDocument(ctx context.Context, documentID string) error {
	return s.inner.RemoveDocument(ctx, documentID)
}

// Search short-circuits queries the filter rules out and delegates the rest.
func (s *SearchService) Search(ctx context.Context, collectionID, query string, limit int) ([]*docshelf.SearchResult, error) {
	terms := screenable(docshelf.Tokenize(query))
	if len(terms) > 0 && !s.filter.MayContain(collectionID, terms) {
		return nil, nil
	}
	return s.inner.Search(ctx, collectionID, query, limit)
}

// screenable drops terms with non-ASCII runes. The index tokenizer folds
// diacritics, so such terms cannot be tested against the filter without
// risking a false negative.
func screenable(terms []string) []string {
	kept := terms[:0:0]
	for _, term := range terms {
		ascii := true
		for _, r := range term {
			if r > 127 {
				ascii = false
				break
			}
		}
		if ascii {
			kept = append(kept, term)
		}
	}
	return kept
}
