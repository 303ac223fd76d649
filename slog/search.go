// Package slog provides logging decorators for docshelf services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docshelf"
)

// Ensure LoggingSearchService implements docshelf.SearchService.
var _ docshelf.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   docshelf.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next docshelf.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// IndexDocument delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) IndexDocument(ctx context.Context, doc *docshelf.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("index document",
			"slug", doc.Slug,
			"sections", len(doc.Sections()),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.IndexDocument(ctx, doc)
}

// RemoveDocument delegates to the wrapped service.
func (s *LoggingSearchService) RemoveDocument(ctx context.Context, documentID string) error {
	return s.next.RemoveDocument(ctx, documentID)
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, collectionID, query string, limit int) (results []*docshelf.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"collection", collectionID,
			"query", query,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, collectionID, query, limit)
}
