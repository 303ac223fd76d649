package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/mock"
	slogdec "github.com/fwojciec/docshelf/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

func TestLoggingSearchService_Search(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger()

	inner := &mock.SearchService{
		SearchFn: func(_ context.Context, collectionID, query string, _ int) ([]*docshelf.SearchResult, error) {
			return []*docshelf.SearchResult{{DocumentSlug: "variables"}}, nil
		},
	}
	svc := slogdec.NewLoggingSearchService(inner, logger)

	results, err := svc.Search(context.Background(), "col-1", "raii", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)

	out := buf.String()
	assert.Contains(t, out, "msg=search")
	assert.Contains(t, out, "collection=col-1")
	assert.Contains(t, out, "query=raii")
	assert.Contains(t, out, "results=1")
}

func TestLoggingSearchService_IndexDocument(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger()

	indexed := false
	inner := &mock.SearchService{
		IndexDocumentFn: func(_ context.Context, _ *docshelf.Document) error {
			indexed = true
			return nil
		},
	}
	svc := slogdec.NewLoggingSearchService(inner, logger)

	doc := &docshelf.Document{Slug: "variables", Content: "# Variables\n"}
	require.NoError(t, svc.IndexDocument(context.Background(), doc))

	assert.True(t, indexed)
	assert.Contains(t, buf.String(), "slug=variables")
}

func TestLoggingSearchService_PropagatesErrors(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger()

	inner := &mock.SearchService{
		SearchFn: func(_ context.Context, _, _ string, _ int) ([]*docshelf.SearchResult, error) {
			return nil, docshelf.Errorf(docshelf.EINVALID, "search query required")
		},
	}
	svc := slogdec.NewLoggingSearchService(inner, logger)

	_, err := svc.Search(context.Background(), "col-1", "", 10)
	require.Error(t, err)
	assert.Equal(t, docshelf.EINVALID, docshelf.ErrorCode(err))
	assert.Contains(t, buf.String(), "search query required")
}
