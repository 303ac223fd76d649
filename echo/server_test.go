package echo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/blackfriday"
	echoserver "github.com/fwojciec/docshelf/echo"
	"github.com/fwojciec/docshelf/mock"
	"github.com/fwojciec/docshelf/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCorpus builds an immutable two-collection corpus snapshot.
func newTestCorpus(t *testing.T) *docshelf.Corpus {
	t.Helper()

	collections := []*docshelf.Collection{
		{ID: "col-cpp", Name: "cpp-notes", Title: "C++ Notes", BaseURL: "https://example.com/cpp"},
		{ID: "col-py", Name: "python-notes", Title: "Python Notes"},
	}
	documents := map[string][]*docshelf.Document{
		"col-cpp": {
			{ID: "d1", CollectionID: "col-cpp", Slug: "basics/variables", Title: "Variables",
				Content: "# Variables\n\nA variable names a value.\n", WordCount: 5, Position: 0},
			{ID: "d2", CollectionID: "col-cpp", Slug: "templates", Title: "Templates",
				Content: "# Templates\n\nTemplates are compile-time.\n", WordCount: 4, Position: 1},
		},
		"col-py": {
			{ID: "d3", CollectionID: "col-py", Slug: "closures", Title: "Closures",
				Content: "# Closures\n\nClosures capture.\n", WordCount: 3, Position: 0},
		},
	}

	corpus, err := docshelf.BuildCorpus(context.Background(),
		&mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, _ docshelf.CollectionFilter) ([]*docshelf.Collection, error) {
				return collections, nil
			},
		},
		&mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter docshelf.DocumentFilter) ([]*docshelf.Document, error) {
				return documents[*filter.CollectionID], nil
			},
		},
	)
	require.NoError(t, err)
	return corpus
}

// newTestServer builds a Server over the test corpus with real renderers and
// a mock search service.
func newTestServer(t *testing.T, search docshelf.SearchService) *echoserver.Server {
	t.Helper()

	if search == nil {
		search = &mock.SearchService{
			SearchFn: func(_ context.Context, _, _ string, _ int) ([]*docshelf.SearchResult, error) {
				return nil, nil
			},
		}
	}

	return echoserver.New(&echoserver.Server{
		Corpus:    newTestCorpus(t),
		Renderers: render.NewRegistry(blackfriday.NewRenderer(), render.NewJSONRenderer()),
		Search:    search,
	})
}

func get(t *testing.T, server http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServer_Index(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestServer(t, nil), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="/cpp-notes">C++ Notes</a>`)
	assert.Contains(t, rec.Body.String(), `<a href="/python-notes">Python Notes</a>`)
	assert.Contains(t, rec.Body.String(), "2 documents")
}

func TestServer_CollectionPage(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestServer(t, nil), "/cpp-notes")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="/cpp-notes/basics/variables">Variables</a>`)
	assert.Contains(t, rec.Body.String(), `<a href="/cpp-notes/templates">Templates</a>`)
}

func TestServer_DocumentPage(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestServer(t, nil), "/cpp-notes/basics/variables")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Variables — C++ Notes</title>")
	assert.Contains(t, rec.Body.String(), "A variable names a value.")
}

func TestServer_NotFound(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, nil)

	assert.Equal(t, http.StatusNotFound, get(t, server, "/no-such-collection").Code)
	assert.Equal(t, http.StatusNotFound, get(t, server, "/cpp-notes/no/such/page").Code)
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestServer(t, nil), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Status    string `json:"status"`
		Documents int    `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload.Status)
	assert.Equal(t, 3, payload.Documents)
}

func TestServer_Sitemap(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestServer(t, nil), "/sitemap.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://example.com/cpp/basics/variables</loc>")
	assert.Contains(t, body, "<loc>https://example.com/cpp/templates</loc>")
	// python-notes has no base URL and stays out of the sitemap.
	assert.NotContains(t, body, "closures")
}

func TestServer_RateLimit(t *testing.T) {
	t.Parallel()

	server := echoserver.New(&echoserver.Server{
		Corpus:    newTestCorpus(t),
		Renderers: render.NewRegistry(render.NewJSONRenderer()),
		Search: &mock.SearchService{
			SearchFn: func(_ context.Context, _, _ string, _ int) ([]*docshelf.SearchResult, error) {
				return nil, nil
			},
		},
		RateLimit: 1,
		RateBurst: 1,
	})

	first := get(t, server, "/api/collections")
	require.Equal(t, http.StatusOK, first.Code)

	second := get(t, server, "/api/collections")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestServer_GracefulShutdown(t *testing.T) {
	t.Parallel()

	server := echoserver.New(&echoserver.Server{
		Addr:      "127.0.0.1:0",
		Corpus:    newTestCorpus(t),
		Renderers: render.NewRegistry(render.NewJSONRenderer()),
		Search: &mock.SearchService{
			SearchFn: func(_ context.Context, _, _ string, _ int) ([]*docshelf.SearchResult, error) {
				return nil, nil
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Start(ctx)
	}()

	cancel()
	require.NoError(t, <-done)
}
