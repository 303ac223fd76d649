package ingest_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/ingest"
	"github.com/fwojciec/docshelf/markdown"
	"github.com/fwojciec/docshelf/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newImporter builds an Importer over in-memory mocks that behave like a
// fresh shelf: no existing collection, no existing documents, and recording
// of every create and index call.
func newImporter(t *testing.T, files []*docshelf.SourceFile) (*ingest.Importer, *importRecorder) {
	t.Helper()

	rec := &importRecorder{}

	return &ingest.Importer{
		Loader: &mock.Loader{
			LoadDirFn: func(_ context.Context, _ string, _ *docshelf.PathFilter) ([]*docshelf.SourceFile, error) {
				return files, nil
			},
			LoadConfigFn: func(_ context.Context, _ string) (*docshelf.CollectionConfig, error) {
				return nil, docshelf.Errorf(docshelf.ENOTFOUND, "no config")
			},
		},
		Parser: markdown.NewParser(),
		Collections: &mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, _ docshelf.CollectionFilter) ([]*docshelf.Collection, error) {
				return nil, nil
			},
			CreateCollectionFn: func(_ context.Context, collection *docshelf.Collection) error {
				collection.ID = "col-1"
				return nil
			},
		},
		Documents: &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ docshelf.DocumentFilter) ([]*docshelf.Document, error) {
				return rec.existing, nil
			},
			CreateDocumentFn: func(_ context.Context, doc *docshelf.Document) error {
				doc.ID = "doc-" + doc.Slug
				rec.created = append(rec.created, doc)
				return nil
			},
			UpdateDocumentFn: func(_ context.Context, id string, upd docshelf.DocumentUpdate) (*docshelf.Document, error) {
				rec.updated = append(rec.updated, id)
				doc := &docshelf.Document{ID: id, CollectionID: "col-1"}
				if upd.Title != nil {
					doc.Title = *upd.Title
				}
				if upd.Content != nil {
					doc.Content = *upd.Content
					doc.ContentHash = docshelf.HashContent(doc.Content)
				}
				if upd.Position != nil {
					doc.Position = *upd.Position
				}
				return doc, nil
			},
		},
		Search: &mock.SearchService{
			IndexDocumentFn: func(_ context.Context, doc *docshelf.Document) error {
				rec.indexed = append(rec.indexed, doc.Slug)
				return nil
			},
		},
	}, rec
}

type importRecorder struct {
	existing []*docshelf.Document
	created  []*docshelf.Document
	updated  []string
	indexed  []string
}

func TestImporter_ImportDir(t *testing.T) {
	t.Parallel()

	t.Run("imports files in lexical order", func(t *testing.T) {
		t.Parallel()

		importer, rec := newImporter(t, []*docshelf.SourceFile{
			{Path: "basics/variables.md", Raw: []byte("# Variables\n\nprose\n")},
			{Path: "templates.md", Raw: []byte("# Templates\n\nprose\n")},
		})
		collection := &docshelf.Collection{Name: "cpp-notes", SourcePath: "/notes/cpp"}

		result, err := importer.ImportDir(context.Background(), collection, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Saved)
		assert.Zero(t, result.Failed)
		require.Len(t, rec.created, 2)
		assert.Equal(t, "basics/variables", rec.created[0].Slug)
		assert.Equal(t, 0, rec.created[0].Position)
		assert.Equal(t, "templates", rec.created[1].Slug)
		assert.Equal(t, 1, rec.created[1].Position)
		assert.Equal(t, []string{"basics/variables", "templates"}, rec.indexed)
	})

	t.Run("frontmatter positions override file order", func(t *testing.T) {
		t.Parallel()

		importer, rec := newImporter(t, []*docshelf.SourceFile{
			{Path: "a.md", Raw: []byte("---\ntitle: A\nposition: 5\n---\n# A\n")},
			{Path: "b.md", Raw: []byte("---\ntitle: B\nposition: 2\n---\n# B\n")},
		})
		collection := &docshelf.Collection{Name: "cpp-notes", SourcePath: "/notes/cpp"}

		_, err := importer.ImportDir(context.Background(), collection, nil, nil)
		require.NoError(t, err)

		require.Len(t, rec.created, 2)
		assert.Equal(t, "b", rec.created[0].Slug)
		assert.Equal(t, "a", rec.created[1].Slug)
	})

	t.Run("skips documents with unchanged content", func(t *testing.T) {
		t.Parallel()

		content := "# Variables\n\nprose\n"
		importer, rec := newImporter(t, []*docshelf.SourceFile{
			{Path: "variables.md", Raw: []byte(content)},
		})
		rec.existing = []*docshelf.Document{{
			ID:          "doc-variables",
			Slug:        "variables",
			Title:       "Variables",
			ContentHash: docshelf.HashContent(content),
			Position:    0,
		}}
		collection := &docshelf.Collection{Name: "cpp-notes", SourcePath: "/notes/cpp"}

		result, err := importer.ImportDir(context.Background(), collection, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Skipped)
		assert.Empty(t, rec.created)
		assert.Empty(t, rec.updated)
		assert.Empty(t, rec.indexed)
	})

	t.Run("updates and reindexes changed documents", func(t *testing.T) {
		t.Parallel()

		importer, rec := newImporter(t, []*docshelf.SourceFile{
			{Path: "variables.md", Raw: []byte("# Variables\n\nnew prose\n")},
		})
		rec.existing = []*docshelf.Document{{
			ID:          "doc-variables",
			Slug:        "variables",
			Title:       "Variables",
			ContentHash: docshelf.HashContent("# Variables\n\nold prose\n"),
		}}
		collection := &docshelf.Collection{Name: "cpp-notes", SourcePath: "/notes/cpp"}

		result, err := importer.ImportDir(context.Background(), collection, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, []string{"doc-variables"}, rec.updated)
		require.Len(t, rec.indexed, 1)
	})

	t.Run("counts unparsable files as failed", func(t *testing.T) {
		t.Parallel()

		importer, rec := newImporter(t, []*docshelf.SourceFile{
			{Path: "bad.md", Raw: []byte("---\ntitle: [unclosed\n---\nbody\n")},
			{Path: "good.md", Raw: []byte("# Good\n")},
		})
		collection := &docshelf.Collection{Name: "cpp-notes", SourcePath: "/notes/cpp"}

		var failed []string
		progress := func(event ingest.ProgressEvent) {
			if event.Type == ingest.ProgressFailed {
				failed = append(failed, event.Path)
			}
		}

		result, err := importer.ImportDir(context.Background(), collection, nil, progress)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, []string{"bad.md"}, failed)
		require.Len(t, rec.created, 1)
		assert.Equal(t, "good", rec.created[0].Slug)
	})

	t.Run("reports progress events in order", func(t *testing.T) {
		t.Parallel()

		importer, _ := newImporter(t, []*docshelf.SourceFile{
			{Path: "a.md", Raw: []byte("# A\n")},
			{Path: "b.md", Raw: []byte("# B\n")},
		})
		collection := &docshelf.Collection{Name: "cpp-notes", SourcePath: "/notes/cpp"}

		var events []ingest.ProgressType
		progress := func(event ingest.ProgressEvent) {
			events = append(events, event.Type)
		}

		_, err := importer.ImportDir(context.Background(), collection, nil, progress)
		require.NoError(t, err)

		assert.Equal(t, []ingest.ProgressType{
			ingest.ProgressStarted,
			ingest.ProgressCompleted,
			ingest.ProgressCompleted,
			ingest.ProgressFinished,
		}, events)
	})

	t.Run("shelf config fills unset collection metadata", func(t *testing.T) {
		t.Parallel()

		importer, _ := newImporter(t, []*docshelf.SourceFile{
			{Path: "a.md", Raw: []byte("# A\n")},
		})
		importer.Loader = &mock.Loader{
			LoadDirFn: func(_ context.Context, _ string, _ *docshelf.PathFilter) ([]*docshelf.SourceFile, error) {
				return []*docshelf.SourceFile{{Path: "a.md", Raw: []byte("# A\n")}}, nil
			},
			LoadConfigFn: func(_ context.Context, _ string) (*docshelf.CollectionConfig, error) {
				return &docshelf.CollectionConfig{Title: "C++ Notes", BaseURL: "https://example.com/cpp"}, nil
			},
		}
		collection := &docshelf.Collection{Name: "cpp-notes", SourcePath: "/notes/cpp"}

		_, err := importer.ImportDir(context.Background(), collection, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "C++ Notes", collection.Title)
		assert.Equal(t, "https://example.com/cpp", collection.BaseURL)
	})

	t.Run("adopts an existing collection with the same name", func(t *testing.T) {
		t.Parallel()

		importer, _ := newImporter(t, []*docshelf.SourceFile{
			{Path: "a.md", Raw: []byte("# A\n")},
		})

		var updatedID string
		importer.Collections = &mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, _ docshelf.CollectionFilter) ([]*docshelf.Collection, error) {
				return []*docshelf.Collection{{ID: "col-existing", Name: "cpp-notes"}}, nil
			},
			UpdateCollectionFn: func(_ context.Context, id string, upd docshelf.CollectionUpdate) (*docshelf.Collection, error) {
				updatedID = id
				return &docshelf.Collection{ID: id, Name: "cpp-notes", SourcePath: *upd.SourcePath}, nil
			},
		}
		collection := &docshelf.Collection{Name: "cpp-notes", SourcePath: "/notes/cpp"}

		_, err := importer.ImportDir(context.Background(), collection, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "col-existing", updatedID)
		assert.Equal(t, "col-existing", collection.ID)
	})

	t.Run("rejects an invalid collection", func(t *testing.T) {
		t.Parallel()

		importer, _ := newImporter(t, nil)

		_, err := importer.ImportDir(context.Background(), &docshelf.Collection{}, nil, nil)
		require.Error(t, err)
		assert.Equal(t, docshelf.EINVALID, docshelf.ErrorCode(err))
	})
}
