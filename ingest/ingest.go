// Package ingest orchestrates importing authored content directories into
// the shelf: loading, parsing, storage, and search indexing.
package ingest

import (
	"context"
	"fmt"
	"sort"

	"github.com/fwojciec/docshelf"
	"golang.org/x/sync/errgroup"
)

// Importer coordinates the import of a content directory.
type Importer struct {
	Loader      docshelf.Loader
	Parser      docshelf.DocumentParser
	Collections docshelf.CollectionService
	Documents   docshelf.DocumentService
	Search      docshelf.SearchService
	Concurrency int
}

// Result holds the outcome of an import operation.
type Result struct {
	Saved   int
	Updated int
	Skipped int
	Failed  int
	Words   int
}

// ProgressEvent reports progress during an import operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// parseResult holds the outcome of parsing a single source file.
type parseResult struct {
	index int
	path  string
	doc   *docshelf.Document
	err   error
}

// ImportDir imports the collection's source directory. Files are parsed
// concurrently; documents are written serially in position order so that
// reimports observe a stable ordering. Documents whose content hash is
// unchanged are skipped. The progress callback, if provided, receives events
// as the import proceeds.
func (im *Importer) ImportDir(ctx context.Context, collection *docshelf.Collection, filter *docshelf.PathFilter, progress ProgressFunc) (*Result, error) {
	if err := collection.Validate(); err != nil {
		return nil, err
	}

	// Optional shelf.yml fills in metadata the caller did not set.
	if config, err := im.Loader.LoadConfig(ctx, collection.SourcePath); err == nil {
		if collection.Title == "" {
			collection.Title = config.Title
		}
		if collection.Description == "" {
			collection.Description = config.Description
		}
		if collection.BaseURL == "" {
			collection.BaseURL = config.BaseURL
		}
	} else if docshelf.ErrorCode(err) != docshelf.ENOTFOUND {
		return nil, fmt.Errorf("loading collection config: %w", err)
	}

	files, err := im.Loader.LoadDir(ctx, collection.SourcePath, filter)
	if err != nil {
		return nil, err
	}

	if err := im.ensureCollection(ctx, collection); err != nil {
		return nil, err
	}

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// Parse concurrently, collect everything, then write serially: SQLite
	// has a single writer and position order must be stable.
	results := make([]parseResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = parseResult{index: i, path: file.Path, err: err}
				return err
			}
			doc, err := im.Parser.Parse(file)
			results[i] = parseResult{index: i, path: file.Path, doc: doc, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Lexical file order fills in positions the frontmatter left unset.
	for i := range results {
		if results[i].doc != nil && results[i].doc.Position < 0 {
			results[i].doc.Position = i
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].doc == nil || results[j].doc == nil {
			return results[i].index < results[j].index
		}
		return results[i].doc.Position < results[j].doc.Position
	})

	existing, err := im.existingBySlug(ctx, collection.ID)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, parsed := range results {
		if parsed.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: result.done(),
					Total:     total,
					Path:      parsed.path,
					Error:     parsed.err,
				})
			}
			continue
		}

		if err := im.saveDocument(ctx, collection, existing, parsed.doc, result); err != nil {
			return nil, fmt.Errorf("saving %s: %w", parsed.path, err)
		}
		result.Words += parsed.doc.WordCount
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: result.done(),
				Total:     total,
				Path:      parsed.path,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: result.done(), Total: total})
	}
	return result, nil
}

// done returns the number of files processed so far.
func (r *Result) done() int {
	return r.Saved + r.Updated + r.Skipped + r.Failed
}

// ensureCollection creates the collection or adopts an existing one with the
// same name, refreshing its source path.
func (im *Importer) ensureCollection(ctx context.Context, collection *docshelf.Collection) error {
	found, err := im.Collections.FindCollections(ctx, docshelf.CollectionFilter{Name: &collection.Name})
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return im.Collections.CreateCollection(ctx, collection)
	}

	updated, err := im.Collections.UpdateCollection(ctx, found[0].ID, docshelf.CollectionUpdate{
		Title:       &collection.Title,
		Description: &collection.Description,
		SourcePath:  &collection.SourcePath,
		BaseURL:     &collection.BaseURL,
	})
	if err != nil {
		return err
	}
	*collection = *updated
	return nil
}

// existingBySlug returns the collection's current documents keyed by slug.
func (im *Importer) existingBySlug(ctx context.Context, collectionID string) (map[string]*docshelf.Document, error) {
	docs, err := im.Documents.FindDocuments(ctx, docshelf.DocumentFilter{CollectionID: &collectionID})
	if err != nil {
		return nil, err
	}
	bySlug := make(map[string]*docshelf.Document, len(docs))
	for _, doc := range docs {
		bySlug[doc.Slug] = doc
	}
	return bySlug, nil
}

// saveDocument creates, updates, or skips one parsed document.
func (im *Importer) saveDocument(ctx context.Context, collection *docshelf.Collection, existing map[string]*docshelf.Document, doc *docshelf.Document, result *Result) error {
	doc.CollectionID = collection.ID
	doc.ContentHash = docshelf.HashContent(doc.Content)

	prev, ok := existing[doc.Slug]
	if !ok {
		if err := im.Documents.CreateDocument(ctx, doc); err != nil {
			return err
		}
		result.Saved++
		return im.Search.IndexDocument(ctx, doc)
	}

	if prev.ContentHash == doc.ContentHash && prev.Position == doc.Position && prev.Title == doc.Title {
		result.Skipped++
		return nil
	}

	updated, err := im.Documents.UpdateDocument(ctx, prev.ID, docshelf.DocumentUpdate{
		Title:    &doc.Title,
		Content:  &doc.Content,
		Position: &doc.Position,
	})
	if err != nil {
		return err
	}
	*doc = *updated
	result.Updated++
	return im.Search.IndexDocument(ctx, doc)
}
