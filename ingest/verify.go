package ingest

import (
	"context"
	"sort"

	"github.com/fwojciec/docshelf"
)

// VerifyResult reports how the index relates to the authored files.
type VerifyResult struct {
	// Clean is the number of documents whose stored content matches the
	// authored file byte for byte.
	Clean int

	// Changed lists file paths whose authored content no longer matches
	// the stored hash.
	Changed []string

	// Missing lists file paths that are indexed but gone from disk.
	Missing []string

	// Extra lists file paths present on disk but absent from the index.
	Extra []string
}

// OK reports whether the index agrees with the authored files.
func (r *VerifyResult) OK() bool {
	return len(r.Changed) == 0 && len(r.Missing) == 0 && len(r.Extra) == 0
}

// Verify re-reads the collection's authored files and compares their content
// hashes against the index. The authored files are the source of truth; the
// index is a derived cache that Verify checks for drift. Extracted documents
// live only in the index and are not checked.
func (im *Importer) Verify(ctx context.Context, collection *docshelf.Collection) (*VerifyResult, error) {
	files, err := im.Loader.LoadDir(ctx, collection.SourcePath, nil)
	if err != nil {
		return nil, err
	}

	docs, err := im.Documents.FindDocuments(ctx, docshelf.DocumentFilter{CollectionID: &collection.ID})
	if err != nil {
		return nil, err
	}
	byPath := make(map[string]*docshelf.Document, len(docs))
	for _, doc := range docs {
		// Extracted documents have no authored file to compare against.
		if doc.Origin == docshelf.OriginExtracted {
			continue
		}
		byPath[doc.FilePath] = doc
	}

	result := &VerifyResult{}
	for _, file := range files {
		doc, ok := byPath[file.Path]
		if !ok {
			result.Extra = append(result.Extra, file.Path)
			continue
		}
		delete(byPath, file.Path)

		parsed, err := im.Parser.Parse(file)
		if err != nil {
			result.Changed = append(result.Changed, file.Path)
			continue
		}
		if docshelf.HashContent(parsed.Content) != doc.ContentHash {
			result.Changed = append(result.Changed, file.Path)
			continue
		}
		result.Clean++
	}

	for path := range byPath {
		result.Missing = append(result.Missing, path)
	}
	sort.Strings(result.Missing)

	return result, nil
}
