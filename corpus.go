package docshelf

import (
	"context"
	"sort"
)

// Corpus is an immutable snapshot of every collection and its documents,
// built once at startup and read for the life of the process. The HTTP
// server works exclusively from a Corpus: content is authored ahead of
// time, loaded, and never mutated at runtime.
type Corpus struct {
	collections []*Collection
	documents   map[string][]*Document // collection ID → documents by position
	bySlug      map[string]map[string]*Document
	byName      map[string]*Collection
}

// BuildCorpus loads a snapshot of all collections and their documents,
// sorted by position. The returned Corpus does not observe later changes to
// the underlying services.
func BuildCorpus(ctx context.Context, collections CollectionService, documents DocumentService) (*Corpus, error) {
	all, err := collections.FindCollections(ctx, CollectionFilter{})
	if err != nil {
		return nil, err
	}

	c := &Corpus{
		documents: make(map[string][]*Document, len(all)),
		bySlug:    make(map[string]map[string]*Document, len(all)),
		byName:    make(map[string]*Collection, len(all)),
	}

	for _, collection := range all {
		docs, err := documents.FindDocuments(ctx, DocumentFilter{
			CollectionID: &collection.ID,
			SortBy:       SortByPosition,
		})
		if err != nil {
			return nil, err
		}

		c.collections = append(c.collections, collection)
		c.byName[collection.Name] = collection
		c.documents[collection.ID] = docs

		slugs := make(map[string]*Document, len(docs))
		for _, doc := range docs {
			slugs[doc.Slug] = doc
		}
		c.bySlug[collection.ID] = slugs
	}

	sort.Slice(c.collections, func(i, j int) bool {
		return c.collections[i].Name < c.collections[j].Name
	})

	return c, nil
}

// Collections returns all collections sorted by name.
func (c *Corpus) Collections() []*Collection {
	return c.collections
}

// CollectionByName returns a collection by name.
// Returns ENOTFOUND if no collection has the name.
func (c *Corpus) CollectionByName(name string) (*Collection, error) {
	collection, ok := c.byName[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "collection %q not found", name)
	}
	return collection, nil
}

// Documents returns the documents of a collection in position order.
func (c *Corpus) Documents(collectionID string) []*Document {
	return c.documents[collectionID]
}

// DocumentBySlug returns one document of a collection by slug.
// Returns ENOTFOUND if the collection has no document with the slug.
func (c *Corpus) DocumentBySlug(collectionID, slug string) (*Document, error) {
	doc, ok := c.bySlug[collectionID][slug]
	if !ok {
		return nil, Errorf(ENOTFOUND, "document %q not found", slug)
	}
	return doc, nil
}

// Len returns the total number of documents across all collections.
func (c *Corpus) Len() int {
	n := 0
	for _, docs := range c.documents {
		n += len(docs)
	}
	return n
}
