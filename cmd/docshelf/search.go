package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps.Ctx, deps.Collections, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	// The term filter starts empty in a fresh process; seed it with the
	// collection's documents so ruled-out queries skip the index.
	if deps.Bloom != nil {
		docs, err := deps.Documents.FindDocuments(deps.Ctx, docshelf.DocumentFilter{CollectionID: &collection.ID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
			return err
		}
		deps.Bloom.Warm(docs)
	}

	results, err := deps.Search.Search(deps.Ctx, collection.ID, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q in %q.\n", c.Query, c.Name)
		return nil
	}

	for i, r := range results {
		heading := r.Heading
		if heading == "" {
			heading = r.DocumentTitle
		}
		ref := r.DocumentSlug
		if r.Anchor != "" {
			ref += "#" + r.Anchor
		}
		fmt.Fprintf(deps.Stdout, "%d. %s > %s (%s)\n", i+1, r.DocumentTitle, heading, ref)
		if r.Snippet != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", r.Snippet)
		}
	}
	return nil
}
