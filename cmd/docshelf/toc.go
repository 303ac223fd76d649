package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	if c.Slug != "" {
		_, doc, err := findDocument(deps, c.Name, c.Slug)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
			return err
		}
		printOutline(deps, doc)
		return nil
	}

	collection, err := findCollection(deps.Ctx, deps.Collections, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, docshelf.DocumentFilter{
		CollectionID: &collection.ID,
		SortBy:       docshelf.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	for i, doc := range docs {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printOutline(deps, doc)
	}
	return nil
}

func printOutline(deps *Dependencies, doc *docshelf.Document) {
	fmt.Fprintf(deps.Stdout, "%s (%s)\n", doc.Title, doc.Slug)
	outline := docshelf.FormatOutline(docshelf.ExtractSections(doc.Content))
	if outline != "" {
		fmt.Fprintln(deps.Stdout, outline)
	}
}
