package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
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

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "No documents in %q.\n", c.Name)
		return nil
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, docshelf.FormatDocuments(docs))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"POS", "SLUG", "TITLE", "WORDS", "MIN"})

	for _, doc := range docs {
		t.AppendRow(table.Row{doc.Position, doc.Slug, doc.Title, doc.WordCount, docshelf.ReadingTime(doc.WordCount)})
	}

	t.Render()
	return nil
}
