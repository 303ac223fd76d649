package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	collections, err := deps.Collections.FindCollections(deps.Ctx, docshelf.CollectionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintln(deps.Stdout, "No collections found. Use 'docshelf add' to create one.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"NAME", "TITLE", "DOCS", "WORDS", "SOURCE"})

	for _, collection := range collections {
		docs, err := deps.Documents.FindDocuments(deps.Ctx, docshelf.DocumentFilter{CollectionID: &collection.ID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
			return err
		}

		words := 0
		for _, doc := range docs {
			words += doc.WordCount
		}

		t.AppendRow(table.Row{collection.Name, collection.DisplayTitle(), len(docs), words, collection.SourcePath})
	}

	t.Render()
	return nil
}
