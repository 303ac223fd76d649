package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docshelf"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	format, err := docshelf.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	collection, doc, err := findDocument(deps, c.Name, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	renderer := deps.Renderers.Get(format)
	if renderer == nil {
		err := docshelf.Errorf(docshelf.ENOTIMPLEMENTED, "no renderer for format %q", c.Format)
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	out, err := renderer.RenderDocument(doc, docshelf.RenderOptions{
		Color:           !c.Plain && isTerminal(deps.Stdout),
		CollectionTitle: collection.DisplayTitle(),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, out)
	return nil
}

// findDocument resolves a collection/slug pair.
func findDocument(deps *Dependencies, name, slug string) (*docshelf.Collection, *docshelf.Document, error) {
	collection, err := findCollection(deps.Ctx, deps.Collections, name)
	if err != nil {
		return nil, nil, err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, docshelf.DocumentFilter{
		CollectionID: &collection.ID,
		Slug:         &slug,
	})
	if err != nil {
		return nil, nil, err
	}
	if len(docs) == 0 {
		return nil, nil, docshelf.Errorf(docshelf.ENOTFOUND, "document %q not found in %q", slug, name)
	}
	return collection, docs[0], nil
}

// isTerminal reports whether w writes to a character device.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
