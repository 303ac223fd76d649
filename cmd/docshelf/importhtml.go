package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docshelf"
)

// Run executes the import-html command.
func (c *ImportHTMLCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps.Ctx, deps.Collections, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	rawHTML, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: reading %s: %s\n", c.File, err)
		return docshelf.Errorf(docshelf.EINVALID, "reading %s: %s", c.File, err)
	}

	name := strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File)) + ".md"
	doc, err := deps.HTMLImporter.Import(deps.Ctx, collection, name, string(rawHTML))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %q as %s (%d words)\n", doc.Title, doc.Slug, doc.WordCount)
	return nil
}
