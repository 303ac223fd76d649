package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/ingest"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Compile filters early so bad patterns fail before any work happens.
	var filter *docshelf.PathFilter
	if len(c.Filter) > 0 {
		filter = &docshelf.PathFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			filter.Include = append(filter.Include, re)
		}
	}

	// Preview mode: show files without importing
	if c.Preview {
		files, err := deps.Loader.LoadDir(deps.Ctx, c.Dir, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
			return err
		}
		for _, file := range files {
			fmt.Fprintln(deps.Stdout, file.Path)
		}
		return nil
	}

	// Force mode: delete existing collection first
	if c.Force {
		existing, err := deps.Collections.FindCollections(deps.Ctx, docshelf.CollectionFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Collections.DeleteCollection(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
				return err
			}
		}
	}

	collection := &docshelf.Collection{
		Name:       c.Name,
		SourcePath: c.Dir,
	}

	if c.Concurrency > 0 {
		deps.Importer.Concurrency = c.Concurrency
	}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d files\n", event.Total)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := deps.Importer.ImportDir(deps.Ctx, collection, filter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added collection %q (%s)\n", c.Name, collection.ID)
	fmt.Fprintf(deps.Stdout, "  Saved %d, updated %d, skipped %d, failed %d (%d words)\n",
		result.Saved, result.Updated, result.Skipped, result.Failed, result.Words)

	return nil
}
