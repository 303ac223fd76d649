package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docshelf.Errorf(docshelf.EINVALID, "use --force to confirm deletion")
	}

	collection, err := findCollection(deps.Ctx, deps.Collections, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	if err := deps.Collections.DeleteCollection(deps.Ctx, collection.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted collection %q\n", collection.Name)
	return nil
}
