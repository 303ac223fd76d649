package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
)

// Run executes the verify command.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps.Ctx, deps.Collections, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	result, err := deps.Importer.Verify(deps.Ctx, collection)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	for _, path := range result.Changed {
		fmt.Fprintf(deps.Stdout, "changed: %s\n", path)
	}
	for _, path := range result.Missing {
		fmt.Fprintf(deps.Stdout, "missing: %s\n", path)
	}
	for _, path := range result.Extra {
		fmt.Fprintf(deps.Stdout, "extra:   %s\n", path)
	}

	if result.OK() {
		fmt.Fprintf(deps.Stdout, "%q is up to date (%d documents).\n", c.Name, result.Clean)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%q has drifted: %d clean, %d changed, %d missing, %d extra. Run \"docshelf add --force\" to reimport.\n",
		c.Name, result.Clean, len(result.Changed), len(result.Missing), len(result.Extra))
	return docshelf.Errorf(docshelf.ECONFLICT, "collection %q does not match its source files", c.Name)
}
