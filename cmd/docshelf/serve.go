package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fwojciec/docshelf"
	docecho "github.com/fwojciec/docshelf/echo"
	"golang.org/x/time/rate"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	corpus, err := docshelf.BuildCorpus(deps.Ctx, deps.Collections, deps.Documents)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	// Seed the search pre-filter from the stored documents so a freshly
	// started server can rule queries out without hitting the index.
	if deps.Bloom != nil {
		for _, collection := range corpus.Collections() {
			deps.Bloom.Warm(corpus.Documents(collection.ID))
		}
	}

	server := docecho.New(&docecho.Server{
		Addr:      c.Addr,
		Corpus:    corpus,
		Renderers: deps.Renderers,
		Search:    deps.Search,
		Logger:    deps.Logger,
		RateLimit: rate.Limit(c.RateLimit),
		RateBurst: c.RateBurst,
	})

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(deps.Stdout, "Serving %d documents on %s\n", corpus.Len(), c.Addr)
	if err := server.Start(ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}
	return nil
}
