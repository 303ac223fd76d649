package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/bloom"
	"github.com/fwojciec/docshelf/ingest"
	"github.com/fwojciec/docshelf/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	DB           *sqlite.DB
	Collections  docshelf.CollectionService
	Documents    docshelf.DocumentService
	Search       docshelf.SearchService

	// Bloom is the filter-screened search service Search wraps. Commands
	// that only read warm its filter from stored documents so the
	// pre-filter can rule queries out.
	Bloom *bloom.SearchService
	Loader       docshelf.Loader
	Renderers    docshelf.RendererRegistry
	Importer     *ingest.Importer
	HTMLImporter *ingest.HTMLImporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Add        AddCmd        `cmd:"" help:"Import a content directory as a collection"`
	List       ListCmd       `cmd:"" help:"List all collections"`
	Docs       DocsCmd       `cmd:"" help:"List documents in a collection"`
	Show       ShowCmd       `cmd:"" help:"Render one document"`
	Toc        TocCmd        `cmd:"" help:"Show the section outline"`
	Search     SearchCmd     `cmd:"" help:"Full-text search over a collection"`
	Verify     VerifyCmd     `cmd:"" help:"Check the index against the authored files"`
	Export     ExportCmd     `cmd:"" help:"Export a collection as a static site"`
	Delete     DeleteCmd     `cmd:"" help:"Delete a collection and its documents"`
	ImportHTML ImportHTMLCmd `cmd:"" name:"import-html" help:"Import a local HTML reference page"`
	Serve      ServeCmd      `cmd:"" help:"Serve the corpus over HTTP"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name        string   `arg:"" help:"Collection name"`
	Dir         string   `arg:"" type:"path" help:"Content directory"`
	Preview     bool     `short:"p" help:"List files without importing"`
	Force       bool     `short:"f" help:"Replace an existing collection"`
	Filter      []string `short:"F" name:"filter" help:"Include paths matching regex (repeatable)"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent parse limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name string `arg:"" help:"Collection name"`
	Full bool   `help:"Show full document content"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name   string `arg:"" help:"Collection name"`
	Slug   string `arg:"" help:"Document slug"`
	Format string `default:"term" enum:"term,markdown,html,json" help:"Output format"`
	Plain  bool   `help:"Disable color output"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	Name string `arg:"" help:"Collection name"`
	Slug string `arg:"" optional:"" help:"Document slug (whole collection when omitted)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Query string `arg:"" help:"Search query"`
	Limit int    `default:"10" help:"Maximum number of results"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	Name string `arg:"" help:"Collection name"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name   string `arg:"" help:"Collection name"`
	Dir    string `arg:"" type:"path" help:"Output directory"`
	Format string `default:"html" enum:"html,markdown" help:"Export format"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Force bool   `help:"Confirm deletion"`
}

// ImportHTMLCmd is the "import-html" subcommand.
type ImportHTMLCmd struct {
	Name string `arg:"" help:"Collection name"`
	File string `arg:"" type:"path" help:"Local HTML file"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string  `default:":8080" help:"Listen address"`
	RateLimit float64 `default:"10" help:"Requests per second per client IP (0 disables)"`
	RateBurst int     `default:"20" help:"Burst size per client IP"`
}
