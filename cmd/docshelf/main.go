package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/blackfriday"
	"github.com/fwojciec/docshelf/bloom"
	"github.com/fwojciec/docshelf/chroma"
	"github.com/fwojciec/docshelf/fs"
	"github.com/fwojciec/docshelf/goquery"
	"github.com/fwojciec/docshelf/htmltomarkdown"
	"github.com/fwojciec/docshelf/ingest"
	"github.com/fwojciec/docshelf/markdown"
	"github.com/fwojciec/docshelf/readability"
	"github.com/fwojciec/docshelf/render"
	slogdec "github.com/fwojciec/docshelf/slog"
	"github.com/fwojciec/docshelf/sqlite"
	"github.com/fwojciec/docshelf/trafilatura"
	"github.com/spf13/afero"
)

// Bloom filter sizing: expected distinct terms per collection and accepted
// false positive rate.
const (
	filterTerms  = 50000
	filterFPRate = 0.01
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CollectionService docshelf.CollectionService
	DocumentService   docshelf.DocumentService
	SearchService     docshelf.SearchService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docshelf"),
		kong.Description("A local reference-documentation shelf."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docshelf --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSHELF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.CollectionService = sqlite.NewCollectionService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	bloomSearch := bloom.NewSearchService(sqlite.NewSearchService(m.DB), bloom.NewTermFilter(filterTerms, filterFPRate))
	m.SearchService = slogdec.NewLoggingSearchService(bloomSearch, logger)

	deps.Bloom = bloomSearch
	deps.DB = m.DB
	deps.Collections = m.CollectionService
	deps.Documents = m.DocumentService
	deps.Search = m.SearchService
	deps.Loader = fs.NewLoader(afero.NewOsFs())
	deps.Renderers = slogdec.NewLoggingRegistry(render.NewRegistry(
		chroma.NewRenderer(),
		blackfriday.NewRenderer(),
		render.NewMarkdownRenderer(),
		render.NewJSONRenderer(),
	), logger)

	deps.Importer = &ingest.Importer{
		Loader:      deps.Loader,
		Parser:      markdown.NewParser(),
		Collections: deps.Collections,
		Documents:   deps.Documents,
		Search:      deps.Search,
		Concurrency: cli.Add.Concurrency,
	}

	if cmd == "import-html" {
		deps.HTMLImporter = &ingest.HTMLImporter{
			Extractors: []docshelf.Extractor{
				trafilatura.NewExtractor(),
				readability.NewExtractor(),
				goquery.NewExtractor(),
			},
			Converter: htmltomarkdown.NewConverter(),
			Documents: deps.Documents,
			Search:    deps.Search,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSHELF_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docshelf.db"
	}
	dir := filepath.Join(home, ".docshelf")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docshelf.db")
}

// findCollection resolves a collection by name.
func findCollection(ctx context.Context, svc docshelf.CollectionService, name string) (*docshelf.Collection, error) {
	collections, err := svc.FindCollections(ctx, docshelf.CollectionFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if len(collections) == 0 {
		return nil, docshelf.Errorf(docshelf.ENOTFOUND, "collection %q not found", name)
	}
	return collections[0], nil
}
