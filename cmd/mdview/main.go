package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/blackfriday"
	"github.com/fwojciec/docshelf/chroma"
	"github.com/fwojciec/docshelf/markdown"
	"github.com/fwojciec/docshelf/render"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong. mdview is a
// single-command viewer, so the arguments live at the top level.
type CLI struct {
	File   string `arg:"" type:"path" help:"Markdown file to render"`
	Format string `default:"term" enum:"term,markdown,html,json" help:"Output format"`
	Plain  bool   `help:"Disable color output"`
	Toc    bool   `help:"Print the section outline instead of the document"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdview"),
		kong.Description("Render a markdown topic page to the terminal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no file provided")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	format, err := docshelf.ParseFormat(cli.Format)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(cli.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cli.File, err)
	}

	doc, err := markdown.NewParser().Parse(&docshelf.SourceFile{
		Path: filepath.ToSlash(filepath.Base(cli.File)),
		Raw:  raw,
	})
	if err != nil {
		return err
	}

	if cli.Toc {
		outline := docshelf.FormatOutline(docshelf.ExtractSections(doc.Content))
		if outline != "" {
			fmt.Fprintln(stdout, outline)
		}
		return nil
	}

	registry := render.NewRegistry(
		chroma.NewRenderer(),
		blackfriday.NewRenderer(),
		render.NewMarkdownRenderer(),
		render.NewJSONRenderer(),
	)
	renderer := registry.Get(format)
	if renderer == nil {
		return docshelf.Errorf(docshelf.ENOTIMPLEMENTED, "no renderer for format %q", cli.Format)
	}

	out, err := renderer.RenderDocument(doc, docshelf.RenderOptions{
		Color: !cli.Plain && isTerminal(stdout),
	})
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, out)
	return nil
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
