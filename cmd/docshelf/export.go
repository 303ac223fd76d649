package main

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/etree"
	"github.com/fwojciec/docshelf/fs"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; }
li { margin: 0.25rem 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<ol>
{{range .Docs}}<li><a href="{{.Href}}">{{.Title}}</a></li>
{{end}}</ol>
</body>
</html>
`))

type indexEntry struct {
	Href  string
	Title string
}

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps.Ctx, deps.Collections, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, docshelf.DocumentFilter{
		CollectionID: &collection.ID,
		SortBy:       docshelf.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}
	if len(docs) == 0 {
		err := docshelf.Errorf(docshelf.EINVALID, "collection %q has no documents to export", c.Name)
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	format := docshelf.FormatHTML
	suffix := ".html"
	if c.Format == "markdown" {
		format = docshelf.FormatMarkdown
		suffix = ".md"
	}
	renderer := deps.Renderers.Get(format)
	if renderer == nil {
		err := docshelf.Errorf(docshelf.EINTERNAL, "no renderer registered for format %q", format)
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	store := fs.NewExportStore(filepath.Dir(c.Dir), filepath.Base(c.Dir))
	if err := c.export(deps, store, collection, docs, renderer, suffix); err != nil {
		if abortErr := store.Abort(); abortErr != nil {
			deps.Logger.Error("abort export", "error", abortErr)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents from %q to %s.\n", len(docs), c.Name, c.Dir)
	return nil
}

func (c *ExportCmd) export(deps *Dependencies, store docshelf.ExportStore, collection *docshelf.Collection, docs []*docshelf.Document, renderer docshelf.Renderer, suffix string) error {
	title := collection.Title
	if title == "" {
		title = collection.Name
	}
	opts := docshelf.RenderOptions{CollectionTitle: title}

	for _, doc := range docs {
		rendered, err := renderer.RenderDocument(doc, opts)
		if err != nil {
			return err
		}
		file := &docshelf.ExportFile{Path: doc.Slug + suffix, Data: []byte(rendered)}
		if err := store.Save(deps.Ctx, file); err != nil {
			return err
		}
	}

	if suffix == ".html" {
		index, err := renderIndex(collection, docs, suffix)
		if err != nil {
			return err
		}
		if err := store.Save(deps.Ctx, &docshelf.ExportFile{Path: "index.html", Data: index}); err != nil {
			return err
		}
	}

	if collection.BaseURL != "" {
		entries, err := etree.CollectionEntries(collection, docs, suffix)
		if err != nil {
			return err
		}
		sitemap, err := etree.NewSitemapWriter().Write(entries)
		if err != nil {
			return err
		}
		if err := store.Save(deps.Ctx, &docshelf.ExportFile{Path: "sitemap.xml", Data: sitemap}); err != nil {
			return err
		}
	}

	return nil
}

func renderIndex(collection *docshelf.Collection, docs []*docshelf.Document, suffix string) ([]byte, error) {
	title := collection.Title
	if title == "" {
		title = collection.Name
	}
	entries := make([]indexEntry, 0, len(docs))
	for _, doc := range docs {
		entryTitle := doc.Title
		if entryTitle == "" {
			entryTitle = doc.Slug
		}
		entries = append(entries, indexEntry{Href: doc.Slug + suffix, Title: entryTitle})
	}

	var b bytes.Buffer
	err := indexTemplate.Execute(&b, struct {
		Title       string
		Description string
		Docs        []indexEntry
	}{Title: title, Description: collection.Description, Docs: entries})
	if err != nil {
		return nil, docshelf.Errorf(docshelf.EINTERNAL, "render index: %s", err)
	}
	return b.Bytes(), nil
}
