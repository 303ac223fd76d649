// Package etree provides sitemap.xml generation for exported and served
// collections.
package etree

import (
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/docshelf"
)

// sitemapNS is the sitemap protocol namespace.
const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Entry is one URL in a sitemap.
type Entry struct {
	Loc     string
	LastMod time.Time
}

// SitemapWriter serializes sitemap entries to sitemap.xml.
type SitemapWriter struct{}

// NewSitemapWriter creates a SitemapWriter.
func NewSitemapWriter() *SitemapWriter {
	return &SitemapWriter{}
}

// Write serializes the entries as a sitemap urlset.
// Returns EINVALID when an entry has no location.
func (w *SitemapWriter) Write(entries []Entry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNS)

	for _, entry := range entries {
		if entry.Loc == "" {
			return nil, docshelf.Errorf(docshelf.EINVALID, "sitemap entry location required")
		}

		el := urlset.CreateElement("url")
		el.CreateElement("loc").SetText(entry.Loc)
		if !entry.LastMod.IsZero() {
			el.CreateElement("lastmod").SetText(entry.LastMod.UTC().Format("2006-01-02"))
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// CollectionEntries builds sitemap entries for a collection's documents
// under its configured base URL. The suffix, typically ".html" for exports,
// is appended to each document slug.
// Returns EINVALID when the collection has no valid base URL.
func CollectionEntries(collection *docshelf.Collection, docs []*docshelf.Document, suffix string) ([]Entry, error) {
	base, err := url.Parse(collection.BaseURL)
	if err != nil || collection.BaseURL == "" || base.Host == "" {
		return nil, docshelf.Errorf(docshelf.EINVALID, "collection %q has no valid base URL", collection.Name)
	}

	entries := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		loc := base.JoinPath(strings.Split(doc.Slug+suffix, "/")...)
		entries = append(entries, Entry{Loc: loc.String(), LastMod: doc.ImportedAt})
	}
	return entries, nil
}
