// Package markdown parses authored topic pages into documents and formats
// documents back into pages.
package markdown

import (
	"path"
	"strings"

	"github.com/fwojciec/docshelf"
	"gopkg.in/yaml.v3"
)

// Ensure Parser implements docshelf.DocumentParser at compile time.
var _ docshelf.DocumentParser = (*Parser)(nil)

// frontmatter holds the optional YAML metadata block at the top of a page.
type frontmatter struct {
	Title    string `yaml:"title,omitempty"`
	Position *int   `yaml:"position,omitempty"`
}

// Parser parses markdown topic pages with optional YAML frontmatter.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts a markdown source file into a document. The body after the
// frontmatter block becomes Content byte for byte. The title falls back from
// frontmatter to the first level-1 heading to the file stem. Position is -1
// when the frontmatter does not set one; the importer assigns positions by
// file order in that case.
func (p *Parser) Parse(file *docshelf.SourceFile) (*docshelf.Document, error) {
	if file == nil || file.Path == "" {
		return nil, docshelf.Errorf(docshelf.EINVALID, "source file path required")
	}

	meta, body, err := splitFrontmatter(string(file.Raw))
	if err != nil {
		return nil, docshelf.Errorf(docshelf.EINVALID, "invalid frontmatter in %s: %v", file.Path, err)
	}

	doc := &docshelf.Document{
		FilePath:  file.Path,
		Slug:      docshelf.SlugFromPath(file.Path),
		Content:   body,
		WordCount: docshelf.CountWords(body),
		Position:  -1,
	}

	if meta != nil {
		doc.Title = strings.TrimSpace(meta.Title)
		if meta.Position != nil {
			doc.Position = *meta.Position
		}
	}
	if doc.Title == "" {
		doc.Title = firstHeading(body)
	}
	if doc.Title == "" {
		doc.Title = titleFromStem(file.Path)
	}

	return doc, nil
}

// FormatDocument renders a document back to its on-disk page form with YAML
// frontmatter. Parsing the result yields the same title, position, and
// content.
func FormatDocument(doc *docshelf.Document) (string, error) {
	pos := doc.Position
	meta := frontmatter{Title: doc.Title, Position: &pos}

	data, err := yaml.Marshal(&meta)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(doc.Content)
	return b.String(), nil
}

// splitFrontmatter separates an optional leading frontmatter block from the
// page body. The block opens with "---" on the first line and closes with the
// next "---" line. One blank line after the closing delimiter is consumed so
// that formatted pages round-trip. An opening delimiter without a closing one
// makes the whole file the body.
func splitFrontmatter(raw string) (*frontmatter, string, error) {
	lines := strings.SplitAfter(raw, "\n")
	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return nil, raw, nil
	}

	for i := 1; i < len(lines); i++ {
		if !isDelimiter(lines[i]) {
			continue
		}

		var meta frontmatter
		block := strings.Join(lines[1:i], "")
		if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
			return nil, "", err
		}

		body := strings.Join(lines[i+1:], "")
		if strings.HasPrefix(body, "\r\n") {
			body = body[2:]
		} else if strings.HasPrefix(body, "\n") {
			body = body[1:]
		}
		return &meta, body, nil
	}

	return nil, raw, nil
}

// isDelimiter reports whether a line is a frontmatter delimiter, ignoring the
// line terminator.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, "\r\n") == "---"
}

// firstHeading returns the heading of the first level-1 section in the body,
// or "" when the body has none.
func firstHeading(body string) string {
	for _, s := range docshelf.SplitSections(body) {
		if s.Level == 1 {
			return s.Heading
		}
	}
	return ""
}

// titleFromStem derives a last-resort title from the file name.
// Example: getting-started.md → getting started
func titleFromStem(filePath string) string {
	stem := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	return strings.NewReplacer("-", " ", "_", " ").Replace(stem)
}
