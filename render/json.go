package render

import (
	"encoding/json"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.Renderer = (*JSONRenderer)(nil)

// JSONRenderer emits a document as indented JSON: metadata plus the derived
// section structure. Content appears twice, once verbatim and once split
// into sections, so consumers can choose either representation.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// jsonDocument is the serialized shape of a rendered document.
type jsonDocument struct {
	Slug      string             `json:"slug"`
	Title     string             `json:"title"`
	FilePath  string             `json:"filePath,omitempty"`
	WordCount int                `json:"wordCount"`
	Content   string             `json:"content"`
	Sections  []docshelf.Section `json:"sections"`
}

// RenderDocument renders the document as JSON.
func (r *JSONRenderer) RenderDocument(doc *docshelf.Document, _ docshelf.RenderOptions) (string, error) {
	if doc == nil {
		return "", docshelf.Errorf(docshelf.EINVALID, "document required")
	}

	out, err := json.MarshalIndent(jsonDocument{
		Slug:      doc.Slug,
		Title:     doc.Title,
		FilePath:  doc.FilePath,
		WordCount: doc.WordCount,
		Content:   doc.Content,
		Sections:  doc.Sections(),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

// Format returns the JSON format.
func (r *JSONRenderer) Format() docshelf.Format {
	return docshelf.FormatJSON
}
