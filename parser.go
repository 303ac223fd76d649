package docshelf

// DocumentParser parses an authored source file into a document.
type DocumentParser interface {
	// Parse converts a single source file into a document. The returned
	// document carries no ID or collection ID; the importer assigns those
	// when it persists the document.
	// Returns EINVALID if the file's frontmatter cannot be parsed.
	Parse(file *SourceFile) (*Document, error)
}
