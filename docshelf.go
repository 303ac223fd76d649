// Package docshelf provides a local reference-documentation shelf.
// It organizes authored topic pages (markdown with YAML frontmatter) into
// collections, indexes them for listing and full-text search, renders them
// to the terminal or HTML, and serves the corpus over HTTP as an immutable
// snapshot.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, chroma/, echo/).
package docshelf
