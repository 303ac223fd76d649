package docshelf

import (
	"context"
	"regexp"
)

// SourceFile represents one authored markdown file discovered in a content
// directory. Raw holds the file bytes exactly as authored, frontmatter
// included.
type SourceFile struct {
	// Path is the file's location relative to the content directory root,
	// slash-separated.
	Path string

	// Raw is the unmodified file content.
	Raw []byte
}

// Loader discovers authored files in a content directory.
// Implementations hide the filesystem; paths are returned in lexical order
// so that documents without explicit positions have a stable ordering.
type Loader interface {
	// LoadDir returns the markdown files under dir, in lexical path order,
	// filtered by the path filter when one is given.
	// Returns EINVALID if dir contains no matching files.
	LoadDir(ctx context.Context, dir string, filter *PathFilter) ([]*SourceFile, error)

	// LoadConfig reads the optional shelf.yml collection configuration.
	// Returns ENOTFOUND if dir has no configuration file.
	LoadConfig(ctx context.Context, dir string) (*CollectionConfig, error)
}

// PathFilter specifies patterns for including/excluding file paths.
type PathFilter struct {
	// Include patterns - if set, only paths matching at least one pattern
	// are included.
	Include []*regexp.Regexp

	// Exclude patterns - paths matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// Match returns true if the path passes the filter.
// A nil filter passes everything.
func (f *PathFilter) Match(path string) bool {
	if f == nil {
		return true
	}

	// If include patterns exist, the path must match at least one
	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(path) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check exclude patterns
	for _, re := range f.Exclude {
		if re.MatchString(path) {
			return false
		}
	}

	return true
}
