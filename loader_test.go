package docshelf_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/docshelf"
	"github.com/stretchr/testify/assert"
)

func TestPathFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()

		var f *docshelf.PathFilter

		assert.True(t, f.Match("anything/at/all.md"))
	})

	t.Run("empty filter matches everything", func(t *testing.T) {
		t.Parallel()

		f := &docshelf.PathFilter{}

		assert.True(t, f.Match("guide/intro.md"))
	})

	t.Run("include patterns restrict matches", func(t *testing.T) {
		t.Parallel()

		f := &docshelf.PathFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`^guide/`)},
		}

		assert.True(t, f.Match("guide/intro.md"))
		assert.False(t, f.Match("reference/api.md"))
	})

	t.Run("any include pattern suffices", func(t *testing.T) {
		t.Parallel()

		f := &docshelf.PathFilter{
			Include: []*regexp.Regexp{
				regexp.MustCompile(`^guide/`),
				regexp.MustCompile(`^reference/`),
			},
		}

		assert.True(t, f.Match("guide/intro.md"))
		assert.True(t, f.Match("reference/api.md"))
		assert.False(t, f.Match("blog/post.md"))
	})

	t.Run("exclude patterns trump includes", func(t *testing.T) {
		t.Parallel()

		f := &docshelf.PathFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`^guide/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`draft`)},
		}

		assert.True(t, f.Match("guide/intro.md"))
		assert.False(t, f.Match("guide/draft-new.md"))
	})

	t.Run("exclude alone filters from everything", func(t *testing.T) {
		t.Parallel()

		f := &docshelf.PathFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`\.txt$`)},
		}

		assert.True(t, f.Match("guide/intro.md"))
		assert.False(t, f.Match("guide/notes.txt"))
	})
}
