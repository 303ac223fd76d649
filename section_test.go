package docshelf_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docshelf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSections(t *testing.T) {
	t.Parallel()

	t.Run("extracts H1 heading", func(t *testing.T) {
		t.Parallel()

		markdown := "# Introduction\n\nSome content here."

		sections := docshelf.ExtractSections(markdown)

		assert.Len(t, sections, 1)
		assert.Equal(t, 1, sections[0].Level)
		assert.Equal(t, "Introduction", sections[0].Heading)
		assert.Equal(t, "introduction", sections[0].Anchor)
	})

	t.Run("extracts H2 through H6 headings", func(t *testing.T) {
		t.Parallel()

		markdown := `# H1 Title
## H2 Title
### H3 Title
#### H4 Title
##### H5 Title
###### H6 Title`

		sections := docshelf.ExtractSections(markdown)

		assert.Len(t, sections, 6)
		assert.Equal(t, 1, sections[0].Level)
		assert.Equal(t, 2, sections[1].Level)
		assert.Equal(t, 3, sections[2].Level)
		assert.Equal(t, 4, sections[3].Level)
		assert.Equal(t, 5, sections[4].Level)
		assert.Equal(t, 6, sections[5].Level)
	})

	t.Run("generates URL-safe anchors", func(t *testing.T) {
		t.Parallel()

		markdown := "# Getting Started With Go"

		sections := docshelf.ExtractSections(markdown)

		assert.Len(t, sections, 1)
		assert.Equal(t, "getting-started-with-go", sections[0].Anchor)
	})

	t.Run("handles duplicate headings with numeric suffixes", func(t *testing.T) {
		t.Parallel()

		markdown := `# Example
## Example
### Example`

		sections := docshelf.ExtractSections(markdown)

		assert.Len(t, sections, 3)
		assert.Equal(t, "example", sections[0].Anchor)
		assert.Equal(t, "example-1", sections[1].Anchor)
		assert.Equal(t, "example-2", sections[2].Anchor)
	})

	t.Run("returns empty slice for empty markdown", func(t *testing.T) {
		t.Parallel()

		sections := docshelf.ExtractSections("")

		assert.Empty(t, sections)
	})

	t.Run("returns empty slice for markdown without headings", func(t *testing.T) {
		t.Parallel()

		markdown := "Just some text\n\nWith paragraphs."

		sections := docshelf.ExtractSections(markdown)

		assert.Empty(t, sections)
	})

	t.Run("strips special characters from anchors", func(t *testing.T) {
		t.Parallel()

		markdown := "# API Reference (v2.0)"

		sections := docshelf.ExtractSections(markdown)

		assert.Len(t, sections, 1)
		assert.Equal(t, "api-reference-v20", sections[0].Anchor)
	})

	t.Run("ignores code blocks with hash symbols", func(t *testing.T) {
		t.Parallel()

		markdown := `# Real Heading

` + "```bash\n# This is a comment\necho hello\n```" + `

## Another Real Heading`

		sections := docshelf.ExtractSections(markdown)

		assert.Len(t, sections, 2)
		assert.Equal(t, "Real Heading", sections[0].Heading)
		assert.Equal(t, "Another Real Heading", sections[1].Heading)
	})

	t.Run("omits bodies in the outline", func(t *testing.T) {
		t.Parallel()

		markdown := "# Title\n\nBody text.\n"

		sections := docshelf.ExtractSections(markdown)

		require.Len(t, sections, 1)
		assert.Empty(t, sections[0].Body)
		assert.Empty(t, sections[0].Examples)
	})
}

func TestSplitSections(t *testing.T) {
	t.Parallel()

	t.Run("keeps section bodies verbatim and in order", func(t *testing.T) {
		t.Parallel()

		markdown := "# Variables\n\nDeclaring things.\n\n## Scope\n\nWhere they live.\n"

		sections := docshelf.SplitSections(markdown)

		require.Len(t, sections, 2)
		assert.Equal(t, "Variables", sections[0].Heading)
		assert.Equal(t, "# Variables\n\nDeclaring things.\n\n", sections[0].Body)
		assert.Equal(t, "Scope", sections[1].Heading)
		assert.Equal(t, "## Scope\n\nWhere they live.\n", sections[1].Body)
	})

	t.Run("puts text before the first heading into a level-0 preamble", func(t *testing.T) {
		t.Parallel()

		markdown := "A short introduction.\n\n# First Topic\n\nDetails.\n"

		sections := docshelf.SplitSections(markdown)

		require.Len(t, sections, 2)
		assert.Equal(t, 0, sections[0].Level)
		assert.Empty(t, sections[0].Heading)
		assert.Empty(t, sections[0].Anchor)
		assert.Equal(t, "A short introduction.\n\n", sections[0].Body)
	})

	t.Run("yields one preamble section for heading-free markdown", func(t *testing.T) {
		t.Parallel()

		markdown := "Just some text\n\nWith paragraphs."

		sections := docshelf.SplitSections(markdown)

		require.Len(t, sections, 1)
		assert.Equal(t, 0, sections[0].Level)
		assert.Equal(t, markdown, sections[0].Body)
	})

	t.Run("attaches code examples to their sections", func(t *testing.T) {
		t.Parallel()

		markdown := "# Loops\n\n```python\nfor i in range(3):\n    print(i)\n```\n\n# Functions\n\nNo code here.\n"

		sections := docshelf.SplitSections(markdown)

		require.Len(t, sections, 2)
		require.Len(t, sections[0].Examples, 1)
		assert.Equal(t, "python", sections[0].Examples[0].Language)
		assert.Equal(t, "for i in range(3):\n    print(i)\n", sections[0].Examples[0].Code)
		assert.Empty(t, sections[1].Examples)
	})

	t.Run("does not split on headings inside fenced code", func(t *testing.T) {
		t.Parallel()

		markdown := "# Shell\n\n```bash\n# not a heading\necho hi\n```\n"

		sections := docshelf.SplitSections(markdown)

		require.Len(t, sections, 1)
		assert.Equal(t, "Shell", sections[0].Heading)
	})

	t.Run("returns nil for empty markdown", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, docshelf.SplitSections(""))
	})

	t.Run("reassembles the document exactly", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"# One\n\ntext\n\n## Two\n\nmore\n",
			"preamble\n# H\nbody",
			"# A\n```go\nfunc main() {}\n```\n# B\n",
			"no headings at all\n",
			"# CRLF\r\nline one\r\n\r\n## Next\r\nline two\r\n",
			"# Unclosed\n```python\nprint('still code')\n",
			"~~~\nfenced with tildes\n~~~\n# After\n",
		}

		for _, input := range inputs {
			sections := docshelf.SplitSections(input)

			var b strings.Builder
			for _, s := range sections {
				b.WriteString(s.Body)
			}
			assert.Equal(t, input, b.String())
		}
	})

	t.Run("handles CRLF heading lines", func(t *testing.T) {
		t.Parallel()

		markdown := "# Title\r\n\r\nBody.\r\n"

		sections := docshelf.SplitSections(markdown)

		require.Len(t, sections, 1)
		assert.Equal(t, "Title", sections[0].Heading)
	})
}
