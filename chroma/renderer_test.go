package chroma_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = "# Variables\n\nA variable names a value.\n\n```go\nx := 42\n```\n\nDone.\n"

func TestRenderer_PlainOutputIsVerbatim(t *testing.T) {
	t.Parallel()

	renderer := chroma.NewRenderer()
	doc := &docshelf.Document{Title: "Variables", Content: page}

	out, err := renderer.RenderDocument(doc, docshelf.RenderOptions{Color: false})
	require.NoError(t, err)
	assert.Equal(t, page, out)
}

func TestRenderer_ColorOutput(t *testing.T) {
	// Mutates the package-level color.NoColor flag; not parallel.
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	renderer := chroma.NewRenderer()
	doc := &docshelf.Document{Title: "Variables", Content: page}

	out, err := renderer.RenderDocument(doc, docshelf.RenderOptions{Color: true})
	require.NoError(t, err)

	assert.Contains(t, out, "\x1b[", "expected ANSI escape sequences")
	assert.Contains(t, out, "Variables")
	assert.Contains(t, out, "A variable names a value.")
	assert.NotContains(t, out, "```", "fence lines are replaced by highlighted code")
}

func TestRenderer_UnclosedFence(t *testing.T) {
	t.Parallel()

	renderer := chroma.NewRenderer()
	doc := &docshelf.Document{Content: "prose\n\n```python\nprint(\"hi\")\n"}

	out, err := renderer.RenderDocument(doc, docshelf.RenderOptions{Color: true})
	require.NoError(t, err)

	assert.Contains(t, out, "prose")
	assert.True(t, strings.Contains(out, "print") || strings.Contains(out, "\x1b["),
		"code from the unclosed fence should be rendered")
}

func TestRenderer_NestedFence(t *testing.T) {
	// Mutates the package-level color.NoColor flag; not parallel.
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	// A four-backtick fence contains a three-backtick line and a line that
	// looks like a heading. Neither may close the fence; the real heading
	// after the close must still be styled.
	content := "````markdown\n```\n# Not A Heading\n```\n````\n\n# After\n\nprose\n"
	renderer := chroma.NewRenderer()

	out, err := renderer.RenderDocument(&docshelf.Document{Content: content}, docshelf.RenderOptions{Color: true})
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b[36;1;4m# Not A Heading",
		"lines inside the fence must not be styled as headings")
	assert.Contains(t, out, "\x1b[36;1;4m# After\x1b[0m", "the heading after the fence is styled")
	assert.NotContains(t, out, "````", "fence lines are replaced by highlighted code")
}

func TestRenderer_NilDocument(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewRenderer().RenderDocument(nil, docshelf.RenderOptions{})
	require.Error(t, err)
	assert.Equal(t, docshelf.EINVALID, docshelf.ErrorCode(err))
}

func TestRenderer_Format(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docshelf.FormatTerm, chroma.NewRenderer().Format())
}
