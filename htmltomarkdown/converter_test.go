package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	t.Run("converts headings and prose", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<h1>Closures</h1><h2>Capture</h2><p>A closure captures its environment.</p>`)
		require.NoError(t, err)

		assert.Contains(t, md, "# Closures")
		assert.Contains(t, md, "## Capture")
		assert.Contains(t, md, "A closure captures its environment.")
	})

	t.Run("converts code blocks to fences", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<pre><code class="language-python">def outer():
    x = 1
    return lambda: x</code></pre>`)
		require.NoError(t, err)

		assert.Contains(t, md, "```")
		assert.Contains(t, md, "def outer():")
	})

	t.Run("converts links and emphasis", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<p>See <a href="https://example.com/ref">the reference</a> for <em>details</em>.</p>`)
		require.NoError(t, err)

		assert.Contains(t, md, "[the reference](https://example.com/ref)")
		assert.Contains(t, md, "*details*")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<table><tr><th>Type</th><th>Size</th></tr><tr><td>int</td><td>4</td></tr></table>`)
		require.NoError(t, err)

		assert.Contains(t, md, "| Type | Size |")
		assert.Contains(t, md, "| int | 4 |")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("   ")
		require.Error(t, err)
		assert.Equal(t, docshelf.EINVALID, docshelf.ErrorCode(err))
	})
}
