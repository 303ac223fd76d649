package goquery_test

import (
	"testing"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewExtractor()

	t.Run("prefers article content over the page shell", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Smart Pointers — C++ Notes</title></head><body>
			<nav><a href="/">home</a></nav>
			<main><article><h1>Smart Pointers</h1><p>unique_ptr owns exclusively.</p></article></main>
			<footer>© notes</footer>
		</body></html>`

		result, err := extractor.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "Smart Pointers — C++ Notes", result.Title)
		assert.Contains(t, result.ContentHTML, "unique_ptr owns exclusively.")
		assert.NotContains(t, result.ContentHTML, "home")
		assert.NotContains(t, result.ContentHTML, "© notes")
	})

	t.Run("strips boilerplate nested inside the content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<aside>related links</aside>
			<p>the actual prose</p>
			<script>track()</script>
		</main></body></html>`

		result, err := extractor.Extract(html)
		require.NoError(t, err)

		assert.Contains(t, result.ContentHTML, "the actual prose")
		assert.NotContains(t, result.ContentHTML, "related links")
		assert.NotContains(t, result.ContentHTML, "track()")
	})

	t.Run("falls back to the first h1 for the title", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><h1>Closures</h1><p>text</p></article></body></html>`

		result, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Closures", result.Title)
	})

	t.Run("falls back to the body when no content container exists", func(t *testing.T) {
		t.Parallel()

		result, err := extractor.Extract(`<html><body><p>bare page</p></body></html>`)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "bare page")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.Extract("   ")
		require.Error(t, err)
		assert.Equal(t, docshelf.EINVALID, docshelf.ErrorCode(err))
	})

	t.Run("reports ENOTFOUND for a page with no text", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.Extract(`<html><body><nav>only chrome</nav></body></html>`)
		require.Error(t, err)
		assert.Equal(t, docshelf.ENOTFOUND, docshelf.ErrorCode(err))
	})
}
