package bluemonday_test

import (
	"testing"

	"github.com/fwojciec/freelearn"
	"github.com/fwojciec/freelearn/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes scripts and event handlers", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()
		got := s.Sanitize(`<div class="main-product" onclick="steal()"><p>Book</p><script>alert(1)</script></div>`)

		assert.Contains(t, got, `class="main-product"`)
		assert.Contains(t, got, "<p>Book</p>")
		assert.NotContains(t, got, "onclick")
		assert.NotContains(t, got, "script")
		assert.NotContains(t, got, "alert")
	})

	t.Run("keeps relative image paths for later rewriting", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()
		got := s.Sanitize(`<img src="/images/covers/book.png" alt="Book cover">`)

		assert.Contains(t, got, freelearn.ImagePathPrefix)
		assert.Contains(t, got, `alt="Book cover"`)

		rewritten := freelearn.RewriteImagePaths(got)
		assert.Contains(t, rewritten, `src="https://www.packtpub.com/images/covers/book.png"`)
	})

	t.Run("drops javascript links", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()
		got := s.Sanitize(`<a href="javascript:alert(1)">click</a>`)

		assert.NotContains(t, got, "javascript:")
		assert.Contains(t, got, "click")
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, bluemonday.NewSanitizer().Sanitize(""))
	})
}
