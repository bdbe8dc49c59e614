package freelearn_test

import (
	"testing"

	"github.com/fwojciec/freelearn"
	"github.com/stretchr/testify/assert"
)

func TestRewriteImagePaths(t *testing.T) {
	t.Parallel()

	t.Run("rewrites relative image sources", func(t *testing.T) {
		t.Parallel()

		html := `<img src="/images/cover.png"/><img src="/images/logo.svg"/>`

		got := freelearn.RewriteImagePaths(html)

		assert.Equal(t, `<img src="https://www.packtpub.com/images/cover.png"/><img src="https://www.packtpub.com/images/logo.svg"/>`, got)
	})

	t.Run("leaves absolute and other relative sources alone", func(t *testing.T) {
		t.Parallel()

		html := `<img src="https://cdn.example.com/images/a.png"/><img src="/static/b.png"/>`

		assert.Equal(t, html, freelearn.RewriteImagePaths(html))
	})
}
