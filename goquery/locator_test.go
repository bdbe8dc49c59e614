package goquery_test

import (
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/freelearn"
	"github.com/fwojciec/freelearn/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("returns inner container nested in outer container", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<body>
<div class="product__info">
<div class="main-product">
<p>Expected content</p>
</div>
</div>
</body>
</html>`

		f := goquery.NewLocator().Locate(html)

		require.True(t, f.Found())
		assert.Equal(t, "<div class=\"main-product\">\n<p>Expected content</p>\n</div>", f.HTML)
	})

	t.Run("returns absent fragment when inner container is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="product__info">
	<div class="other-product"><p>Other content</p></div>
</div>
</body></html>`

		f := goquery.NewLocator().Locate(html)

		assert.False(t, f.Found())
	})

	t.Run("returns absent fragment when outer container is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="other-info"><p>Other content</p></div>
</body></html>`

		f := goquery.NewLocator().Locate(html)

		assert.False(t, f.Found())
	})

	t.Run("ignores inner container outside the outer container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="main-product"><p>Stray</p></div>
<div class="product__info"><p>No product today</p></div>
</body></html>`

		f := goquery.NewLocator().Locate(html)

		assert.False(t, f.Found())
	})

	t.Run("searches only the first outer container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="product__info"><p>Empty</p></div>
<div class="product__info"><div class="main-product">Second</div></div>
</body></html>`

		f := goquery.NewLocator().Locate(html)

		assert.False(t, f.Found())
	})

	t.Run("returns first inner container in document order", func(t *testing.T) {
		t.Parallel()

		html := `<div class="product__info">
<section><div class="main-product">First</div></section>
<div class="main-product">Second</div>
</div>`

		f := goquery.NewLocator().Locate(html)

		require.True(t, f.Found())
		assert.Equal(t, `<div class="main-product">First</div>`, f.HTML)
	})

	t.Run("matches class tokens among other classes", func(t *testing.T) {
		t.Parallel()

		html := `<div class="wide product__info"><div class="grid product-info main-product">X</div></div>`

		f := goquery.NewLocator().Locate(html)

		require.True(t, f.Found())
		assert.Equal(t, `<div class="grid product-info main-product">X</div>`, f.HTML)
	})

	t.Run("does not match other tag names", func(t *testing.T) {
		t.Parallel()

		html := `<section class="product__info"><div class="main-product">X</div></section>`

		f := goquery.NewLocator().Locate(html)

		assert.False(t, f.Found())
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<div class='product__info'><div class='main-product'><p>unclosed <b>bold`

		f := goquery.NewLocator().Locate(html)

		require.True(t, f.Found())
		assert.Equal(t, `<div class="main-product"><p>unclosed <b>bold</b></p></div>`, f.HTML)
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		f := goquery.NewLocator().Locate("")

		assert.False(t, f.Found())
	})

	t.Run("handles non-markup input", func(t *testing.T) {
		t.Parallel()

		f := goquery.NewLocator().Locate("<<<>>> not html at all &&&")

		assert.False(t, f.Found())
	})

	t.Run("does not rewrite image paths", func(t *testing.T) {
		t.Parallel()

		html := `<div class="product__info"><div class="main-product"><img src="/images/a.png"></div></div>`

		f := goquery.NewLocator().Locate(html)

		require.True(t, f.Found())
		assert.Equal(t, `<div class="main-product"><img src="/images/a.png"/></div>`, f.HTML)
	})

	t.Run("uses configured selectors", func(t *testing.T) {
		t.Parallel()

		html := `<article id="deal"><p class="teaser">Deal</p></article>`

		l := goquery.NewLocator(
			goquery.WithOuterSelector("article#deal"),
			goquery.WithInnerSelector("p.teaser"),
		)
		f := l.Locate(html)

		require.True(t, f.Found())
		assert.Equal(t, `<p class="teaser">Deal</p>`, f.HTML)
	})

	t.Run("replaces invalid UTF-8 in fragment", func(t *testing.T) {
		t.Parallel()

		f := goquery.NewLocator().Locate("<div class=\"product__info\"><div class=\"main-product\">\u00fc\xc3</div></div>")

		require.True(t, f.Found())
		assert.True(t, utf8.ValidString(f.HTML))
		assert.Equal(t, "<div class=\"main-product\">\u00fc\uFFFD</div>", f.HTML)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		page := readTestPage(t)
		l := goquery.NewLocator()

		assert.Equal(t, l.Locate(page), l.Locate(page))
	})
}

func TestLocator_Locate_FreeLearningPage(t *testing.T) {
	t.Parallel()

	f := goquery.NewLocator().Locate(readTestPage(t))

	require.True(t, f.Found())
	assert.True(t, strings.HasPrefix(f.HTML, `<div class="grid product-info main-product">`))
	assert.True(t, strings.HasSuffix(f.HTML, `</div>`))
	assert.Contains(t, f.HTML, `<h3 class="product-info__title">Free eBook - Mastering Scientific Computing with R</h3>`)
	assert.Contains(t, f.HTML, `<img src="/images/covers/9781783555253.png" alt="Book cover"/>`)
	assert.NotContains(t, f.HTML, "product__countdown")
	assert.NotContains(t, f.HTML, "site-header")
}

func readTestPage(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile("testdata/free_learning.html")
	require.NoError(t, err)
	return string(data)
}

// Compile-time verification that Locator implements freelearn.Locator.
var _ freelearn.Locator = (*goquery.Locator)(nil)
