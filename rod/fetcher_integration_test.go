//go:build integration

package rod_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/freelearn"
	"github.com/fwojciec/freelearn/goquery"
	"github.com/fwojciec/freelearn/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_FreeLearningPage(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher(rod.WithWaitSelector("div.product__info"))
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, freelearn.DefaultURL)
	require.NoError(t, err)
	assert.NotEmpty(t, html)

	fragment := goquery.NewLocator().Locate(html)
	require.True(t, fragment.Found(), "expected product snippet in rendered page")

	product := goquery.NewExtractor().Extract(fragment)
	assert.NotEqual(t, freelearn.Placeholder, product.Title)

	t.Logf("Fetched %d bytes, title %q", len(html), product.Title)
}
