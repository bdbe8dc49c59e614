// Package goquery locates the product snippet in the Free Learning page and
// extracts its fields using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/freelearn"
	"golang.org/x/net/html"
)

// Default selectors of the product containers on the Free Learning page.
const (
	DefaultOuterSelector = "div.product__info"
	DefaultInnerSelector = "div.main-product"
)

// Ensure Locator implements freelearn.Locator at compile time.
var _ freelearn.Locator = (*Locator)(nil)

// Locator finds the inner product container nested in the outer one.
type Locator struct {
	outer string
	inner string
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithOuterSelector sets the selector of the enclosing product region.
func WithOuterSelector(selector string) LocatorOption {
	return func(l *Locator) {
		l.outer = selector
	}
}

// WithInnerSelector sets the selector of the snippet container.
func WithInnerSelector(selector string) LocatorOption {
	return func(l *Locator) {
		l.inner = selector
	}
}

// NewLocator creates a new Locator.
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		outer: DefaultOuterSelector,
		inner: DefaultInnerSelector,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the first inner container found inside the first outer
// container, serialized exactly as it re-renders. Only descendants of the
// outer container are searched for the inner one.
func (l *Locator) Locate(rawHTML string) *freelearn.Fragment {
	doc := parse(rawHTML)

	outer := doc.Find(l.outer).First()
	if outer.Length() == 0 {
		return &freelearn.Fragment{}
	}

	inner := outer.Find(l.inner).First()
	if inner.Length() == 0 {
		return &freelearn.Fragment{}
	}

	snippet, err := goquery.OuterHtml(inner)
	if err != nil {
		return &freelearn.Fragment{}
	}
	return &freelearn.Fragment{HTML: snippet}
}

// parse builds a document tree from arbitrary markup. The HTML5 parsing
// algorithm recovers from any malformed input, so a tree is always returned.
// Invalid UTF-8 sequences are replaced with U+FFFD.
func parse(rawHTML string) *goquery.Document {
	root, err := html.Parse(strings.NewReader(strings.ToValidUTF8(rawHTML, "\uFFFD")))
	if err != nil {
		// Only reader failures surface here; fall back to an empty document.
		root = &html.Node{Type: html.DocumentNode}
	}
	return goquery.NewDocumentFromNode(root)
}
