package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/freelearn"
	"golang.org/x/net/html"
)

// Field selectors inside the snippet.
const (
	TitleSelector       = "h3.product-info__title"
	AuthorSelector      = "span.product-info__author"
	DateSelector        = "div.free_learning__product_pages_date"
	DescriptionSelector = "div.free_learning__product_description"
)

// Literal prefixes removed from extracted fields.
const (
	TitlePrefix  = "Free eBook - "
	AuthorPrefix = "By"
)

// Ensure Extractor implements freelearn.Extractor at compile time.
var _ freelearn.Extractor = (*Extractor)(nil)

// Extractor extracts product fields from a located snippet.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the fields found in f. Each field is independent: a
// missing or empty element leaves that field at freelearn.Placeholder.
func (e *Extractor) Extract(f *freelearn.Fragment) *freelearn.Product {
	p := freelearn.NewProduct()
	if !f.Found() {
		return p
	}

	doc := parse(f.HTML)

	if sel := doc.Find(TitleSelector).First(); sel.Length() > 0 {
		p.Title = orPlaceholder(CleanTitle(Text(sel)))
	}
	if sel := doc.Find(AuthorSelector).First(); sel.Length() > 0 {
		p.Author = orPlaceholder(CleanAuthor(Text(sel)))
	}
	if sel := doc.Find(DateSelector).First(); sel.Length() > 0 {
		p.PublicationYear = orPlaceholder(LastToken(Text(sel)))
	}
	if sel := doc.Find(DescriptionSelector).First(); sel.Length() > 0 {
		p.Description = orPlaceholder(CollapseSpace(Text(sel)))
	}

	return p
}

// Text returns the text nodes below sel, each trimmed, joined by a single space.
// Empty text nodes are skipped.
func Text(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// CleanTitle removes the promotional prefix when the title starts with it.
func CleanTitle(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, TitlePrefix))
}

// CleanAuthor removes a leading attribution word. "By" only counts as the
// attribution when it stands alone, so names such as "Byron" are kept.
func CleanAuthor(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, AuthorPrefix); ok && (rest == "" || startsWithSpace(rest)) {
		s = rest
	}
	return strings.TrimSpace(s)
}

// LastToken returns the last whitespace-delimited token of s.
func LastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// CollapseSpace replaces every run of whitespace with a single space and trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func orPlaceholder(s string) string {
	if s == "" {
		return freelearn.Placeholder
	}
	return s
}
