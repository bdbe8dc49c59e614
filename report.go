package freelearn

import (
	"strings"
	"time"
)

// Fixed report content.
const (
	Subject    = "Daily PacktPub Free Learning Book Reminder"
	Publisher  = "Packt"
	Formats    = "EPUB, PDF, MOBI"
	Source     = "Packt Giveaway"
	Price      = "0"
	DateLayout = "02.01.2006"

	// DefaultURL is the page listing the book currently given away.
	DefaultURL = "https://www.packtpub.com/free-learning"

	// HeadingURL is linked from the report heading.
	HeadingURL = DefaultURL

	// NotFoundNotice replaces the snippet when the page has no product snippet.
	NotFoundNotice = "<p>Unfortunately, no matching snippet found.</p>"
)

// Image paths in the snippet are relative to the shop; mail clients need them absolute.
const (
	ImagePathPrefix = `src="/images`
	ImageURLPrefix  = `src="https://www.packtpub.com/images`
)

// RewriteImagePaths rewrites relative image sources in html to absolute URLs.
func RewriteImagePaths(html string) string {
	return strings.ReplaceAll(html, ImagePathPrefix, ImageURLPrefix)
}

// RenderInput holds everything a Renderer substitutes into the report.
type RenderInput struct {
	// Snippet is trusted markup embedded as-is.
	Snippet string
	Product *Product
	Labels  string
	Date    time.Time
}

// Report is the rendered result of one run.
type Report struct {
	// HTML is the complete mail body.
	HTML string

	// Details is the tab-separated detail line.
	Details string

	// Text is the plain-text alternative of HTML. Empty when no converter is configured.
	Text string

	Snippet string
	Product *Product
	Labels  string
	Date    time.Time
}

// Renderer renders the report templates.
type Renderer interface {
	Render(in RenderInput) (*Report, error)
}

// Sanitizer removes unsafe markup from a snippet before it is embedded.
type Sanitizer interface {
	Sanitize(html string) string
}
