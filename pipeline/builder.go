// Package pipeline turns a fetched promotional page into a mailed report.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/freelearn"
)

// Builder turns a located fragment into a rendered report.
//
// Extractor, Classifier and Renderer are required. Converter and Sanitizer
// are optional.
type Builder struct {
	Extractor  freelearn.Extractor
	Classifier freelearn.Classifier
	Renderer   freelearn.Renderer

	// Converter derives the plain-text alternative of the report.
	Converter freelearn.Converter

	// Sanitizer, when set, cleans the snippet before it is embedded.
	Sanitizer freelearn.Sanitizer

	Logger *slog.Logger

	// Now returns the report date. Defaults to time.Now.
	Now func() time.Time
}

// Build extracts the product from f, classifies it and renders the report.
// Structural absence and classification failure degrade the report instead
// of failing. Errors are returned only for missing collaborators and
// render faults.
func (b *Builder) Build(ctx context.Context, f *freelearn.Fragment) (*freelearn.Report, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	product := b.Extractor.Extract(f)
	snippet := b.Snippet(f)

	result := freelearn.Classify(ctx, b.Classifier, product)
	if !result.OK() {
		b.logger().Warn("classification failed, continuing without labels",
			"title", product.Title,
			"err", result.Err,
		)
	}

	report, err := b.Renderer.Render(freelearn.RenderInput{
		Snippet: snippet,
		Product: product,
		Labels:  result.LabelSet(),
		Date:    b.now(),
	})
	if err != nil {
		return nil, err
	}

	if b.Converter != nil {
		text, err := b.Converter.Convert(report.HTML)
		if err != nil {
			b.logger().Warn("text alternative unavailable", "err", err)
		} else {
			report.Text = text
		}
	}

	return report, nil
}

// Snippet returns the markup embedded in the report for f: the not-found
// notice when f is absent, otherwise the fragment with absolute image paths.
func (b *Builder) Snippet(f *freelearn.Fragment) string {
	if !f.Found() {
		return freelearn.NotFoundNotice
	}
	html := f.HTML
	if b.Sanitizer != nil {
		html = b.Sanitizer.Sanitize(html)
	}
	return freelearn.RewriteImagePaths(html)
}

func (b *Builder) validate() error {
	switch {
	case b.Extractor == nil:
		return freelearn.Errorf(freelearn.EINTERNAL, "builder: extractor not configured")
	case b.Classifier == nil:
		return freelearn.Errorf(freelearn.EINTERNAL, "builder: classifier not configured")
	case b.Renderer == nil:
		return freelearn.Errorf(freelearn.EINTERNAL, "builder: renderer not configured")
	}
	return nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}
