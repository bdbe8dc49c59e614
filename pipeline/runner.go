package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/freelearn"
)

// Runner performs one complete run: fetch, locate, build and send.
type Runner struct {
	Fetcher freelearn.Fetcher
	Locator freelearn.Locator
	Builder *Builder
	Mailer  freelearn.Mailer

	// URL of the promotional page. Defaults to freelearn.DefaultURL.
	URL string

	From string
	To   string

	// DryRun builds the report without sending it.
	DryRun bool

	// RunID tags every log line of the run.
	RunID string

	// RetryDelays overrides DefaultRetryDelays.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// Run executes the pipeline and returns the report it produced. A fetch
// that still fails after all retries aborts the run before anything is built.
func (r *Runner) Run(ctx context.Context) (*freelearn.Report, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	logger := r.logger()

	url := r.URL
	if url == "" {
		url = freelearn.DefaultURL
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, url, r.Fetcher.Fetch, logger.Warn, delays)
	if err != nil {
		logger.Error("fetch failed, aborting run", "url", url, "err", err)
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	fragment := r.Locator.Locate(html)
	if !fragment.Found() {
		logger.Warn("product snippet not found", "url", url, "size", FormatBytes(len(html)))
	}

	report, err := r.Builder.Build(ctx, fragment)
	if err != nil {
		return nil, err
	}

	logger.Info("report built",
		"title", report.Product.Title,
		"labels", report.Labels,
		"found", fragment.Found(),
		"snippet", ComputeHash(report.Snippet),
	)

	if r.DryRun {
		return report, nil
	}

	msg := &freelearn.Message{
		From:    r.From,
		To:      r.To,
		Subject: freelearn.Subject,
		HTML:    report.HTML,
		Text:    report.Text,
	}
	if err := r.Mailer.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("sending report: %w", err)
	}
	logger.Info("email sent", "to", r.To)

	return report, nil
}

func (r *Runner) validate() error {
	switch {
	case r.Fetcher == nil:
		return freelearn.Errorf(freelearn.EINTERNAL, "runner: fetcher not configured")
	case r.Locator == nil:
		return freelearn.Errorf(freelearn.EINTERNAL, "runner: locator not configured")
	case r.Builder == nil:
		return freelearn.Errorf(freelearn.EINTERNAL, "runner: builder not configured")
	case r.Mailer == nil && !r.DryRun:
		return freelearn.Errorf(freelearn.EINTERNAL, "runner: mailer not configured")
	}
	return nil
}

func (r *Runner) logger() *slog.Logger {
	l := r.Logger
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	if r.RunID != "" {
		l = l.With("run", r.RunID)
	}
	return l
}
