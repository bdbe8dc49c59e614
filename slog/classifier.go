package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/freelearn"
)

// Ensure LoggingClassifier implements freelearn.Classifier.
var _ freelearn.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier and logs the labels it returns.
type LoggingClassifier struct {
	next   freelearn.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next freelearn.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier.
func (c *LoggingClassifier) Classify(ctx context.Context, title, author, description string) (labels string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		c.logger.Log(ctx, level, "classify",
			"title", title,
			"labels", labels,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(ctx, title, author, description)
}
