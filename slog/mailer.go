package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/freelearn"
)

// Ensure LoggingMailer implements freelearn.Mailer.
var _ freelearn.Mailer = (*LoggingMailer)(nil)

// LoggingMailer wraps a Mailer with logging. Message bodies are not logged.
type LoggingMailer struct {
	next   freelearn.Mailer
	logger *slog.Logger
}

// NewLoggingMailer creates a new LoggingMailer.
func NewLoggingMailer(next freelearn.Mailer, logger *slog.Logger) *LoggingMailer {
	return &LoggingMailer{next: next, logger: logger}
}

// Send delegates to the wrapped mailer.
func (m *LoggingMailer) Send(ctx context.Context, msg *freelearn.Message) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("send",
			"to", msg.To,
			"subject", msg.Subject,
			"bytes", len(msg.HTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Send(ctx, msg)
}
