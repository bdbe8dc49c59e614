package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/freelearn"
	"github.com/fwojciec/freelearn/mock"
	flslog "github.com/fwojciec/freelearn/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMailer_Send(t *testing.T) {
	t.Parallel()

	msg := &freelearn.Message{
		From:    "sender@example.com",
		To:      "recipient@example.com",
		Subject: freelearn.Subject,
		HTML:    "<p>secret body</p>",
	}

	t.Run("logs recipient without body", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var sent *freelearn.Message
		inner := &mock.Mailer{
			SendFn: func(ctx context.Context, m *freelearn.Message) error {
				sent = m
				return nil
			},
		}

		mailer := flslog.NewLoggingMailer(inner, logger)
		err := mailer.Send(context.Background(), msg)

		require.NoError(t, err)
		assert.Same(t, msg, sent)
		output := buf.String()
		assert.Contains(t, output, "msg=send")
		assert.Contains(t, output, "to=recipient@example.com")
		assert.Contains(t, output, "bytes=18")
		assert.NotContains(t, output, "secret body")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Mailer{
			SendFn: func(ctx context.Context, m *freelearn.Message) error {
				return errors.New("auth failed")
			},
		}

		mailer := flslog.NewLoggingMailer(inner, logger)
		err := mailer.Send(context.Background(), msg)

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="auth failed"`)
	})
}
