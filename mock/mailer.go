package mock

import (
	"context"

	"github.com/fwojciec/freelearn"
)

var _ freelearn.Mailer = (*Mailer)(nil)

// Mailer is a mock implementation of freelearn.Mailer.
type Mailer struct {
	SendFn func(ctx context.Context, msg *freelearn.Message) error
}

func (m *Mailer) Send(ctx context.Context, msg *freelearn.Message) error {
	return m.SendFn(ctx, msg)
}
