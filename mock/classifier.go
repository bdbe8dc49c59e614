package mock

import (
	"context"

	"github.com/fwojciec/freelearn"
)

var _ freelearn.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of freelearn.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, title, author, description string) (string, error)
}

func (c *Classifier) Classify(ctx context.Context, title, author, description string) (string, error) {
	return c.ClassifyFn(ctx, title, author, description)
}
