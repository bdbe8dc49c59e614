// Package simulate provides classifiers that make no network calls.
package simulate

import (
	"context"

	"github.com/fwojciec/freelearn"
)

var (
	_ freelearn.Classifier = (*Classifier)(nil)
	_ freelearn.Classifier = (*Disabled)(nil)
)

// Classifier returns fixed labels regardless of input.
type Classifier struct{}

// Classify returns freelearn.SimulatedLabels.
func (Classifier) Classify(ctx context.Context, title, author, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return freelearn.SimulatedLabels, nil
}

// Disabled reports classification as unavailable so reports carry an empty
// label cell.
type Disabled struct{}

// Classify always fails with freelearn.EUNAVAILABLE.
func (Disabled) Classify(ctx context.Context, title, author, description string) (string, error) {
	return "", freelearn.Errorf(freelearn.EUNAVAILABLE, "classifier disabled")
}
