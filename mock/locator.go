package mock

import "github.com/fwojciec/freelearn"

var _ freelearn.Locator = (*Locator)(nil)

// Locator is a mock implementation of freelearn.Locator.
type Locator struct {
	LocateFn func(rawHTML string) *freelearn.Fragment
}

func (l *Locator) Locate(rawHTML string) *freelearn.Fragment {
	return l.LocateFn(rawHTML)
}
