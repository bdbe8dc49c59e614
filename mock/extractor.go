package mock

import "github.com/fwojciec/freelearn"

var _ freelearn.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of freelearn.Extractor.
type Extractor struct {
	ExtractFn func(f *freelearn.Fragment) *freelearn.Product
}

func (e *Extractor) Extract(f *freelearn.Fragment) *freelearn.Product {
	return e.ExtractFn(f)
}
