package mock

import "github.com/fwojciec/freelearn"

var _ freelearn.Converter = (*Converter)(nil)

// Converter is a mock implementation of freelearn.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
