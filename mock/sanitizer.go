package mock

import "github.com/fwojciec/freelearn"

var _ freelearn.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of freelearn.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
