package mock

import "github.com/fwojciec/freelearn"

var _ freelearn.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of freelearn.Renderer.
type Renderer struct {
	RenderFn func(in freelearn.RenderInput) (*freelearn.Report, error)
}

func (r *Renderer) Render(in freelearn.RenderInput) (*freelearn.Report, error) {
	return r.RenderFn(in)
}
