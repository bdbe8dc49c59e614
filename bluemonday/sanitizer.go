// Package bluemonday implements freelearn.Sanitizer with a user-generated
// content policy that keeps the snippet's layout attributes.
package bluemonday

import (
	"strings"

	"github.com/fwojciec/freelearn"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements freelearn.Sanitizer at compile time.
var _ freelearn.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips scripts, event handlers and other active content from
// HTML fragments.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer based on bluemonday.UGCPolicy that also
// allows class attributes so the snippet keeps its styling hooks.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{policy: p}
}

// Sanitize returns html with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}
