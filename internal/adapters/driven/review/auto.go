// Package review provides the reviewers that gate extracted candidates
// before they enter the inventory.
package review

import (
	"context"

	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// AutoReviewer accepts every candidate unchanged. Used for --yes runs,
// watch mode, and any run without a terminal attached.
type AutoReviewer struct{}

var _ driven.Reviewer = (*AutoReviewer)(nil)

// NewAuto returns a reviewer that accepts everything as extracted.
func NewAuto() *AutoReviewer {
	return &AutoReviewer{}
}

// Review accepts the candidate with its extracted fields untouched.
func (r *AutoReviewer) Review(_ context.Context, c *driven.Candidate) (*driven.Decision, error) {
	fields := make(map[string]string, len(c.Fields))
	for k, v := range c.Fields {
		fields[k] = v
	}
	return &driven.Decision{Accepted: true, Fields: fields}, nil
}
