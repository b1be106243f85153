package driven

import "context"

// Candidate is a component under review, before it has an identity.
type Candidate struct {
	// SourceFile is the originating file path.
	SourceFile string

	// RawText is the OCR text after preprocessing hooks.
	RawText string

	// Fields are the extracted field values proposed to the reviewer.
	Fields map[string]string
}

// Decision is the reviewer's verdict on a candidate.
type Decision struct {
	// Accepted is false when the reviewer declines the candidate.
	Accepted bool

	// ID is a reviewer-supplied identifier. When empty, the pipeline
	// generates one.
	ID string

	// Fields are the (possibly edited) field values to persist.
	Fields map[string]string
}

// Reviewer presents extracted fields for confirmation.
//
// The pipeline calls it synchronously once per candidate. A CLI-backed
// implementation prompts a human; an automated implementation accepts
// as-is. Same interface, swappable behaviour.
type Reviewer interface {
	Review(ctx context.Context, candidate *Candidate) (*Decision, error)
}
