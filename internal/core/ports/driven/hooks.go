package driven

import (
	"context"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// TextHook transforms raw OCR text before field extraction.
// Hooks are named, resolved from configuration, and run in configured
// order. They must be pure text-to-text transforms.
type TextHook interface {
	// Name returns the hook's registry name.
	Name() string

	// Apply transforms the text.
	Apply(ctx context.Context, text string) (string, error)
}

// RecordHook transforms a finalized component after review acceptance
// and before it is written to storage.
type RecordHook interface {
	// Name returns the hook's registry name.
	Name() string

	// Apply transforms the component in place.
	Apply(ctx context.Context, component *domain.Component) error
}
