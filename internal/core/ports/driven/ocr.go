package driven

import "context"

// OCRService extracts raw text from an image or document file.
//
// The core treats the provider as opaque: it only needs a text string and
// a provenance label. Implementations wrap vision LLM APIs or dedicated
// OCR endpoints and are expected to honour context cancellation and apply
// their own request timeouts.
type OCRService interface {
	// ExtractText returns the raw text recognized in the file at path.
	ExtractText(ctx context.Context, path string) (string, error)

	// Name returns the provenance label recorded on ingested components.
	Name() string
}
