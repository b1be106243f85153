package ocr

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// Throttled wraps an OCR provider with a client-side rate limit so that
// batch ingestion of a photo directory stays under provider quotas.
type Throttled struct {
	inner   driven.OCRService
	limiter *rate.Limiter
}

var _ driven.OCRService = (*Throttled)(nil)

// NewThrottled limits calls to the inner provider to requestsPerMinute,
// allowing a single-request burst.
func NewThrottled(inner driven.OCRService, requestsPerMinute int) *Throttled {
	return &Throttled{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
	}
}

// Name returns the inner provider's name.
func (t *Throttled) Name() string { return t.inner.Name() }

// ExtractText waits for rate-limit headroom, then delegates. The wait
// respects ctx cancellation.
func (t *Throttled) ExtractText(ctx context.Context, path string) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return t.inner.ExtractText(ctx, path)
}
