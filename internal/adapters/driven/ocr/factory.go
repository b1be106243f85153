// Package ocr builds the configured OCR provider and applies shared
// cross-provider behaviour such as request throttling.
package ocr

import (
	"fmt"
	"os"
	"time"

	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/ocr/mistral"
	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/ocr/ocrspace"
	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/ocr/openai"
	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// Provider names accepted in configuration and on the command line.
const (
	ServiceMistral  = "mistral"
	ServiceOpenAI   = "openai"
	ServiceOCRSpace = "ocrspace"
)

// Environment variables holding provider API keys. They can live in a
// .env file next to the inventory; the CLI loads it on startup.
const (
	EnvMistralKey  = "MISTRAL_API_KEY"
	EnvOpenAIKey   = "OPENAI_API_KEY"
	EnvOCRSpaceKey = "OCR_SPACE_API_KEY"
)

// Options configures the provider built by New.
type Options struct {
	// APIKey overrides the provider's environment variable.
	APIKey string

	// Timeout is the per-request OCR timeout.
	Timeout time.Duration

	// RequestsPerMinute throttles calls to the provider. Zero means
	// no throttling.
	RequestsPerMinute int
}

// ServiceNames returns the known provider names.
func ServiceNames() []string {
	return []string{ServiceMistral, ServiceOpenAI, ServiceOCRSpace}
}

// New builds the named OCR provider. Unknown names fail with
// domain.ErrUnsupportedType.
func New(name string, opts Options) (driven.OCRService, error) {
	var (
		svc driven.OCRService
		err error
	)

	switch name {
	case ServiceMistral:
		svc, err = mistral.NewOCRService(mistral.Config{
			APIKey:  keyOrEnv(opts.APIKey, EnvMistralKey),
			Timeout: opts.Timeout,
		})
	case ServiceOpenAI:
		svc, err = openai.NewOCRService(openai.Config{
			APIKey:  keyOrEnv(opts.APIKey, EnvOpenAIKey),
			Timeout: opts.Timeout,
		})
	case ServiceOCRSpace:
		svc, err = ocrspace.NewOCRService(ocrspace.Config{
			APIKey:  keyOrEnv(opts.APIKey, EnvOCRSpaceKey),
			Timeout: opts.Timeout,
		})
	default:
		return nil, fmt.Errorf("%w: OCR service %q (known: mistral, openai, ocrspace)", domain.ErrUnsupportedType, name)
	}
	if err != nil {
		return nil, err
	}

	if opts.RequestsPerMinute > 0 {
		svc = NewThrottled(svc, opts.RequestsPerMinute)
	}
	return svc, nil
}

func keyOrEnv(key, env string) string {
	if key != "" {
		return key
	}
	return os.Getenv(env)
}
