// Package ocrspace provides an OCR service adapter using the ocr.space
// API, a conventional OCR engine rather than a vision model. Useful as
// a free-tier fallback for clearly printed labels.
package ocrspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/ocr/imagefile"
	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
)

// Ensure OCRService implements the interface.
var _ driven.OCRService = (*OCRService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.ocr.space"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the ocr.space service.
type Config struct {
	// APIKey is the ocr.space API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.ocr.space).
	BaseURL string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// OCRService extracts text from component photos via ocr.space.
type OCRService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// parseResponse is the /parse/image response format.
type parseResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool  `json:"IsErroredOnProcessing"`
	ErrorMessage          any   `json:"ErrorMessage"` // string or []string depending on failure
	OCRExitCode           int   `json:"OCRExitCode"`
	ProcessingTimeMS      int64 `json:"ProcessingTimeInMilliseconds,string"`
}

// NewOCRService creates a new ocr.space service.
func NewOCRService(cfg Config) (*OCRService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ocrspace: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &OCRService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

// Name returns the provider name recorded on ingested components.
func (s *OCRService) Name() string { return "ocrspace" }

// ExtractText runs OCR on the photo at path and returns the raw text.
func (s *OCRService) ExtractText(ctx context.Context, path string) (string, error) {
	// ocr.space takes the image as a base64 data URL in a multipart
	// form field rather than a JSON body.
	dataURL, err := imagefile.ReadDataURL(path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("base64Image", dataURL); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := w.WriteField("filetype", strings.TrimPrefix(strings.ToUpper(filepath.Ext(path)), ".")); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := w.WriteField("scale", "true"); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/parse/image", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: ocrspace: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocrspace error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("ocrspace error: %v", parsed.ErrorMessage)
	}
	if len(parsed.ParsedResults) == 0 {
		return "", fmt.Errorf("ocrspace: no parsed results returned")
	}

	return strings.TrimSpace(parsed.ParsedResults[0].ParsedText), nil
}
