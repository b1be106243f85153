// Package openai provides an OCR service adapter using the OpenAI
// vision API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
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
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 60 * time.Second
)

const ocrPrompt = "Extract all visible text from this image of an electronic component or its packaging. " +
	"Return the text exactly as it appears, one line per printed line, with no commentary."

// Config holds configuration for the OpenAI OCR service.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the vision model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// OCRService extracts text from component photos via OpenAI.
type OCRService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// chatRequest is the OpenAI /chat/completions request format.
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []chatMsg `json:"messages"`
}

// chatMsg is an OpenAI chat message with multimodal content parts.
type chatMsg struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

// chatResponse is the OpenAI /chat/completions response format.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewOCRService creates a new OpenAI OCR service.
func NewOCRService(cfg Config) (*OCRService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
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
		model:   cfg.Model,
	}, nil
}

// Name returns the provider name recorded on ingested components.
func (s *OCRService) Name() string { return "openai" }

// ExtractText runs OCR on the photo at path and returns the raw text.
func (s *OCRService) ExtractText(ctx context.Context, path string) (string, error) {
	dataURL, err := imagefile.ReadDataURL(path)
	if err != nil {
		return "", err
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMsg{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: ocrPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			},
		}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("openai error: %s", chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai error (status %d): %s", resp.StatusCode, string(body))
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai: no response choices returned")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
