package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/config"
	"github.com/dragonnestlite/assetgen/internal/logging"
)

// ImageGenerator defines the interface for prompt-to-image generation
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, reference *InlineImage) (*InlineImage, error)
}

// InlineImage is image data exchanged with the model
type InlineImage struct {
	MimeType string
	Data     []byte
}

// NoImageError is returned when the model answers with text only
type NoImageError struct {
	Text string
}

func (e *NoImageError) Error() string {
	if e.Text == "" {
		return "no image in response"
	}
	text := e.Text
	if len(text) > 200 {
		text = text[:200]
	}
	return "model returned text instead of image: " + text
}

// GeminiClient implements ImageGenerator for the Gemini generateContent API
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

type geminiInline struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string        `json:"text,omitempty"`
	InlineData *geminiInline `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiGenConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient creates a new Gemini image client
func NewGeminiClient(cfg *config.GeminiConfig, logger *zap.Logger) *GeminiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-3-pro-image-preview"
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      model,
		logger:     logging.OrNop(logger),
	}
}

// GenerateImage asks the model for an image. A non-nil reference turns the
// call into image-to-image.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string, reference *InlineImage) (*InlineImage, error) {
	parts := []geminiPart{{Text: prompt}}
	if reference != nil {
		parts = append(parts, geminiPart{InlineData: &geminiInline{
			MimeType: reference.MimeType,
			Data:     base64.StdEncoding.EncodeToString(reference.Data),
		}})
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: parts, Role: "user"}},
		GenerationConfig: &geminiGenConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	c.logger.Debug("gemini request", zap.String("model", c.model), zap.Bool("reference", reference != nil))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini image request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Op: "Gemini image generation", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var gResp geminiResponse
	if err := json.Unmarshal(respBody, &gResp); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}

	var text string
	for _, candidate := range gResp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && strings.HasPrefix(part.InlineData.MimeType, "image/") {
				data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to decode image data: %w", err)
				}
				return &InlineImage{MimeType: part.InlineData.MimeType, Data: data}, nil
			}
			if text == "" && part.Text != "" {
				text = part.Text
			}
		}
	}
	return nil, &NoImageError{Text: text}
}

// IsConfigured returns true if the client has valid configuration
func (c *GeminiClient) IsConfigured() bool {
	return c.apiKey != ""
}
