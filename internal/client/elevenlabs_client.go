package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/config"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// AudioGenerator defines the ElevenLabs operations used by the sound and voice commands
type AudioGenerator interface {
	GenerateSound(ctx context.Context, req *SoundRequest) ([]byte, error)
	TextToSpeech(ctx context.Context, voiceID string, req *SpeechRequest) ([]byte, error)
	ListVoices(ctx context.Context) ([]Voice, error)
}

// ElevenLabsClient implements AudioGenerator for the ElevenLabs API
type ElevenLabsClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// SoundRequest represents the request for sound effect generation
type SoundRequest struct {
	Text            string  `json:"text"`
	DurationSeconds float64 `json:"duration_seconds"`
	PromptInfluence float64 `json:"prompt_influence,omitempty"`
}

// SpeechRequest represents the request for text-to-speech
type SpeechRequest struct {
	Text          string              `json:"text"`
	ModelID       string              `json:"model_id"`
	VoiceSettings model.VoiceSettings `json:"voice_settings"`
}

// Voice is an available ElevenLabs voice
type Voice struct {
	VoiceID string            `json:"voice_id"`
	Name    string            `json:"name"`
	Labels  map[string]string `json:"labels"`
}

// NewElevenLabsClient creates a new ElevenLabs client
func NewElevenLabsClient(cfg *config.ElevenLabsConfig, logger *zap.Logger) *ElevenLabsClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ElevenLabsClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logging.OrNop(logger),
	}
}

// GenerateSound synthesizes a sound effect and returns the MP3 bytes
func (c *ElevenLabsClient) GenerateSound(ctx context.Context, req *SoundRequest) ([]byte, error) {
	return c.postAudio(ctx, "Sound generation", "/sound-generation", req)
}

// TextToSpeech speaks req with voiceID and returns the MP3 bytes
func (c *ElevenLabsClient) TextToSpeech(ctx context.Context, voiceID string, req *SpeechRequest) ([]byte, error) {
	if voiceID == "" {
		return nil, fmt.Errorf("voice id is required")
	}
	return c.postAudio(ctx, "Text-to-speech", "/text-to-speech/"+url.PathEscape(voiceID), req)
}

// ListVoices returns the voices available to the account
func (c *ElevenLabsClient) ListVoices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do("List voices", req)
	if err != nil {
		return nil, err
	}

	var result struct {
		Voices []Voice `json:"voices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return result.Voices, nil
}

// IsConfigured returns true if the client has valid configuration
func (c *ElevenLabsClient) IsConfigured() bool {
	return c.apiKey != ""
}

func (c *ElevenLabsClient) postAudio(ctx context.Context, op, endpoint string, payload any) ([]byte, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(op, req)
}

func (c *ElevenLabsClient) do(op string, req *http.Request) ([]byte, error) {
	req.Header.Set("xi-api-key", c.apiKey)

	c.logger.Debug("elevenlabs request", zap.String("method", req.Method), zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > 200 {
			body = body[:200]
		}
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
