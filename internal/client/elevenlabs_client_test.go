package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonnestlite/assetgen/internal/config"
	"github.com/dragonnestlite/assetgen/internal/model"
)

func newTestElevenLabsClient(t *testing.T, handler http.HandlerFunc) *ElevenLabsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewElevenLabsClient(&config.ElevenLabsConfig{APIKey: "xi-key", BaseURL: srv.URL + "/v1"}, nil)
}

func TestGenerateSound(t *testing.T) {
	c := newTestElevenLabsClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sound-generation", r.URL.Path)
		assert.Equal(t, "xi-key", r.Header.Get("xi-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"text":             "sword slash",
			"duration_seconds": 0.8,
			"prompt_influence": 0.5,
		}, body)
		_, _ = w.Write([]byte("ID3-mp3"))
	})

	data, err := c.GenerateSound(context.Background(), &SoundRequest{Text: "sword slash", DurationSeconds: 0.8, PromptInfluence: 0.5})
	require.NoError(t, err)
	assert.Equal(t, "ID3-mp3", string(data))
}

func TestTextToSpeech(t *testing.T) {
	c := newTestElevenLabsClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/voice-1", r.URL.Path)

		var body SpeechRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Burn!", body.Text)
		assert.Equal(t, "eleven_multilingual_v2", body.ModelID)
		assert.Equal(t, 0.4, body.VoiceSettings.Stability)
		_, _ = w.Write([]byte("mp3"))
	})

	data, err := c.TextToSpeech(context.Background(), "voice-1", &SpeechRequest{
		Text:          "Burn!",
		ModelID:       "eleven_multilingual_v2",
		VoiceSettings: model.VoiceSettings{Stability: 0.4, SimilarityBoost: 0.8, Style: 0.7},
	})
	require.NoError(t, err)
	assert.Equal(t, "mp3", string(data))

	_, err = c.TextToSpeech(context.Background(), "", &SpeechRequest{Text: "x"})
	assert.Error(t, err)
}

func TestListVoices(t *testing.T) {
	c := newTestElevenLabsClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/voices", r.URL.Path)
		_, _ = w.Write([]byte(`{"voices":[{"voice_id":"v1","name":"Adam","labels":{"gender":"male","age":"middle aged"}}]}`))
	})

	voices, err := c.ListVoices(context.Background())
	require.NoError(t, err)
	require.Len(t, voices, 1)
	assert.Equal(t, "v1", voices[0].VoiceID)
	assert.Equal(t, "male", voices[0].Labels["gender"])
}

func TestElevenLabsErrorBodyIsTruncated(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	c := newTestElevenLabsClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write(long)
	})

	_, err := c.GenerateSound(context.Background(), &SoundRequest{Text: "x", DurationSeconds: 1})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Len(t, apiErr.Body, 200)
}
