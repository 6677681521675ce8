package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test and restores it after.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "MESHY_API_KEY", "MESHY_BASE_URL", "PROJECT_ROOT", "ASSETS_DIR", "REDIS_ADDR")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.meshy.ai/openapi", cfg.Meshy.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Meshy.PollInterval)
	assert.Equal(t, 60, cfg.Meshy.MaxPollAttempts)
	assert.Equal(t, 10*time.Second, cfg.Meshy.RigPollInterval)
	assert.Equal(t, 90, cfg.Meshy.RigMaxPollAttempts)
	assert.Equal(t, 3, cfg.Gemini.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.Gemini.RetryBaseDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Pipeline.SoundDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Pipeline.VoiceDelay)
	assert.Equal(t, filepath.Join(".", "assets"), cfg.Paths.AssetsDir)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.EnvFile)
}

func TestLoadEnvFile(t *testing.T) {
	unsetEnv(t, "MESHY_API_KEY", "ELEVENLABS_API_KEY")
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MESHY_API_KEY=msy_from_file\nELEVENLABS_API_KEY=xi_file\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, envFile, cfg.EnvFile)
	assert.Equal(t, "msy_from_file", cfg.Meshy.APIKey)
	assert.Equal(t, "xi_file", cfg.ElevenLabs.APIKey)
	assert.NoError(t, cfg.Meshy.Require())
}

func TestLoadEnvironmentWinsOverEnvFile(t *testing.T) {
	t.Setenv("MESHY_API_KEY", "msy_from_env")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MESHY_API_KEY=msy_from_file\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "msy_from_env", cfg.Meshy.APIKey)
}

func TestReadSecretFromFile(t *testing.T) {
	unsetEnv(t, "GEMINI_API_KEY")
	secret := filepath.Join(t.TempDir(), "gemini")
	require.NoError(t, os.WriteFile(secret, []byte("  gm-secret\n"), 0o600))
	t.Setenv("GEMINI_API_KEY_FILE", secret)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "gm-secret", cfg.Gemini.APIKey)
}

func TestRequireMissingCredential(t *testing.T) {
	cfg := &Config{}

	err := cfg.Meshy.Require()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingCredential))
	assert.Contains(t, err.Error(), "MESHY_API_KEY")

	assert.ErrorIs(t, cfg.Gemini.Require(), ErrMissingCredential)
	assert.ErrorIs(t, cfg.ElevenLabs.Require(), ErrMissingCredential)
}

func TestPathsHelpers(t *testing.T) {
	p := PathsConfig{ProjectRoot: "/game", AssetsDir: "/game/assets"}

	assert.Equal(t, "/game/assets/models/fighter.glb", p.Assets("models", "fighter.glb"))
	assert.Equal(t, "/game/assets/reference/a.png", p.Resolve("assets/reference/a.png"))
	assert.Equal(t, "/abs/x.png", p.Resolve("/abs/x.png"))
}

func TestR2IsConfigured(t *testing.T) {
	r2 := R2Config{AccountID: "a", AccessKeyID: "k", SecretAccessKey: "s"}
	assert.False(t, r2.IsConfigured())
	r2.BucketName = "assets"
	assert.True(t, r2.IsConfigured())
}
