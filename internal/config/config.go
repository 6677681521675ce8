package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingCredential is returned when a command needs an API key that is
// not configured.
var ErrMissingCredential = errors.New("missing credential")

// readSecret reads a Docker secret from a file path specified by an env var
// with _FILE suffix. If FOO is already set directly, the file is skipped.
// If FOO_FILE is set, reads the file content and sets FOO.
func readSecret(envKey string) {
	if os.Getenv(envKey) != "" {
		return
	}
	fileKey := envKey + "_FILE"
	filePath := os.Getenv(fileKey)
	if filePath == "" {
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return
	}
	val := strings.TrimSpace(string(data))
	os.Setenv(envKey, val)
}

type Config struct {
	Meshy      MeshyConfig
	Gemini     GeminiConfig
	ElevenLabs ElevenLabsConfig
	R2         R2Config
	Redis      RedisConfig
	Pipeline   PipelineConfig
	Paths      PathsConfig
	Log        LogConfig

	// EnvFile is the .env file that was loaded, empty when none was found.
	EnvFile string
}

type MeshyConfig struct {
	APIKey             string
	BaseURL            string
	PollInterval       time.Duration
	MaxPollAttempts    int
	RigPollInterval    time.Duration
	RigMaxPollAttempts int
	Timeout            time.Duration
}

type GeminiConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxRetries     int
	RetryBaseDelay time.Duration
	Timeout        time.Duration
}

type ElevenLabsConfig struct {
	APIKey         string
	BaseURL        string
	TTSModel       string
	MaxRetries     int
	RetryBaseDelay time.Duration
	Timeout        time.Duration
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PipelineConfig holds the delay enforced between consecutive assets of
// each command.
type PipelineConfig struct {
	ModelDelay time.Duration
	RigDelay   time.Duration
	ImageDelay time.Duration
	SoundDelay time.Duration
	BGMDelay   time.Duration
	VoiceDelay time.Duration
}

type PathsConfig struct {
	ProjectRoot string
	AssetsDir   string
}

type LogConfig struct {
	Level  string
	Format string
}

// Require returns ErrMissingCredential when the Meshy key is unset.
func (c *MeshyConfig) Require() error {
	return requireKey(c.APIKey, "MESHY_API_KEY")
}

// Require returns ErrMissingCredential when the Gemini key is unset.
func (c *GeminiConfig) Require() error {
	return requireKey(c.APIKey, "GEMINI_API_KEY")
}

// Require returns ErrMissingCredential when the ElevenLabs key is unset.
func (c *ElevenLabsConfig) Require() error {
	return requireKey(c.APIKey, "ELEVENLABS_API_KEY")
}

// IsConfigured returns true if every R2 setting needed for uploads is present
func (c *R2Config) IsConfigured() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

func requireKey(value, envKey string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s not found in .env or environment variables", ErrMissingCredential, envKey)
	}
	return nil
}

// Assets joins elem onto the assets directory.
func (p PathsConfig) Assets(elem ...string) string {
	return filepath.Join(append([]string{p.AssetsDir}, elem...)...)
}

// Resolve makes a project-relative path usable from the working directory.
func (p PathsConfig) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.ProjectRoot, rel)
}

// Load reads configuration from envFile (default <PROJECT_ROOT>/.env), the
// environment and an optional config.yaml. Variables already present in the
// environment win over the .env file.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		root := os.Getenv("PROJECT_ROOT")
		if root == "" {
			root = "."
		}
		envFile = filepath.Join(root, ".env")
	}
	loaded := ""
	if err := godotenv.Load(envFile); err == nil {
		loaded = envFile
	}

	// Read Docker Swarm secrets from _FILE env vars before Viper binds
	readSecret("MESHY_API_KEY")
	readSecret("GEMINI_API_KEY")
	readSecret("ELEVENLABS_API_KEY")
	readSecret("REDIS_PASSWORD")
	readSecret("R2_ACCOUNT_ID")
	readSecret("R2_ACCESS_KEY_ID")
	readSecret("R2_SECRET_ACCESS_KEY")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables
	v.AutomaticEnv()

	// Bind environment variables with underscores to nested config keys
	_ = v.BindEnv("meshy.api_key", "MESHY_API_KEY")
	_ = v.BindEnv("meshy.base_url", "MESHY_BASE_URL")
	_ = v.BindEnv("meshy.poll_interval", "MESHY_POLL_INTERVAL")
	_ = v.BindEnv("meshy.max_poll_attempts", "MESHY_MAX_POLL_ATTEMPTS")
	_ = v.BindEnv("meshy.rig_poll_interval", "MESHY_RIG_POLL_INTERVAL")
	_ = v.BindEnv("meshy.rig_max_poll_attempts", "MESHY_RIG_MAX_POLL_ATTEMPTS")
	_ = v.BindEnv("meshy.timeout", "MESHY_TIMEOUT")
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("gemini.base_url", "GEMINI_BASE_URL")
	_ = v.BindEnv("gemini.model", "GEMINI_MODEL")
	_ = v.BindEnv("gemini.max_retries", "GEMINI_MAX_RETRIES")
	_ = v.BindEnv("gemini.retry_base_delay", "GEMINI_RETRY_BASE_DELAY")
	_ = v.BindEnv("elevenlabs.api_key", "ELEVENLABS_API_KEY")
	_ = v.BindEnv("elevenlabs.base_url", "ELEVENLABS_BASE_URL")
	_ = v.BindEnv("elevenlabs.tts_model", "ELEVENLABS_TTS_MODEL")
	_ = v.BindEnv("r2.account_id", "R2_ACCOUNT_ID")
	_ = v.BindEnv("r2.access_key_id", "R2_ACCESS_KEY_ID")
	_ = v.BindEnv("r2.secret_access_key", "R2_SECRET_ACCESS_KEY")
	_ = v.BindEnv("r2.bucket_name", "R2_BUCKET_NAME")
	_ = v.BindEnv("r2.public_url", "R2_PUBLIC_URL")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")
	_ = v.BindEnv("paths.project_root", "PROJECT_ROOT")
	_ = v.BindEnv("paths.assets_dir", "ASSETS_DIR")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")

	// Meshy defaults (seconds)
	v.SetDefault("meshy.base_url", "https://api.meshy.ai/openapi")
	v.SetDefault("meshy.poll_interval", 15)
	v.SetDefault("meshy.max_poll_attempts", 60)
	v.SetDefault("meshy.rig_poll_interval", 10)
	v.SetDefault("meshy.rig_max_poll_attempts", 90)
	v.SetDefault("meshy.timeout", 120)

	// Gemini defaults
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-3-pro-image-preview")
	v.SetDefault("gemini.max_retries", 3)
	v.SetDefault("gemini.retry_base_delay", 5)
	v.SetDefault("gemini.timeout", 180)

	// ElevenLabs defaults
	v.SetDefault("elevenlabs.base_url", "https://api.elevenlabs.io/v1")
	v.SetDefault("elevenlabs.tts_model", "eleven_multilingual_v2")
	v.SetDefault("elevenlabs.max_retries", 1)
	v.SetDefault("elevenlabs.retry_base_delay", 5)
	v.SetDefault("elevenlabs.timeout", 60)

	// Redis is optional; an empty address disables progress tracking
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Delays between consecutive assets (seconds)
	v.SetDefault("pipeline.model_delay", 2)
	v.SetDefault("pipeline.rig_delay", 2)
	v.SetDefault("pipeline.image_delay", 3)
	v.SetDefault("pipeline.sound_delay", 1.5)
	v.SetDefault("pipeline.bgm_delay", 3)
	v.SetDefault("pipeline.voice_delay", 0.5)

	v.SetDefault("paths.project_root", ".")
	v.SetDefault("paths.assets_dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Try to read config file (optional)
	_ = v.ReadInConfig()

	root := v.GetString("paths.project_root")
	assets := v.GetString("paths.assets_dir")
	if assets == "" {
		assets = filepath.Join(root, "assets")
	}

	cfg := &Config{
		Meshy: MeshyConfig{
			APIKey:             v.GetString("meshy.api_key"),
			BaseURL:            strings.TrimRight(v.GetString("meshy.base_url"), "/"),
			PollInterval:       seconds(v, "meshy.poll_interval"),
			MaxPollAttempts:    v.GetInt("meshy.max_poll_attempts"),
			RigPollInterval:    seconds(v, "meshy.rig_poll_interval"),
			RigMaxPollAttempts: v.GetInt("meshy.rig_max_poll_attempts"),
			Timeout:            seconds(v, "meshy.timeout"),
		},
		Gemini: GeminiConfig{
			APIKey:         v.GetString("gemini.api_key"),
			BaseURL:        strings.TrimRight(v.GetString("gemini.base_url"), "/"),
			Model:          v.GetString("gemini.model"),
			MaxRetries:     v.GetInt("gemini.max_retries"),
			RetryBaseDelay: seconds(v, "gemini.retry_base_delay"),
			Timeout:        seconds(v, "gemini.timeout"),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:         v.GetString("elevenlabs.api_key"),
			BaseURL:        strings.TrimRight(v.GetString("elevenlabs.base_url"), "/"),
			TTSModel:       v.GetString("elevenlabs.tts_model"),
			MaxRetries:     v.GetInt("elevenlabs.max_retries"),
			RetryBaseDelay: seconds(v, "elevenlabs.retry_base_delay"),
			Timeout:        seconds(v, "elevenlabs.timeout"),
		},
		R2: R2Config{
			AccountID:       v.GetString("r2.account_id"),
			AccessKeyID:     v.GetString("r2.access_key_id"),
			SecretAccessKey: v.GetString("r2.secret_access_key"),
			BucketName:      v.GetString("r2.bucket_name"),
			PublicURL:       strings.TrimRight(v.GetString("r2.public_url"), "/"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Pipeline: PipelineConfig{
			ModelDelay: seconds(v, "pipeline.model_delay"),
			RigDelay:   seconds(v, "pipeline.rig_delay"),
			ImageDelay: seconds(v, "pipeline.image_delay"),
			SoundDelay: seconds(v, "pipeline.sound_delay"),
			BGMDelay:   seconds(v, "pipeline.bgm_delay"),
			VoiceDelay: seconds(v, "pipeline.voice_delay"),
		},
		Paths: PathsConfig{
			ProjectRoot: root,
			AssetsDir:   assets,
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		EnvFile: loaded,
	}

	return cfg, nil
}

// seconds reads a numeric key expressed in (possibly fractional) seconds.
func seconds(v *viper.Viper, key string) time.Duration {
	return time.Duration(v.GetFloat64(key) * float64(time.Second))
}
