package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonnestlite/assetgen/internal/model"
	"github.com/dragonnestlite/assetgen/internal/service"
)

// setupEnv points the CLI at an empty project without credentials or Redis.
func setupEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("PROJECT_ROOT", root)
	t.Setenv("ASSETS_DIR", "")
	t.Setenv("MESHY_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ELEVENLABS_API_KEY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "error")
	return root
}

func TestRunUnknownCommand(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 2, run([]string{"paint"}))
	assert.Equal(t, 2, run(nil))
}

func TestRunHelp(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 0, run([]string{"models", "--help"}))
}

func TestModelsList(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 0, run([]string{"models", "--list", "--category", "enemies"}))
}

func TestModelsNoMatchFails(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 1, run([]string{"models", "--model", "no_such_model"}))
	assert.Equal(t, 1, run([]string{"models", "--category", "vehicles"}))
}

func TestModelsRequiresMeshyKey(t *testing.T) {
	root := setupEnv(t)
	assert.Equal(t, 1, run([]string{"models", "--model", "enemy_goblin"}))
	assert.NoFileExists(t, filepath.Join(root, "assets", "models", "_generation_log.json"))
}

func TestModelsDryRunNeedsNoCredentials(t *testing.T) {
	root := setupEnv(t)
	assert.Equal(t, 0, run([]string{"models", "--dry-run", "--category", "enemies"}))
	assert.NoFileExists(t, filepath.Join(root, "assets", "models", "_generation_log.json"))
}

func TestRigDryRunReportsMissingModels(t *testing.T) {
	setupEnv(t)
	// nothing is downloaded yet, so every rig target fails
	assert.Equal(t, 1, run([]string{"rig", "--dry-run", "--model", "fighter"}))
}

func TestMediaListings(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 0, run([]string{"images", "--list", "--category", "icons"}))
	assert.Equal(t, 0, run([]string{"sounds", "--list"}))
	assert.Equal(t, 0, run([]string{"voices", "--list"}))
}

func TestMediaRequireCredentials(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 1, run([]string{"images", "--category", "icons"}))
	assert.Equal(t, 1, run([]string{"sounds", "--category", "bgm"}))
	assert.Equal(t, 1, run([]string{"voices"}))
}

func TestSoundsDryRun(t *testing.T) {
	root := setupEnv(t)
	assert.Equal(t, 0, run([]string{"sounds", "--dry-run", "--category", "bgm"}))
	assert.NoFileExists(t, filepath.Join(root, "assets", "audio", "_generation_log.json"))
}

func TestQueueCommandsRequireRedis(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 1, run([]string{"enqueue", "--category", "enemies"}))
	assert.Equal(t, 1, run([]string{"status", "run-1"}))
}

func TestStatusUsage(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 2, run([]string{"status"}))
}

func TestStatus(t *testing.T) {
	setupEnv(t)
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())

	progress := service.NewProgressStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	ok := model.NewPipelineRun("run-ok", "enemy_goblin", "assets/models/enemy_goblin.glb")
	ok.Record(model.StepGenerate, model.StepSucceeded, "gen-1", "")
	ok.Record(model.StepDownload, model.StepSucceeded, "", "1024 bytes")
	ok.Outcome = model.OutcomeSucceeded
	require.NoError(t, progress.Save(ctx, ok))

	bad := model.NewPipelineRun("run-bad", "fighter", "assets/models/fighter.glb")
	bad.Record(model.StepGenerate, model.StepFailed, "gen-2", "rate limited")
	bad.Fail(errors.New("rate limited"))
	require.NoError(t, progress.Save(ctx, bad))

	assert.Equal(t, 0, run([]string{"status", "run-ok"}))
	assert.Equal(t, 1, run([]string{"status", "run-bad"}))
	assert.Equal(t, 1, run([]string{"status", "run-missing"}))
}
