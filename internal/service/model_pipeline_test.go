package service

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/catalog"
	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/model"
	"github.com/dragonnestlite/assetgen/internal/storage"
)

const testOutputDir = "assets/models"

func fighterDef(t *testing.T) model.ModelDefinition {
	t.Helper()
	def, ok := catalog.Find(catalog.Models(), "fighter")
	require.True(t, ok)
	return def
}

func rockDef() model.ModelDefinition {
	return model.ModelDefinition{
		Name:            "rock",
		Filename:        "rock.glb",
		Category:        model.CategoryEnvironment,
		Method:          model.MethodTextTo3D,
		TargetPolycount: 800,
		Prompt:          "mossy rock",
	}
}

func newTestPipeline(meshy client.ModelGenerator, store Store, logger *zap.Logger, opts ...PipelineOption) *ModelPipeline {
	poller := client.NewPoller(logger, client.WithSleep((&noSleep{}).sleep))
	return NewModelPipeline(meshy, poller, store, ModelOptions{
		OutputDir:       testOutputDir,
		PollInterval:    15 * time.Second,
		MaxPollAttempts: 5,
	}, logger, opts...)
}

func writeReference(t *testing.T, store *storage.FileStore, def model.ModelDefinition) {
	t.Helper()
	require.NoError(t, store.Write(def.ImagePath, []byte("\x89PNG fake reference")))
}

func TestFighterRiggingFailureKeepsUnriggedModel(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	logger, logs := observedLogger()
	def := fighterDef(t)
	writeReference(t, store, def)

	glb := fake.file("/files/fighter.glb", "unrigged fighter")
	fake.task("/v1/image-to-3d", "gen-1", running(), running(), succeeded(glb))
	fake.task("/v1/rigging", "rig-1", running(), failed("mesh not humanoid"))

	pipeline := newTestPipeline(fake.client(), store, logger)
	runner := NewRunner(logger, WithRunnerSleep((&noSleep{}).sleep))

	summary := runner.Run(context.Background(), pipeline.Tasks("run-1", []model.ModelDefinition{def}, 2*time.Second))

	data, err := store.Read(testOutputDir + "/fighter.glb")
	require.NoError(t, err)
	assert.Equal(t, "unrigged fighter", string(data))

	assert.Equal(t, 3, fake.pollCount("gen-1"))
	assert.Equal(t, 2, fake.pollCount("rig-1"))

	assert.Equal(t, []string{"fighter"}, summary.Succeeded())
	assert.Empty(t, summary.Failed())
	assert.Equal(t, 0, summary.ExitCode())

	log := summary.RunLog("run-1", nil)
	require.Contains(t, log.Warnings, "fighter")
	assert.True(t, containsAny(log.Warnings["fighter"], "mesh not humanoid"))

	warned := false
	for _, e := range logs.FilterLevelExact(zap.WarnLevel).All() {
		if strings.Contains(e.Message, "rigging failed") {
			warned = true
		}
	}
	assert.True(t, warned, "expected a rigging warning")

	imageURL, _ := fake.body("/v1/image-to-3d")["image_url"].(string)
	assert.True(t, strings.HasPrefix(imageURL, "data:image/png;base64,"))
	assert.Equal(t, glb, fake.body("/v1/rigging")["model_url"])
	assert.Equal(t, def.HeightMeters, fake.body("/v1/rigging")["height_meters"])
}

func TestExistingArtifactMakesNoCalls(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	def := fighterDef(t)
	require.NoError(t, store.Write(testOutputDir+"/fighter.glb", []byte("already here")))

	run := newTestPipeline(fake.client(), store, nil).Run(context.Background(), "run-1", def)

	assert.Equal(t, model.OutcomeExisting, run.Outcome)
	assert.Zero(t, fake.callCount())
	data, err := store.Read(testOutputDir + "/fighter.glb")
	require.NoError(t, err)
	assert.Equal(t, "already here", string(data))
}

func TestDryRunReportsExistingArtifactAsSkipped(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	require.NoError(t, store.Write(testOutputDir+"/fighter.glb", []byte("already here")))
	pipeline := NewModelPipeline(fake.client(), client.NewPoller(nil), store, ModelOptions{OutputDir: testOutputDir, DryRun: true}, nil)

	summary := NewRunner(nil).Run(context.Background(), pipeline.Tasks("run-1", []model.ModelDefinition{fighterDef(t)}, 0))

	assert.Empty(t, summary.Succeeded())
	assert.Equal(t, []string{"fighter"}, summary.Skipped())
	assert.Zero(t, fake.callCount())
}

func TestMissingReferenceFailsWithoutCalls(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)

	run := newTestPipeline(fake.client(), store, nil).Run(context.Background(), "run-1", fighterDef(t))

	assert.Equal(t, model.OutcomeFailed, run.Outcome)
	assert.Contains(t, run.Error, ErrReferenceMissing.Error())
	assert.Zero(t, fake.callCount())
	assert.False(t, store.Exists(testOutputDir+"/fighter.glb"))
}

func TestRefineFailureKeepsPreview(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)

	preview := fake.file("/files/preview.glb", "preview mesh")
	fake.task("/v2/text-to-3d", "preview-1", succeeded(preview))

	// refine shares the preview endpoint, so its job is scripted at submit time
	meshy := &refineSwitch{ModelGenerator: fake.client(), fake: fake, refineID: "refine-1", statuses: []string{running(), failed("")}}
	pipeline := newTestPipeline(meshy, store, nil)

	run := pipeline.Run(context.Background(), "run-1", rockDef())

	assert.Equal(t, model.OutcomeSucceeded, run.Outcome)
	data, err := store.Read(testOutputDir + "/rock.glb")
	require.NoError(t, err)
	assert.Equal(t, "preview mesh", string(data))
	require.Len(t, run.Warnings, 1)
	assert.Contains(t, run.Warnings[0], model.UnknownJobError)
	assert.Equal(t, "refine", fake.body("/v2/text-to-3d")["mode"])
}

// refineSwitch scripts the refine job right before it is submitted.
type refineSwitch struct {
	client.ModelGenerator
	fake     *meshyFake
	refineID string
	statuses []string
}

func (r *refineSwitch) Submit(ctx context.Context, task model.TaskType, body any) (string, error) {
	if task == model.TaskRefine {
		r.fake.task("/v2/text-to-3d", r.refineID, r.statuses...)
	}
	return r.ModelGenerator.Submit(ctx, task, body)
}

func TestSkipRefineAndRigging(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)

	preview := fake.file("/files/preview.glb", "preview mesh")
	fake.task("/v2/text-to-3d", "preview-1", succeeded(preview))

	def := rockDef()
	def.NeedsRigging = true
	pipeline := newTestPipeline(fake.client(), store, nil).WithFlags(ModelFlags{SkipRefine: true, SkipRigging: true})

	run := pipeline.Run(context.Background(), "run-1", def)

	assert.Equal(t, model.OutcomeSucceeded, run.Outcome)
	assert.Empty(t, run.Warnings)
	assert.Equal(t, "preview", fake.body("/v2/text-to-3d")["mode"])
	assert.Nil(t, fake.body("/v1/rigging"))
}

func TestRiggingSuccessDownloadsRiggedModel(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	def := fighterDef(t)
	writeReference(t, store, def)

	glb := fake.file("/files/fighter.glb", "unrigged")
	riggedGLB := fake.file("/files/fighter_rigged.glb", "rigged")
	fake.task("/v1/image-to-3d", "gen-1", succeeded(glb))
	fake.task("/v1/rigging", "rig-1", running(), rigged(riggedGLB, ""))

	run := newTestPipeline(fake.client(), store, nil).Run(context.Background(), "run-1", def)

	require.Equal(t, model.OutcomeSucceeded, run.Outcome, run.Error)
	data, err := store.Read(testOutputDir + "/fighter.glb")
	require.NoError(t, err)
	assert.Equal(t, "rigged", string(data))
	assert.Equal(t, riggedGLB, run.BestURL)
}

func TestGenerationFailureFailsAsset(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	fake.task("/v2/text-to-3d", "preview-1", running(), failed("content policy"))

	run := newTestPipeline(fake.client(), store, nil).Run(context.Background(), "run-1", rockDef())

	assert.Equal(t, model.OutcomeFailed, run.Outcome)
	assert.Contains(t, run.Error, "content policy")
	assert.False(t, store.Exists(testOutputDir+"/rock.glb"))
}

func TestGenerationTimeoutFailsAsset(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	fake.task("/v2/text-to-3d", "preview-1", running())

	run := newTestPipeline(fake.client(), store, nil).Run(context.Background(), "run-1", rockDef())

	assert.Equal(t, model.OutcomeFailed, run.Outcome)
	assert.Equal(t, 5, fake.pollCount("preview-1"))
	assert.Contains(t, run.Error, "timed out")
}

func TestDownloadFailureLeavesNoArtifact(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	fake.task("/v2/text-to-3d", "preview-1", succeeded(fake.srv.URL+"/files/missing.glb"))

	run := newTestPipeline(fake.client(), store, nil).WithFlags(ModelFlags{SkipRefine: true}).Run(context.Background(), "run-1", rockDef())

	assert.Equal(t, model.OutcomeFailed, run.Outcome)
	assert.False(t, store.Exists(testOutputDir+"/rock.glb"))
	last := run.Steps[len(run.Steps)-1]
	assert.Equal(t, model.StepDownload, last.Step)
}

func TestDryRunTouchesNothing(t *testing.T) {
	fake := newMeshyFake(t)
	root := t.TempDir()
	store := storage.NewFileStore(root)
	poller := client.NewPoller(nil)
	pipeline := NewModelPipeline(fake.client(), poller, store, ModelOptions{OutputDir: testOutputDir, DryRun: true}, nil)

	run := pipeline.Run(context.Background(), "run-1", fighterDef(t))

	assert.Equal(t, model.OutcomeDryRun, run.Outcome)
	assert.Zero(t, fake.callCount())
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPipelineRecordsProgress(t *testing.T) {
	mr := miniredis.RunT(t)
	progress := NewProgressStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	fake := newMeshyFake(t)
	store := newTestStore(t)
	preview := fake.file("/files/preview.glb", "preview mesh")
	fake.task("/v2/text-to-3d", "preview-1", succeeded(preview))

	pipeline := newTestPipeline(fake.client(), store, nil, WithProgress(progress)).WithFlags(ModelFlags{SkipRefine: true})
	pipeline.Run(context.Background(), "run-9", rockDef())

	saved, err := progress.Get(context.Background(), "run-9", "rock")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSucceeded, saved.Outcome)
	assert.Equal(t, preview, saved.BestURL)
}

type fakePublisher struct {
	keys []string
	err  error
}

func (p *fakePublisher) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.keys = append(p.keys, key)
	return p.PublicURL(key), nil
}

func (p *fakePublisher) PublicURL(key string) string {
	return "https://cdn.example/" + key
}

func TestPublishUploadsModel(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	preview := fake.file("/files/preview.glb", "preview mesh")
	fake.task("/v2/text-to-3d", "preview-1", succeeded(preview))
	pub := &fakePublisher{}

	pipeline := newTestPipeline(fake.client(), store, nil, WithPublisher(pub)).
		WithFlags(ModelFlags{SkipRefine: true, Publish: true})
	run := pipeline.Run(context.Background(), "run-1", rockDef())

	assert.Equal(t, model.OutcomeSucceeded, run.Outcome)
	assert.Equal(t, []string{"models/rock.glb"}, pub.keys)
}

func TestPublishFailureIsWarning(t *testing.T) {
	fake := newMeshyFake(t)
	store := newTestStore(t)
	preview := fake.file("/files/preview.glb", "preview mesh")
	fake.task("/v2/text-to-3d", "preview-1", succeeded(preview))

	pipeline := newTestPipeline(fake.client(), store, nil, WithPublisher(&fakePublisher{err: errors.New("bucket gone")})).
		WithFlags(ModelFlags{SkipRefine: true, Publish: true})
	run := pipeline.Run(context.Background(), "run-1", rockDef())

	assert.Equal(t, model.OutcomeSucceeded, run.Outcome)
	assert.True(t, containsAny(run.Warnings, "bucket gone"))
}

func TestModelURLFallbacks(t *testing.T) {
	url, warn, err := ModelURL(&model.Job{ModelURLs: map[string]string{"glb": "a.glb", "obj": "a.obj"}})
	require.NoError(t, err)
	assert.Equal(t, "a.glb", url)
	assert.Empty(t, warn)

	url, warn, err = ModelURL(&model.Job{ModelURLs: map[string]string{"obj": "a.obj"}, ModelURL: "legacy"})
	require.NoError(t, err)
	assert.Equal(t, "a.obj", url)
	assert.NotEmpty(t, warn)

	url, warn, err = ModelURL(&model.Job{ModelURL: "legacy"})
	require.NoError(t, err)
	assert.Equal(t, "legacy", url)
	assert.NotEmpty(t, warn)

	_, _, err = ModelURL(&model.Job{ID: "t1"})
	assert.ErrorIs(t, err, ErrNoModelURL)
}

func TestRiggedURL(t *testing.T) {
	assert.Equal(t, "r.glb", RiggedURL(&model.Job{RiggedGLBURL: "r.glb", ModelURLs: map[string]string{"glb": "m.glb"}}))
	assert.Equal(t, "m.glb", RiggedURL(&model.Job{ModelURLs: map[string]string{"glb": "m.glb"}}))
	assert.Empty(t, RiggedURL(&model.Job{}))
}

func TestImageMimeTypeAndDataURI(t *testing.T) {
	assert.Equal(t, "image/png", ImageMimeType("a.PNG"))
	assert.Equal(t, "image/jpeg", ImageMimeType("a.jpg"))
	assert.Equal(t, "image/jpeg", ImageMimeType("a.jpeg"))
	assert.Equal(t, "image/webp", ImageMimeType("a.webp"))
	assert.Equal(t, "image/png", ImageMimeType("a.gif"))
	assert.Equal(t, "data:image/png;base64,aGk=", DataURI("image/png", []byte("hi")))
}
