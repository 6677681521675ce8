package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/model"
	"github.com/dragonnestlite/assetgen/internal/service"
	"github.com/dragonnestlite/assetgen/internal/storage"
)

// stubMeshy finishes every job at once with a fixed model URL
type stubMeshy struct {
	submitted []model.TaskType
	fail      string
}

func (s *stubMeshy) Submit(_ context.Context, task model.TaskType, _ any) (string, error) {
	s.submitted = append(s.submitted, task)
	return string(task) + "-1", nil
}

func (s *stubMeshy) Status(_ context.Context, task model.TaskType, id string) (*model.Job, error) {
	job := &model.Job{ID: id, Type: task, Status: model.JobStatusSucceeded, RawStatus: "SUCCEEDED", Progress: 100}
	if s.fail != "" {
		job.Status, job.RawStatus, job.Error = model.JobStatusFailed, "FAILED", s.fail
		return job, nil
	}
	job.ModelURLs = map[string]string{"glb": "https://assets.example/" + id + ".glb"}
	return job, nil
}

func (s *stubMeshy) Download(_ context.Context, _ string, dest string, w client.ArtifactWriter) (int64, error) {
	return w.WriteStream(dest, strings.NewReader("glb"))
}

var crate = model.ModelDefinition{
	Name:            "crate",
	Filename:        "crate.glb",
	Category:        model.CategoryItems,
	Method:          model.MethodTextTo3D,
	TargetPolycount: 500,
	Prompt:          "wooden crate",
}

func newTestWorker(t *testing.T, meshy client.ModelGenerator, opts ...WorkerOption) (*ModelWorker, *service.ProgressStore, *storage.FileStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	progress := service.NewProgressStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	store := storage.NewFileStore(t.TempDir())
	poller := client.NewPoller(nil, client.WithSleep(func(context.Context, time.Duration) error { return nil }))
	pipeline := service.NewModelPipeline(meshy, poller, store, service.ModelOptions{
		OutputDir:       "models",
		PollInterval:    time.Second,
		MaxPollAttempts: 3,
	}, nil, service.WithProgress(progress))
	return NewModelWorker(pipeline, []model.ModelDefinition{crate}, progress, nil, opts...), progress, store
}

func newTask(t *testing.T, payload service.ModelJobPayload) *asynq.Task {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	task, err := service.NewModelTask("job-1", data)
	require.NoError(t, err)
	return task
}

func TestProcessTaskRunsPipeline(t *testing.T) {
	meshy := &stubMeshy{}
	w, progress, store := newTestWorker(t, meshy)

	err := w.ProcessTask(context.Background(), newTask(t, service.ModelJobPayload{
		RunID:      "run-1",
		Asset:      "crate",
		ModelFlags: service.ModelFlags{SkipRefine: true},
	}))
	require.NoError(t, err)

	assert.True(t, store.Exists("models/crate.glb"))
	assert.Equal(t, []model.TaskType{model.TaskTextTo3D}, meshy.submitted)

	run, err := progress.Get(context.Background(), "run-1", "crate")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSucceeded, run.Outcome)
}

func TestProcessTaskFailedAssetIsNotRetried(t *testing.T) {
	w, progress, _ := newTestWorker(t, &stubMeshy{fail: "bad prompt"})

	err := w.ProcessTask(context.Background(), newTask(t, service.ModelJobPayload{RunID: "run-1", Asset: "crate"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Contains(t, err.Error(), "bad prompt")

	run, err := progress.Get(context.Background(), "run-1", "crate")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeFailed, run.Outcome)
}

func TestProcessTaskUnknownAsset(t *testing.T) {
	w, progress, _ := newTestWorker(t, &stubMeshy{})

	err := w.ProcessTask(context.Background(), newTask(t, service.ModelJobPayload{RunID: "run-1", Asset: "ghost"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))

	run, err := progress.Get(context.Background(), "run-1", "ghost")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeFailed, run.Outcome)
}

func TestProcessTaskInvalidPayload(t *testing.T) {
	w, _, _ := newTestWorker(t, &stubMeshy{})

	err := w.ProcessTask(context.Background(), asynq.NewTask(service.TaskTypeModelGenerate, []byte("not json")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestProcessTaskWaitsDelayAfterWork(t *testing.T) {
	var waited []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		waited = append(waited, d)
		return nil
	}
	w, _, store := newTestWorker(t, &stubMeshy{}, WithDelay(5*time.Second), WithSleep(sleep))
	payload := service.ModelJobPayload{RunID: "run-1", Asset: "crate", ModelFlags: service.ModelFlags{SkipRefine: true}}

	require.NoError(t, w.ProcessTask(context.Background(), newTask(t, payload)))
	assert.Equal(t, []time.Duration{5 * time.Second}, waited)

	// the model now exists, so the second task does no work and does not wait
	require.True(t, store.Exists("models/crate.glb"))
	require.NoError(t, w.ProcessTask(context.Background(), newTask(t, payload)))
	assert.Len(t, waited, 1)
}

func TestProcessTaskWaitsAfterFailure(t *testing.T) {
	var waited int
	sleep := func(context.Context, time.Duration) error {
		waited++
		return nil
	}
	w, _, _ := newTestWorker(t, &stubMeshy{fail: "bad prompt"}, WithDelay(time.Second), WithSleep(sleep))

	err := w.ProcessTask(context.Background(), newTask(t, service.ModelJobPayload{RunID: "run-1", Asset: "crate"}))
	require.Error(t, err)
	assert.Equal(t, 1, waited)
}
