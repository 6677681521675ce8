package service

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragonnestlite/assetgen/internal/catalog"
	"github.com/dragonnestlite/assetgen/internal/model"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{Queue: QueueModels}, nil
}

func TestQueueServiceEnqueuesOneTaskPerModel(t *testing.T) {
	progress, _ := newTestProgress(t)
	enq := &fakeEnqueuer{}
	svc := &QueueService{asynqClient: enq, progress: progress}

	defs := catalog.Filter(catalog.Models(), []string{"fighter", "mage"}, nil, nil, nil)
	ids, err := svc.Enqueue(context.Background(), "run-7", defs, ModelFlags{SkipRigging: true})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.Len(t, enq.tasks, 2)

	for i, task := range enq.tasks {
		assert.Equal(t, TaskTypeModelGenerate, task.Type())
		jobID, payload, err := ParseModelTask(task)
		require.NoError(t, err)
		assert.Equal(t, ids[i], jobID)
		assert.Equal(t, "run-7", payload.RunID)
		assert.Equal(t, defs[i].Name, payload.Asset)
		assert.True(t, payload.SkipRigging)
		assert.False(t, payload.SkipRefine)
	}

	runs, err := progress.List(context.Background(), "run-7")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		assert.Equal(t, model.OutcomeQueued, r.Outcome)
	}
}

func TestParseModelTaskRejectsGarbage(t *testing.T) {
	_, _, err := ParseModelTask(asynq.NewTask(TaskTypeModelGenerate, []byte("{")))
	assert.Error(t, err)
}
