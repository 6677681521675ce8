package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/dragonnestlite/assetgen/internal/model"
)

const (
	// TaskTypeModelGenerate runs the model pipeline for one asset.
	TaskTypeModelGenerate = "model:generate"
	// QueueModels is the only queue; the worker drains it one task at a time.
	QueueModels = "models"
)

// ModelJobPayload is the body of a model:generate task
type ModelJobPayload struct {
	RunID string `json:"runId"`
	Asset string `json:"asset"`
	ModelFlags
}

// taskEnvelope wraps every payload with the job id
type taskEnvelope struct {
	JobID   string          `json:"jobId"`
	Payload json.RawMessage `json:"payload"`
}

// enqueuer is the subset of *asynq.Client used to queue tasks
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueService hands model pipelines to the asynq worker
type QueueService struct {
	asynqClient enqueuer
	progress    *ProgressStore
}

func NewQueueService(asynqClient *asynq.Client, progress *ProgressStore) *QueueService {
	return &QueueService{
		asynqClient: asynqClient,
		progress:    progress,
	}
}

// Enqueue queues one task per definition under runID and returns the job
// ids in order.
func (s *QueueService) Enqueue(ctx context.Context, runID string, defs []model.ModelDefinition, flags ModelFlags) ([]string, error) {
	ids := make([]string, 0, len(defs))
	for _, def := range defs {
		jobID := uuid.New().String()

		payloadBytes, err := json.Marshal(&ModelJobPayload{
			RunID:      runID,
			Asset:      def.Name,
			ModelFlags: flags,
		})
		if err != nil {
			return ids, fmt.Errorf("failed to marshal payload: %w", err)
		}

		task, err := NewModelTask(jobID, payloadBytes)
		if err != nil {
			return ids, fmt.Errorf("failed to create task: %w", err)
		}

		_, err = s.asynqClient.EnqueueContext(ctx, task,
			asynq.Queue(QueueModels),
			asynq.MaxRetry(0),
			asynq.Retention(24*time.Hour),
			asynq.TaskID(jobID),
		)
		if err != nil {
			return ids, fmt.Errorf("failed to enqueue task: %w", err)
		}

		run := model.NewPipelineRun(runID, def.Name, "")
		run.Outcome = model.OutcomeQueued
		if err := s.progress.Save(ctx, run); err != nil {
			return ids, fmt.Errorf("failed to save job: %w", err)
		}
		ids = append(ids, jobID)
	}
	return ids, nil
}

// NewModelTask builds a model:generate task carrying payload.
func NewModelTask(jobID string, payload []byte) (*asynq.Task, error) {
	data, err := json.Marshal(taskEnvelope{
		JobID:   jobID,
		Payload: payload,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeModelGenerate, data), nil
}

// ParseModelTask unpacks a model:generate task.
func ParseModelTask(t *asynq.Task) (string, *ModelJobPayload, error) {
	var env taskEnvelope
	if err := json.Unmarshal(t.Payload(), &env); err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal task payload: %w", err)
	}

	var payload ModelJobPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return env.JobID, nil, fmt.Errorf("failed to unmarshal model payload: %w", err)
	}
	return env.JobID, &payload, nil
}
