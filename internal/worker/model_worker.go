package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/catalog"
	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
	"github.com/dragonnestlite/assetgen/internal/service"
)

// ModelWorker processes model:generate tasks
type ModelWorker struct {
	pipeline *service.ModelPipeline
	defs     []model.ModelDefinition
	progress *service.ProgressStore
	logger   *zap.Logger
	delay    time.Duration
	sleep    client.SleepFunc
}

// WorkerOption customizes a ModelWorker
type WorkerOption func(*ModelWorker)

// WithDelay pauses after every task that did remote work, so consecutive
// tasks are spaced like a batch run.
func WithDelay(d time.Duration) WorkerOption {
	return func(w *ModelWorker) {
		w.delay = d
	}
}

// WithSleep replaces the sleep used for the delay.
func WithSleep(fn client.SleepFunc) WorkerOption {
	return func(w *ModelWorker) {
		w.sleep = fn
	}
}

// NewModelWorker creates a new model worker resolving assets in defs
func NewModelWorker(pipeline *service.ModelPipeline, defs []model.ModelDefinition, progress *service.ProgressStore, logger *zap.Logger, opts ...WorkerOption) *ModelWorker {
	w := &ModelWorker{
		pipeline: pipeline,
		defs:     defs,
		progress: progress,
		logger:   logging.OrNop(logger),
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ProcessTask runs the model pipeline for the task's asset. Failed assets
// are never retried.
func (w *ModelWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	jobID, payload, err := service.ParseModelTask(t)
	if err != nil {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	logger := w.logger.With(zap.String("job", jobID), zap.String("run", payload.RunID), zap.String("asset", payload.Asset))
	logger.Info("starting model job")

	def, ok := catalog.Find(w.defs, payload.Asset)
	if !ok {
		err := fmt.Errorf("unknown asset %q", payload.Asset)
		w.failJob(ctx, payload, err)
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	run := w.pipeline.WithFlags(payload.ModelFlags).Run(ctx, payload.RunID, def)
	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Warn("model job cancelled")
		return ctx.Err()
	}
	w.pause(ctx, logger, run.Outcome)
	if run.Outcome == model.OutcomeFailed {
		return fmt.Errorf("model %s failed: %s: %w", def.Name, run.Error, asynq.SkipRetry)
	}

	logger.Info("model job completed", zap.String("outcome", string(run.Outcome)), zap.Int("warnings", len(run.Warnings)))
	return nil
}

func (w *ModelWorker) failJob(ctx context.Context, payload *service.ModelJobPayload, err error) {
	run := model.NewPipelineRun(payload.RunID, payload.Asset, "")
	run.Fail(err)
	if saveErr := w.progress.Save(ctx, run); saveErr != nil {
		w.logger.Warn("failed to mark job as failed", zap.Error(saveErr))
	}
}

func (w *ModelWorker) pause(ctx context.Context, logger *zap.Logger, outcome model.Outcome) {
	if w.delay <= 0 || outcome.Skipped() {
		return
	}
	logger.Debug("waiting before next task", zap.Duration("delay", w.delay))
	_ = w.sleep(ctx, w.delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
