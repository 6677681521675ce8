package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// Task is one asset of a batch
type Task struct {
	Name string
	// Delay is waited after the task when another one follows and the task
	// contacted a remote service.
	Delay time.Duration
	Run   func(ctx context.Context) model.AssetResult
}

// Runner processes batch tasks strictly one after another
type Runner struct {
	logger *zap.Logger
	sleep  client.SleepFunc
}

// RunnerOption customizes a Runner
type RunnerOption func(*Runner)

// WithRunnerSleep replaces the sleep used between tasks.
func WithRunnerSleep(fn client.SleepFunc) RunnerOption {
	return func(r *Runner) {
		r.sleep = fn
	}
}

func NewRunner(logger *zap.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: logging.OrNop(logger),
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes tasks in order. A canceled context marks every remaining
// task failed.
func (r *Runner) Run(ctx context.Context, tasks []Task) *Summary {
	summary := &Summary{Results: make([]model.AssetResult, 0, len(tasks))}

	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			for _, rest := range tasks[i:] {
				res := model.NewAssetResult(rest.Name, "", model.OutcomeFailed)
				res.Error = err.Error()
				summary.Results = append(summary.Results, res)
			}
			break
		}

		r.logger.Info("processing asset",
			zap.Int("index", i+1),
			zap.Int("total", len(tasks)),
			zap.String("asset", task.Name),
		)

		res := task.Run(ctx)
		if res.Name == "" {
			res.Name = task.Name
		}
		summary.Results = append(summary.Results, res)

		if i == len(tasks)-1 || res.Outcome.Skipped() || task.Delay <= 0 {
			continue
		}
		if err := r.sleep(ctx, task.Delay); err != nil {
			r.logger.Warn("delay interrupted", zap.Error(err))
		}
	}

	return summary
}

// Summary is the aggregated outcome of a batch
type Summary struct {
	Results []model.AssetResult
}

// Succeeded lists generated assets and those already present.
func (s *Summary) Succeeded() []string {
	return s.names(func(r model.AssetResult) bool {
		return r.Outcome == model.OutcomeSucceeded || r.Outcome == model.OutcomeExisting
	})
}

// Failed lists failed assets.
func (s *Summary) Failed() []string {
	return s.names(model.AssetResult.Failed)
}

// Skipped lists assets that were not attempted for a reason other than
// already existing.
func (s *Summary) Skipped() []string {
	return s.names(func(r model.AssetResult) bool {
		return r.Outcome == model.OutcomeDryRun || r.Outcome == model.OutcomeMissing
	})
}

// Warnings maps asset names to their non-fatal problems.
func (s *Summary) Warnings() map[string][]string {
	out := make(map[string][]string)
	for _, r := range s.Results {
		if len(r.Warnings) > 0 {
			out[r.Name] = r.Warnings
		}
	}
	return out
}

// ExitCode is 1 when any asset failed.
func (s *Summary) ExitCode() int {
	if len(s.Failed()) > 0 {
		return 1
	}
	return 0
}

// RunLog converts the summary into its persisted form.
func (s *Summary) RunLog(runID string, settings map[string]any) *model.RunLog {
	log := &model.RunLog{
		RunID:     runID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Total:     len(s.Results),
		Succeeded: s.Succeeded(),
		Failed:    s.Failed(),
		Skipped:   s.Skipped(),
		Settings:  settings,
	}
	if w := s.Warnings(); len(w) > 0 {
		log.Warnings = w
	}
	return log
}

// Report logs the summary.
func (s *Summary) Report(logger *zap.Logger) {
	logger = logging.OrNop(logger)
	logger.Info("batch summary",
		zap.Int("total", len(s.Results)),
		zap.Strings("succeeded", s.Succeeded()),
		zap.Strings("failed", s.Failed()),
		zap.Strings("skipped", s.Skipped()),
	)
	for _, r := range s.Results {
		if r.Failed() {
			logger.Error("asset failed", zap.String("asset", r.Name), zap.String("error", r.Error))
		}
		for _, w := range r.Warnings {
			logger.Warn("asset warning", zap.String("asset", r.Name), zap.String("warning", w))
		}
	}
}

func (s *Summary) names(keep func(model.AssetResult) bool) []string {
	out := []string{}
	for _, r := range s.Results {
		if keep(r) {
			out = append(out, r.Name)
		}
	}
	return out
}

// WriteRunLog stores log as indented JSON at path.
func WriteRunLog(store Store, path string, log *model.RunLog) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run log: %w", err)
	}
	if err := store.Write(path, append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write run log: %w", err)
	}
	return nil
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
