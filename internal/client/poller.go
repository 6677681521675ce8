package client

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// StatusFunc fetches the current state of a remote job
type StatusFunc func(ctx context.Context, jobID string) (*model.Job, error)

// SleepFunc blocks for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Poller waits for remote jobs to reach a terminal state
type Poller struct {
	logger *zap.Logger
	sleep  SleepFunc
}

// PollerOption customizes a Poller
type PollerOption func(*Poller)

// WithSleep replaces the sleep used between polls.
func WithSleep(fn SleepFunc) PollerOption {
	return func(p *Poller) {
		p.sleep = fn
	}
}

// NewPoller creates a new poller
func NewPoller(logger *zap.Logger, opts ...PollerOption) *Poller {
	p := &Poller{
		logger: logging.OrNop(logger),
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Wait calls status until the job succeeds, fails, or maxAttempts calls have
// seen a non-terminal state. It sleeps interval between calls and never
// after the last one.
func (p *Poller) Wait(ctx context.Context, label, jobID string, status StatusFunc, interval time.Duration, maxAttempts int) (*model.Job, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	p.logger.Info("polling task", zap.String("label", label), zap.String("task", jobID))

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		job, err := status(ctx, jobID)
		if err != nil {
			p.logger.Error("poll failed",
				zap.String("label", label),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return nil, err
		}

		fields := []zap.Field{
			zap.String("label", label),
			zap.Int("attempt", attempt),
			zap.Int("max", maxAttempts),
			zap.String("status", job.RawStatus),
			zap.Int("progress", job.Progress),
		}
		if job.PrecedingTasks > 0 {
			fields = append(fields, zap.Int("queue", job.PrecedingTasks))
		}
		p.logger.Info("poll", fields...)

		switch {
		case job.Status == model.JobStatusSucceeded:
			p.logger.Info("task completed", zap.String("label", label), zap.String("task", jobID))
			return job, nil
		case job.Status.IsFailure():
			return nil, newJobFailedError(label, job)
		case job.Status == model.JobStatusUnknown:
			p.logger.Warn("unrecognized task status, still waiting",
				zap.String("label", label),
				zap.String("status", job.RawStatus),
			)
		}

		if attempt == maxAttempts {
			break
		}
		if err := p.sleep(ctx, interval); err != nil {
			return nil, err
		}
	}

	return nil, &PollTimeoutError{
		Label:  label,
		JobID:  jobID,
		Waited: time.Duration(maxAttempts) * interval,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
