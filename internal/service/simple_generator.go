package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// GenerateFunc produces the bytes of one asset with a single remote call
type GenerateFunc func(ctx context.Context) ([]byte, error)

// SimpleJob describes one single-call asset
type SimpleJob struct {
	Name string
	Path string
	// Fields are logged in dry-run mode.
	Fields []zap.Field
	// Prepare runs after the cache and dry-run checks and before any remote
	// call. An error wrapping ErrSkipped skips the asset; any other error
	// fails it.
	Prepare  func() error
	Generate GenerateFunc
}

// RetryPolicy bounds the attempts of a SimpleGenerator
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// Backoff is the wait after the given failed attempt: BaseDelay doubled
// for every earlier attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.BaseDelay * time.Duration(1<<(attempt-1))
}

// SimpleGenerator runs single-call generators: skip if the file exists,
// call the service with retries, then store the bytes.
type SimpleGenerator struct {
	store  Store
	retry  RetryPolicy
	dryRun bool
	sleep  client.SleepFunc
	logger *zap.Logger
}

// SimpleOption customizes a SimpleGenerator
type SimpleOption func(*SimpleGenerator)

// WithRetrySleep replaces the sleep used between attempts.
func WithRetrySleep(fn client.SleepFunc) SimpleOption {
	return func(g *SimpleGenerator) {
		g.sleep = fn
	}
}

func NewSimpleGenerator(store Store, retry RetryPolicy, dryRun bool, logger *zap.Logger, opts ...SimpleOption) *SimpleGenerator {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	g := &SimpleGenerator{
		store:  store,
		retry:  retry,
		dryRun: dryRun,
		sleep:  sleepContext,
		logger: logging.OrNop(logger),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces job.Path unless it already exists.
func (g *SimpleGenerator) Generate(ctx context.Context, job SimpleJob) model.AssetResult {
	logger := g.logger.With(zap.String("asset", job.Name))
	result := model.NewAssetResult(job.Name, job.Path, model.OutcomeSucceeded)

	if g.dryRun {
		logger.Info("dry run", append([]zap.Field{zap.String("output", job.Path), zap.Bool("exists", g.store.Exists(job.Path))}, job.Fields...)...)
		result.Outcome = model.OutcomeDryRun
		return result
	}

	if g.store.Exists(job.Path) {
		logger.Info("already exists, skipping", zap.String("path", job.Path))
		result.Outcome = model.OutcomeExisting
		return result
	}

	if job.Prepare != nil {
		if err := job.Prepare(); err != nil {
			if errors.Is(err, ErrSkipped) {
				logger.Warn("skipping asset", zap.Error(err))
				result.Outcome = model.OutcomeMissing
				result.Error = err.Error()
				return result
			}
			return g.fail(logger, result, err)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= g.retry.MaxAttempts; attempt++ {
		data, err := job.Generate(ctx)
		if err == nil {
			if err := g.store.Write(job.Path, data); err != nil {
				return g.fail(logger, result, err)
			}
			logger.Info("saved asset", zap.String("path", job.Path), zap.Int("bytes", len(data)))
			return result
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
		logger.Warn("attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max", g.retry.MaxAttempts),
			zap.Error(err),
		)
		if attempt == g.retry.MaxAttempts {
			break
		}

		wait := g.retry.Backoff(attempt)
		logger.Info("retrying", zap.Duration("wait", wait))
		if err := g.sleep(ctx, wait); err != nil {
			lastErr = err
			break
		}
	}

	return g.fail(logger, result, fmt.Errorf("all %d attempts failed: %w", g.retry.MaxAttempts, lastErr))
}

func (g *SimpleGenerator) fail(logger *zap.Logger, result model.AssetResult, err error) model.AssetResult {
	logger.Error("asset failed", zap.Error(err))
	result.Outcome = model.OutcomeFailed
	result.Error = err.Error()
	return result
}
