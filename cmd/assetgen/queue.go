package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/service"
	"github.com/dragonnestlite/assetgen/internal/worker"
)

func (a *app) redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	}
}

func (a *app) requireRedis() bool {
	if a.cfg.Redis.Addr == "" {
		a.logger.Error("REDIS_ADDR is not set, queue mode needs Redis")
		return false
	}
	return true
}

func enqueueCommand(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int {
	sel := selectionFlags(fs)

	return func(ctx context.Context, a *app, _ []string) int {
		if !a.requireRedis() {
			return 1
		}
		defs, err := sel.definitions(a)
		if err != nil {
			a.logger.Error("failed to load catalog", zap.Error(err))
			return 1
		}
		if len(defs) == 0 {
			a.logger.Error("no models matched the filters")
			return 1
		}

		asynqClient := asynq.NewClient(a.redisOpt())
		defer asynqClient.Close()

		queue := service.NewQueueService(asynqClient, a.progressStore(ctx))
		runID := uuid.New().String()
		ids, err := queue.Enqueue(ctx, runID, defs, sel.flags())
		if err != nil {
			a.logger.Error("failed to enqueue models", zap.String("run", runID), zap.Int("queued", len(ids)), zap.Error(err))
			return 1
		}

		a.logger.Info("models queued", zap.String("run", runID), zap.Int("count", len(ids)))
		fmt.Println(runID)
		return 0
	}
}

func workerCommand(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int {
	catalogFile := fs.String("catalog", "", "YAML catalog to resolve queued assets against")

	return func(ctx context.Context, a *app, _ []string) int {
		if !a.requireRedis() || !a.requireCredential(a.cfg.Meshy.Require()) {
			return 1
		}

		sel := &modelSelection{names: new([]string), categories: new([]string), catalogFile: catalogFile}
		defs, err := sel.definitions(a)
		if err != nil {
			a.logger.Error("failed to load catalog", zap.Error(err))
			return 1
		}

		// the publisher is wired whenever R2 is configured; each task's flags
		// decide whether it is used
		progress := a.progressStore(ctx)
		pipeline := a.modelPipeline(service.ModelOptions{
			OutputDir:       a.cfg.Paths.Assets("models"),
			ReferenceRoot:   a.cfg.Paths.ProjectRoot,
			PollInterval:    a.cfg.Meshy.PollInterval,
			MaxPollAttempts: a.cfg.Meshy.MaxPollAttempts,
			ModelFlags:      service.ModelFlags{Publish: a.cfg.R2.IsConfigured()},
		}, progress)
		modelWorker := worker.NewModelWorker(pipeline, defs, progress, a.logger, worker.WithDelay(a.cfg.Pipeline.ModelDelay))

		srv := asynq.NewServer(a.redisOpt(), asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				service.QueueModels: 1,
			},
			Logger:          a.logger.Sugar(),
			ShutdownTimeout: 10 * time.Second,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(service.TaskTypeModelGenerate, modelWorker.ProcessTask)

		if err := srv.Start(mux); err != nil {
			a.logger.Error("asynq worker error", zap.Error(err))
			return 1
		}
		a.logger.Info("worker started", zap.String("queue", service.QueueModels), zap.Int("models", len(defs)))

		<-ctx.Done()
		a.logger.Info("shutting down worker")
		srv.Shutdown()
		return 0
	}
}

func statusCommand(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int {
	return func(ctx context.Context, a *app, args []string) int {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: assetgen status RUN_ID")
			return 2
		}
		if !a.requireRedis() {
			return 1
		}

		progress := a.progressStore(ctx)
		if progress == nil {
			return 1
		}

		runs, err := progress.List(ctx, args[0])
		if errors.Is(err, service.ErrRunNotFound) {
			a.logger.Error("run not found", zap.String("run", args[0]))
			return 1
		}
		if err != nil {
			a.logger.Error("failed to read run", zap.Error(err))
			return 1
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ASSET\tOUTCOME\tSTEPS\tDETAIL")
		failed := false
		for _, run := range runs {
			steps := make([]string, len(run.Steps))
			for i, s := range run.Steps {
				steps[i] = fmt.Sprintf("%s:%s", s.Step, s.Outcome)
			}
			detail := run.Error
			if detail == "" {
				detail = strings.Join(run.Warnings, "; ")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", run.Asset, run.Outcome, strings.Join(steps, " "), detail)
			failed = failed || run.Result().Failed()
		}
		tw.Flush()

		if failed {
			return 1
		}
		return 0
	}
}
