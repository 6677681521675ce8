package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/config"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/service"
	"github.com/dragonnestlite/assetgen/internal/storage"
)

// app is the state shared by every subcommand
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *storage.FileStore
}

type command struct {
	summary string
	flags   func(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int
}

var commands = map[string]command{
	"models":  {"generate 3D models with Meshy", modelsCommand},
	"rig":     {"rig already downloaded models", rigCommand},
	"images":  {"generate 2D images with Gemini", imagesCommand},
	"sounds":  {"generate sound effects and music with ElevenLabs", soundsCommand},
	"voices":  {"generate voice lines with ElevenLabs", voicesCommand},
	"enqueue": {"queue model generation for the worker", enqueueCommand},
	"worker":  {"process queued model generation", workerCommand},
	"status":  {"show the progress of a run", statusCommand},
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage()
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		return 2
	}

	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	envFile := fs.String("env-file", "", "path to the .env file (default $PROJECT_ROOT/.env)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	exec := cmd.flags(fs)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	defer logger.Sync() //nolint:errcheck

	if cfg.EnvFile != "" {
		logger.Debug("loaded env file", zap.String("path", cfg.EnvFile))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		cfg:    cfg,
		logger: logger,
		store:  storage.NewFileStore(""),
	}
	return exec(ctx, a, fs.Args())
}

func usage() {
	fmt.Fprintln(os.Stderr, "Dragon Nest Lite asset generator")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: assetgen <command> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", name, commands[name].summary)
	}
}

// requireCredential logs a missing credential and reports whether work may
// continue.
func (a *app) requireCredential(err error) bool {
	if err != nil {
		a.logger.Error("missing credential", zap.Error(err))
		return false
	}
	return true
}

// progressStore connects to Redis when it is configured.
func (a *app) progressStore(ctx context.Context) *service.ProgressStore {
	if a.cfg.Redis.Addr == "" {
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		a.logger.Warn("redis not available, progress is not recorded", zap.Error(err))
		redisClient.Close()
		return nil
	}
	return service.NewProgressStore(redisClient)
}

// finish reports the summary, writes the run log unless dry-running and
// returns the exit code.
func (a *app) finish(summary *service.Summary, logPath, runID string, dryRun bool, settings map[string]any) int {
	summary.Report(a.logger)
	if !dryRun && logPath != "" {
		if err := service.WriteRunLog(a.store, logPath, summary.RunLog(runID, settings)); err != nil {
			a.logger.Error("failed to write run log", zap.Error(err))
		} else {
			a.logger.Info("run log written", zap.String("path", logPath))
		}
	}
	return summary.ExitCode()
}
