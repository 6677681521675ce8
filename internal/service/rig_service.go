package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
)

var (
	// ErrModelNotFound is returned when the model to rig is not on disk.
	ErrModelNotFound = errors.New("not found locally")
	// ErrNoPublicURL is returned when deployed models cannot be addressed.
	ErrNoPublicURL = errors.New("no public URL configured for deployed models, use --use-local")
)

// RigOptions configures a RigService
type RigOptions struct {
	ModelsDir       string
	BackupDir       string
	PublicURL       string
	UseLocal        bool
	DryRun          bool
	PollInterval    time.Duration
	MaxPollAttempts int
}

// RigService rigs models that were already downloaded. The original file is
// backed up once before the rigged model replaces it.
type RigService struct {
	meshy    client.ModelGenerator
	poller   *client.Poller
	store    Store
	progress *ProgressStore
	opts     RigOptions
	logger   *zap.Logger
}

func NewRigService(meshy client.ModelGenerator, poller *client.Poller, store Store, progress *ProgressStore, opts RigOptions, logger *zap.Logger) *RigService {
	if opts.BackupDir == "" {
		opts.BackupDir = filepath.Join(opts.ModelsDir, "_backup_unrigged")
	}
	return &RigService{
		meshy:    meshy,
		poller:   poller,
		store:    store,
		progress: progress,
		opts:     opts,
		logger:   logging.OrNop(logger),
	}
}

// Rig runs the rigging job for def and replaces its local model.
func (s *RigService) Rig(ctx context.Context, runID string, def model.ModelDefinition) *model.PipelineRun {
	local := filepath.Join(s.opts.ModelsDir, def.Filename)
	run := model.NewPipelineRun(runID, def.Name, local)
	logger := s.logger.With(zap.String("asset", def.Name))

	if !s.store.Exists(local) {
		s.fail(ctx, logger, run, model.StepRig, fmt.Errorf("%s %w", def.Filename, ErrModelNotFound))
		return run
	}

	logger.Info("rigging model", zap.String("file", def.Filename), zap.Float64("height", def.HeightMeters))
	if s.opts.DryRun {
		run.Outcome = model.OutcomeDryRun
		return run
	}

	run.Outcome = model.OutcomeRunning
	s.save(ctx, run)

	source, err := s.sourceURL(def, local)
	if err != nil {
		s.fail(ctx, logger, run, model.StepRig, err)
		return run
	}

	id, err := s.meshy.Submit(ctx, model.TaskRigging, &client.RiggingRequest{
		ModelURL:     source,
		HeightMeters: def.HeightMeters,
	})
	if err != nil {
		s.fail(ctx, logger, run, model.StepRig, err)
		return run
	}
	logger.Info("task created", zap.String("task", id))

	status := func(ctx context.Context, jobID string) (*model.Job, error) {
		return s.meshy.Status(ctx, model.TaskRigging, jobID)
	}
	job, err := s.poller.Wait(ctx, model.TaskRigging.Label(), id, status, s.opts.PollInterval, s.opts.MaxPollAttempts)
	if err != nil {
		s.fail(ctx, logger, run, model.StepRig, err)
		return run
	}

	url := RiggedURL(job)
	if url == "" {
		s.fail(ctx, logger, run, model.StepRig, fmt.Errorf("%w (task %s)", ErrNoModelURL, job.ID))
		return run
	}
	run.BestURL = url
	run.Record(model.StepRig, model.StepSucceeded, job.ID, "")
	for name := range job.Animations {
		logger.Info("basic animation available", zap.String("animation", name))
	}

	backup, copied, err := s.store.Backup(local, s.opts.BackupDir)
	if err != nil {
		s.fail(ctx, logger, run, model.StepDownload, err)
		return run
	}
	if copied {
		logger.Info("backed up original", zap.String("path", backup))
	}

	n, err := s.meshy.Download(ctx, url, local, s.store)
	if err != nil {
		s.fail(ctx, logger, run, model.StepDownload, err)
		return run
	}
	run.Record(model.StepDownload, model.StepSucceeded, "", fmt.Sprintf("%d bytes", n))
	logger.Info("downloaded rigged model", zap.String("path", local), zap.Int64("bytes", n))

	if walk := job.Animations["walking_glb_url"]; walk != "" {
		animPath := filepath.Join(s.opts.ModelsDir, def.Name+"_walk.glb")
		if _, err := s.meshy.Download(ctx, walk, animPath, s.store); err != nil {
			run.Warn("failed to download walk animation: " + err.Error())
			logger.Warn("failed to download walk animation", zap.Error(err))
		} else {
			logger.Info("downloaded walk animation", zap.String("path", animPath))
		}
	}

	run.Outcome = model.OutcomeSucceeded
	s.save(ctx, run)
	logger.Info("model rigged")
	return run
}

// Tasks wraps defs as batch tasks of one run.
func (s *RigService) Tasks(runID string, defs []model.ModelDefinition, delay time.Duration) []Task {
	tasks := make([]Task, len(defs))
	for i, def := range defs {
		tasks[i] = Task{
			Name:  def.Name,
			Delay: delay,
			Run: func(ctx context.Context) model.AssetResult {
				return s.Rig(ctx, runID, def).Result()
			},
		}
	}
	return tasks
}

// sourceURL is the deployed model URL, or the local file as a data URI.
func (s *RigService) sourceURL(def model.ModelDefinition, local string) (string, error) {
	if s.opts.UseLocal {
		data, err := s.store.Read(local)
		if err != nil {
			return "", err
		}
		uri := DataURI(glbMimeType, data)
		s.logger.Info("encoded local model", zap.String("asset", def.Name), zap.Int("bytes", len(data)), zap.Int("chars", len(uri)))
		return uri, nil
	}
	if s.opts.PublicURL == "" {
		return "", ErrNoPublicURL
	}
	url := strings.TrimRight(s.opts.PublicURL, "/") + "/" + client.ModelKey(def.Filename)
	s.logger.Info("using deployed URL", zap.String("asset", def.Name), zap.String("url", url))
	return url, nil
}

func (s *RigService) fail(ctx context.Context, logger *zap.Logger, run *model.PipelineRun, step model.Step, err error) {
	run.Record(step, model.StepFailed, "", err.Error())
	run.Fail(err)
	s.save(ctx, run)
	logger.Error("rigging failed", zap.Error(err))
}

func (s *RigService) save(ctx context.Context, run *model.PipelineRun) {
	if err := s.progress.Save(ctx, run); err != nil {
		s.logger.Warn("failed to save progress", zap.String("asset", run.Asset), zap.Error(err))
	}
}
