package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// ModelFlags are the per-run switches of the model pipeline
type ModelFlags struct {
	SkipRefine  bool `json:"skipRefine"`
	SkipRigging bool `json:"skipRigging"`
	Publish     bool `json:"publish"`
}

// ModelOptions configures a ModelPipeline
type ModelOptions struct {
	ModelFlags

	DryRun          bool
	OutputDir       string
	ReferenceRoot   string
	PollInterval    time.Duration
	MaxPollAttempts int
}

// ModelPipeline turns a model definition into a downloaded GLB: generate,
// optionally refine, optionally rig, then download. Steps run strictly in
// order and one asset at a time.
type ModelPipeline struct {
	meshy     client.ModelGenerator
	poller    *client.Poller
	store     Store
	progress  *ProgressStore
	publisher client.Publisher
	opts      ModelOptions
	logger    *zap.Logger
}

// PipelineOption customizes a ModelPipeline
type PipelineOption func(*ModelPipeline)

// WithProgress records every step in Redis.
func WithProgress(ps *ProgressStore) PipelineOption {
	return func(p *ModelPipeline) {
		p.progress = ps
	}
}

// WithPublisher uploads finished models when the Publish flag is set.
func WithPublisher(pub client.Publisher) PipelineOption {
	return func(p *ModelPipeline) {
		p.publisher = pub
	}
}

func NewModelPipeline(meshy client.ModelGenerator, poller *client.Poller, store Store, opts ModelOptions, logger *zap.Logger, options ...PipelineOption) *ModelPipeline {
	p := &ModelPipeline{
		meshy:  meshy,
		poller: poller,
		store:  store,
		opts:   opts,
		logger: logging.OrNop(logger),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// WithFlags returns a copy of the pipeline using flags.
func (p *ModelPipeline) WithFlags(flags ModelFlags) *ModelPipeline {
	cp := *p
	cp.opts.ModelFlags = flags
	return &cp
}

// OutputPath is where def's artifact is stored.
func (p *ModelPipeline) OutputPath(def model.ModelDefinition) string {
	return filepath.Join(p.opts.OutputDir, def.Filename)
}

// ReferencePath is where def's reference image is read from.
func (p *ModelPipeline) ReferencePath(def model.ModelDefinition) string {
	if filepath.IsAbs(def.ImagePath) {
		return def.ImagePath
	}
	return filepath.Join(p.opts.ReferenceRoot, def.ImagePath)
}

// Run executes the pipeline for one definition. Failures are recorded on
// the returned run, never returned.
func (p *ModelPipeline) Run(ctx context.Context, runID string, def model.ModelDefinition) *model.PipelineRun {
	output := p.OutputPath(def)
	run := model.NewPipelineRun(runID, def.Name, output)
	logger := p.logger.With(zap.String("asset", def.Name))

	if p.opts.DryRun {
		p.describe(logger, def, output)
		run.Outcome = model.OutcomeDryRun
		return run
	}

	if p.store.Exists(output) {
		logger.Info("already exists, skipping", zap.String("path", output))
		run.Outcome = model.OutcomeExisting
		p.save(ctx, run)
		return run
	}

	run.Outcome = model.OutcomeRunning
	p.save(ctx, run)

	logger.Info("generating model",
		zap.String("category", string(def.Category)),
		zap.String("method", string(def.Method)),
		zap.Int("polycount", def.TargetPolycount),
	)

	job, err := p.generate(ctx, run, def)
	if err != nil {
		p.fail(ctx, logger, run, model.StepGenerate, err)
		return run
	}

	url, warning, err := ModelURL(job)
	if err != nil {
		p.fail(ctx, logger, run, model.StepGenerate, err)
		return run
	}
	if warning != "" {
		p.warn(logger, run, warning)
	}
	run.BestURL = url

	if def.NeedsRigging && !p.opts.SkipRigging {
		p.rig(ctx, logger, run, def)
	}

	logger.Info("downloading model", zap.String("path", output))
	n, err := p.meshy.Download(ctx, run.BestURL, output, p.store)
	if err != nil {
		p.fail(ctx, logger, run, model.StepDownload, err)
		return run
	}
	run.Record(model.StepDownload, model.StepSucceeded, "", fmt.Sprintf("%d bytes", n))
	logger.Info("saved model", zap.String("path", output), zap.Int64("bytes", n))

	if p.opts.Publish && p.publisher != nil {
		p.publish(ctx, logger, run, def)
	}

	run.Outcome = model.OutcomeSucceeded
	p.save(ctx, run)
	if len(run.Warnings) > 0 {
		logger.Info("model complete with warnings", zap.Strings("warnings", run.Warnings))
	} else {
		logger.Info("model complete")
	}
	return run
}

// Tasks wraps defs as batch tasks of one run.
func (p *ModelPipeline) Tasks(runID string, defs []model.ModelDefinition, delay time.Duration) []Task {
	tasks := make([]Task, len(defs))
	for i, def := range defs {
		tasks[i] = Task{
			Name:  def.Name,
			Delay: delay,
			Run: func(ctx context.Context) model.AssetResult {
				return p.Run(ctx, runID, def).Result()
			},
		}
	}
	return tasks
}

// generate submits the generation job and, for text prompts, the refine
// pass. A failed refine keeps the preview result.
func (p *ModelPipeline) generate(ctx context.Context, run *model.PipelineRun, def model.ModelDefinition) (*model.Job, error) {
	var (
		task model.TaskType
		body any
	)

	switch def.Method {
	case model.MethodImageTo3D:
		ref := p.ReferencePath(def)
		if !p.store.Exists(ref) {
			return nil, fmt.Errorf("%w: %s", ErrReferenceMissing, ref)
		}
		data, err := p.store.Read(ref)
		if err != nil {
			return nil, err
		}
		task = model.TaskImageTo3D
		body = client.NewImageTo3DRequest(DataURI(ImageMimeType(ref), data), def.TargetPolycount)
	case model.MethodTextTo3D:
		task = model.TaskTextTo3D
		body = client.NewTextTo3DRequest(def.Prompt, def.TargetPolycount)
	default:
		return nil, fmt.Errorf("unknown generation method %q", def.Method)
	}

	job, err := p.submitAndWait(ctx, task, body)
	if err != nil {
		return nil, err
	}
	run.Record(model.StepGenerate, model.StepSucceeded, job.ID, "")
	p.save(ctx, run)

	if !def.NeedsRefinement() {
		return job, nil
	}
	if p.opts.SkipRefine {
		run.Record(model.StepRefine, model.StepSkipped, "", "")
		return job, nil
	}

	refined, err := p.submitAndWait(ctx, model.TaskRefine, client.NewRefineRequest(job.ID))
	if err != nil {
		run.Record(model.StepRefine, model.StepFallback, "", err.Error())
		p.warn(p.logger.With(zap.String("asset", def.Name)), run, "refine failed, using preview: "+err.Error())
		return job, nil
	}
	run.Record(model.StepRefine, model.StepSucceeded, refined.ID, "")
	p.save(ctx, run)
	return refined, nil
}

// rig replaces the working URL with the rigged GLB. Any failure keeps the
// unrigged model.
func (p *ModelPipeline) rig(ctx context.Context, logger *zap.Logger, run *model.PipelineRun, def model.ModelDefinition) {
	logger.Info("rigging model", zap.Float64("height", def.HeightMeters))

	job, err := p.submitAndWait(ctx, model.TaskRigging, &client.RiggingRequest{
		ModelURL:     run.BestURL,
		HeightMeters: def.HeightMeters,
	})
	if err != nil {
		run.Record(model.StepRig, model.StepFallback, "", err.Error())
		p.warn(logger, run, "rigging failed, keeping unrigged model: "+err.Error())
		return
	}

	url := RiggedURL(job)
	if url == "" {
		run.Record(model.StepRig, model.StepFallback, job.ID, "no rigged model URL")
		p.warn(logger, run, "rigging returned no model URL, keeping unrigged model")
		return
	}

	run.BestURL = url
	run.Record(model.StepRig, model.StepSucceeded, job.ID, "")
	p.save(ctx, run)
}

func (p *ModelPipeline) publish(ctx context.Context, logger *zap.Logger, run *model.PipelineRun, def model.ModelDefinition) {
	data, err := p.store.Read(run.Output)
	if err == nil {
		var url string
		url, err = p.publisher.Upload(ctx, client.ModelKey(def.Filename), bytes.NewReader(data), glbMimeType)
		if err == nil {
			run.Record(model.StepPublish, model.StepSucceeded, "", url)
			logger.Info("published model", zap.String("url", url))
			return
		}
	}
	run.Record(model.StepPublish, model.StepFailed, "", err.Error())
	p.warn(logger, run, "publish failed: "+err.Error())
}

func (p *ModelPipeline) submitAndWait(ctx context.Context, task model.TaskType, body any) (*model.Job, error) {
	id, err := p.meshy.Submit(ctx, task, body)
	if err != nil {
		return nil, err
	}
	p.logger.Info("task created", zap.String("label", task.Label()), zap.String("task", id))

	status := func(ctx context.Context, jobID string) (*model.Job, error) {
		return p.meshy.Status(ctx, task, jobID)
	}
	return p.poller.Wait(ctx, task.Label(), id, status, p.opts.PollInterval, p.opts.MaxPollAttempts)
}

func (p *ModelPipeline) describe(logger *zap.Logger, def model.ModelDefinition, output string) {
	fields := []zap.Field{
		zap.String("category", string(def.Category)),
		zap.String("method", string(def.Method)),
		zap.Int("polycount", def.TargetPolycount),
		zap.Bool("rigging", def.NeedsRigging),
		zap.String("output", output),
		zap.Bool("exists", p.store.Exists(output)),
	}
	if def.Method == model.MethodImageTo3D {
		fields = append(fields, zap.String("image", p.ReferencePath(def)))
	} else {
		fields = append(fields, zap.String("prompt", def.Prompt))
	}
	logger.Info("dry run", fields...)
}

func (p *ModelPipeline) warn(logger *zap.Logger, run *model.PipelineRun, msg string) {
	run.Warn(msg)
	logger.Warn(msg)
}

func (p *ModelPipeline) fail(ctx context.Context, logger *zap.Logger, run *model.PipelineRun, step model.Step, err error) {
	run.Record(step, model.StepFailed, "", err.Error())
	run.Fail(err)
	p.save(ctx, run)

	var jobErr *client.JobFailedError
	if errors.As(err, &jobErr) {
		logger.Error("model failed", zap.String("step", string(step)), zap.String("task", jobErr.JobID), zap.String("reason", jobErr.Message))
		return
	}
	logger.Error("model failed", zap.String("step", string(step)), zap.Error(err))
}

func (p *ModelPipeline) save(ctx context.Context, run *model.PipelineRun) {
	if err := p.progress.Save(ctx, run); err != nil {
		p.logger.Warn("failed to save progress", zap.String("asset", run.Asset), zap.Error(err))
	}
}

// ModelURL picks the downloadable model of a finished generation job: GLB,
// then OBJ, then the legacy model_url. The second value is a warning when a
// fallback was used.
func ModelURL(job *model.Job) (string, string, error) {
	if url := job.ModelURLs["glb"]; url != "" {
		return url, "", nil
	}
	if url := job.ModelURLs["obj"]; url != "" {
		return url, "GLB not available, using OBJ", nil
	}
	if job.ModelURL != "" {
		return job.ModelURL, "model_urls missing, using model_url", nil
	}
	return "", "", fmt.Errorf("%w (task %s)", ErrNoModelURL, job.ID)
}

// RiggedURL picks the rigged GLB of a finished rigging job.
func RiggedURL(job *model.Job) string {
	if job.RiggedGLBURL != "" {
		return job.RiggedGLBURL
	}
	return job.ModelURLs["glb"]
}
