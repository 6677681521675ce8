package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/catalog"
	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/model"
	"github.com/dragonnestlite/assetgen/internal/service"
)

// modelSelection holds the flags shared by models and enqueue
type modelSelection struct {
	names       *[]string
	categories  *[]string
	catalogFile *string
	skipRefine  *bool
	skipRigging *bool
	publish     *bool
}

func selectionFlags(fs *pflag.FlagSet) *modelSelection {
	return &modelSelection{
		names:       fs.StringSliceP("model", "m", nil, "model names to process (repeatable)"),
		categories:  fs.StringSliceP("category", "c", nil, "model categories to process (repeatable)"),
		catalogFile: fs.String("catalog", "", "YAML catalog to use instead of the built-in one"),
		skipRefine:  fs.Bool("skip-refine", false, "keep the preview mesh instead of refining"),
		skipRigging: fs.Bool("skip-rigging", false, "do not rig characters"),
		publish:     fs.Bool("publish", false, "upload finished models to R2"),
	}
}

func (s *modelSelection) flags() service.ModelFlags {
	return service.ModelFlags{
		SkipRefine:  *s.skipRefine,
		SkipRigging: *s.skipRigging,
		Publish:     *s.publish,
	}
}

// definitions loads the catalog and applies the name and category filters.
func (s *modelSelection) definitions(a *app) ([]model.ModelDefinition, error) {
	defs := catalog.Models()
	if *s.catalogFile != "" {
		loaded, err := catalog.LoadModels(a.cfg.Paths.Resolve(*s.catalogFile))
		if err != nil {
			return nil, err
		}
		defs = loaded
	}
	valid := catalog.Names(model.ValidModelCategories)
	return catalog.Filter(defs, *s.names, *s.categories, valid, a.logger), nil
}

func modelsCommand(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int {
	sel := selectionFlags(fs)
	list := fs.Bool("list", false, "list the selected models and exit")
	dryRun := fs.Bool("dry-run", false, "show what would be generated without calling Meshy")
	pollInterval := fs.Duration("poll-interval", 0, "status poll interval (default from config)")
	outputDir := fs.String("output-dir", "", "directory for downloaded models (default assets/models)")

	return func(ctx context.Context, a *app, _ []string) int {
		defs, err := sel.definitions(a)
		if err != nil {
			a.logger.Error("failed to load catalog", zap.Error(err))
			return 1
		}
		if *list {
			printModels(os.Stdout, defs)
			return 0
		}
		if len(defs) == 0 {
			a.logger.Error("no models matched the filters")
			return 1
		}
		if !*dryRun && !a.requireCredential(a.cfg.Meshy.Require()) {
			return 1
		}

		dir := a.cfg.Paths.Assets("models")
		if *outputDir != "" {
			dir = a.cfg.Paths.Resolve(*outputDir)
		}
		interval := a.cfg.Meshy.PollInterval
		if *pollInterval > 0 {
			interval = *pollInterval
		}

		flags := sel.flags()
		var progress *service.ProgressStore
		if !*dryRun {
			progress = a.progressStore(ctx)
		}
		pipeline := a.modelPipeline(service.ModelOptions{
			ModelFlags:      flags,
			DryRun:          *dryRun,
			OutputDir:       dir,
			ReferenceRoot:   a.cfg.Paths.ProjectRoot,
			PollInterval:    interval,
			MaxPollAttempts: a.cfg.Meshy.MaxPollAttempts,
		}, progress)

		runID := uuid.New().String()
		a.logger.Info("generating models",
			zap.String("run", runID),
			zap.Int("count", len(defs)),
			zap.Bool("dryRun", *dryRun),
		)

		runner := service.NewRunner(a.logger)
		summary := runner.Run(ctx, pipeline.Tasks(runID, defs, a.cfg.Pipeline.ModelDelay))

		settings := map[string]any{
			"skip_refine":   flags.SkipRefine,
			"skip_rigging":  flags.SkipRigging,
			"publish":       flags.Publish,
			"poll_interval": interval.Seconds(),
		}
		return a.finish(summary, filepath.Join(dir, "_generation_log.json"), runID, *dryRun, settings)
	}
}

// modelPipeline wires the Meshy client with the optional progress store and
// R2 publisher.
func (a *app) modelPipeline(opts service.ModelOptions, progress *service.ProgressStore) *service.ModelPipeline {
	meshy := client.NewMeshyClient(&a.cfg.Meshy, a.logger)
	poller := client.NewPoller(a.logger)

	var options []service.PipelineOption
	if progress != nil {
		options = append(options, service.WithProgress(progress))
	}
	if opts.Publish {
		if pub := a.publisher(); pub != nil {
			options = append(options, service.WithPublisher(pub))
		}
	}
	return service.NewModelPipeline(meshy, poller, a.store, opts, a.logger, options...)
}

// publisher returns the R2 client, or nil with a warning when R2 is not
// usable.
func (a *app) publisher() client.Publisher {
	if !a.cfg.R2.IsConfigured() {
		a.logger.Warn("R2 is not configured, models are not published")
		return nil
	}
	r2, err := client.NewR2Client(&a.cfg.R2)
	if err != nil {
		a.logger.Warn("failed to create R2 client, models are not published", zap.Error(err))
		return nil
	}
	return r2
}

func printModels(w io.Writer, defs []model.ModelDefinition) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tMETHOD\tPOLY\tRIG\tPRI")
	for _, def := range defs {
		rig := ""
		if def.NeedsRigging {
			rig = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%d\n", def.Name, def.Category, def.Method, def.TargetPolycount, rig, def.Priority)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %d models\n", len(defs))
}

func rigCommand(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int {
	names := fs.StringSliceP("model", "m", nil, "models to rig (repeatable, default all rig targets)")
	dryRun := fs.Bool("dry-run", false, "show what would be rigged without calling Meshy")
	useLocal := fs.Bool("use-local", false, "send the local file as a data URI instead of the deployed URL")

	return func(ctx context.Context, a *app, _ []string) int {
		defs := catalog.Filter(catalog.RigTargets(), *names, nil, nil, a.logger)
		if len(defs) == 0 {
			a.logger.Error("no models to rig")
			return 1
		}
		if !*dryRun && !a.requireCredential(a.cfg.Meshy.Require()) {
			return 1
		}

		progress := a.progressStore(ctx)
		dir := a.cfg.Paths.Assets("models")
		rigger := service.NewRigService(
			client.NewMeshyClient(&a.cfg.Meshy, a.logger),
			client.NewPoller(a.logger),
			a.store,
			progress,
			service.RigOptions{
				ModelsDir:       dir,
				PublicURL:       a.cfg.R2.PublicURL,
				UseLocal:        *useLocal,
				DryRun:          *dryRun,
				PollInterval:    a.cfg.Meshy.RigPollInterval,
				MaxPollAttempts: a.cfg.Meshy.RigMaxPollAttempts,
			},
			a.logger,
		)

		runID := uuid.New().String()
		a.logger.Info("rigging models", zap.String("run", runID), zap.Int("count", len(defs)))

		runner := service.NewRunner(a.logger)
		summary := runner.Run(ctx, rigger.Tasks(runID, defs, a.cfg.Pipeline.RigDelay))

		settings := map[string]any{
			"use_local":     *useLocal,
			"poll_interval": a.cfg.Meshy.RigPollInterval.Seconds(),
			"delay":         a.cfg.Pipeline.RigDelay.Seconds(),
		}
		return a.finish(summary, filepath.Join(dir, "_rigging_log.json"), runID, *dryRun, settings)
	}
}
