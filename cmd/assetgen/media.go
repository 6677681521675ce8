package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/catalog"
	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/model"
	"github.com/dragonnestlite/assetgen/internal/service"
)

func imagesCommand(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int {
	names := fs.StringSliceP("name", "n", nil, "image names to generate (repeatable)")
	categories := fs.StringSliceP("category", "c", nil, "image categories to generate (repeatable)")
	list := fs.Bool("list", false, "list the selected images and exit")
	dryRun := fs.Bool("dry-run", false, "show what would be generated without calling Gemini")

	return func(ctx context.Context, a *app, _ []string) int {
		valid := catalog.Names(model.ValidImageCategories)
		defs := catalog.Filter(catalog.Images(), *names, *categories, valid, a.logger)

		gemini := client.NewGeminiClient(&a.cfg.Gemini, a.logger)
		simple := service.NewSimpleGenerator(a.store, service.RetryPolicy{
			MaxAttempts: a.cfg.Gemini.MaxRetries,
			BaseDelay:   a.cfg.Gemini.RetryBaseDelay,
		}, *dryRun, a.logger)
		images := service.NewImageService(gemini, simple, a.store, a.cfg.Paths.Assets())

		if *list {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "STATE\tNAME\tCATEGORY\tPATH")
			for _, def := range defs {
				path := images.OutputPath(def)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", state(a, path), def.Name, def.Category, path)
			}
			tw.Flush()
			fmt.Printf("\nTotal: %d images\n", len(defs))
			return 0
		}
		if len(defs) == 0 {
			a.logger.Error("no images matched the filters")
			return 1
		}
		if !*dryRun && !a.requireCredential(a.cfg.Gemini.Require()) {
			return 1
		}

		a.logger.Info("generating images", zap.Int("count", len(defs)), zap.String("model", a.cfg.Gemini.Model))
		summary := service.NewRunner(a.logger).Run(ctx, images.Tasks(defs, a.cfg.Pipeline.ImageDelay))

		settings := map[string]any{
			"model":       a.cfg.Gemini.Model,
			"max_retries": a.cfg.Gemini.MaxRetries,
		}
		return a.finish(summary, a.cfg.Paths.Assets("_image_generation_log.json"), "", *dryRun, settings)
	}
}

func soundsCommand(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int {
	names := fs.StringSliceP("name", "n", nil, "sound names to generate (repeatable)")
	categories := fs.StringSliceP("category", "c", nil, "sound categories to generate (repeatable)")
	list := fs.Bool("list", false, "list the selected sounds and exit")
	dryRun := fs.Bool("dry-run", false, "show what would be generated without calling ElevenLabs")

	return func(ctx context.Context, a *app, _ []string) int {
		valid := catalog.Names(model.ValidSoundCategories)
		defs := catalog.Filter(catalog.Sounds(), *names, *categories, valid, a.logger)

		simple := service.NewSimpleGenerator(a.store, elevenLabsRetry(a), *dryRun, a.logger)
		sounds := service.NewSoundService(client.NewElevenLabsClient(&a.cfg.ElevenLabs, a.logger), simple, a.cfg.Paths.Assets())

		if *list {
			printSounds(os.Stdout, a, sounds, defs)
			return 0
		}
		if len(defs) == 0 {
			a.logger.Error("no sounds matched the filters")
			return 1
		}
		if !*dryRun && !a.requireCredential(a.cfg.ElevenLabs.Require()) {
			return 1
		}

		a.logger.Info("generating sounds",
			zap.Int("count", len(defs)),
			zap.Float64("totalSeconds", service.TotalDuration(defs)),
		)
		tasks := sounds.Tasks(defs, a.cfg.Pipeline.SoundDelay, a.cfg.Pipeline.BGMDelay)
		summary := service.NewRunner(a.logger).Run(ctx, tasks)

		settings := map[string]any{
			"total_duration_seconds": service.TotalDuration(defs),
		}
		return a.finish(summary, a.cfg.Paths.Assets("audio", "_generation_log.json"), "", *dryRun, settings)
	}
}

func printSounds(w io.Writer, a *app, sounds *service.SoundService, defs []model.SoundDefinition) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tNAME\tCATEGORY\tSECONDS\tTEXT")
	for _, def := range defs {
		text := def.Text
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\n", state(a, sounds.OutputPath(def)), def.Name, def.Category, def.DurationSeconds, text)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %d sounds, %.1f seconds\n", len(defs), service.TotalDuration(defs))
}

func voicesCommand(fs *pflag.FlagSet) func(ctx context.Context, a *app, args []string) int {
	names := fs.StringSliceP("name", "n", nil, "voice line names to generate (repeatable)")
	categories := fs.StringSliceP("category", "c", nil, "voice categories to generate (repeatable)")
	list := fs.Bool("list", false, "list the selected voice lines and exit")
	dryRun := fs.Bool("dry-run", false, "show what would be generated without calling ElevenLabs")

	return func(ctx context.Context, a *app, _ []string) int {
		valid := catalog.Names(model.ValidVoiceCategories)
		lines := catalog.Filter(catalog.Voices(), *names, *categories, valid, a.logger)

		simple := service.NewSimpleGenerator(a.store, elevenLabsRetry(a), *dryRun, a.logger)
		voices := service.NewVoiceService(
			client.NewElevenLabsClient(&a.cfg.ElevenLabs, a.logger),
			simple,
			a.cfg.Paths.Assets(),
			a.cfg.ElevenLabs.TTSModel,
			a.logger,
		)

		if *list {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "STATE\tNAME\tVOICE\tTEXT")
			for _, line := range lines {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", state(a, voices.OutputPath(line)), line.Name, line.VoiceType, line.Text)
			}
			tw.Flush()
			fmt.Printf("\nTotal: %d voice lines\n", len(lines))
			return 0
		}
		if len(lines) == 0 {
			a.logger.Error("no voice lines matched the filters")
			return 1
		}
		if !*dryRun && !a.requireCredential(a.cfg.ElevenLabs.Require()) {
			return 1
		}

		assigned := map[string]string{}
		if !*dryRun {
			assigned = voices.Voices(ctx)
		}

		a.logger.Info("generating voice lines", zap.Int("count", len(lines)))
		summary := service.NewRunner(a.logger).Run(ctx, voices.Tasks(lines, assigned, a.cfg.Pipeline.VoiceDelay))

		settings := map[string]any{
			"model":  a.cfg.ElevenLabs.TTSModel,
			"voices": assigned,
		}
		return a.finish(summary, a.cfg.Paths.Assets("audio", "voice", "_generation_log.json"), "", *dryRun, settings)
	}
}

func elevenLabsRetry(a *app) service.RetryPolicy {
	return service.RetryPolicy{
		MaxAttempts: a.cfg.ElevenLabs.MaxRetries,
		BaseDelay:   a.cfg.ElevenLabs.RetryBaseDelay,
	}
}

func state(a *app, path string) string {
	if a.store.Exists(path) {
		return "[EXISTS]"
	}
	return "[TODO]"
}
