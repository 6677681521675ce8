package service

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// SoundService generates sound effects and music tracks
type SoundService struct {
	gen       client.AudioGenerator
	simple    *SimpleGenerator
	assetsDir string
}

func NewSoundService(gen client.AudioGenerator, simple *SimpleGenerator, assetsDir string) *SoundService {
	return &SoundService{
		gen:       gen,
		simple:    simple,
		assetsDir: assetsDir,
	}
}

// OutputPath is audio/bgm for music and audio/sfx for everything else.
func (s *SoundService) OutputPath(def model.SoundDefinition) string {
	dir := "sfx"
	if def.Category == model.SoundCategoryBGM {
		dir = "bgm"
	}
	return filepath.Join(s.assetsDir, "audio", dir, def.Filename())
}

// Generate produces one sound.
func (s *SoundService) Generate(ctx context.Context, def model.SoundDefinition) model.AssetResult {
	req := &client.SoundRequest{
		Text:            def.Text,
		DurationSeconds: def.DurationSeconds,
		PromptInfluence: def.PromptInfluence,
	}
	return s.simple.Generate(ctx, SimpleJob{
		Name: def.Name,
		Path: s.OutputPath(def),
		Fields: []zap.Field{
			zap.String("category", string(def.Category)),
			zap.Float64("duration", def.DurationSeconds),
			zap.String("text", def.Text),
		},
		Generate: func(ctx context.Context) ([]byte, error) {
			return s.gen.GenerateSound(ctx, req)
		},
	})
}

// Tasks wraps defs as batch tasks; music waits bgmDelay, effects sfxDelay.
func (s *SoundService) Tasks(defs []model.SoundDefinition, sfxDelay, bgmDelay time.Duration) []Task {
	tasks := make([]Task, len(defs))
	for i, def := range defs {
		delay := sfxDelay
		if def.Category == model.SoundCategoryBGM {
			delay = bgmDelay
		}
		tasks[i] = Task{
			Name:  def.Name,
			Delay: delay,
			Run: func(ctx context.Context) model.AssetResult {
				return s.Generate(ctx, def)
			},
		}
	}
	return tasks
}

// TotalDuration sums the requested durations of defs.
func TotalDuration(defs []model.SoundDefinition) float64 {
	var total float64
	for _, d := range defs {
		total += d.DurationSeconds
	}
	return total
}
