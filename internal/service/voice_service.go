package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/catalog"
	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/logging"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// ErrNoVoice is returned for a line whose voice type has no assigned voice.
var ErrNoVoice = errors.New("no voice assigned")

// VoiceService speaks voice lines with text-to-speech
type VoiceService struct {
	gen          client.AudioGenerator
	simple       *SimpleGenerator
	assetsDir    string
	defaultModel string
	logger       *zap.Logger
}

func NewVoiceService(gen client.AudioGenerator, simple *SimpleGenerator, assetsDir, defaultModel string, logger *zap.Logger) *VoiceService {
	return &VoiceService{
		gen:          gen,
		simple:       simple,
		assetsDir:    assetsDir,
		defaultModel: defaultModel,
		logger:       logging.OrNop(logger),
	}
}

// OutputPath is where a voice line is stored.
func (s *VoiceService) OutputPath(line model.VoiceLine) string {
	return filepath.Join(s.assetsDir, "audio", "voice", line.Filename())
}

// Voices fetches the account's voices and assigns one to every voice type.
// A failed listing yields an empty assignment so each line fails on its own.
func (s *VoiceService) Voices(ctx context.Context) map[string]string {
	voices, err := s.gen.ListVoices(ctx)
	if err != nil {
		s.logger.Error("failed to fetch voices", zap.Error(err))
		return map[string]string{}
	}

	assigned := AssignVoiceTypes(voices)
	for _, vt := range catalog.VoiceTypes {
		s.logger.Info("voice assigned", zap.String("type", vt), zap.String("voice", assigned[vt]))
	}
	return assigned
}

// Generate speaks one line with the voice assigned to its type.
func (s *VoiceService) Generate(ctx context.Context, line model.VoiceLine, voices map[string]string) model.AssetResult {
	voiceID := voices[line.VoiceType]
	modelID := line.ModelID
	if modelID == "" {
		modelID = s.defaultModel
	}
	settings := line.Settings
	if settings == (model.VoiceSettings{}) {
		settings = model.VoiceSettings{Stability: 0.5, SimilarityBoost: 0.75}
	}

	return s.simple.Generate(ctx, SimpleJob{
		Name: line.Name,
		Path: s.OutputPath(line),
		Fields: []zap.Field{
			zap.String("voice", line.VoiceType),
			zap.String("text", line.Text),
		},
		Prepare: func() error {
			if voiceID == "" {
				return fmt.Errorf("%w for %s", ErrNoVoice, line.VoiceType)
			}
			return nil
		},
		Generate: func(ctx context.Context) ([]byte, error) {
			return s.gen.TextToSpeech(ctx, voiceID, &client.SpeechRequest{
				Text:          line.Text,
				ModelID:       modelID,
				VoiceSettings: settings,
			})
		},
	})
}

// Tasks wraps lines as batch tasks speaking with voices.
func (s *VoiceService) Tasks(lines []model.VoiceLine, voices map[string]string, delay time.Duration) []Task {
	tasks := make([]Task, len(lines))
	for i, line := range lines {
		tasks[i] = Task{
			Name:  line.Name,
			Delay: delay,
			Run: func(ctx context.Context) model.AssetResult {
				return s.Generate(ctx, line, voices)
			},
		}
	}
	return tasks
}

// AssignVoiceTypes maps every voice type to a voice id. Voices are matched
// by name and labels first; unmatched types fall back to the first male or
// female voice. An empty list assigns nothing.
func AssignVoiceTypes(voices []client.Voice) map[string]string {
	assigned := make(map[string]string)
	if len(voices) == 0 {
		return assigned
	}

	claim := func(voiceType, id string) {
		if _, ok := assigned[voiceType]; !ok {
			assigned[voiceType] = id
		}
	}

	var male, female []string
	for _, v := range voices {
		name := strings.ToLower(v.Name)
		gender := strings.ToLower(v.Labels["gender"])
		age := strings.ToLower(v.Labels["age"])
		useCase := strings.ToLower(v.Labels["use_case"])

		if strings.Contains(name, "deep") || (gender == "male" && labelsContain(v.Labels, "deep")) {
			claim(catalog.VoiceMaleDeep, v.VoiceID)
		}
		if strings.Contains(name, "old") || strings.Contains(name, "elder") ||
			(strings.Contains(gender, "male") && strings.Contains(age, "old")) {
			claim(catalog.VoiceMaleOld, v.VoiceID)
		}
		if gender == "female" && (strings.Contains(name, "bright") || strings.Contains(age, "young") || strings.Contains(name, "cheerful")) {
			claim(catalog.VoiceFemaleBright, v.VoiceID)
		}
		if strings.Contains(name, "narrator") || strings.Contains(useCase, "narration") {
			claim(catalog.VoiceNarrator, v.VoiceID)
		}

		switch gender {
		case "male":
			male = append(male, v.VoiceID)
		case "female":
			female = append(female, v.VoiceID)
		}
	}

	first := voices[0].VoiceID
	pick := func(ids []string, i int) string {
		switch {
		case len(ids) > i:
			return ids[i]
		case len(ids) > 0:
			return ids[0]
		default:
			return first
		}
	}

	claim(catalog.VoiceMaleDeep, pick(male, 0))
	claim(catalog.VoiceMaleOld, pick(male, 1))
	claim(catalog.VoiceFemaleBright, pick(female, 0))
	claim(catalog.VoiceNarrator, pick(male, 0))
	claim(catalog.VoiceMaleWarrior, pick(male, 0))
	claim(catalog.VoiceFemaleMage, pick(female, 0))
	claim(catalog.VoiceMonster, pick(male, 0))
	return assigned
}

func labelsContain(labels map[string]string, s string) bool {
	for k, v := range labels {
		if strings.Contains(strings.ToLower(k), s) || strings.Contains(strings.ToLower(v), s) {
			return true
		}
	}
	return false
}
