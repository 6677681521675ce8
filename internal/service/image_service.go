package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/model"
)

// maxReferenceSide bounds the longest side of a reference image sent to the
// image model.
const maxReferenceSide = 1024

// ImageService generates 2D art with an image model
type ImageService struct {
	gen       client.ImageGenerator
	simple    *SimpleGenerator
	store     Store
	assetsDir string
}

func NewImageService(gen client.ImageGenerator, simple *SimpleGenerator, store Store, assetsDir string) *ImageService {
	return &ImageService{
		gen:       gen,
		simple:    simple,
		store:     store,
		assetsDir: assetsDir,
	}
}

// OutputPath is where def's image is stored.
func (s *ImageService) OutputPath(def model.ImageDefinition) string {
	return filepath.Join(s.assetsDir, def.Dir, def.Filename)
}

// ReferencePath is where def's reference image is read from.
func (s *ImageService) ReferencePath(def model.ImageDefinition) string {
	return filepath.Join(s.assetsDir, "reference", def.Reference)
}

// Generate produces one image. Definitions with a reference are edited from
// it and skipped when it is missing.
func (s *ImageService) Generate(ctx context.Context, def model.ImageDefinition) model.AssetResult {
	var reference *client.InlineImage

	job := SimpleJob{
		Name: def.Name,
		Path: s.OutputPath(def),
		Fields: []zap.Field{
			zap.String("category", string(def.Category)),
			zap.String("prompt", def.Prompt),
		},
		Generate: func(ctx context.Context) ([]byte, error) {
			img, err := s.gen.GenerateImage(ctx, def.Prompt, reference)
			if err != nil {
				return nil, err
			}
			return EncodePNG(img.Data, def.Category == model.ImageCategoryEffects)
		},
	}
	if def.Reference != "" {
		job.Fields = append(job.Fields, zap.String("reference", s.ReferencePath(def)))
		job.Prepare = func() error {
			ref, err := s.loadReference(s.ReferencePath(def))
			if err != nil {
				return err
			}
			reference = ref
			return nil
		}
	}

	return s.simple.Generate(ctx, job)
}

// Tasks wraps defs as batch tasks.
func (s *ImageService) Tasks(defs []model.ImageDefinition, delay time.Duration) []Task {
	tasks := make([]Task, len(defs))
	for i, def := range defs {
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

// loadReference reads a reference image and shrinks it to maxReferenceSide.
func (s *ImageService) loadReference(path string) (*client.InlineImage, error) {
	if !s.store.Exists(path) {
		return nil, fmt.Errorf("%w: %w: %s", ErrSkipped, ErrReferenceMissing, path)
	}
	data, err := s.store.Read(path)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode reference image: %w", err)
	}
	img = FitReference(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode reference image: %w", err)
	}
	return &client.InlineImage{MimeType: "image/png", Data: buf.Bytes()}, nil
}

// FitReference scales img down so its longest side is at most 1024 pixels.
func FitReference(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxReferenceSide && b.Dy() <= maxReferenceSide {
		return img
	}
	return imaging.Fit(img, maxReferenceSide, maxReferenceSide, imaging.Lanczos)
}

// EncodePNG re-encodes generated image bytes as PNG. With alpha set the
// image is converted to NRGBA so effect textures keep transparency.
func EncodePNG(data []byte, alpha bool) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode generated image: %w", err)
	}
	if alpha {
		img = imaging.Clone(img)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
