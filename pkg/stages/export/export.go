// Package export implements the image export stage.
package export

import (
	"context"
	"fmt"
	"image"
	"math"
	"path/filepath"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/pipeline"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// DefaultQuality is the JPEG quality used when a target leaves it unset.
const DefaultQuality = 90

// Stage encodes composed images and writes them to their targets.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new export stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("export"),
	}
}

// Execute writes input.Images[i] to input.Targets[i].
func (s *Stage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	result := pipeline.ExportResult{}

	if len(input.Images) != len(input.Targets) {
		return result, fmt.Errorf("%d images but %d targets", len(input.Images), len(input.Targets))
	}

	for i, img := range input.Images {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		file, err := s.write(img, input.Targets[i])
		if err != nil {
			return result, fmt.Errorf("export %s: %w", img.Name, err)
		}
		result.Files = append(result.Files, file)
	}

	return result, nil
}

func (s *Stage) write(img pipeline.ComposedImage, target pipeline.ExportTarget) (pipeline.ExportedFile, error) {
	if img.Image == nil {
		return pipeline.ExportedFile{}, fmt.Errorf("no image")
	}
	if target.Path == "" {
		return pipeline.ExportedFile{}, fmt.Errorf("no output path")
	}

	out := s.fit(img.Image, target.MaxSize)

	quality := target.Quality
	if target.Format == ports.FormatJPEG && (quality <= 0 || quality > 100) {
		quality = DefaultQuality
	}

	data, err := s.renderer.EncodeImage(out, target.Format, quality)
	if err != nil {
		return pipeline.ExportedFile{}, fmt.Errorf("encode %s: %w", target.Format, err)
	}

	if dir := filepath.Dir(target.Path); dir != "." {
		if err := s.fs.MkdirAll(dir); err != nil {
			return pipeline.ExportedFile{}, fmt.Errorf("create directory: %w", err)
		}
	}
	if err := s.fs.WriteFile(target.Path, data); err != nil {
		return pipeline.ExportedFile{}, fmt.Errorf("write %s: %w", target.Path, err)
	}

	b := out.Bounds()
	s.logger.Info("Wrote %s (%dx%d, %d bytes)", target.Path, b.Dx(), b.Dy(), len(data))

	return pipeline.ExportedFile{
		Name:   img.Name,
		Path:   target.Path,
		Format: target.Format,
		Width:  b.Dx(),
		Height: b.Dy(),
		Bytes:  len(data),
	}, nil
}

// fit downscales img so its longer side is at most maxSize, keeping the
// aspect ratio. Images already within bounds are returned as is.
func (s *Stage) fit(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	long := max(w, h)
	if maxSize <= 0 || long <= maxSize {
		return img
	}

	nw := max(1, int(math.Round(float64(w)*float64(maxSize)/float64(long))))
	nh := max(1, int(math.Round(float64(h)*float64(maxSize)/float64(long))))
	s.logger.Debug("Downscaling %dx%d to %dx%d", w, h, nw, nh)
	return s.renderer.ResizeImage(img, nw, nh)
}
