// Package decode implements the photo decoding stage.
package decode

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/pipeline"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// Stage reads a photo from disk and decodes it, honoring EXIF orientation.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("decode"),
	}
}

// Execute decodes input.Path. A non-positive scale means 1 pixel per point.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.DecodeResult{}, err
	}
	if input.Path == "" {
		return pipeline.DecodeResult{}, fmt.Errorf("no input path")
	}

	data, err := s.fs.ReadFile(input.Path)
	if err != nil {
		return pipeline.DecodeResult{}, fmt.Errorf("read %s: %w", input.Path, err)
	}

	img, err := s.renderer.DecodeImage(data)
	if err != nil {
		return pipeline.DecodeResult{}, fmt.Errorf("decode %s: %w", input.Path, err)
	}

	scale := input.Scale
	if scale <= 0 {
		scale = 1
	}

	b := img.Bounds()
	s.logger.Debug("Decoded %s: %dx%d at %.2gx", input.Path, b.Dx(), b.Dy(), scale)

	if s.sink.Enabled() {
		if err := s.sink.SaveSource(sourceName(input.Path), img); err != nil {
			s.logger.Warn("Failed to save debug output: %v", err)
		}
	}

	return pipeline.DecodeResult{Photo: pipeline.Photo{Image: img, Scale: scale}}, nil
}

func sourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
