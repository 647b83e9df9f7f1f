// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/pipeline"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// Job is one scene to render and write.
type Job struct {
	Name string `json:"name"`

	// Input is the photo path. Layer jobs have none.
	Input     string  `json:"input,omitempty"`
	LayerOnly bool    `json:"layer,omitempty"`
	Scale     float64 `json:"scale"`

	// CanvasSize is the layer side in points; ignored for photo jobs.
	CanvasSize float64 `json:"canvas_size,omitempty"`

	Overlays []overlay.Overlay `json:"overlays"`

	Output  string            `json:"output"`
	Format  ports.ImageFormat `json:"-"`
	Quality int               `json:"quality,omitempty"`

	// MaxSize bounds the longest side of the written image in pixels.
	MaxSize int `json:"max_size,omitempty"`
}

// Config contains all configuration for the orchestrator.
type Config struct {
	Jobs []Job
}

// Validate reports the first job that cannot run.
func (c Config) Validate() error {
	if len(c.Jobs) == 0 {
		return errors.New("no scenes")
	}
	for i, j := range c.Jobs {
		switch {
		case j.Output == "":
			return fmt.Errorf("scene %d (%s): no output path", i, j.Name)
		case j.LayerOnly && j.CanvasSize <= 0:
			return fmt.Errorf("scene %d (%s): layer needs a positive canvas size", i, j.Name)
		case !j.LayerOnly && j.Input == "":
			return fmt.Errorf("scene %d (%s): no input photo", i, j.Name)
		case j.MaxSize < 0:
			return fmt.Errorf("scene %d (%s): negative max size", i, j.Name)
		}
	}
	return nil
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	decodeStage    pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult]
	exportStage    pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult]
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult],
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decodeStage:    decodeStage,
		compositeStage: compositeStage,
		exportStage:    exportStage,
		sink:           sink,
		logger:         logger,
	}
}

// Run decodes every photo, composites every scene, then writes the results.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := time.Now()

	if err := config.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("invalid config: %w", err)
	}

	o.logger.Info("Starting run: %d scenes", len(config.Jobs))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(config.Jobs, "", "  "); err == nil {
			if err := o.sink.SaveProjectJSON(data); err != nil {
				o.logger.Warn("Failed to save debug output: %v", err)
			}
		}
	}

	// 1. Decode photos
	scenes := make([]pipeline.Scene, len(config.Jobs))
	for i, job := range config.Jobs {
		scene, err := o.buildScene(ctx, job)
		if err != nil {
			o.logger.Error("Failed to decode %s: %v", job.Input, err)
			return RunResult{}, fmt.Errorf("decode stage: %w", err)
		}
		scenes[i] = scene
	}

	// 2. Composite
	o.logger.Info("Compositing %d scenes", len(scenes))
	composite, err := o.compositeStage.Execute(ctx, pipeline.CompositeInput{Scenes: scenes})
	if err != nil {
		o.logger.Error("Failed to composite: %v", err)
		return RunResult{}, fmt.Errorf("composite stage: %w", err)
	}

	// 3. Export
	o.logger.Info("Exporting %d images", len(composite.Images))
	exported, err := o.exportStage.Execute(ctx, buildExportInput(config, composite))
	if err != nil {
		o.logger.Error("Failed to write output: %v", err)
		return RunResult{}, fmt.Errorf("export stage: %w", err)
	}

	elapsed := time.Since(start)
	o.logger.Info("Run completed in %d ms", elapsed.Milliseconds())

	return buildResult(config, exported, elapsed), nil
}

func (o *Orchestrator) buildScene(ctx context.Context, job Job) (pipeline.Scene, error) {
	scene := pipeline.Scene{
		Name:       job.Name,
		Overlays:   job.Overlays,
		LayerOnly:  job.LayerOnly,
		CanvasSize: job.CanvasSize,
		Photo:      pipeline.Photo{Scale: job.Scale},
	}
	if job.LayerOnly {
		if scene.Photo.Scale <= 0 {
			scene.Photo.Scale = 1
		}
		return scene, nil
	}

	o.logger.Info("Decoding %s", job.Input)
	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{Path: job.Input, Scale: job.Scale})
	if err != nil {
		return pipeline.Scene{}, err
	}
	scene.Photo = decoded.Photo
	return scene, nil
}

func buildExportInput(config Config, composite pipeline.CompositeResult) pipeline.ExportInput {
	targets := make([]pipeline.ExportTarget, len(config.Jobs))
	for i, job := range config.Jobs {
		targets[i] = pipeline.ExportTarget{
			Path:    job.Output,
			Format:  job.Format,
			Quality: job.Quality,
			MaxSize: job.MaxSize,
		}
	}
	return pipeline.ExportInput{Images: composite.Images, Targets: targets}
}

func buildResult(config Config, exported pipeline.ExportResult, elapsed time.Duration) RunResult {
	result := RunResult{DurationMs: elapsed.Milliseconds()}
	for i, f := range exported.Files {
		job := config.Jobs[i]
		result.Scenes = append(result.Scenes, SceneResult{
			Name:      f.Name,
			Input:     job.Input,
			LayerOnly: job.LayerOnly,
			Scale:     job.Scale,
			Output:    f.Path,
			Format:    f.Format,
			Width:     f.Width,
			Height:    f.Height,
			Bytes:     f.Bytes,
			Overlays:  len(job.Overlays),
		})
		result.TotalBytes += int64(f.Bytes)
	}
	return result
}

// RunResult contains the results of a run for summary generation.
type RunResult struct {
	Scenes     []SceneResult
	TotalBytes int64
	DurationMs int64
}

// SceneResult describes one written scene.
type SceneResult struct {
	Name      string
	Input     string
	LayerOnly bool
	Scale     float64
	Output    string
	Format    ports.ImageFormat
	Width     int
	Height    int
	Bytes     int
	Overlays  int
}
