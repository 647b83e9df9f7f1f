package photoedit

import (
	"fmt"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/orchestrator"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// ProjectBuilder provides a fluent interface for building a project in code.
// With* methods apply to the most recently added scene.
type ProjectBuilder struct {
	jobs []orchestrator.Job
	err  error
}

// NewProjectBuilder creates a new ProjectBuilder.
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{}
}

// Photo adds a scene that draws onto the photo at input.
func (b *ProjectBuilder) Photo(input, output string) *ProjectBuilder {
	b.jobs = append(b.jobs, orchestrator.Job{
		Name:   fmt.Sprintf("scene-%d", len(b.jobs)+1),
		Input:  input,
		Scale:  1,
		Output: output,
		Format: formatFor(output),
	})
	return b
}

// Layer adds a transparent layer scene of canvasSize points.
func (b *ProjectBuilder) Layer(canvasSize float64, output string) *ProjectBuilder {
	b.jobs = append(b.jobs, orchestrator.Job{
		Name:       fmt.Sprintf("layer-%d", len(b.jobs)+1),
		LayerOnly:  true,
		CanvasSize: canvasSize,
		Scale:      1,
		Output:     output,
		Format:     formatFor(output),
	})
	return b
}

func (b *ProjectBuilder) current(method string) *orchestrator.Job {
	if len(b.jobs) == 0 {
		if b.err == nil {
			b.err = fmt.Errorf("%s called before Photo or Layer", method)
		}
		return &orchestrator.Job{}
	}
	return &b.jobs[len(b.jobs)-1]
}

// WithName names the current scene.
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.current("WithName").Name = name
	return b
}

// WithScale sets pixels per point for the current scene.
func (b *ProjectBuilder) WithScale(scale float64) *ProjectBuilder {
	b.current("WithScale").Scale = scale
	return b
}

// WithFormat sets the output encoding of the current scene.
func (b *ProjectBuilder) WithFormat(format ports.ImageFormat, quality int) *ProjectBuilder {
	job := b.current("WithFormat")
	job.Format = format
	job.Quality = quality
	return b
}

// WithMaxSize bounds the longest side of the current scene's output in
// pixels. Larger renders are downscaled on export.
func (b *ProjectBuilder) WithMaxSize(pixels int) *ProjectBuilder {
	b.current("WithMaxSize").MaxSize = pixels
	return b
}

// WithOverlay appends overlays to the current scene, topmost last.
func (b *ProjectBuilder) WithOverlay(overlays ...overlay.Overlay) *ProjectBuilder {
	job := b.current("WithOverlay")
	for _, o := range overlays {
		job.Overlays = append(job.Overlays, o.Clone())
	}
	return b
}

// Build returns the validated project.
func (b *ProjectBuilder) Build() (orchestrator.Config, error) {
	if b.err != nil {
		return orchestrator.Config{}, b.err
	}
	cfg := orchestrator.Config{Jobs: append([]orchestrator.Job(nil), b.jobs...)}
	if err := cfg.Validate(); err != nil {
		return orchestrator.Config{}, err
	}
	return cfg, nil
}

func formatFor(path string) ports.ImageFormat {
	for i := len(path) - 1; i >= 0 && path[i] != '/' && path[i] != '\\'; i-- {
		if path[i] == '.' {
			if f, err := ports.ParseImageFormat(path[i+1:]); err == nil {
				return f
			}
			break
		}
	}
	return ports.FormatPNG
}
