// Package summarizer provides Markdown and JSON summaries of render runs.
package summarizer

import "time"

// Summary contains all data collected during a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time `json:"generated_at"`
	Project     string    `json:"project"`

	Scenes []SceneInfo `json:"scenes"`

	// Totals
	TotalBytes int64 `json:"total_bytes"`
	DurationMs int64 `json:"duration_ms"`

	Settings Settings `json:"settings"`
	Fonts    FontInfo `json:"fonts"`
}

// SceneInfo describes one written image.
type SceneInfo struct {
	Name   string  `json:"name"`
	Input  string  `json:"input,omitempty"` // empty for layers
	Layer  bool    `json:"layer,omitempty"`
	Scale  float64 `json:"scale"`
	Output string  `json:"output"`
	Format string  `json:"format"`

	Width    int `json:"width"`
	Height   int `json:"height"`
	Bytes    int `json:"bytes"`
	Overlays int `json:"overlays"`
}

// Settings contains the overlay geometry and worker count used.
type Settings struct {
	Workers      int     `json:"workers"`
	PaddingX     float64 `json:"padding_x"`
	PaddingY     float64 `json:"padding_y"`
	CornerRadius float64 `json:"corner_radius"`
	LineSpacing  float64 `json:"line_spacing"`
	WrapInset    float64 `json:"wrap_inset"`
	Guides       bool    `json:"guides"`
}

// FontInfo lists registered families and the requested families that were
// replaced by the default.
type FontInfo struct {
	Families  []string `json:"families"`
	Fallbacks []string `json:"fallbacks"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithProject sets the project file path.
func (b *Builder) WithProject(path string) *Builder {
	b.summary.Project = path
	return b
}

// WithScene appends a scene.
func (b *Builder) WithScene(scene SceneInfo) *Builder {
	b.summary.Scenes = append(b.summary.Scenes, scene)
	return b
}

// WithTotals sets the run totals.
func (b *Builder) WithTotals(totalBytes, durationMs int64) *Builder {
	b.summary.TotalBytes = totalBytes
	b.summary.DurationMs = durationMs
	return b
}

// WithSettings sets the render settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithFonts sets font information.
func (b *Builder) WithFonts(families, fallbacks []string) *Builder {
	b.summary.Fonts = FontInfo{
		Families:  families,
		Fallbacks: fallbacks,
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
