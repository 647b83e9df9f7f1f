// Package config provides project file loading.
//
// A project is a YAML document listing scenes, each a photo (or a bare
// transparent layer) with the overlays drawn on it:
//
//	workers: 4
//	out_dir: ./out
//	max_size: 2048
//	scenes:
//	  - input: beach.jpg
//	    scale: 2
//	    overlays:
//	      - text: "Sunset"
//	        position: [0, 120]
//	        font_size: 36
//	        font_weight: bold
//	        background: true
//	        background_color: "#000000"
//	        opacity: 0.4
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/compositor"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/orchestrator"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// Config represents a project file.
type Config struct {
	// Output
	OutDir  string `yaml:"out_dir"`
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`
	MaxSize int    `yaml:"max_size"`

	// Rendering
	Workers int    `yaml:"workers"`
	FontDir string `yaml:"font_dir"`

	// Overlay geometry, in points
	PaddingX     float64 `yaml:"padding_x"`
	PaddingY     float64 `yaml:"padding_y"`
	CornerRadius float64 `yaml:"corner_radius"`
	LineSpacing  float64 `yaml:"line_spacing"`
	WrapInset    float64 `yaml:"wrap_inset"`
	Guides       bool    `yaml:"guides"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	Scenes []SceneConfig `yaml:"scenes"`

	// baseDir is the project file's directory. Relative outputs land
	// there when out_dir is unset.
	baseDir string
}

// SceneConfig is one photo or layer.
type SceneConfig struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Format, Quality and MaxSize override the project defaults.
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`
	MaxSize int    `yaml:"max_size"`

	Scale      float64 `yaml:"scale"`
	Layer      bool    `yaml:"layer"`
	CanvasSize float64 `yaml:"canvas_size"`

	Overlays []OverlayConfig `yaml:"overlays"`
}

// OverlayConfig is one text overlay.
type OverlayConfig struct {
	Text       string  `yaml:"text"`
	Position   Vector  `yaml:"position"`
	FontSize   float64 `yaml:"font_size"`
	FontWeight string  `yaml:"font_weight"`
	FontFamily string  `yaml:"font_family"`
	TextColor  string  `yaml:"text_color"`

	Background      bool     `yaml:"background"`
	BackgroundColor string   `yaml:"background_color"`
	Opacity         *float64 `yaml:"opacity"`

	// MeasuredSize records a previous measurement; FixedBackgroundSize
	// freezes the background box. Commit freezes it to MeasuredSize.
	MeasuredSize        *Size `yaml:"measured_size"`
	FixedBackgroundSize *Size `yaml:"fixed_background_size"`
	Commit              bool  `yaml:"commit"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	opts := compositor.DefaultOptions()
	return Config{
		Format:  "png",
		Quality: 90,

		Workers: 4,

		PaddingX:     opts.PaddingX,
		PaddingY:     opts.PaddingY,
		CornerRadius: opts.CornerRadius,
		LineSpacing:  opts.LineSpacing,
		WrapInset:    opts.WrapInset,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads a project from a YAML file. Relative scene inputs,
// out_dir and font_dir are resolved against the file's directory, as are
// relative outputs when no out_dir is set.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}

	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes a project over Defaults.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(base string) {
	c.baseDir = base
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i := range c.Scenes {
		c.Scenes[i].Input = join(c.Scenes[i].Input)
	}
	if c.OutDir != "" {
		c.OutDir = join(c.OutDir)
	}
	if c.FontDir != "" {
		c.FontDir = join(c.FontDir)
	}
}

// CompositorOptions returns the overlay geometry.
func (c Config) CompositorOptions() compositor.Options {
	opts := compositor.DefaultOptions()
	opts.PaddingX = c.PaddingX
	opts.PaddingY = c.PaddingY
	opts.CornerRadius = c.CornerRadius
	if c.LineSpacing > 0 {
		opts.LineSpacing = c.LineSpacing
	}
	opts.WrapInset = c.WrapInset
	opts.Guides = c.Guides
	return opts
}

// ToOrchestratorConfig converts the project into jobs. layersOnly keeps
// only layer scenes.
func (c Config) ToOrchestratorConfig(layersOnly bool) (orchestrator.Config, error) {
	var out orchestrator.Config

	for i, s := range c.Scenes {
		if layersOnly && !s.Layer {
			continue
		}
		job, err := c.job(i, s)
		if err != nil {
			return orchestrator.Config{}, err
		}
		out.Jobs = append(out.Jobs, job)
	}

	if len(out.Jobs) == 0 {
		if layersOnly {
			return out, fmt.Errorf("no layer scenes")
		}
		return out, fmt.Errorf("no scenes")
	}
	return out, nil
}

func (c Config) job(i int, s SceneConfig) (orchestrator.Job, error) {
	name := s.Name
	if name == "" {
		if s.Input != "" {
			base := filepath.Base(s.Input)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		} else {
			name = fmt.Sprintf("layer-%d", i+1)
		}
	}
	where := fmt.Sprintf("scene %d (%s)", i+1, name)

	formatName := s.Format
	if formatName == "" && s.Output != "" {
		formatName = strings.TrimPrefix(filepath.Ext(s.Output), ".")
	}
	if formatName == "" {
		formatName = c.Format
	}
	format, err := ports.ParseImageFormat(formatName)
	if err != nil {
		return orchestrator.Job{}, fmt.Errorf("%s: %w", where, err)
	}

	quality := s.Quality
	if quality == 0 {
		quality = c.Quality
	}

	output := s.Output
	if output == "" {
		output = name + format.Extension()
	}
	if !filepath.IsAbs(output) {
		switch {
		case c.OutDir != "":
			output = filepath.Join(c.OutDir, output)
		case c.baseDir != "":
			output = filepath.Join(c.baseDir, output)
		}
	}

	maxSize := s.MaxSize
	if maxSize == 0 {
		maxSize = c.MaxSize
	}
	if maxSize < 0 {
		return orchestrator.Job{}, fmt.Errorf("%s: max_size %d is negative", where, maxSize)
	}

	overlays := make([]overlay.Overlay, 0, len(s.Overlays))
	for j, oc := range s.Overlays {
		o, err := oc.Overlay()
		if err != nil {
			return orchestrator.Job{}, fmt.Errorf("%s, overlay %d: %w", where, j+1, err)
		}
		overlays = append(overlays, o)
	}

	return orchestrator.Job{
		Name:       name,
		Input:      s.Input,
		LayerOnly:  s.Layer,
		Scale:      s.Scale,
		CanvasSize: s.CanvasSize,
		Overlays:   overlays,
		Output:     output,
		Format:     format,
		Quality:    quality,
		MaxSize:    maxSize,
	}, nil
}

// Overlay builds the overlay this entry describes.
func (oc OverlayConfig) Overlay() (overlay.Overlay, error) {
	o := overlay.New(oc.Text)
	o.Position = overlay.Vector{DX: oc.Position.DX, DY: oc.Position.DY}

	if oc.FontSize != 0 {
		o.SetFontSize(oc.FontSize)
	}
	if oc.FontWeight != "" {
		w, err := overlay.ParseFontWeight(oc.FontWeight)
		if err != nil {
			return o, err
		}
		o.SetFontWeight(w)
	}
	o.SetFontFamily(oc.FontFamily)

	if oc.TextColor != "" {
		c, err := ParseColor(oc.TextColor)
		if err != nil {
			return o, fmt.Errorf("text_color: %w", err)
		}
		o.TextColor = c
	}

	o.HasBackground = oc.Background
	if oc.BackgroundColor != "" {
		c, err := ParseColor(oc.BackgroundColor)
		if err != nil {
			return o, fmt.Errorf("background_color: %w", err)
		}
		o.BackgroundColor = c
	}
	if oc.Opacity != nil {
		a := *oc.Opacity
		if a < 0 || a > 1 {
			return o, fmt.Errorf("opacity %v outside 0..1", a)
		}
		o.BackgroundColor = o.BackgroundColor.WithAlpha(a)
	}

	if oc.MeasuredSize != nil {
		o.SetMeasuredSize(overlay.Size{Width: oc.MeasuredSize.Width, Height: oc.MeasuredSize.Height})
	}
	if oc.FixedBackgroundSize != nil {
		o.FixedBackgroundSize = &overlay.Size{Width: oc.FixedBackgroundSize.Width, Height: oc.FixedBackgroundSize.Height}
	}
	if oc.Commit && !o.Commit() && o.FixedBackgroundSize == nil {
		return o, fmt.Errorf("commit needs a measured_size")
	}

	return o, nil
}
