package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

const project = `
workers: 2
out_dir: out
format: jpg
quality: 80
max_size: 2048
padding_x: 10
guides: true
scenes:
  - input: photos/beach.jpg
    scale: 2
    overlays:
      - text: "Sunset"
        position: [10, -20]
        font_size: 36
        font_weight: semi-bold
        font_family: Go
        text_color: "#ff0"
        background: true
        background_color: "#00000080"
      - text: "Big"
        position: {dx: 5, dy: 6}
        font_size: 400
        opacity: 0.25
        measured_size: [120, 40]
        commit: true
  - name: badge
    layer: true
    canvas_size: 64
    output: badge.png
    max_size: 48
    overlays:
      - text: "NEW"
        fixed_background_size: {width: 50, height: 20}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(project))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Workers != 2 || cfg.Quality != 80 || cfg.Format != "jpg" {
		t.Errorf("unexpected top-level values %+v", cfg)
	}
	// Unset values keep their defaults.
	if cfg.PaddingY != 6 || cfg.CornerRadius != 8 || cfg.DebugDir != "./debug" {
		t.Errorf("expected defaults preserved, got %+v", cfg)
	}
	if cfg.PaddingX != 10 {
		t.Errorf("expected padding_x 10, got %v", cfg.PaddingX)
	}

	if len(cfg.Scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(cfg.Scenes))
	}
	first := cfg.Scenes[0].Overlays
	if first[0].Position != (Vector{DX: 10, DY: -20}) {
		t.Errorf("expected sequence position, got %+v", first[0].Position)
	}
	if first[1].Position != (Vector{DX: 5, DY: 6}) {
		t.Errorf("expected mapping position, got %+v", first[1].Position)
	}
	if first[1].MeasuredSize == nil || *first[1].MeasuredSize != (Size{Width: 120, Height: 40}) {
		t.Errorf("unexpected measured size %+v", first[1].MeasuredSize)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "scenes: [\n"},
		{"short position", "scenes:\n  - overlays:\n      - position: [1]\n"},
		{"scalar position", "scenes:\n  - overlays:\n      - position: 3\n"},
		{"unknown size key", "scenes:\n  - overlays:\n      - measured_size: {w: 1, h: 2}\n"},
		{"negative size", "scenes:\n  - overlays:\n      - fixed_background_size: [-1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg, err := Parse([]byte(project))
	if err != nil {
		t.Fatal(err)
	}

	oc, err := cfg.ToOrchestratorConfig(false)
	if err != nil {
		t.Fatalf("ToOrchestratorConfig failed: %v", err)
	}
	if len(oc.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(oc.Jobs))
	}

	beach := oc.Jobs[0]
	if beach.Name != "beach" {
		t.Errorf("expected name from input file, got %q", beach.Name)
	}
	if beach.Output != filepath.Join("out", "beach.jpg") || beach.Format != ports.FormatJPEG || beach.Quality != 80 {
		t.Errorf("unexpected output settings %q %v %d", beach.Output, beach.Format, beach.Quality)
	}
	if beach.Scale != 2 {
		t.Errorf("expected scale 2, got %v", beach.Scale)
	}
	if beach.MaxSize != 2048 {
		t.Errorf("expected project max size 2048, got %d", beach.MaxSize)
	}

	sunset := beach.Overlays[0]
	if sunset.FontSize != 36 || sunset.FontWeight != overlay.WeightSemibold || sunset.FontFamily != "Go" {
		t.Errorf("unexpected font %v %v %q", sunset.FontSize, sunset.FontWeight, sunset.FontFamily)
	}
	if sunset.TextColor != (overlay.Color{R: 1, G: 1, B: 0, A: 1}) {
		t.Errorf("unexpected text color %+v", sunset.TextColor)
	}
	if !sunset.HasBackground || sunset.BackgroundColor.NRGBA().A != 128 {
		t.Errorf("unexpected background %+v", sunset.BackgroundColor)
	}

	big := beach.Overlays[1]
	if big.FontSize != overlay.MaxFontSize {
		t.Errorf("expected font size clamped to %v, got %v", overlay.MaxFontSize, big.FontSize)
	}
	if big.BackgroundColor.A != 0.25 {
		t.Errorf("expected opacity override 0.25, got %v", big.BackgroundColor.A)
	}
	if big.FixedBackgroundSize == nil || *big.FixedBackgroundSize != (overlay.Size{Width: 120, Height: 40}) {
		t.Errorf("expected committed 120x40 box, got %+v", big.FixedBackgroundSize)
	}
	if big.MeasuredStale() {
		t.Error("expected loaded measurement to be current")
	}

	badge := oc.Jobs[1]
	if !badge.LayerOnly || badge.CanvasSize != 64 {
		t.Errorf("unexpected layer job %+v", badge)
	}
	// Output extension decides the format over the project default.
	if badge.Format != ports.FormatPNG || badge.Output != filepath.Join("out", "badge.png") {
		t.Errorf("expected out/badge.png as PNG, got %q %v", badge.Output, badge.Format)
	}
	if badge.MaxSize != 48 {
		t.Errorf("expected scene max size 48, got %d", badge.MaxSize)
	}
	if fixed := badge.Overlays[0].FixedBackgroundSize; fixed == nil || fixed.Width != 50 {
		t.Errorf("unexpected fixed size %+v", fixed)
	}
}

func TestToOrchestratorConfig_LayersOnly(t *testing.T) {
	cfg, err := Parse([]byte(project))
	if err != nil {
		t.Fatal(err)
	}

	oc, err := cfg.ToOrchestratorConfig(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(oc.Jobs) != 1 || oc.Jobs[0].Name != "badge" {
		t.Errorf("expected only the badge layer, got %+v", oc.Jobs)
	}

	noLayers := Config{Scenes: []SceneConfig{{Input: "a.jpg"}}}
	if _, err := noLayers.ToOrchestratorConfig(true); err == nil {
		t.Error("expected error without layer scenes")
	}
}

func TestToOrchestratorConfig_Errors(t *testing.T) {
	opacity := 1.5

	tests := []struct {
		name  string
		scene SceneConfig
	}{
		{"bad format", SceneConfig{Input: "a.jpg", Format: "gif"}},
		{"bad weight", SceneConfig{Input: "a.jpg", Overlays: []OverlayConfig{{Text: "x", FontWeight: "chunky"}}}},
		{"bad color", SceneConfig{Input: "a.jpg", Overlays: []OverlayConfig{{Text: "x", TextColor: "#12"}}}},
		{"bad background", SceneConfig{Input: "a.jpg", Overlays: []OverlayConfig{{Text: "x", BackgroundColor: "blue-ish"}}}},
		{"bad opacity", SceneConfig{Input: "a.jpg", Overlays: []OverlayConfig{{Text: "x", Opacity: &opacity}}}},
		{"commit unmeasured", SceneConfig{Input: "a.jpg", Overlays: []OverlayConfig{{Text: "x", Commit: true}}}},
		{"negative max size", SceneConfig{Input: "a.jpg", MaxSize: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Scenes = []SceneConfig{tt.scene}
			if _, err := cfg.ToOrchestratorConfig(false); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Defaults().ToOrchestratorConfig(false); err == nil {
		t.Error("expected error for a project without scenes")
	}
}

func TestLoadFromFile_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	data := "out_dir: out\nfont_dir: fonts\nscenes:\n  - input: beach.jpg\n  - input: /abs/photo.png\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Scenes[0].Input != filepath.Join(dir, "beach.jpg") {
		t.Errorf("expected input relative to project, got %s", cfg.Scenes[0].Input)
	}
	if cfg.Scenes[1].Input != "/abs/photo.png" {
		t.Errorf("expected absolute input kept, got %s", cfg.Scenes[1].Input)
	}
	if cfg.OutDir != filepath.Join(dir, "out") || cfg.FontDir != filepath.Join(dir, "fonts") {
		t.Errorf("unexpected dirs %s %s", cfg.OutDir, cfg.FontDir)
	}
}

func TestLoadFromFile_OutputsWithoutOutDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	data := "scenes:\n  - input: beach.jpg\n    output: renders/beach.png\n  - input: dune.jpg\n  - input: sky.jpg\n    output: /abs/sky.png\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	oc, err := cfg.ToOrchestratorConfig(false)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "renders", "beach.png"),
		filepath.Join(dir, "dune.png"),
		"/abs/sky.png",
	}
	for i, w := range want {
		if got := oc.Jobs[i].Output; got != w {
			t.Errorf("job %d: expected output %s, got %s", i, w, got)
		}
	}

	// An out_dir set after loading still takes precedence.
	cfg.OutDir = filepath.Join(dir, "override")
	oc, err = cfg.ToOrchestratorConfig(false)
	if err != nil {
		t.Fatal(err)
	}
	if got := oc.Jobs[0].Output; got != filepath.Join(dir, "override", "renders", "beach.png") {
		t.Errorf("expected out_dir to win, got %s", got)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCompositorOptions(t *testing.T) {
	cfg := Defaults()
	cfg.PaddingX = 12
	cfg.LineSpacing = 0
	cfg.Guides = true

	opts := cfg.CompositorOptions()
	if opts.PaddingX != 12 || opts.PaddingY != 6 || !opts.Guides {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.LineSpacing != 1 {
		t.Errorf("expected zero line spacing to fall back to 1, got %v", opts.LineSpacing)
	}
}
