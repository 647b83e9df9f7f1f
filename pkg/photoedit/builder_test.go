package photoedit

import (
	"testing"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

func TestProjectBuilder(t *testing.T) {
	caption := overlay.New("Sunset")

	cfg, err := NewProjectBuilder().
		Photo("beach.jpg", "out/beach.jpg").WithScale(2).WithOverlay(caption).
		Layer(400, "out/title.png").WithName("title").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(cfg.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(cfg.Jobs))
	}

	photo := cfg.Jobs[0]
	if photo.Name != "scene-1" || photo.Scale != 2 || photo.Format != ports.FormatJPEG {
		t.Errorf("unexpected photo job %+v", photo)
	}
	if len(photo.Overlays) != 1 || photo.Overlays[0].ID != caption.ID {
		t.Errorf("expected caption overlay, got %+v", photo.Overlays)
	}

	layer := cfg.Jobs[1]
	if !layer.LayerOnly || layer.CanvasSize != 400 || layer.Name != "title" {
		t.Errorf("unexpected layer job %+v", layer)
	}
	if layer.Format != ports.FormatPNG {
		t.Errorf("expected PNG layer, got %v", layer.Format)
	}
}

func TestProjectBuilder_OverlayIsCopied(t *testing.T) {
	caption := overlay.New("before")
	b := NewProjectBuilder().Photo("a.png", "b.png").WithOverlay(caption)
	caption.SetText("after")

	cfg, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Jobs[0].Overlays[0].Text; got != "before" {
		t.Errorf("expected builder to keep its own copy, got %q", got)
	}
}

func TestProjectBuilder_WithFormat(t *testing.T) {
	cfg, err := NewProjectBuilder().
		Photo("a.png", "out/a.img").WithFormat(ports.FormatJPEG, 75).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if j := cfg.Jobs[0]; j.Format != ports.FormatJPEG || j.Quality != 75 {
		t.Errorf("unexpected job %+v", j)
	}
}

func TestProjectBuilder_WithMaxSize(t *testing.T) {
	cfg, err := NewProjectBuilder().
		Photo("a.png", "out/a.png").WithMaxSize(1024).
		Photo("b.png", "out/b.png").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Jobs[0].MaxSize != 1024 || cfg.Jobs[1].MaxSize != 0 {
		t.Errorf("expected max size on first scene only, got %d %d", cfg.Jobs[0].MaxSize, cfg.Jobs[1].MaxSize)
	}
}

func TestProjectBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *ProjectBuilder
	}{
		{"empty", NewProjectBuilder()},
		{"modifier before scene", NewProjectBuilder().WithScale(2).Photo("a.png", "b.png")},
		{"layer without size", NewProjectBuilder().Layer(0, "b.png")},
		{"photo without output", NewProjectBuilder().Photo("a.png", "")},
		{"negative max size", NewProjectBuilder().Photo("a.png", "b.png").WithMaxSize(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.builder.Build(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]ports.ImageFormat{
		"out/a.png":   ports.FormatPNG,
		"out/a.JPG":   ports.FormatJPEG,
		"out/a.jpeg":  ports.FormatJPEG,
		"out/a.webp":  ports.FormatPNG,
		"out.d/noext": ports.FormatPNG,
		"":            ports.FormatPNG,
	}
	for path, want := range tests {
		if got := formatFor(path); got != want {
			t.Errorf("formatFor(%q) = %v, want %v", path, got, want)
		}
	}
}
