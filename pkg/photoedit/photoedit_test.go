package photoedit

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/compositor"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/mocks"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

func writePhoto(t *testing.T, fs *mocks.FileSystem, path string, w, h int) {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	fs.WriteFile(path, buf.Bytes())
}

func TestNew_Defaults(t *testing.T) {
	e, err := New(Options{FileSystem: mocks.NewFileSystem()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Workers() <= 0 {
		t.Errorf("expected positive worker count, got %d", e.Workers())
	}
	if e.Compositor() == nil {
		t.Error("expected a compositor")
	}
	if len(e.Fonts().Families()) != 1 {
		t.Errorf("expected only the default family, got %v", e.Fonts().Families())
	}
}

func TestNew_FontDir(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("fonts/GoMono.ttf", gomono.TTF)
	logger := mocks.NewLogger()

	e, err := New(Options{FileSystem: fs, FontDir: "fonts", Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Fonts().Has("go mono") {
		t.Errorf("expected Go Mono loaded, got %v", e.Fonts().Families())
	}
	if logger.Count(ports.LevelInfo) != 1 {
		t.Errorf("expected one info entry, got %d", logger.Count(ports.LevelInfo))
	}
}

func TestNew_MissingFontDir(t *testing.T) {
	if _, err := New(Options{FileSystem: mocks.NewFileSystem(), FontDir: "nowhere"}); err == nil {
		t.Error("expected error for missing font directory")
	}
}

func TestEditor_Run(t *testing.T) {
	fs := mocks.NewFileSystem()
	writePhoto(t, fs, "in/photo.png", 60, 90)

	geometry := compositor.DefaultOptions()
	e, err := New(Options{
		Workers:    2,
		FileSystem: fs,
		Geometry:   &geometry,
		DebugDir:   "debug",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	caption := overlay.New("Hello")
	caption.HasBackground = true

	cfg, err := NewProjectBuilder().
		Photo("in/photo.png", "out/photo.png").WithName("photo").WithOverlay(caption).
		Layer(40, "out/layer.png").WithScale(2).WithOverlay(overlay.New("Hi")).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	result, err := e.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(result.Scenes))
	}
	if s := result.Scenes[0]; s.Width != 60 || s.Height != 60 {
		t.Errorf("expected 60x60 photo, got %dx%d", s.Width, s.Height)
	}
	if s := result.Scenes[1]; s.Width != 80 || s.Height != 80 {
		t.Errorf("expected 80x80 layer, got %dx%d", s.Width, s.Height)
	}

	for _, path := range []string{
		"out/photo.png",
		"out/layer.png",
		"debug/project.json",
		"debug/sources/photo.png",
		"debug/composites/photo.png",
	} {
		if _, ok := fs.GetFile(path); !ok {
			t.Errorf("expected %s written", path)
		}
	}
}

func TestEditor_Run_Cancelled(t *testing.T) {
	fs := mocks.NewFileSystem()
	writePhoto(t, fs, "in/photo.png", 20, 20)

	e, err := New(Options{FileSystem: fs})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := NewProjectBuilder().Photo("in/photo.png", "out/photo.png").Build()
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Run(ctx, cfg); err == nil {
		t.Error("expected error for cancelled context")
	}
	if _, ok := fs.GetFile("out/photo.png"); ok {
		t.Error("expected no output after cancellation")
	}
}
