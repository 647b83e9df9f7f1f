package fontbook

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/mocks"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
)

func TestNew_HasDefaultFamily(t *testing.T) {
	b := New()

	if !b.Has(DefaultFamily) {
		t.Fatalf("expected default family %q", DefaultFamily)
	}
	if !b.Has("go") {
		t.Error("expected case-insensitive family lookup")
	}

	weights := b.Weights(DefaultFamily)
	want := []overlay.FontWeight{overlay.WeightRegular, overlay.WeightMedium, overlay.WeightBold}
	if len(weights) != len(want) {
		t.Fatalf("expected %v, got %v", want, weights)
	}
	for i := range want {
		if weights[i] != want[i] {
			t.Errorf("weights[%d]: expected %v, got %v", i, want[i], weights[i])
		}
	}
}

func TestResolve_DefaultFamily(t *testing.T) {
	b := New()

	face, ok := b.Resolve("", overlay.WeightRegular, 28)
	if !ok {
		t.Error("expected empty family to count as honored")
	}
	if face == nil {
		t.Fatal("expected a face")
	}
	if h := face.Metrics().Height.Ceil(); h < 28 {
		t.Errorf("expected line height of at least 28px, got %d", h)
	}
}

func TestResolve_UnknownFamilyFallsBack(t *testing.T) {
	b := New()

	face, ok := b.Resolve("No Such Family", overlay.WeightBold, 20)
	if ok {
		t.Error("expected unknown family to report ok=false")
	}
	if face == nil {
		t.Fatal("expected fallback face")
	}
}

func TestResolve_SizeScalesFace(t *testing.T) {
	b := New()

	small, _ := b.Resolve("", overlay.WeightRegular, 12)
	large, _ := b.Resolve("", overlay.WeightRegular, 48)

	if small.Metrics().Height >= large.Metrics().Height {
		t.Error("expected larger size to produce a taller face")
	}
}

func TestResolve_ReturnsDistinctFaces(t *testing.T) {
	b := New()

	f1, _ := b.Resolve("", overlay.WeightRegular, 20)
	f2, _ := b.Resolve("", overlay.WeightRegular, 20)
	if f1 == f2 {
		t.Error("expected each call to return its own face")
	}
}

func TestAddFont(t *testing.T) {
	b := New()

	name, err := b.AddFont(gomono.TTF)
	if err != nil {
		t.Fatalf("AddFont failed: %v", err)
	}
	if name == "" || !b.Has(name) {
		t.Fatalf("expected family %q to be registered", name)
	}

	if _, ok := b.Resolve(name, overlay.WeightRegular, 16); !ok {
		t.Error("expected added family to resolve")
	}

	if _, err := b.AddFont(gomono.TTF); !errors.Is(err, ErrAlreadyLoaded) {
		t.Errorf("expected ErrAlreadyLoaded, got %v", err)
	}

	found := false
	for _, f := range b.Families() {
		if f == name {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in %v", name, b.Families())
	}
}

func TestAddFont_Garbage(t *testing.T) {
	b := New()

	if _, err := b.AddFont([]byte("nope")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadDir(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("fonts/GoMono.ttf", gomono.TTF)
	fs.WriteFile("fonts/GoMono-Bold.ttf", gomonobold.TTF)
	fs.WriteFile("fonts/GoMono-Copy.otf", gomono.TTF)
	fs.WriteFile("fonts/README.txt", []byte("not a font"))

	b := New()
	loaded, skipped, err := b.LoadDir(fs, "fonts")
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if loaded != 2 {
		t.Errorf("expected 2 fonts loaded, got %d", loaded)
	}
	if skipped != 1 {
		t.Errorf("expected 1 font skipped, got %d", skipped)
	}
}

func TestNearest(t *testing.T) {
	fam := &family{faces: map[overlay.FontWeight]face{
		overlay.WeightLight: {},
		overlay.WeightBold:  {},
	}}

	tests := []struct {
		want overlay.FontWeight
		got  overlay.FontWeight
	}{
		{overlay.WeightUltraLight, overlay.WeightLight},
		{overlay.WeightRegular, overlay.WeightLight},
		{overlay.WeightMedium, overlay.WeightBold},
		{overlay.WeightBlack, overlay.WeightBold},
	}

	for _, tt := range tests {
		// compare by slot since the test faces carry no font
		if got := nearestWeight(fam, tt.want); got != tt.got {
			t.Errorf("nearest(%v): expected %v, got %v", tt.want, tt.got, got)
		}
	}
}

func TestWeightFromSubfamily(t *testing.T) {
	tests := []struct {
		sub    string
		weight overlay.FontWeight
		italic bool
	}{
		{"Regular", overlay.WeightRegular, false},
		{"Italic", overlay.WeightRegular, true},
		{"Bold", overlay.WeightBold, false},
		{"Bold Italic", overlay.WeightBold, true},
		{"SemiBold", overlay.WeightSemibold, false},
		{"ExtraLight Oblique", overlay.WeightUltraLight, true},
		{"Condensed Black", overlay.WeightBlack, false},
		{"Display", overlay.WeightRegular, false},
	}

	for _, tt := range tests {
		w, italic := weightFromSubfamily(tt.sub)
		if w != tt.weight || italic != tt.italic {
			t.Errorf("%q: expected (%v, %v), got (%v, %v)", tt.sub, tt.weight, tt.italic, w, italic)
		}
	}
}
