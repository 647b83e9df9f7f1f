package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteCreatesParentsAndReadsBack(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "out", "scenes", "a.png")

	if err := fs.WriteFile(path, []byte("pixels")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("expected %q, got %q", "pixels", data)
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	if err := fs.MkdirAll(filepath.Join(dir, "debug")); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(dir, "debug"), true},
		{filepath.Join(dir, "missing.png"), false},
	}
	for _, tt := range tests {
		got, err := fs.Exists(tt.path)
		if err != nil {
			t.Fatalf("Exists(%s) failed: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("Exists(%s): expected %v, got %v", tt.path, tt.want, got)
		}
	}
}

func TestFileSystem_ReadDir(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	for _, name := range []string{"b.ttf", "a.otf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.ttf"), 0755); err != nil {
		t.Fatal(err)
	}

	names, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	want := []string{"a.otf", "b.ttf", "notes.txt"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d]: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestFileSystem_ReadDir_Missing(t *testing.T) {
	fs := New()

	if _, err := fs.ReadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFileSystem_WriteReplacesWithoutLeftovers(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")

	for _, content := range []string{"first", "second"} {
		if err := fs.WriteFile(path, []byte(content)); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("expected replaced content, got %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only photo.png, got %d entries", len(entries))
	}
}

func TestFileSystem_WriteFailureLeavesNoTemp(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}

	if err := fs.WriteFile(target, []byte("x")); err == nil {
		t.Fatal("expected error writing over a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "taken" {
		t.Errorf("expected no temporary files left behind, got %d entries", len(entries))
	}
}
