// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// Sink writes debug output under a base directory:
//
//	project.json
//	sources/<scene>.png
//	composites/<scene>.png
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveProjectJSON saves the resolved project as JSON.
func (s *Sink) SaveProjectJSON(data []byte) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "project.json"), data)
}

// SaveSource saves a decoded source photo.
func (s *Sink) SaveSource(name string, img image.Image) error {
	return s.savePNG("sources", name, img)
}

// SaveComposite saves a composited scene.
func (s *Sink) SaveComposite(name string, img image.Image) error {
	return s.savePNG("composites", name, img)
}

func (s *Sink) savePNG(sub, name string, img image.Image) error {
	dir := filepath.Join(s.baseDir, sub)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", sub, name, err)
	}
	return s.fs.WriteFile(filepath.Join(dir, fileName(name)+".png"), data)
}

// fileName flattens a scene name into a single path element.
func fileName(name string) string {
	name = filepath.Base(filepath.Clean("/" + name))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "scene"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
