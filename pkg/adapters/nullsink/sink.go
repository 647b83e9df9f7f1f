// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

func (s *Sink) SaveProjectJSON(data []byte) error                { return nil }
func (s *Sink) SaveSource(name string, img image.Image) error    { return nil }
func (s *Sink) SaveComposite(name string, img image.Image) error { return nil }

var _ ports.DebugSink = (*Sink)(nil)
