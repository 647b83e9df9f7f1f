package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveProjectJSON saves the resolved project (scenes and overlays) as JSON.
	SaveProjectJSON(data []byte) error

	// SaveSource saves a decoded source photo before compositing.
	SaveSource(name string, img image.Image) error

	// SaveComposite saves a composited result.
	SaveComposite(name string, img image.Image) error
}
