package pipeline

import (
	"image"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Photo is a decoded bitmap with its pixel density. Scale is pixels per point.
type Photo struct {
	Image image.Image
	Scale float64
}

// Points returns the photo's width and height in points.
func (p Photo) Points() (float64, float64) {
	if p.Image == nil {
		return 0, 0
	}
	s := p.Scale
	if s <= 0 {
		s = 1
	}
	b := p.Image.Bounds()
	return float64(b.Dx()) / s, float64(b.Dy()) / s
}

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput names a source photo.
type DecodeInput struct {
	Path  string
	Scale float64 // pixels per point (default: 1)
}

// DecodeResult contains the decoded photo.
type DecodeResult struct {
	Photo Photo
}

// =============================================================================
// Composite Stage Types
// =============================================================================

// Scene is one composition: a photo (or, for layers, only a canvas size)
// plus the overlays drawn on top in list order.
type Scene struct {
	Name     string
	Photo    Photo
	Overlays []overlay.Overlay

	// LayerOnly renders the overlays onto a transparent square of
	// CanvasSize points at Photo.Scale instead of onto the photo.
	LayerOnly  bool
	CanvasSize float64
}

// CompositeInput contains the scenes to composite.
type CompositeInput struct {
	Scenes []Scene
}

// CompositeResult contains composited images in scene order.
type CompositeResult struct {
	Images []ComposedImage
}

// ComposedImage is a flattened scene.
type ComposedImage struct {
	Name  string
	Image image.Image
}

// =============================================================================
// Export Stage Types
// =============================================================================

// ExportTarget describes where and how one image is written.
type ExportTarget struct {
	Path    string
	Format  ports.ImageFormat
	Quality int // JPEG quality 1-100 (default: 90)
	MaxSize int // longest side in pixels; 0 keeps the rendered size
}

// ExportInput pairs composed images with their targets by index.
type ExportInput struct {
	Images  []ComposedImage
	Targets []ExportTarget
}

// ExportResult lists written files in input order.
type ExportResult struct {
	Files []ExportedFile
}

// ExportedFile describes one written image.
type ExportedFile struct {
	Name   string
	Path   string
	Format ports.ImageFormat
	Width  int
	Height int
	Bytes  int
}
