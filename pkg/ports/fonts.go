package ports

import (
	"golang.org/x/image/font"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
)

// FontResolver turns a family name and weight into a drawable face.
type FontResolver interface {
	// Resolve returns a face of the family at the given pixel size with the
	// nearest available weight. An empty or unknown family resolves to the
	// default family; ok reports whether the requested family was honored.
	// Each call returns a new face, so callers may use it without locking.
	Resolve(family string, weight overlay.FontWeight, size float64) (face font.Face, ok bool)

	// Families returns the registered family names, sorted.
	Families() []string
}
