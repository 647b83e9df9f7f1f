package ports

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
)

// Renderer abstracts raster image operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas. A nil background leaves the
	// canvas fully transparent.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data, applying any EXIF orientation.
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage returns img resampled to width x height. The source image
	// is not modified.
	ResizeImage(img image.Image, width, height int) image.Image

	// CropSquare returns the centered min(width, height) square of img with
	// bounds starting at (0,0). The source image is not modified.
	CropSquare(img image.Image) image.Image
}

// Canvas provides drawing operations for compositing overlays.
// Coordinates are in pixels.
type Canvas interface {
	// DrawRoundedRect draws a filled rounded rectangle.
	DrawRoundedRect(x, y, w, h, radius float64, c color.Color)

	// DrawRectStroke draws a rectangle outline.
	DrawRectStroke(x, y, w, h float64, c color.Color, strokeWidth float64)

	// DrawText draws a single line of text with its baseline starting at (x, y).
	DrawText(text string, x, y float64, style TextStyle)

	// MeasureText returns the advance width of a single line and the face line height.
	MeasureText(text string, style TextStyle) (width, height float64)

	// WrapText splits text into lines no wider than width. Explicit newlines
	// always break.
	WrapText(text string, width float64, style TextStyle) []string

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	Face  font.Face
	Color color.Color
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Extension returns the file extension including the dot.
func (f ImageFormat) Extension() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// ParseImageFormat parses a format name or file extension. An empty name
// means PNG.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return FormatPNG, fmt.Errorf("unsupported image format %q", s)
	}
}
