package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	mu sync.Mutex

	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
	CropSquareFunc   func(img image.Image) image.Image

	EncodeCalls []EncodeCall
	ResizeCalls []image.Point
}

// EncodeCall records one EncodeImage invocation.
type EncodeCall struct {
	Format  ports.ImageFormat
	Quality int
	Bounds  image.Rectangle
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{width: width, height: height}
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.mu.Lock()
	m.EncodeCalls = append(m.EncodeCalls, EncodeCall{Format: format, Quality: quality, Bounds: img.Bounds()})
	m.mu.Unlock()
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte(format.String()), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	m.mu.Lock()
	m.ResizeCalls = append(m.ResizeCalls, image.Point{X: width, Y: height})
	m.mu.Unlock()
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) CropSquare(img image.Image) image.Image {
	if m.CropSquareFunc != nil {
		return m.CropSquareFunc(img)
	}
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	return image.NewRGBA(image.Rect(0, 0, side, side))
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas that only records text draws.
type Canvas struct {
	width  int
	height int

	Texts []string
}

func (m *Canvas) DrawRoundedRect(x, y, w, h, radius float64, c color.Color) {}

func (m *Canvas) DrawRectStroke(x, y, w, h float64, c color.Color, strokeWidth float64) {}

func (m *Canvas) DrawText(text string, x, y float64, style ports.TextStyle) {
	m.Texts = append(m.Texts, text)
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	return float64(len(text)) * 10, 20
}

func (m *Canvas) WrapText(text string, width float64, style ports.TextStyle) []string {
	if text == "" {
		return nil
	}
	return []string{text}
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
