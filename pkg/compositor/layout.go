package compositor

import (
	"math"
	"strings"

	"golang.org/x/image/font"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Scale multiplies every component by k.
func (r Rect) Scale(k float64) Rect {
	return Rect{X: r.X * k, Y: r.Y * k, Width: r.Width * k, Height: r.Height * k}
}

// Placement is where one overlay lands on the canvas, in points.
type Placement struct {
	Lines    []string
	TextSize overlay.Size
	TextRect Rect

	// Background is the padded box; it is set even when the overlay draws
	// no background.
	Background Rect

	LineHeight float64
	Ascent     float64

	// Skip is set for overlays with nothing to draw.
	Skip bool
}

// Layout places o on a canvas of canvasSize points. measure is any canvas
// able to measure with face; face must be o's font at o.FontSize*scale pixels.
//
// The text size is the fixed background size when set, else the measured
// size when it is current, else a fresh measurement of the wrapped text
// rounded up to whole points. The text box is centered on the canvas center
// plus o.Position.
func (c *Compositor) Layout(measure ports.Canvas, canvasSize, scale float64, o overlay.Overlay, face font.Face) Placement {
	if o.Text == "" || face == nil {
		return Placement{Skip: true}
	}
	if scale <= 0 {
		scale = 1
	}

	style := ports.TextStyle{Face: face}
	wrap := canvasSize - 2*c.opts.WrapInset
	if wrap <= 0 {
		wrap = canvasSize
	}
	// Paragraphs wrap separately so blank lines keep their height.
	var lines []string
	for _, para := range strings.Split(o.Text, "\n") {
		para = strings.TrimSuffix(para, "\r")
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, measure.WrapText(para, wrap*scale, style)...)
	}
	if blank(lines) {
		return Placement{Skip: true}
	}

	m := face.Metrics()
	lineHeight := float64(m.Height) / 64 * c.opts.LineSpacing / scale
	ascent := float64(m.Ascent) / 64 / scale

	var size overlay.Size
	switch {
	case o.FixedBackgroundSize != nil, !o.MeasuredSize.IsZero() && !o.MeasuredStale():
		size = o.BackgroundSize()
	default:
		widest := 0.0
		for _, line := range lines {
			if w, _ := measure.MeasureText(line, style); w > widest {
				widest = w
			}
		}
		size = overlay.Size{
			Width:  math.Ceil(widest / scale),
			Height: math.Ceil(lineHeight * float64(len(lines))),
		}
	}

	cx, cy := canvasSize/2, canvasSize/2
	text := Rect{
		X:      cx + o.Position.DX - size.Width/2,
		Y:      cy + o.Position.DY - size.Height/2,
		Width:  size.Width,
		Height: size.Height,
	}
	bg := Rect{
		X:      text.X - c.opts.PaddingX,
		Y:      text.Y - c.opts.PaddingY,
		Width:  text.Width + 2*c.opts.PaddingX,
		Height: text.Height + 2*c.opts.PaddingY,
	}

	return Placement{
		Lines:      lines,
		TextSize:   size,
		TextRect:   text,
		Background: bg,
		LineHeight: lineHeight,
		Ascent:     ascent,
	}
}

// blank reports whether every line is empty or whitespace.
func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
