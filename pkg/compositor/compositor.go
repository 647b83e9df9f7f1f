// Package compositor flattens ordered text overlays onto a square canvas.
//
// Overlay positions are offsets from the canvas center in points. A canvas
// of S points rendered at scale k is S*k pixels square; every geometric
// quantity (padding, radius, font size) is multiplied by k at draw time, so
// the same overlay list looks identical at any pixel density.
package compositor

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sort"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/pipeline"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// ErrSurfaceAllocation is returned when the drawing surface would exceed
// Options.MaxSurfacePixels.
var ErrSurfaceAllocation = errors.New("could not allocate drawing surface")

// Options controls overlay geometry. Lengths are in points.
type Options struct {
	PaddingX     float64 // background inset beyond the text box, each side
	PaddingY     float64
	CornerRadius float64
	LineSpacing  float64 // multiple of the face line height
	WrapInset    float64 // text wraps at canvas width minus twice this

	// MaxSurfacePixels bounds width*height of any canvas.
	MaxSurfacePixels int

	// Guides outlines every text box, for debugging placement.
	Guides bool
}

// DefaultOptions returns the standard overlay geometry.
func DefaultOptions() Options {
	return Options{
		PaddingX:         8,
		PaddingY:         6,
		CornerRadius:     8,
		LineSpacing:      1.0,
		WrapInset:        16,
		MaxSurfacePixels: 8192 * 8192,
	}
}

// Compositor renders overlays. It holds no per-render state and is safe for
// concurrent use.
type Compositor struct {
	renderer ports.Renderer
	fonts    ports.FontResolver
	logger   ports.Logger
	opts     Options

	mu     sync.Mutex
	warned map[string]bool
}

// New creates a Compositor. Zero-valued options fall back to DefaultOptions.
func New(renderer ports.Renderer, fonts ports.FontResolver, logger ports.Logger, opts Options) *Compositor {
	def := DefaultOptions()
	if opts.LineSpacing <= 0 {
		opts.LineSpacing = def.LineSpacing
	}
	if opts.MaxSurfacePixels <= 0 {
		opts.MaxSurfacePixels = def.MaxSurfacePixels
	}
	return &Compositor{
		renderer: renderer,
		fonts:    fonts,
		logger:   logger.WithComponent("compositor"),
		opts:     opts,
		warned:   make(map[string]bool),
	}
}

// Options returns the geometry in use.
func (c *Compositor) Options() Options {
	return c.opts
}

// RenderLayer draws overlays onto a transparent canvasSize x canvasSize
// point canvas at pixelScale pixels per point. A degenerate canvas yields an
// empty image and no error.
func (c *Compositor) RenderLayer(canvasSize, pixelScale float64, overlays []overlay.Overlay) (image.Image, error) {
	if pixelScale <= 0 || math.IsNaN(pixelScale) {
		pixelScale = 1
	}
	if canvasSize <= 0 || math.IsNaN(canvasSize) {
		return emptyImage(), nil
	}
	px := canvasSize * pixelScale
	if !(px <= math.Sqrt(float64(c.opts.MaxSurfacePixels))+0.5) {
		return nil, fmt.Errorf("%w: %g pixels square exceeds %d pixels", ErrSurfaceAllocation, px, c.opts.MaxSurfacePixels)
	}
	side := int(math.Round(px))
	if side < 1 {
		return emptyImage(), nil
	}
	if err := c.checkSurface(side); err != nil {
		return nil, err
	}

	canvas := c.renderer.CreateCanvas(side, side, nil)
	c.drawOverlays(canvas, float64(side)/pixelScale, pixelScale, overlays)
	return canvas.ToImage(), nil
}

// RenderOnto crops photo to its centered square and composites overlays on
// top. The photo is never modified, and pixels no overlay covers keep the
// photo's exact values.
func (c *Compositor) RenderOnto(photo pipeline.Photo, overlays []overlay.Overlay) (image.Image, error) {
	if photo.Image == nil {
		return nil, errors.New("render onto: nil base image")
	}
	scale := photo.Scale
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}

	square := c.renderer.CropSquare(photo.Image)
	side := square.Bounds().Dx()
	if side < 1 {
		return emptyImage(), nil
	}
	if err := c.checkSurface(side); err != nil {
		return nil, err
	}

	out := imaging.Clone(square)
	if len(overlays) == 0 {
		return out, nil
	}

	layer := c.renderer.CreateCanvas(side, side, nil)
	c.drawOverlays(layer, float64(side)/scale, scale, overlays)
	blendOver(out, layer.ToImage())
	return out, nil
}

// blendOver composites layer onto dst (source-over). Pixels the layer leaves
// fully transparent are skipped.
func blendOver(dst *image.NRGBA, layer image.Image) {
	b := dst.Bounds().Intersect(layer.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sr, sg, sb, sa := layer.At(x, y).RGBA()
			if sa == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			d := dst.Pix[i : i+4 : i+4]

			da := uint32(d[3]) * 0x101
			inv := 0xffff - sa
			oa := sa + da*inv/0xffff
			blend := func(s uint32, c uint8) uint8 {
				dc := uint32(c) * 0x101 * da / 0xffff
				return uint8((s + dc*inv/0xffff) * 0xffff / oa >> 8)
			}
			d[0] = blend(sr, d[0])
			d[1] = blend(sg, d[1])
			d[2] = blend(sb, d[2])
			d[3] = uint8(oa >> 8)
		}
	}
}

// Measure returns the size of o's text block as laid out on a canvas of
// canvasSize points, ignoring any recorded or fixed size.
func (c *Compositor) Measure(canvasSize float64, o overlay.Overlay) overlay.Size {
	if o.Text == "" {
		return overlay.Size{}
	}
	o.MeasuredSize = overlay.Size{}
	o.FixedBackgroundSize = nil
	canvas := c.renderer.CreateCanvas(1, 1, nil)
	face := c.resolveFace(o, 1)
	p := c.Layout(canvas, canvasSize, 1, o, face)
	return p.TextSize
}

// Refresh returns copies of overlays whose stale measured sizes have been
// recomputed. Fresh measurements are kept.
func (c *Compositor) Refresh(canvasSize float64, overlays []overlay.Overlay) []overlay.Overlay {
	out := make([]overlay.Overlay, len(overlays))
	for i, o := range overlays {
		o = o.Clone()
		if o.MeasuredStale() {
			o.SetMeasuredSize(c.Measure(canvasSize, o))
		}
		out[i] = o
	}
	return out
}

func (c *Compositor) checkSurface(side int) error {
	if side > c.opts.MaxSurfacePixels/side {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrSurfaceAllocation, side, side, c.opts.MaxSurfacePixels)
	}
	return nil
}

type faceKey struct {
	family string
	weight overlay.FontWeight
	size   float64
}

// drawOverlays draws in list order; later overlays land on top.
func (c *Compositor) drawOverlays(canvas ports.Canvas, canvasSize, scale float64, overlays []overlay.Overlay) {
	faces := make(map[faceKey]font.Face)

	for _, o := range overlays {
		if o.Text == "" {
			continue
		}
		key := faceKey{family: o.FontFamily, weight: o.FontWeight, size: o.FontSize * scale}
		face, ok := faces[key]
		if !ok {
			face = c.resolveFace(o, scale)
			faces[key] = face
		}

		p := c.Layout(canvas, canvasSize, scale, o, face)
		if p.Skip {
			continue
		}

		if o.HasBackground {
			bg := p.Background.Scale(scale)
			canvas.DrawRoundedRect(bg.X, bg.Y, bg.Width, bg.Height, c.opts.CornerRadius*scale, o.BackgroundColor.NRGBA())
		}

		style := ports.TextStyle{Face: face, Color: o.TextColor.NRGBA()}
		box := p.TextRect.Scale(scale)
		lineHeight := p.LineHeight * scale
		top := box.Y + (box.Height-lineHeight*float64(len(p.Lines)))/2
		ascent := p.Ascent * scale
		for i, line := range p.Lines {
			if line == "" {
				continue
			}
			w, _ := canvas.MeasureText(line, style)
			x := box.X + (box.Width-w)/2
			y := top + float64(i)*lineHeight + ascent
			canvas.DrawText(line, x, y, style)
		}

		if c.opts.Guides {
			canvas.DrawRectStroke(box.X, box.Y, box.Width, box.Height, o.TextColor.NRGBA(), 1)
		}
	}
}

// resolveFace loads the overlay's font at its pixel size. Unknown families
// fall back to the default family with a warning logged once per name.
func (c *Compositor) resolveFace(o overlay.Overlay, scale float64) font.Face {
	size := o.FontSize
	if size <= 0 {
		size = overlay.DefaultFontSize
	}
	face, ok := c.fonts.Resolve(o.FontFamily, o.FontWeight, size*scale)
	if !ok {
		c.warnFallback(o.FontFamily)
	}
	return face
}

func (c *Compositor) warnFallback(family string) {
	c.mu.Lock()
	seen := c.warned[family]
	c.warned[family] = true
	c.mu.Unlock()
	if !seen {
		c.logger.Warn("Font family %q not found, using default", family)
	}
}

// Fallbacks returns the requested families that were not found, sorted.
func (c *Compositor) Fallbacks() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.warned))
	for family := range c.warned {
		out = append(out, family)
	}
	sort.Strings(out)
	return out
}

func emptyImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 0, 0))
}
