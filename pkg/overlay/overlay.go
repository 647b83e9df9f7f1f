// Package overlay defines text overlays and the identity-keyed set that holds them.
package overlay

import (
	"github.com/google/uuid"
)

// Font size limits enforced when editing an overlay.
const (
	MinFontSize     = 12
	MaxFontSize     = 96
	DefaultFontSize = 28
)

// ID identifies an overlay for lookup and removal. It never determines draw order.
type ID = uuid.UUID

// Vector is an offset in points.
type Vector struct {
	DX float64 `yaml:"dx" json:"dx"`
	DY float64 `yaml:"dy" json:"dy"`
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{DX: v.DX + o.DX, DY: v.DY + o.DY}
}

// Size is a width/height pair in points.
type Size struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// IsZero reports whether the size has no area.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// contentKey captures everything the measured size depends on.
type contentKey struct {
	text   string
	family string
	size   float64
	weight FontWeight
}

// Overlay is a positioned text element with its own font, colors and
// optional background box.
type Overlay struct {
	ID ID `json:"id"`

	Text string `json:"text"`

	// Position is relative to the canvas center, never absolute pixels.
	Position Vector `json:"position"`

	FontSize   float64    `json:"font_size"`
	FontWeight FontWeight `json:"font_weight"`
	FontFamily string     `json:"font_family,omitempty"` // empty = default family

	TextColor       Color `json:"text_color"`
	HasBackground   bool  `json:"has_background"`
	BackgroundColor Color `json:"background_color"` // alpha is the background opacity

	// MeasuredSize is the last observed size of the rendered text block.
	MeasuredSize Size `json:"measured_size"`

	// FixedBackgroundSize freezes the background box once editing is committed.
	FixedBackgroundSize *Size `json:"fixed_background_size,omitempty"`

	measuredFor contentKey
}

// New creates an overlay with a fresh identity and default styling.
func New(text string) Overlay {
	return Overlay{
		ID:              uuid.New(),
		Text:            text,
		FontSize:        DefaultFontSize,
		FontWeight:      WeightRegular,
		TextColor:       White,
		BackgroundColor: Black.WithAlpha(0.5),
	}
}

func (o *Overlay) key() contentKey {
	return contentKey{text: o.Text, family: o.FontFamily, size: o.FontSize, weight: o.FontWeight}
}

// SetText replaces the text content.
func (o *Overlay) SetText(text string) {
	o.Text = text
}

// SetFontSize sets the font size, clamped to [MinFontSize, MaxFontSize].
func (o *Overlay) SetFontSize(size float64) {
	o.FontSize = ClampFontSize(size)
}

// SetFontWeight sets the font weight.
func (o *Overlay) SetFontWeight(w FontWeight) {
	o.FontWeight = w
}

// SetFontFamily sets the font family. An empty name selects the default family.
func (o *Overlay) SetFontFamily(family string) {
	o.FontFamily = family
}

// MoveBy accumulates a drag delta into the position.
func (o *Overlay) MoveBy(delta Vector) {
	o.Position = o.Position.Add(delta)
}

// SetMeasuredSize records the measured size of the text as currently styled.
func (o *Overlay) SetMeasuredSize(s Size) {
	o.MeasuredSize = s
	o.measuredFor = o.key()
}

// MeasuredStale reports whether text, family, size or weight changed since the
// last measurement, or whether no measurement has been taken.
func (o *Overlay) MeasuredStale() bool {
	if o.MeasuredSize.IsZero() {
		return true
	}
	return o.measuredFor != o.key()
}

// Commit freezes the background box to the current measured size. Once the
// box is fixed, further commits leave it alone.
func (o *Overlay) Commit() bool {
	if o.FixedBackgroundSize != nil || o.MeasuredStale() {
		return false
	}
	fixed := o.MeasuredSize
	o.FixedBackgroundSize = &fixed
	return true
}

// BackgroundSize returns the size used for background geometry.
func (o Overlay) BackgroundSize() Size {
	if o.FixedBackgroundSize != nil {
		return *o.FixedBackgroundSize
	}
	return o.MeasuredSize
}

// Clone returns a deep copy that shares no pointers with o.
func (o Overlay) Clone() Overlay {
	if o.FixedBackgroundSize != nil {
		fixed := *o.FixedBackgroundSize
		o.FixedBackgroundSize = &fixed
	}
	return o
}

// ClampFontSize limits size to the editable range.
func ClampFontSize(size float64) float64 {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}
