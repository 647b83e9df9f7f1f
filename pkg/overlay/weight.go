package overlay

import (
	"fmt"
	"strings"
)

// FontWeight is the weight trait applied on top of a font family.
type FontWeight int

const (
	WeightUltraLight FontWeight = iota
	WeightThin
	WeightLight
	WeightRegular
	WeightMedium
	WeightSemibold
	WeightBold
	WeightHeavy
	WeightBlack
)

var weightNames = [...]string{
	WeightUltraLight: "ultralight",
	WeightThin:       "thin",
	WeightLight:      "light",
	WeightRegular:    "regular",
	WeightMedium:     "medium",
	WeightSemibold:   "semibold",
	WeightBold:       "bold",
	WeightHeavy:      "heavy",
	WeightBlack:      "black",
}

// String returns the lowercase weight name.
func (w FontWeight) String() string {
	if w < 0 || int(w) >= len(weightNames) {
		return "unknown"
	}
	return weightNames[w]
}

// Valid reports whether w is one of the defined weights.
func (w FontWeight) Valid() bool {
	return w >= WeightUltraLight && w <= WeightBlack
}

// Weights returns all weights from lightest to heaviest.
func Weights() []FontWeight {
	out := make([]FontWeight, 0, len(weightNames))
	for w := WeightUltraLight; w <= WeightBlack; w++ {
		out = append(out, w)
	}
	return out
}

// ParseFontWeight parses a weight name. Dashes, underscores, spaces and case
// are ignored, so "Semi-Bold" and "semibold" are the same weight.
// Unknown names return WeightRegular and an error.
func ParseFontWeight(s string) (FontWeight, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "", "regular", "normal", "book", "roman":
		return WeightRegular, nil
	case "ultralight", "extralight":
		return WeightUltraLight, nil
	case "thin", "hairline":
		return WeightThin, nil
	case "light":
		return WeightLight, nil
	case "medium":
		return WeightMedium, nil
	case "semibold", "demibold":
		return WeightSemibold, nil
	case "bold":
		return WeightBold, nil
	case "heavy", "extrabold", "ultrabold":
		return WeightHeavy, nil
	case "black":
		return WeightBlack, nil
	}
	return WeightRegular, fmt.Errorf("unknown font weight %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (w FontWeight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *FontWeight) UnmarshalText(text []byte) error {
	parsed, err := ParseFontWeight(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
