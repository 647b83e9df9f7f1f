package config

import (
	"fmt"
	"strings"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
)

var namedColors = map[string]overlay.Color{
	"black":       overlay.Black,
	"white":       overlay.White,
	"red":         overlay.Red,
	"transparent": overlay.Transparent,
}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA (the # is optional) or one
// of black, white, red, transparent.
func ParseColor(s string) (overlay.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		v, ok := hexValue(hex[i])
		if !ok || i >= len(digits) {
			return overlay.Color{}, fmt.Errorf("invalid color %q", s)
		}
		digits[i] = v
	}

	switch len(hex) {
	case 3:
		return overlay.RGBA8(digits[0]*17, digits[1]*17, digits[2]*17, 255), nil
	case 6:
		return overlay.RGBA8(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], 255), nil
	case 8:
		return overlay.RGBA8(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], digits[6]<<4|digits[7]), nil
	default:
		return overlay.Color{}, fmt.Errorf("invalid color %q", s)
	}
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
