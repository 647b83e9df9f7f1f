package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vector is an offset in points, written [dx, dy] or {dx: .., dy: ..}.
type Vector struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	a, b, err := pair(node, "dx", "dy")
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	v.DX, v.DY = a, b
	return nil
}

// Size is a width and height in points, written [w, h] or
// {width: .., height: ..}.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	w, h, err := pair(node, "width", "height")
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("line %d: size must not be negative", node.Line)
	}
	s.Width, s.Height = w, h
	return nil
}

func pair(node *yaml.Node, first, second string) (float64, float64, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		var xs []float64
		if err := node.Decode(&xs); err != nil {
			return 0, 0, err
		}
		if len(xs) != 2 {
			return 0, 0, fmt.Errorf("line %d: want 2 numbers, got %d", node.Line, len(xs))
		}
		return xs[0], xs[1], nil
	case yaml.MappingNode:
		var m map[string]float64
		if err := node.Decode(&m); err != nil {
			return 0, 0, err
		}
		for k := range m {
			if k != first && k != second {
				return 0, 0, fmt.Errorf("line %d: unknown key %q", node.Line, k)
			}
		}
		return m[first], m[second], nil
	default:
		return 0, 0, fmt.Errorf("line %d: want [%s, %s] or a mapping", node.Line, first, second)
	}
}
