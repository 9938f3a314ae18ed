package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a 24-bit RGB value (0xRRGGBB). In YAML it may be written as an
// integer, "0xRRGGBB" or "#RRGGBB" (quoted, since # starts a YAML comment).
type Color uint32

// RGB returns the color as normalized channels
func (c Color) RGB() (r, g, b float32) {
	return float32((c>>16)&0xff) / 255,
		float32((c>>8)&0xff) / 255,
		float32(c&0xff) / 255
}

// String formats the color as #rrggbb
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// ParseColor parses "#rrggbb", "0xrrggbb" or a decimal value
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		s = "0x" + rest
	}

	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if v > 0xffffff {
		return 0, fmt.Errorf("color %q exceeds 0xffffff", s)
	}
	return Color(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", value.Line)
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
