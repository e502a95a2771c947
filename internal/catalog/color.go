package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseColor parses "#RGB" or "#RRGGBB" into a Color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return Color{}, fmt.Errorf("catalog: bad color %q", s)
	}
	hex := s[1:]
	var out [3]uint8
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("catalog: bad color %q", s)
			}
			out[i] = d * 17
		}
	case 6:
		for i := 0; i < 3; i++ {
			h, ok := hexDigit(hex[2*i])
			l, ok2 := hexDigit(hex[2*i+1])
			if !ok || !ok2 {
				return Color{}, fmt.Errorf("catalog: bad color %q", s)
			}
			out[i] = h<<4 | l
		}
	default:
		return Color{}, fmt.Errorf("catalog: bad color %q", s)
	}
	return Color{R: out[0], G: out[1], B: out[2]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// String renders the color as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// UnmarshalYAML reads a color from a "#RGB" or "#RRGGBB" scalar.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color as "#RRGGBB".
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
