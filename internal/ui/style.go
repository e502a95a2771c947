package ui

import (
	"strconv"
	"strings"
)

// RGBA is an 8-bit color with alpha, kept renderer-agnostic so this package
// stays free of drawing dependencies.
type RGBA struct {
	R, G, B, A uint8
}

// Rule is one stylesheet rule: a ".class" or "#id" selector and raw property
// values.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Stylesheet is an ordered rule list; later rules override earlier ones for
// the same property.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds the resolved values the render layer draws with.
type ComputedStyle struct {
	Background RGBA
	Color      RGBA
	Border     RGBA
	HasBorder  bool
	Width      int
	Height     int
	Padding    int
}

// DefaultStyle is transparent background, near-white text, no border.
func DefaultStyle() ComputedStyle {
	return ComputedStyle{
		Color:   RGBA{R: 230, G: 230, B: 230, A: 255},
		Padding: 4,
	}
}

// Resolve merges every rule matching the node's class or id, in sheet order,
// into a ComputedStyle. A nil sheet yields the default style.
func (s *Stylesheet) Resolve(n *Node) ComputedStyle {
	out := DefaultStyle()
	if s == nil {
		return out
	}
	for _, rule := range s.Rules {
		if !matches(rule.Selector, n) {
			continue
		}
		applyProps(&out, rule.Props)
	}
	return out
}

func matches(selector string, n *Node) bool {
	if len(selector) < 2 {
		return false
	}
	name := selector[1:]
	switch selector[0] {
	case '.':
		return n.Class() == name
	case '#':
		return n.ID() == name
	}
	return false
}

func applyProps(out *ComputedStyle, props map[string]string) {
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		}
	}
}

// ParseHexColor parses "#RGB" or "#RRGGBB" into an opaque RGBA.
func ParseHexColor(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return RGBA{}, false
	}
	hex := s[1:]
	var ch [3]uint8
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexVal(hex[i])
			if !ok {
				return RGBA{}, false
			}
			ch[i] = d * 17
		}
	case 6:
		for i := 0; i < 3; i++ {
			hi, ok := hexVal(hex[2*i])
			lo, ok2 := hexVal(hex[2*i+1])
			if !ok || !ok2 {
				return RGBA{}, false
			}
			ch[i] = hi<<4 | lo
		}
	default:
		return RGBA{}, false
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, true
}

func hexVal(c byte) (uint8, bool) {
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

// ParsePx parses a pixel value with optional "px" suffix; unitless numbers are
// treated as pixels.
func ParsePx(s string) (int, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
