// Package style resolves widget styling for the property panel: it parses color
// strings into packed gradient colors and cascades property sets keyed by
// Kind::name:state selectors.
package style

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/opd-ai/go-proppanel/internal/gradient"
)

// NamedColors maps CSS color names to packed colors.
var NamedColors = map[string]gradient.Color{
	"black":       gradient.Pack(0, 0, 0, 255),
	"white":       gradient.Pack(255, 255, 255, 255),
	"red":         gradient.Pack(255, 0, 0, 255),
	"green":       gradient.Pack(0, 128, 0, 255),
	"blue":        gradient.Pack(0, 0, 255, 255),
	"yellow":      gradient.Pack(255, 255, 0, 255),
	"cyan":        gradient.Pack(0, 255, 255, 255),
	"magenta":     gradient.Pack(255, 0, 255, 255),
	"gray":        gradient.Pack(128, 128, 128, 255),
	"grey":        gradient.Pack(128, 128, 128, 255),
	"silver":      gradient.Pack(192, 192, 192, 255),
	"orange":      gradient.Pack(255, 165, 0, 255),
	"purple":      gradient.Pack(128, 0, 128, 255),
	"navy":        gradient.Pack(0, 0, 128, 255),
	"teal":        gradient.Pack(0, 128, 128, 255),
	"lime":        gradient.Pack(0, 255, 0, 255),
	"transparent": gradient.Pack(0, 0, 0, 0),
}

// ParseColor parses a color string into a packed color.
// Supported formats:
//   - Named colors: "red", "grey", "transparent", ...
//   - Hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (the # is optional)
//   - Functions: "rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)", "hsl(210, 0.5, 0.4)"
//
// Colors without an alpha component are opaque.
func ParseColor(s string) (gradient.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color string")
	}

	if c, ok := NamedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgba("):
		return parseFunc(s, "rgba", 4)
	case strings.HasPrefix(lower, "rgb("):
		return parseFunc(s, "rgb", 3)
	case strings.HasPrefix(lower, "hsl("):
		return parseHSL(s)
	case strings.HasPrefix(s, "#") || isHexString(s):
		return parseHex(strings.TrimPrefix(s, "#"))
	}

	return 0, fmt.Errorf("unrecognized color format: %q", s)
}

// MustParseColor is ParseColor for literals; it panics on error.
func MustParseColor(s string) gradient.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex formats a color as #RRGGBB, or #RRGGBBAA when it is not opaque.
func ToHex(c gradient.Color) string {
	r, g, b, a := gradient.Unpack(c)
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func isHexString(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

func parseHex(h string) (gradient.Color, error) {
	alpha := uint8(255)
	switch len(h) {
	case 4:
		a, err := strconv.ParseUint(h[3:4]+h[3:4], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha component: %w", err)
		}
		alpha = uint8(a)
		h = h[:3]
	case 8:
		a, err := strconv.ParseUint(h[6:8], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha component: %w", err)
		}
		alpha = uint8(a)
		h = h[:6]
	case 3, 6:
	default:
		return 0, fmt.Errorf("invalid hex color length: %d", len(h))
	}

	c, err := colorful.Hex("#" + h)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", h, err)
	}
	r, g, b := c.RGB255()
	return gradient.Pack(r, g, b, alpha), nil
}

// parseFunc parses rgb(...) and rgba(...). The alpha of rgba accepts either
// 0-255 integers or 0.0-1.0 fractions.
func parseFunc(s, name string, n int) (gradient.Color, error) {
	parts, err := funcArgs(s, name, n)
	if err != nil {
		return 0, err
	}

	var ch [4]uint8
	ch[3] = 255
	for i, label := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(parts[i], 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value: %w", label, err)
		}
		ch[i] = uint8(v)
	}
	if n == 4 {
		a, err := parseAlpha(parts[3])
		if err != nil {
			return 0, fmt.Errorf("invalid alpha value: %w", err)
		}
		ch[3] = a
	}
	return gradient.Pack(ch[0], ch[1], ch[2], ch[3]), nil
}

// parseHSL parses hsl(h, s, l) with h in degrees and s, l in [0, 1].
func parseHSL(s string) (gradient.Color, error) {
	parts, err := funcArgs(s, "hsl", 3)
	if err != nil {
		return 0, err
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hsl component %q: %w", p, err)
		}
		v[i] = f
	}
	r, g, b := colorful.Hsl(v[0], v[1], v[2]).Clamped().RGB255()
	return gradient.Pack(r, g, b, 255), nil
}

func funcArgs(s, name string, n int) ([]string, error) {
	prefix := name + "("
	if !strings.HasPrefix(strings.ToLower(s), prefix) || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("invalid %s() format: %q", name, s)
	}
	parts := strings.Split(s[len(prefix):len(s)-1], ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%s() requires exactly %d values, got %d", name, n, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func parseAlpha(s string) (uint8, error) {
	if strings.Contains(s, ".") {
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		if val < 0 {
			val = 0
		}
		if val > 1 {
			val = 1
		}
		return uint8(val * 255), nil
	}
	val, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(val), nil
}
