// Package color resolves report color references into concrete RGBA values.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a resolved color. R, G and B are in [0, 255]; A is in [0, 1].
type RGBA struct {
	R, G, B float64
	A       float64
}

// Common colors
var (
	White = RGBA{R: 255, G: 255, B: 255, A: 1}
	Black = RGBA{R: 0, G: 0, B: 0, A: 1}
)

// RGB creates an opaque color from 0-255 channels.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	alpha := 1.0
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	default:
		return RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	parsed := fromColorful(c, alpha)
	parsed.R, parsed.G, parsed.B = math.Round(parsed.R), math.Round(parsed.G), math.Round(parsed.B)
	return parsed, nil
}

// Opaque reports whether the color has full alpha.
func (c RGBA) Opaque() bool {
	return c.A >= 1
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when translucent.
func (c RGBA) Hex() string {
	out := fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
	if !c.Opaque() {
		out += fmt.Sprintf("%02X", channel(c.A*255))
	}
	return out
}

func (c RGBA) String() string {
	return c.Hex()
}

// Shade blends the color toward white for positive percent and toward black
// for negative percent. percent is clamped to [-1, 1].
func (c RGBA) Shade(percent float64) RGBA {
	if percent == 0 {
		return c
	}
	percent = math.Max(-1, math.Min(1, percent))

	base := c.colorful()
	target := colorful.Color{R: 1, G: 1, B: 1}
	if percent < 0 {
		target = colorful.Color{}
		percent = -percent
	}
	return fromColorful(base.BlendRgb(target, percent).Clamped(), c.A)
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

func fromColorful(c colorful.Color, alpha float64) RGBA {
	return RGBA{R: c.R * 255, G: c.G * 255, B: c.B * 255, A: alpha}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
