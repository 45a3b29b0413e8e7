// Package contrast implements WCAG relative luminance, contrast ratio and the
// pass/fail policy for text and UI components.
package contrast

import (
	"math"

	"github.com/alexisbeaulieu97/reportaudit/internal/color"
)

// ManualReviewLayers is the number of translucent layers on one element at
// which the computed ratio is no longer trusted.
const ManualReviewLayers = 3

// Composite blends fg over bg. An opaque fg is returned unchanged; otherwise
// each channel is fg*a + bg*(1-a) and the result is opaque.
func Composite(fg, bg color.RGBA) color.RGBA {
	if fg.Opaque() {
		return fg
	}
	a := math.Max(0, fg.A)
	return color.RGBA{
		R: fg.R*a + bg.R*(1-a),
		G: fg.G*a + bg.G*(1-a),
		B: fg.B*a + bg.B*(1-a),
		A: 1,
	}
}

// Flatten composites layers bottom to top over the white canvas and returns
// the resulting opaque color together with the number of translucent layers.
func Flatten(layers []color.RGBA) (color.RGBA, int) {
	out := color.White
	translucent := 0
	for _, layer := range layers {
		if !layer.Opaque() {
			translucent++
		}
		out = Composite(layer, out)
	}
	return out, translucent
}

// Linearize converts one 0-255 sRGB channel to linear light.
func Linearize(channel float64) float64 {
	c := channel / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of an opaque color.
func Luminance(c color.RGBA) float64 {
	return 0.2126*Linearize(c.R) + 0.7152*Linearize(c.G) + 0.0722*Linearize(c.B)
}

// Ratio returns the contrast ratio between two colors, in [1, 21]. Translucent
// inputs are first flattened over white, so the result does not depend on
// argument order.
func Ratio(a, b color.RGBA) float64 {
	la := Luminance(Composite(a, color.White))
	lb := Luminance(Composite(b, color.White))
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// Contrast returns the ratio of a foreground drawn over a background. The
// foreground is composited over the background before luminance is computed.
func Contrast(fg, bg color.RGBA) float64 {
	bg = Composite(bg, color.White)
	return Ratio(Composite(fg, bg), bg)
}
