package color

import (
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// maxGradientDepth bounds gradient stops that reference other gradients.
const maxGradientDepth = 4

// Resolver turns color references into RGBA values using a theme table
// supplied by the caller. It performs no I/O and is safe for concurrent use.
type Resolver struct {
	theme model.ThemeTable
}

// NewResolver creates a Resolver over the given theme table.
func NewResolver(theme model.ThemeTable) *Resolver {
	return &Resolver{theme: theme}
}

// Resolve returns the concrete color for ref. The boolean is false when no
// source yields a color; that is a data-quality condition, not an error.
//
// Precedence: literal hex, registered palette, base palette, gradient
// minimum stop.
func (r *Resolver) Resolve(ref model.ColorRef) (RGBA, bool) {
	return r.resolve(ref, 0)
}

// ResolveOr resolves ref and returns fallback when it cannot be resolved.
func (r *Resolver) ResolveOr(ref model.ColorRef, fallback RGBA) RGBA {
	if c, ok := r.Resolve(ref); ok {
		return c
	}
	return fallback
}

func (r *Resolver) resolve(ref model.ColorRef, depth int) (RGBA, bool) {
	switch ref.Kind {
	case model.ColorLiteral:
		c, err := ParseHex(ref.Hex)
		if err != nil {
			return RGBA{}, false
		}
		return c, true
	case model.ColorTheme:
		c, ok := r.paletteColor(ref.Index)
		if !ok {
			return RGBA{}, false
		}
		return c.Shade(ref.Percent), true
	case model.ColorToken:
		return r.tokenColor(ref.Token)
	case model.ColorGradient:
		if depth >= maxGradientDepth {
			return RGBA{}, false
		}
		stop, ok := MinimumStop(ref.Stops)
		if !ok {
			return RGBA{}, false
		}
		return r.resolve(stop.Color, depth+1)
	default:
		return RGBA{}, false
	}
}

func (r *Resolver) paletteColor(index int) (RGBA, bool) {
	for _, palette := range []model.Palette{r.theme.Registered, r.theme.Base} {
		if index < 0 || index >= len(palette.DataColors) {
			continue
		}
		if c, err := ParseHex(palette.DataColors[index]); err == nil {
			return c, true
		}
	}
	return RGBA{}, false
}

func (r *Resolver) tokenColor(token string) (RGBA, bool) {
	for _, palette := range []model.Palette{r.theme.Registered, r.theme.Base} {
		hex, ok := palette.Tokens[token]
		if !ok {
			continue
		}
		if c, err := ParseHex(hex); err == nil {
			return c, true
		}
	}
	return RGBA{}, false
}

// MinimumStop returns the stop with the lowest value; the first one wins ties.
// Gradients always resolve to this stop, never to an average of the stops.
func MinimumStop(stops []model.GradientStop) (model.GradientStop, bool) {
	if len(stops) == 0 {
		return model.GradientStop{}, false
	}
	minimum := stops[0]
	for _, stop := range stops[1:] {
		if stop.Value < minimum.Value {
			minimum = stop
		}
	}
	return minimum, true
}
