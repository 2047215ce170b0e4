package fractal

import (
	"math"

	"julia-render/internal/domain"
)

// HSBToRGB converts hue, saturation and brightness to an 8-bit color.
// Hue wraps around the unit interval; saturation and brightness are
// clamped to [0, 1].
func HSBToRGB(hue, saturation, brightness float64) domain.Color {
	s := clamp01(saturation)
	v := clamp01(brightness)
	if s == 0 {
		c := channel(v)
		return domain.Color{R: c, G: c, B: c}
	}

	h := (hue - math.Floor(hue)) * 6
	sector := int(h) % 6
	f := h - math.Floor(h)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return domain.Color{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(x float64) uint8 {
	return uint8(x*255 + 0.5)
}

func clamp01(x float64) float64 {
	switch {
	case x < 0 || math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	}
	return x
}
