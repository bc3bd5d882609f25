package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/atmolab/internal/profile"
)

// colorScale keeps the ramp away from full brightness.
const colorScale = 192

// TemperatureColor maps t onto a blue, cyan, green, yellow, red ramp
// spanning [min, max]. Values outside the range are clamped.
func TemperatureColor(min, max, t float64) lipgloss.Color {
	r, g, b := temperatureRGB(min, max, t)
	return lipgloss.Color(hexColor(
		int(math.Round(r*colorScale)),
		int(math.Round(g*colorScale)),
		int(math.Round(b*colorScale)),
	))
}

func temperatureRGB(min, max, t float64) (r, g, b float64) {
	r, g, b = 1, 1, 1
	dv := max - min
	if dv <= 0 {
		return 0, 1, 0
	}
	t = math.Max(math.Min(t, max), min)

	switch {
	case t < min+0.25*dv:
		r = 0
		g = 4 * (t - min) / dv
	case t < min+0.5*dv:
		r = 0
		b = 1 + 4*(min+0.25*dv-t)/dv
	case t < min+0.75*dv:
		r = 4 * (t - min - 0.5*dv) / dv
		b = 0
	default:
		g = 1 + 4*(min+0.75*dv-t)/dv
		b = 0
	}
	return r, g, b
}

// TemperatureRange returns the colour range of a sounding: its coldest
// sample up to the warmer of its hottest sample and the lifted parcel.
func TemperatureRange(levels []profile.DerivedLevel, deltaT float64) (min, max float64) {
	if len(levels) == 0 {
		return 0, 0
	}
	temps := make([]float64, len(levels))
	for i, l := range levels {
		temps[i] = l.Temperature
	}
	return floats.Min(temps), math.Max(floats.Max(temps), levels[0].Temperature+deltaT)
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
