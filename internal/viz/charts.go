package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/atmolab/internal/profile"
)

// UpdraftChart plots ambient and parcel temperature against the updraft
// steps. The ambient series covers the whole sounding grid so the point
// where the parcel stops stays visible.
func UpdraftChart(s *profile.Sounding, up profile.Updraft, steps, width, height int) string {
	if steps < 2 || len(up.Levels) == 0 {
		return ""
	}
	base := s.Surface().Altitude
	dz := (s.MaxAltitude() - base) / float64(steps-1)

	ambient := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		l, err := s.At(base + float64(i)*dz)
		if err != nil {
			break
		}
		ambient = append(ambient, l.Temperature)
	}
	parcel := make([]float64, len(up.Levels))
	for i, l := range up.Levels {
		parcel[i] = l.Temperature
	}

	return asciigraph.PlotMany([][]float64{ambient, parcel},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("ambient", "parcel"),
		asciigraph.Caption(fmt.Sprintf("°C every %.0f m", dz)),
	)
}

// ExcessChart plots how much warmer than ambient the parcel is at each step.
func ExcessChart(up profile.Updraft, width, height int) string {
	excess := make([]float64, len(up.Levels))
	for i, l := range up.Levels {
		excess[i] = l.Excess
	}
	if len(excess) == 0 {
		return ""
	}
	return asciigraph.Plot(excess,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.LowerBound(0),
		asciigraph.Caption("parcel excess °C"),
	)
}

// SoundingCanvas draws temperature (x) against altitude (y) on a Braille
// canvas: the sounding coloured by temperature, and the parcel path. It
// returns the temperature range of the x axis. up must not be empty.
func SoundingCanvas(s *profile.Sounding, up profile.Updraft, width, height int) (c *Canvas, lo, hi float64) {
	levels := s.Levels()
	lo, hi = TemperatureRange(levels, up.Levels[0].Excess)
	for _, l := range up.Levels {
		lo = math.Min(lo, l.Temperature)
	}
	if hi-lo < 1 {
		hi = lo + 1
	}
	maxAlt := s.MaxAltitude()

	c = NewCanvas(width, height)
	dotsX, dotsY := 2*width-1, 4*height-1
	project := func(alt, t float64) (int, int) {
		x := int(math.Round((t - lo) / (hi - lo) * float64(dotsX)))
		y := dotsY - int(math.Round(alt/maxAlt*float64(dotsY)))
		return x, y
	}

	for i := 1; i < len(levels); i++ {
		a, b := levels[i-1], levels[i]
		x0, y0 := project(a.Altitude, a.Temperature)
		x1, y1 := project(b.Altitude, b.Temperature)
		c.DrawLine(x0, y0, x1, y1, TemperatureColor(lo, hi, (a.Temperature+b.Temperature)/2))
	}
	for i := 1; i < len(up.Levels); i++ {
		a, b := up.Levels[i-1], up.Levels[i]
		x0, y0 := project(a.Altitude, a.Temperature)
		x1, y1 := project(b.Altitude, b.Temperature)
		col := CurrentTheme.Accent
		if b.Cloud() {
			col = CurrentTheme.Cloud
		}
		c.DrawLine(x0, y0, x1, y1, col)
	}
	return c, lo, hi
}

// SoundingDiagram renders SoundingCanvas with altitude and temperature axes.
func SoundingDiagram(s *profile.Sounding, up profile.Updraft, width, height int) string {
	if len(up.Levels) == 0 || width < 2 || height < 2 {
		return ""
	}
	c, lo, hi := SoundingCanvas(s, up, width, height)

	var out strings.Builder
	rows := c.Rows()
	for i, r := range rows {
		label := ""
		switch i {
		case 0:
			label = fmt.Sprintf("%.0f m", s.MaxAltitude())
		case len(rows) - 1:
			label = "0 m"
		}
		out.WriteString(Subtle.Render(fmt.Sprintf("%7s ┤", label)) + r + "\n")
	}
	axis := fmt.Sprintf("%.0f °C", lo)
	pad := max(width-len(axis)-len(fmt.Sprintf("%.0f °C", hi)), 1)
	out.WriteString(Subtle.Render(strings.Repeat(" ", 9) + axis + strings.Repeat(" ", pad) + fmt.Sprintf("%.0f °C", hi)))
	return out.String()
}
