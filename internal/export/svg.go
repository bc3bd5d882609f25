package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/atmolab/internal/profile"
	"github.com/san-kum/atmolab/internal/viz"
)

const svgBackground = "#0a0a0a"

// CanvasToSVG draws every lit Braille dot of canvas as a circle in its
// cell colour.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground)

	radius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r, color := canvas.Cell(row, col)
			fill := string(color)
			if fill == "" {
				fill = "#ffffff"
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy, line := range viz.Dots(r) {
				for dx, lit := range line {
					if !lit {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, radius, fill)
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

type point struct{ X, Y float64 }

// ProfileToSVG plots temperature (x) against altitude (y) for the sounding
// samples and the parcel path.
func ProfileToSVG(s *profile.Sounding, up profile.Updraft, width, height int) string {
	levels := s.Levels()
	ambient := make([]point, len(levels))
	for i, l := range levels {
		ambient[i] = point{l.Temperature, l.Altitude}
	}
	parcel := make([]point, len(up.Levels))
	for i, l := range up.Levels {
		parcel[i] = point{l.Temperature, l.Altitude}
	}

	all := append(append([]point(nil), ambient...), parcel...)
	if len(all) < 2 {
		return ""
	}
	minX, maxX := all[0].X, all[0].X
	for _, p := range all {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
	}
	minY, maxY := 0.0, s.MaxAltitude()

	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	rangeX = maxX - minX
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}

	path := func(points []point) string {
		var b strings.Builder
		for i, p := range points {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if i == 0 {
				fmt.Fprintf(&b, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&b, " L%.1f,%.1f", x, y)
			}
		}
		return b.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground)
	if len(ambient) > 1 {
		fmt.Fprintf(&sb, "<path fill=\"none\" stroke=\"#5fafff\" stroke-width=\"1.5\" d=\"%s\"/>\n", path(ambient))
	}
	if len(parcel) > 1 {
		fmt.Fprintf(&sb, "<path fill=\"none\" stroke=\"#ff5f5f\" stroke-width=\"1.5\" d=\"%s\"/>\n", path(parcel))
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
