package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/atmolab/internal/altimetry"
	"github.com/san-kum/atmolab/internal/profile"
	"github.com/san-kum/atmolab/internal/state"
)

var fieldLabels = map[state.Field]string{
	state.SpecificHumidity: "Specific humidity",
	state.MixingRatio:      "Mixing ratio",
	state.RelativeHumidity: "Relative humidity",
	state.DewPoint:         "Dew point",
	state.Temperature:      "Temperature",
	state.Pressure:         "Pressure",
	state.Altitude:         "Altitude",
}

var fieldPrecision = map[state.Field]int{
	state.SpecificHumidity: 2,
	state.MixingRatio:      2,
	state.RelativeHumidity: 1,
	state.DewPoint:         1,
	state.Temperature:      1,
	state.Pressure:         1,
	state.Altitude:         0,
}

// FieldLabel is the display name of f.
func FieldLabel(f state.Field) string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return f.String()
}

// FormatField renders v with the precision and units of f.
func FormatField(f state.Field, v float64) string {
	return formatValue(v, fieldPrecision[f], f.Units())
}

func formatValue(v float64, prec int, units string) string {
	var s string
	switch {
	case math.IsInf(v, -1):
		s = "-inf"
	case math.IsInf(v, 1):
		s = "+inf"
	case math.IsNaN(v):
		s = "n/a"
	default:
		s = fmt.Sprintf("%.*f", prec, v)
	}
	if units == "" {
		return s
	}
	return s + " " + units
}

func row(label, value string) string {
	return Label.Render(label) + Value.Render(value) + "\n"
}

// FieldRows renders every state field, highlighting the one at cursor.
// A cursor outside the field list highlights nothing.
func FieldRows(s state.State, cursor int) string {
	var b strings.Builder
	for i, f := range state.Fields {
		label := FieldLabel(f)
		value := FormatField(f, s.Get(f))
		if i == cursor {
			b.WriteString(Selected.Render("▸ "+label) + "  " + Selected.Render(value) + "\n")
			continue
		}
		b.WriteString(row("  "+label, value))
	}
	return b.String()
}

// DerivedRows renders the quantities computed alongside a state.
func DerivedRows(r state.Readout) string {
	var b strings.Builder
	b.WriteString(row("Air density", formatValue(r.AirDensity, 3, "kg/m³")))
	b.WriteString(row("Water boils at", formatValue(r.BoilingPoint, 1, "°C")))
	b.WriteString(row("Flight level", "FL "+formatValue(r.FlightLevel, 0, "")))
	b.WriteString(row("Saturation humidity", formatValue(r.SaturationHumidity, 2, "g/kg")))
	if r.Saturated {
		b.WriteString(CloudStyle.Render("☁ saturated: cloud forms") + "\n")
	}
	return b.String()
}

// ReadoutPanel renders a full state readout.
func ReadoutPanel(r state.Readout) string {
	return BoxWithTitle("Air sample", FieldRows(r.State, -1)+"\n"+DerivedRows(r))
}

// MarkerPanel renders a marker next to the current readout, with the
// difference of each field.
func MarkerPanel(m state.Marker, current state.Readout) string {
	var b strings.Builder
	for _, f := range state.Fields {
		was := m.State.Get(f)
		delta := current.Get(f) - was
		b.WriteString(Label.Render(FieldLabel(f)) +
			MarkerStyle.Render(FormatField(f, was)) +
			Subtle.Render(fmt.Sprintf("  Δ %s", formatValue(delta, fieldPrecision[f], ""))) + "\n")
	}
	b.WriteString(Label.Render("Air density") +
		MarkerStyle.Render(formatValue(m.AirDensity, 3, "kg/m³")) +
		Subtle.Render(fmt.Sprintf("  Δ %+.3f", current.AirDensity-m.AirDensity)) + "\n")
	return BoxWithTitle("Marker", b.String())
}

// SoundingTable lists the samples of a sounding, top first, each row
// coloured by temperature.
func SoundingTable(levels []profile.DerivedLevel, deltaT float64) string {
	lo, hi := TemperatureRange(levels, deltaT)
	var b strings.Builder
	b.WriteString(Subtle.Render(fmt.Sprintf("%8s %8s %6s %8s %7s %9s", "alt m", "T °C", "RH %", "P hPa", "q g/kg", "ρ kg/m³")) + "\n")
	for i := len(levels) - 1; i >= 0; i-- {
		l := levels[i]
		line := fmt.Sprintf("%8.0f %8.1f %6.0f %8.1f %7.2f %9.3f", l.Altitude, l.Temperature, l.RelativeHumidity, l.Pressure, l.SpecificHumidity, l.Density)
		if l.Cloud() {
			line += " ☁"
		}
		b.WriteString(Value.Foreground(TemperatureColor(lo, hi, l.Temperature)).Render(line) + "\n")
	}
	return BoxWithTitle("Sounding", b.String())
}

// UpdraftSummary describes where the thermal tops out.
func UpdraftSummary(up profile.Updraft) string {
	top := up.Top()
	var b strings.Builder
	b.WriteString(row("Thermal top", formatValue(top.Altitude, 0, "m")))
	b.WriteString(row("Parcel at top", formatValue(top.Temperature, 1, "°C")))
	b.WriteString(row("Excess at top", formatValue(top.Excess, 2, "°C")))
	b.WriteString(row("Volume at top", formatValue(top.Volume, 2, "×")))
	b.WriteString(row("Stopped by", up.Ceiling.String()))
	if base, ok := up.CloudBase(); ok {
		b.WriteString(CloudStyle.Render(fmt.Sprintf("☁ cloud base %.0f m", base.Altitude)) + "\n")
	} else {
		b.WriteString(Subtle.Render("blue thermal, no condensation") + "\n")
	}
	return BoxWithTitle("Updraft", b.String())
}

func altitudeText(m float64) string {
	return fmt.Sprintf("%.0f m  %.0f ft", m, m*3.28084)
}

// FlightLevelPanel renders a flight level reading.
func FlightLevelPanel(r altimetry.Reading, c altimetry.Conditions) string {
	var b strings.Builder
	b.WriteString(Subtle.Render(fmt.Sprintf("MSL %.0f hPa, %.0f °C, lapse %.2f °C/100m", c.MSLPressure, c.MSLTemperature, c.LapseRate)) + "\n")
	b.WriteString(row("Pressure", formatValue(r.Pressure, 1, "hPa")))
	b.WriteString(row("Temperature at level", formatValue(r.Temperature, 1, "°C")))
	b.WriteString(row("Column mean", formatValue(r.MeanTemperature, 1, "°C")))
	b.WriteString(row("QNH altimeter", altitudeText(r.QNHAltitude)))
	b.WriteString(Separator(40) + "\n")
	b.WriteString(row("True altitude", altitudeText(r.Altitude)))
	b.WriteString(row("ICAO standard", altitudeText(r.StandardAltitude)))
	b.WriteString(row("Barometric", altitudeText(r.BarometricAltitude)))
	for _, e := range r.Extremes {
		label := fmt.Sprintf("%s (%.0f hPa, %.0f °C)", e.Name, e.MSLPressure, e.MSLTemperature)
		b.WriteString(Subtle.Render(fmt.Sprintf("%-30s", label)) + Value.Render(altitudeText(e.Altitude)) + "\n")
	}
	return BoxWithTitle(fmt.Sprintf("FL %.0f", r.FlightLevel), b.String())
}

// ErrorTablePanel renders mean / max errors (m) of each altitude method.
func ErrorTablePanel(t altimetry.ErrorTable) string {
	var b strings.Builder
	b.WriteString(Subtle.Render(t.Description) + "\n")
	b.WriteString(Subtle.Render(fmt.Sprintf("%-8s %11s %11s %11s %11s", "levels", "standard", "barometric", "hyps 15°C", "hypsometric")) + "\n")
	for _, r := range t.Rows {
		cell := func(s altimetry.ErrorStat) string { return fmt.Sprintf("%4.0f / %-4.0f", s.Mean, s.Max) }
		b.WriteString(fmt.Sprintf("< %-6.0f %11s %11s %11s %11s\n", r.Below, cell(r.Standard), cell(r.Barometric), cell(r.HypsometricFixed), Value.Render(cell(r.Hypsometric))))
	}
	return BoxWithTitle(t.Station+", "+t.Period, b.String())
}
