package export

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/atmolab/internal/altimetry"
	"github.com/san-kum/atmolab/internal/profile"
	"github.com/san-kum/atmolab/internal/state"
)

// formatFloat leaves non-finite values empty.
func formatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func writeRows(w io.Writer, header []string, n int, row func(i int) []float64, extra func(i int) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		vals := row(i)
		rec := make([]string, 0, len(header))
		for _, v := range vals {
			rec = append(rec, formatFloat(v))
		}
		if extra != nil {
			rec = append(rec, extra(i)...)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var readoutHeader = []string{
	"temperature", "pressure", "altitude", "specific_humidity", "mixing_ratio",
	"relative_humidity", "dew_point", "air_density", "boiling_point", "flight_level",
	"saturation_humidity", "saturated",
}

// WriteReadoutsCSV writes one row per readout. An empty cell is a
// non-finite value.
func WriteReadoutsCSV(w io.Writer, readouts []state.Readout) error {
	return writeRows(w, readoutHeader, len(readouts), func(i int) []float64 {
		r := readouts[i]
		return []float64{
			r.Temperature, r.Pressure, r.Altitude, r.SpecificHumidity, r.MixingRatio,
			r.RelativeHumidity, r.DewPoint, r.AirDensity, r.BoilingPoint, r.FlightLevel,
			r.SaturationHumidity,
		}
	}, func(i int) []string {
		return []string{strconv.FormatBool(readouts[i].Saturated)}
	})
}

var levelHeader = []string{"altitude", "temperature", "relative_humidity", "pressure", "specific_humidity", "density"}

func WriteSoundingCSV(w io.Writer, levels []profile.DerivedLevel) error {
	return writeRows(w, levelHeader, len(levels), func(i int) []float64 {
		l := levels[i]
		return []float64{l.Altitude, l.Temperature, l.RelativeHumidity, l.Pressure, l.SpecificHumidity, l.Density}
	}, nil)
}

func WriteUpdraftCSV(w io.Writer, up profile.Updraft) error {
	header := append(append([]string(nil), levelHeader...), "volume", "excess")
	return writeRows(w, header, len(up.Levels), func(i int) []float64 {
		l := up.Levels[i]
		return []float64{l.Altitude, l.Temperature, l.RelativeHumidity, l.Pressure, l.SpecificHumidity, l.Density, l.Volume, l.Excess}
	}, nil)
}

func WriteFlightLevelsCSV(w io.Writer, readings []altimetry.Reading) error {
	header := []string{
		"flight_level", "pressure", "temperature", "mean_temperature", "altitude",
		"standard_altitude", "barometric_altitude", "qnh_altitude",
	}
	for _, e := range altimetry.Extremes {
		header = append(header, "altitude_"+strings.ReplaceAll(e.Name, " ", "_"))
	}
	return writeRows(w, header, len(readings), func(i int) []float64 {
		r := readings[i]
		vals := []float64{
			r.FlightLevel, r.Pressure, r.Temperature, r.MeanTemperature, r.Altitude,
			r.StandardAltitude, r.BarometricAltitude, r.QNHAltitude,
		}
		for _, e := range r.Extremes {
			vals = append(vals, e.Altitude)
		}
		return vals
	}, nil)
}
