package altimetry

import (
	"fmt"
	"math"

	"github.com/san-kum/atmolab/internal/atmos"
)

const (
	MinFlightLevel = 50.0
	MaxFlightLevel = 350.0

	MinMSLPressure = 950.0
	MaxMSLPressure = 1050.0

	MinMSLTemperature = -20.0
	MaxMSLTemperature = 40.0

	// Lapse rate bounds (°C/100 m).
	MinLapseRate = 0.4
	MaxLapseRate = 1.05
)

// Conditions describe the air column below a flight level.
type Conditions struct {
	MSLPressure    float64 `json:"msl_pressure" yaml:"msl_pressure"`
	MSLTemperature float64 `json:"msl_temperature" yaml:"msl_temperature"`
	// LapseRate is the observed environmental lapse rate in °C per 100 m.
	LapseRate float64 `json:"lapse_rate" yaml:"lapse_rate"`
}

// StandardConditions returns the ICAO standard column.
func StandardConditions() Conditions {
	return Conditions{
		MSLPressure:    atmos.P0,
		MSLTemperature: atmos.T0,
		LapseRate:      atmos.ELR * 100,
	}
}

// Extreme is a reference surface weather used to bound the true altitude of
// a flight level.
type Extreme struct {
	Name           string  `json:"name"`
	MSLPressure    float64 `json:"msl_pressure"`
	MSLTemperature float64 `json:"msl_temperature"`
}

var (
	BadWinter = Extreme{Name: "bad winter", MSLPressure: 1000, MSLTemperature: -20}
	HeatWave  = Extreme{Name: "heat wave", MSLPressure: 1025, MSLTemperature: 40}

	Extremes = []Extreme{BadWinter, HeatWave}
)

// ExtremeAltitude is the true altitude of a level under an Extreme.
type ExtremeAltitude struct {
	Extreme
	Altitude float64 `json:"altitude"`
}

// Reading is everything known about one flight level under some Conditions.
// Altitudes are in metres.
type Reading struct {
	FlightLevel     float64 `json:"flight_level"`
	Pressure        float64 `json:"pressure"`
	Temperature     float64 `json:"temperature"`
	MeanTemperature float64 `json:"mean_temperature"`

	// Altitude is the true altitude from the hypsometric equation.
	Altitude float64 `json:"altitude"`
	// StandardAltitude assumes the ICAO standard atmosphere.
	StandardAltitude float64 `json:"standard_altitude"`
	// BarometricAltitude is the standard atmosphere shifted by the MSL
	// pressure of the day.
	BarometricAltitude float64 `json:"barometric_altitude"`
	// QNHAltitude is what an altimeter set to the standard MSL pressure shows.
	QNHAltitude float64 `json:"qnh_altitude"`

	Extremes []ExtremeAltitude `json:"extremes"`
}

// AtFlightLevel resolves a flight level (hundreds of feet).
func (c Conditions) AtFlightLevel(fl float64) (Reading, error) {
	return c.reading(fl, atmos.PressureFromFL(fl))
}

// AtPressure resolves the flight level of pressure p (hPa).
func (c Conditions) AtPressure(p float64) (Reading, error) {
	return c.reading(atmos.FLFromPressure(p), p)
}

func (c Conditions) reading(fl, p float64) (Reading, error) {
	t, err := EnvironmentalCooling(p, c.MSLPressure, c.MSLTemperature, c.LapseRate)
	if err != nil {
		return Reading{}, err
	}
	mean := (c.MSLTemperature + t) / 2

	r := Reading{
		FlightLevel:        fl,
		Pressure:           p,
		Temperature:        t,
		MeanTemperature:    mean,
		Altitude:           atmos.AltitudeFromPressure(p, c.MSLPressure, mean),
		StandardAltitude:   atmos.AltitudeFromStandardPressure(p),
		BarometricAltitude: atmos.AltitudeFromStandardPressure(p) - atmos.AltitudeFromStandardPressure(c.MSLPressure),
		QNHAltitude:        fl * 100 / atmos.FeetPerMeter,
		Extremes:           make([]ExtremeAltitude, 0, len(Extremes)),
	}

	// The extremes only swap the surface weather; the column is still
	// integrated from the current MSL pressure with the current lapse rate.
	for _, e := range Extremes {
		te, err := EnvironmentalCooling(p, c.MSLPressure, e.MSLTemperature, c.LapseRate)
		if err != nil {
			return Reading{}, err
		}
		tm := (e.MSLTemperature + te) / 2
		r.Extremes = append(r.Extremes, ExtremeAltitude{
			Extreme:  e,
			Altitude: atmos.AltitudeFromPressure(p, e.MSLPressure, tm),
		})
	}
	return r, nil
}

const maxSweepLevels = 10000

// Sweep resolves flight levels from..to inclusive every step.
func (c Conditions) Sweep(from, to, step float64) ([]Reading, error) {
	span := to - from
	if !(step > 0) || !(span >= 0) || span/step > maxSweepLevels {
		return nil, fmt.Errorf("%w: from %g to %g step %g", ErrSweepRange, from, to, step)
	}
	n := int(math.Floor(span/step+1e-9)) + 1
	out := make([]Reading, 0, n)
	for i := 0; i < n; i++ {
		r, err := c.AtFlightLevel(from + float64(i)*step)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
