package tui

import (
	"math"

	"github.com/san-kum/atmolab/internal/altimetry"
	"github.com/san-kum/atmolab/internal/atmos"
	"github.com/san-kum/atmolab/internal/state"
)

// slider bounds one editable value and sets the arrow-key increment.
type slider struct {
	min, max, step float64
}

func (s slider) clamp(v float64) float64 {
	return math.Max(s.min, math.Min(s.max, v))
}

// nudge moves v by dir steps and clamps the result.
func (s slider) nudge(v float64, dir int) float64 {
	return s.clamp(v + float64(dir)*s.step)
}

var airSliders = map[state.Field]slider{
	state.SpecificHumidity: {0, 50, 1},
	state.MixingRatio:      {0, 50, 1},
	state.RelativeHumidity: {0, 100, 1},
	state.DewPoint:         {-50, 50, 1},
	state.Temperature:      {-20, 40, 1},
	state.Pressure:         {250, 1050, 25},
	state.Altitude:         {0, 10500, 50},
}

var (
	deltaTSlider      = slider{0, 5, 0.1}
	levelTemperature  = slider{-20, 40, 1}
	levelHumidity     = slider{0, 100, 1}
	levelAltitudeStep = 50.0
)

var flightSliders = []slider{
	{altimetry.MinFlightLevel, altimetry.MaxFlightLevel, 5},
	{math.Ceil(atmos.PressureFromFL(altimetry.MaxFlightLevel)), math.Floor(atmos.PressureFromFL(altimetry.MinFlightLevel)), 1},
	{altimetry.MinMSLPressure, altimetry.MaxMSLPressure, 1},
	{altimetry.MinMSLTemperature, altimetry.MaxMSLTemperature, 1},
	{altimetry.MinLapseRate, altimetry.MaxLapseRate, 0.01},
}
