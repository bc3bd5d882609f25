package state

import (
	"fmt"
	"strings"

	"github.com/san-kum/atmolab/internal/atmos"
)

// Field names one editable quantity of a State.
type Field int

const (
	SpecificHumidity Field = iota
	MixingRatio
	RelativeHumidity
	DewPoint
	Temperature
	Pressure
	Altitude
)

// Fields lists every editable field in display order.
var Fields = []Field{SpecificHumidity, MixingRatio, RelativeHumidity, DewPoint, Temperature, Pressure, Altitude}

var fieldNames = map[Field]string{
	SpecificHumidity: "specific_humidity",
	MixingRatio:      "mixing_ratio",
	RelativeHumidity: "relative_humidity",
	DewPoint:         "dew_point",
	Temperature:      "temperature",
	Pressure:         "pressure",
	Altitude:         "altitude",
}

var fieldUnits = map[Field]string{
	SpecificHumidity: "g/kg",
	MixingRatio:      "g/kg",
	RelativeHumidity: "%",
	DewPoint:         "°C",
	Temperature:      "°C",
	Pressure:         "hPa",
	Altitude:         "m",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

func (f Field) Units() string {
	return fieldUnits[f]
}

// ParseField accepts the snake_case name of a field, or a short alias.
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "q":
		return SpecificHumidity, nil
	case "w", "r":
		return MixingRatio, nil
	case "rh":
		return RelativeHumidity, nil
	case "td", "dewpoint":
		return DewPoint, nil
	case "t", "temp":
		return Temperature, nil
	case "p":
		return Pressure, nil
	case "alt", "z":
		return Altitude, nil
	}
	for f, name := range fieldNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// State is the full set of mutually derivable quantities describing a
// sample of air. Specific humidity is the canonical moisture value: mixing
// ratio, relative humidity and dew point are always derived from it at the
// current pressure and temperature.
type State struct {
	Temperature      float64 `json:"temperature" yaml:"temperature"`
	Pressure         float64 `json:"pressure" yaml:"pressure"`
	Altitude         float64 `json:"altitude" yaml:"altitude"`
	SpecificHumidity float64 `json:"specific_humidity" yaml:"specific_humidity"`
	MixingRatio      float64 `json:"mixing_ratio" yaml:"mixing_ratio"`
	RelativeHumidity float64 `json:"relative_humidity" yaml:"relative_humidity"`
	DewPoint         float64 `json:"dew_point" yaml:"dew_point"`
}

// Get returns the value of field f.
func (s State) Get(f Field) float64 {
	switch f {
	case SpecificHumidity:
		return s.SpecificHumidity
	case MixingRatio:
		return s.MixingRatio
	case RelativeHumidity:
		return s.RelativeHumidity
	case DewPoint:
		return s.DewPoint
	case Temperature:
		return s.Temperature
	case Pressure:
		return s.Pressure
	case Altitude:
		return s.Altitude
	}
	return 0
}

// withHumidity sets q and re-derives the other moisture fields at the
// pressure and temperature already held by s.
func (s State) withHumidity(q float64) State {
	s.SpecificHumidity = q
	s.MixingRatio = atmos.MixingRatio(q)
	s.RelativeHumidity = atmos.RelativeHumidity(q, s.Pressure, s.Temperature)
	s.DewPoint = atmos.DewPoint(s.RelativeHumidity, s.Temperature)
	return s
}

// Edit is a single user change: Field gets Value, everything else follows.
type Edit struct {
	Field Field   `json:"field" yaml:"field"`
	Value float64 `json:"value" yaml:"value"`
}

func (e Edit) String() string {
	return fmt.Sprintf("%s=%g", e.Field, e.Value)
}

// Readout is a state together with the quantities displayed next to it.
type Readout struct {
	State
	AirDensity         float64 `json:"air_density"`
	BoilingPoint       float64 `json:"boiling_point"`
	FlightLevel        float64 `json:"flight_level"`
	SaturationHumidity float64 `json:"saturation_humidity"`
	Saturated          bool    `json:"saturated"`
}

// NewReadout derives the display quantities of s.
func NewReadout(s State) Readout {
	return Readout{
		State:              s,
		AirDensity:         atmos.AirDensity(s.RelativeHumidity, s.Pressure, s.Temperature),
		BoilingPoint:       atmos.BoilingPoint(s.Pressure),
		FlightLevel:        atmos.FLFromPressure(s.Pressure),
		SaturationHumidity: atmos.SaturationSpecificHumidity(s.Pressure, s.Temperature),
		Saturated:          s.RelativeHumidity >= 100,
	}
}

// Marker is a snapshot of a state kept for side-by-side comparison.
type Marker struct {
	State      State   `json:"state"`
	AirDensity float64 `json:"air_density"`
}

// Capture snapshots s.
func Capture(s State) Marker {
	return Marker{
		State:      s,
		AirDensity: atmos.AirDensity(s.RelativeHumidity, s.Pressure, s.Temperature),
	}
}
