package state

import (
	"fmt"
	"strings"

	"github.com/san-kum/atmolab/internal/atmos"
)

// LapsePolicy selects how temperature follows an altitude change.
type LapsePolicy int

const (
	LapseNone LapsePolicy = iota
	LapseDry
	LapseMoist
	LapseAuto
	LapseAverage
)

var policyNames = []string{"none", "dry", "moist", "auto", "avg"}

func (lp LapsePolicy) String() string {
	if int(lp) < len(policyNames) && lp >= 0 {
		return policyNames[lp]
	}
	return fmt.Sprintf("policy(%d)", int(lp))
}

// Next cycles through the policies in declaration order.
func (lp LapsePolicy) Next() LapsePolicy {
	return LapsePolicy((int(lp) + 1) % len(policyNames))
}

func ParseLapsePolicy(s string) (LapsePolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "dry-adiabatic", "dalr":
		return LapseDry, nil
	case "moist-adiabatic", "malr":
		return LapseMoist, nil
	case "auto-switch":
		return LapseAuto, nil
	case "average", "fixed-average", "elr":
		return LapseAverage, nil
	}
	for i, name := range policyNames {
		if name == s {
			return LapsePolicy(i), nil
		}
	}
	return LapseNone, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Rate returns the lapse rate (°C/m) the policy applies to air with
// relative humidity rh at temperature t and pressure p.
func (lp LapsePolicy) Rate(rh, t, p float64) float64 {
	switch lp {
	case LapseDry:
		return atmos.Gamma
	case LapseMoist:
		return atmos.GammaMoist(t, p)
	case LapseAuto:
		if rh < 100 {
			return atmos.Gamma
		}
		return atmos.GammaMoist(t, p)
	case LapseAverage:
		return atmos.ELR
	}
	return 0
}

// AltimeterMode selects how pressure and altitude convert into each other.
type AltimeterMode int

const (
	// QNH uses the fixed ICAO standard atmosphere.
	QNH AltimeterMode = iota
	// QFF uses the measured sea level pressure and ground temperature.
	QFF
)

func (m AltimeterMode) String() string {
	if m == QFF {
		return "qff"
	}
	return "qnh"
}

func ParseAltimeterMode(s string) (AltimeterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qnh", "standard":
		return QNH, nil
	case "qff", "real":
		return QFF, nil
	}
	return QNH, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Reference holds the ground conditions used for real-atmosphere conversion.
type Reference struct {
	GroundTemperature float64       `json:"ground_temperature" yaml:"ground_temperature"`
	MSLPressure       float64       `json:"msl_pressure" yaml:"msl_pressure"`
	Mode              AltimeterMode `json:"mode" yaml:"-"`
}

// StandardReference is the ICAO standard atmosphere in QNH mode.
func StandardReference() Reference {
	return Reference{GroundTemperature: atmos.T0, MSLPressure: atmos.P0, Mode: QNH}
}

// PressureAt converts an altitude to pressure. t is the temperature at that
// altitude; in QFF mode the column mean is (GroundTemperature+t)/2.
func (r Reference) PressureAt(altitude, t float64) float64 {
	if r.Mode == QFF {
		return atmos.PressureFromAltitude(altitude, r.MSLPressure, (r.GroundTemperature+t)/2)
	}
	return atmos.PressureFromStandardAltitude(altitude)
}

// AltitudeAt converts a pressure to altitude, the inverse of PressureAt.
func (r Reference) AltitudeAt(pressure, t float64) float64 {
	if r.Mode == QFF {
		return atmos.AltitudeFromPressure(pressure, r.MSLPressure, (r.GroundTemperature+t)/2)
	}
	return atmos.AltitudeFromStandardPressure(pressure)
}
