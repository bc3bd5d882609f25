package profile

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/san-kum/atmolab/internal/atmos"
)

// DefaultMaxAltitude is the ceiling of an editable sounding (m).
const DefaultMaxAltitude = 3000.0

// Level is one user-authored sample of a sounding.
type Level struct {
	Altitude         float64 `json:"altitude" yaml:"altitude"`
	Temperature      float64 `json:"temperature" yaml:"temperature"`
	RelativeHumidity float64 `json:"relative_humidity" yaml:"relative_humidity"`
}

// DerivedLevel is a Level with its computed moisture, pressure and density.
type DerivedLevel struct {
	Level
	Pressure         float64 `json:"pressure"`
	SpecificHumidity float64 `json:"specific_humidity"`
	Density          float64 `json:"density"`
}

// Cloud reports whether the level is saturated.
func (d DerivedLevel) Cloud() bool {
	return d.RelativeHumidity >= 100
}

func derive(l Level) DerivedLevel {
	p := atmos.PressureFromStandardAltitude(l.Altitude)
	return DerivedLevel{
		Level:            l,
		Pressure:         p,
		SpecificHumidity: atmos.SpecificHumidity(l.RelativeHumidity, p, l.Temperature),
		Density:          atmos.AirDensity(l.RelativeHumidity, p, l.Temperature),
	}
}

// Sounding is the ambient atmospheric profile derived from a set of levels.
type Sounding struct {
	maxAltitude float64
	levels      []DerivedLevel

	temperature interp.PiecewiseLinear
	humidity    interp.PiecewiseLinear
}

// Derive validates and sorts levels, then computes pressure (standard
// atmosphere), specific humidity and density for each of them.
func Derive(levels []Level, maxAltitude float64) (*Sounding, error) {
	if len(levels) < 2 {
		return nil, ErrTooFewLevels
	}

	sorted := make([]Level, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Altitude < sorted[j].Altitude })

	s := &Sounding{
		maxAltitude: maxAltitude,
		levels:      make([]DerivedLevel, 0, len(sorted)),
	}
	alts := make([]float64, len(sorted))
	temps := make([]float64, len(sorted))
	hums := make([]float64, len(sorted))

	for i, l := range sorted {
		if l.Altitude < 0 || l.Altitude > maxAltitude {
			return nil, fmt.Errorf("%w: %.1f m", ErrAltitudeRange, l.Altitude)
		}
		if i > 0 && l.Altitude == sorted[i-1].Altitude {
			return nil, fmt.Errorf("%w: %.1f m", ErrDuplicateAltitude, l.Altitude)
		}
		d := derive(l)
		s.levels = append(s.levels, d)
		alts[i] = d.Altitude
		temps[i] = d.Temperature
		hums[i] = d.SpecificHumidity
	}

	if err := s.temperature.Fit(alts, temps); err != nil {
		return nil, fmt.Errorf("fit temperature: %w", err)
	}
	if err := s.humidity.Fit(alts, hums); err != nil {
		return nil, fmt.Errorf("fit humidity: %w", err)
	}
	return s, nil
}

// Levels returns the derived samples ordered by altitude.
func (s *Sounding) Levels() []DerivedLevel {
	out := make([]DerivedLevel, len(s.levels))
	copy(out, s.levels)
	return out
}

func (s *Sounding) MaxAltitude() float64 { return s.maxAltitude }

func (s *Sounding) Surface() DerivedLevel { return s.levels[0] }

func (s *Sounding) Top() DerivedLevel { return s.levels[len(s.levels)-1] }

// At interpolates the sounding at altitude. Temperature and specific
// humidity are linear in altitude between the bracketing samples; relative
// humidity and density are recomputed from them.
func (s *Sounding) At(altitude float64) (DerivedLevel, error) {
	if altitude < s.Surface().Altitude || altitude > s.Top().Altitude {
		return DerivedLevel{}, fmt.Errorf("%w: %.1f m", ErrOutOfRange, altitude)
	}

	t := s.temperature.Predict(altitude)
	q := s.humidity.Predict(altitude)
	p := atmos.PressureFromStandardAltitude(altitude)
	rh := atmos.RelativeHumidity(q, p, t)
	return DerivedLevel{
		Level: Level{
			Altitude:         altitude,
			Temperature:      t,
			RelativeHumidity: rh,
		},
		Pressure:         p,
		SpecificHumidity: q,
		Density:          atmos.AirDensity(rh, p, t),
	}, nil
}

// InfoLevels samples n evenly spaced band centres (i+0.5)·max/n, skipping
// those above the top sample.
func (s *Sounding) InfoLevels(n int) []DerivedLevel {
	out := make([]DerivedLevel, 0, n)
	for i := 0; i < n; i++ {
		alt := (float64(i) + 0.5) * s.maxAltitude / float64(n)
		lvl, err := s.At(alt)
		if err != nil {
			continue
		}
		out = append(out, lvl)
	}
	return out
}
