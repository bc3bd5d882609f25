package state

import (
	"fmt"
	"math"

	"github.com/san-kum/atmolab/internal/atmos"
)

// AdiabaticStep is the altitude increment (m) of the lapse-rate integration.
const AdiabaticStep = 10.0

// DefaultTolerance bounds the re-derivation error accepted by Verify.
const DefaultTolerance = 1e-6

const (
	maxPressureIterations = 50
	altitudeEpsilon       = 1e-6 // m
)

// Propagator keeps a State consistent after single-field edits.
// The zero value integrates nothing and converts altitude with the ICAO
// standard atmosphere.
type Propagator struct {
	Lapse     LapsePolicy
	Reference Reference
}

func NewPropagator(lapse LapsePolicy, ref Reference) *Propagator {
	return &Propagator{Lapse: lapse, Reference: ref}
}

// New builds a consistent state from temperature, pressure and specific humidity.
func (p *Propagator) New(t, pressure, q float64) State {
	s := State{
		Temperature: t,
		Pressure:    pressure,
		Altitude:    p.Reference.AltitudeAt(pressure, t),
	}
	return s.withHumidity(q)
}

// Apply is the state transition function: it returns s with e applied and
// every dependent field re-derived. s is not modified.
func (p *Propagator) Apply(s State, e Edit) (State, error) {
	switch e.Field {
	case SpecificHumidity:
		return p.FromSpecificHumidity(s, e.Value), nil
	case MixingRatio:
		return p.FromMixingRatio(s, e.Value), nil
	case RelativeHumidity:
		return p.FromRelativeHumidity(s, e.Value), nil
	case DewPoint:
		return p.FromDewPoint(s, e.Value), nil
	case Temperature:
		return p.FromTemperature(s, e.Value), nil
	case Pressure:
		return p.FromPressure(s, e.Value), nil
	case Altitude:
		return p.FromAltitude(s, e.Value), nil
	}
	return s, fmt.Errorf("%w: %d", ErrUnknownField, int(e.Field))
}

func (p *Propagator) FromSpecificHumidity(s State, q float64) State {
	return s.withHumidity(q)
}

func (p *Propagator) FromMixingRatio(s State, w float64) State {
	return s.withHumidity(atmos.SpecificHumidityFromMixingRatio(w))
}

func (p *Propagator) FromRelativeHumidity(s State, rh float64) State {
	return s.withHumidity(atmos.SpecificHumidity(rh, s.Pressure, s.Temperature))
}

func (p *Propagator) FromDewPoint(s State, td float64) State {
	rh := atmos.RelativeHumidityFromDewPoint(td, s.Temperature)
	return s.withHumidity(atmos.SpecificHumidity(rh, s.Pressure, s.Temperature))
}

// FromTemperature keeps pressure and altitude, moisture is re-read at t.
func (p *Propagator) FromTemperature(s State, t float64) State {
	s.Temperature = t
	return s.withHumidity(s.SpecificHumidity)
}

// FromPressure converts the pressure to an altitude and moves there. The
// edited pressure is kept as entered.
//
// In QFF mode the altitude of a pressure depends on the temperature reached
// at that altitude, so the move is repeated until the altitude settles.
func (p *Propagator) FromPressure(s State, pressure float64) State {
	next := p.FromAltitude(s, p.Reference.AltitudeAt(pressure, s.Temperature))
	if p.Reference.Mode == QFF {
		for i := 0; i < maxPressureIterations; i++ {
			a := p.Reference.AltitudeAt(pressure, next.Temperature)
			if math.Abs(a-next.Altitude) < altitudeEpsilon {
				break
			}
			next = p.FromAltitude(s, a)
		}
	}
	next.Pressure = pressure
	return next.withHumidity(next.SpecificHumidity)
}

// FromAltitude moves the air to altitude a. Temperature follows the lapse
// policy in AdiabaticStep increments, then pressure and moisture are
// re-derived at the destination.
func (p *Propagator) FromAltitude(s State, a float64) State {
	t := p.integrate(s, a)
	s.Altitude = a
	s.Temperature = t
	s.Pressure = p.Reference.PressureAt(a, t)
	return s.withHumidity(s.SpecificHumidity)
}

// integrate returns the temperature reached by lifting or lowering s to
// altitude a with conserved specific humidity.
func (p *Propagator) integrate(s State, a float64) float64 {
	t := s.Temperature
	if p.Lapse == LapseNone {
		return t
	}

	dir := 1.0
	if a < s.Altitude {
		dir = -1.0
	}
	z := s.Altitude
	for dir*(a-z) > 0 {
		dz := math.Min(AdiabaticStep, dir*(a-z))
		pz := p.Reference.PressureAt(z, t)
		rh := atmos.RelativeHumidity(s.SpecificHumidity, pz, t)
		t -= dir * dz * p.Lapse.Rate(rh, t, pz)
		z += dir * dz
	}
	return t
}

// Verify re-derives every moisture field from specific humidity and pressure
// from altitude, and reports the first mismatch beyond tol (relative to the
// magnitude of the stored value, at least 1).
//
// In QFF mode pressure is derived at the stored temperature. A temperature
// edit keeps pressure and altitude as they are, so after one the pair is
// only consistent with the temperature of the last vertical move.
func (p *Propagator) Verify(s State, tol float64) error {
	want := s.withHumidity(s.SpecificHumidity)
	checks := []struct {
		field           Field
		stored, derived float64
	}{
		{MixingRatio, s.MixingRatio, want.MixingRatio},
		{RelativeHumidity, s.RelativeHumidity, want.RelativeHumidity},
		{DewPoint, s.DewPoint, want.DewPoint},
		{Pressure, s.Pressure, p.Reference.PressureAt(s.Altitude, s.Temperature)},
	}

	for _, c := range checks {
		if c.stored == c.derived {
			continue
		}
		scale := math.Max(math.Abs(c.stored), 1)
		if math.IsNaN(c.stored-c.derived) || math.Abs(c.stored-c.derived) > tol*scale {
			return &FieldError{Field: c.field, Stored: c.stored, Derived: c.derived, Wrapped: ErrInconsistent}
		}
	}
	return nil
}
