package profile

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/atmolab/internal/atmos"
)

const (
	DefaultUpdraftSteps  = 50
	DefaultUpdraftDeltaT = 0.5
)

// UpdraftConfig describes the lifted parcel.
type UpdraftConfig struct {
	// DeltaT is how much warmer than the surface air the parcel starts (°C).
	DeltaT float64 `json:"delta_t" yaml:"delta_t"`
	// Steps is the number of grid altitudes from the surface to the ceiling,
	// both included.
	Steps int `json:"steps" yaml:"steps"`
}

func DefaultUpdraftConfig() UpdraftConfig {
	return UpdraftConfig{DeltaT: DefaultUpdraftDeltaT, Steps: DefaultUpdraftSteps}
}

// ParcelLevel is one step of a rising parcel.
type ParcelLevel struct {
	DerivedLevel
	// Volume relative to the parcel volume at the surface.
	Volume float64 `json:"volume"`
	// Excess is parcel minus ambient temperature at this altitude.
	Excess float64 `json:"excess"`
}

// Updraft is the ordered path of a parcel up to the top of the thermal.
type Updraft struct {
	Levels []ParcelLevel `json:"levels"`
	// Ceiling reports why the parcel stopped.
	Ceiling Termination `json:"ceiling"`
}

// Termination names the reason an updraft simulation ended.
type Termination int

const (
	// LostBuoyancy: the next step would leave the parcel denser than ambient air.
	LostBuoyancy Termination = iota
	// ReachedTop: the parcel reached the top of the sounding while still buoyant.
	ReachedTop
)

func (t Termination) String() string {
	if t == ReachedTop {
		return "top"
	}
	return "buoyancy"
}

func (t Termination) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Top returns the last buoyant level.
func (u Updraft) Top() ParcelLevel {
	return u.Levels[len(u.Levels)-1]
}

// CloudBase returns the first saturated level, if the parcel condensed.
func (u Updraft) CloudBase() (ParcelLevel, bool) {
	for _, l := range u.Levels {
		if l.Cloud() {
			return l, true
		}
	}
	return ParcelLevel{}, false
}

// Updraft lifts a parcel from the surface sample, cfg.DeltaT warmer than the
// ambient air, on a fixed grid of cfg.Steps altitudes up to the sounding
// ceiling. Specific humidity is conserved. The parcel cools at the dry
// adiabatic rate while unsaturated and at the moist rate once saturated.
// The simulation stops before the first step at which the parcel would be
// denser than the interpolated ambient air, or at the sounding top.
func (s *Sounding) Updraft(cfg UpdraftConfig) (Updraft, error) {
	if cfg.Steps < 2 {
		return Updraft{}, fmt.Errorf("%w: steps=%d", ErrBadUpdraftConfig, cfg.Steps)
	}

	surface := s.Surface()
	grid := floats.Span(make([]float64, cfg.Steps), surface.Altitude, s.maxAltitude)
	dz := grid[1] - grid[0]

	t := surface.Temperature + cfg.DeltaT
	q := surface.SpecificHumidity
	p0 := surface.Pressure
	rh := atmos.RelativeHumidity(q, p0, t)

	up := Updraft{Levels: make([]ParcelLevel, 0, cfg.Steps)}
	up.Levels = append(up.Levels, ParcelLevel{
		DerivedLevel: DerivedLevel{
			Level:            Level{Altitude: surface.Altitude, Temperature: t, RelativeHumidity: rh},
			Pressure:         p0,
			SpecificHumidity: q,
			Density:          atmos.AirDensity(rh, p0, t),
		},
		Volume: 1,
		Excess: cfg.DeltaT,
	})

	for _, alt := range grid[1:] {
		ambient, err := s.At(alt)
		if err != nil {
			up.Ceiling = ReachedTop
			return up, nil
		}

		p := ambient.Pressure
		rate := atmos.Gamma
		if atmos.RelativeHumidity(q, p, t) >= 100 {
			rate = atmos.GammaMoist(t, p)
		}
		next := t - dz*rate
		nextRH := atmos.RelativeHumidity(q, p, next)
		lvl := ParcelLevel{
			DerivedLevel: DerivedLevel{
				Level:            Level{Altitude: alt, Temperature: next, RelativeHumidity: nextRH},
				Pressure:         p,
				SpecificHumidity: q,
				Density:          atmos.AirDensity(nextRH, p, next),
			},
			Volume: atmos.ExpansionRatio(p, p0),
			Excess: next - ambient.Temperature,
		}
		if lvl.Density > ambient.Density {
			up.Ceiling = LostBuoyancy
			return up, nil
		}
		up.Levels = append(up.Levels, lvl)
		t = next
	}

	up.Ceiling = ReachedTop
	return up, nil
}
