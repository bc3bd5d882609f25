package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/atmolab/internal/atmos"
)

func defaultLevels() []Level {
	return []Level{
		{Altitude: 1500, Temperature: 11, RelativeHumidity: 20},
		{Altitude: 0, Temperature: 25, RelativeHumidity: 50},
		{Altitude: 3000, Temperature: 0, RelativeHumidity: 10},
		{Altitude: 500, Temperature: 18, RelativeHumidity: 40},
		{Altitude: 2250, Temperature: 9, RelativeHumidity: 20},
		{Altitude: 1000, Temperature: 15, RelativeHumidity: 30},
	}
}

func TestDeriveSortsAndComputes(t *testing.T) {
	s, err := Derive(defaultLevels(), DefaultMaxAltitude)
	require.NoError(t, err)

	levels := s.Levels()
	require.Len(t, levels, 6)
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1].Altitude, levels[i].Altitude)
		assert.Less(t, levels[i].Pressure, levels[i-1].Pressure)
	}

	surface := s.Surface()
	assert.Equal(t, 0.0, surface.Altitude)
	assert.InDelta(t, atmos.P0, surface.Pressure, 1e-9)
	assert.InDelta(t, 50, atmos.RelativeHumidity(surface.SpecificHumidity, surface.Pressure, surface.Temperature), 1e-9)
	assert.InDelta(t, atmos.AirDensity(50, atmos.P0, 25), surface.Density, 1e-12)
	assert.Equal(t, 3000.0, s.Top().Altitude)
}

func TestDeriveRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		levels []Level
		want   error
	}{
		{"empty", nil, ErrTooFewLevels},
		{"single", []Level{{Altitude: 0, Temperature: 10}}, ErrTooFewLevels},
		{"duplicate", []Level{{Altitude: 0}, {Altitude: 500}, {Altitude: 500}}, ErrDuplicateAltitude},
		{"negative", []Level{{Altitude: -10}, {Altitude: 500}}, ErrAltitudeRange},
		{"above ceiling", []Level{{Altitude: 0}, {Altitude: 3500}}, ErrAltitudeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(tt.levels, DefaultMaxAltitude)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeriveDoesNotReorderInput(t *testing.T) {
	in := defaultLevels()
	_, err := Derive(in, DefaultMaxAltitude)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, in[0].Altitude)
}

func TestAtInterpolates(t *testing.T) {
	s, err := Derive(defaultLevels(), DefaultMaxAltitude)
	require.NoError(t, err)
	levels := s.Levels()

	mid, err := s.At(250)
	require.NoError(t, err)
	assert.InDelta(t, 21.5, mid.Temperature, 1e-9)
	assert.InDelta(t, (levels[0].SpecificHumidity+levels[1].SpecificHumidity)/2, mid.SpecificHumidity, 1e-9)
	assert.InDelta(t, atmos.PressureFromStandardAltitude(250), mid.Pressure, 1e-9)
	// recomputed, not averaged
	assert.InDelta(t, atmos.RelativeHumidity(mid.SpecificHumidity, mid.Pressure, mid.Temperature), mid.RelativeHumidity, 1e-9)
	assert.InDelta(t, atmos.AirDensity(mid.RelativeHumidity, mid.Pressure, mid.Temperature), mid.Density, 1e-12)

	atSample, err := s.At(1000)
	require.NoError(t, err)
	assert.InDelta(t, 15, atSample.Temperature, 1e-9)
	assert.InDelta(t, 30, atSample.RelativeHumidity, 1e-9)
}

func TestAtOutOfRange(t *testing.T) {
	s, err := Derive([]Level{
		{Altitude: 200, Temperature: 20, RelativeHumidity: 40},
		{Altitude: 2000, Temperature: 8, RelativeHumidity: 40},
	}, DefaultMaxAltitude)
	require.NoError(t, err)

	for _, alt := range []float64{0, 199.9, 2000.1, 3000} {
		_, err := s.At(alt)
		assert.ErrorIs(t, err, ErrOutOfRange, "altitude %v", alt)
	}
}

func TestInfoLevels(t *testing.T) {
	s, err := Derive([]Level{
		{Altitude: 0, Temperature: 20, RelativeHumidity: 60},
		{Altitude: 1600, Temperature: 8, RelativeHumidity: 60},
	}, DefaultMaxAltitude)
	require.NoError(t, err)

	info := s.InfoLevels(6)
	require.Len(t, info, 3)
	assert.InDelta(t, 250, info[0].Altitude, 1e-9)
	assert.InDelta(t, 750, info[1].Altitude, 1e-9)
	assert.InDelta(t, 1250, info[2].Altitude, 1e-9)
}

func TestUpdraftDefaultSounding(t *testing.T) {
	s, err := Derive(defaultLevels(), DefaultMaxAltitude)
	require.NoError(t, err)

	up, err := s.Updraft(DefaultUpdraftConfig())
	require.NoError(t, err)
	require.NotEmpty(t, up.Levels)
	assert.Less(t, len(up.Levels), DefaultUpdraftSteps)
	assert.Equal(t, LostBuoyancy, up.Ceiling)

	first := up.Levels[0]
	assert.Equal(t, 0.0, first.Altitude)
	assert.InDelta(t, 25.5, first.Temperature, 1e-9)
	assert.Equal(t, 1.0, first.Volume)
	// the surface level describes the warmed parcel, not the ambient air
	assert.InDelta(t, atmos.RelativeHumidity(first.SpecificHumidity, first.Pressure, 25.5), first.RelativeHumidity, 1e-9)
	assert.InDelta(t, atmos.AirDensity(first.RelativeHumidity, s.Surface().Pressure, 25.5), first.Density, 1e-12)

	q := first.SpecificHumidity
	for i, l := range up.Levels {
		assert.Equal(t, q, l.SpecificHumidity, "humidity conserved at %d", i)
		ambient, err := s.At(l.Altitude)
		require.NoError(t, err)
		assert.LessOrEqual(t, l.Density, ambient.Density, "buoyant at %v m", l.Altitude)
		if i > 0 {
			prev := up.Levels[i-1]
			assert.Greater(t, l.Altitude, prev.Altitude)
			assert.Less(t, l.Temperature, prev.Temperature)
			assert.Greater(t, l.Volume, prev.Volume)
		}
	}
	assert.Less(t, up.Top().Altitude, DefaultMaxAltitude)
}

func TestUpdraftHumidSurfaceDryAloft(t *testing.T) {
	s, err := Derive([]Level{
		{Altitude: 0, Temperature: 25, RelativeHumidity: 70},
		{Altitude: 3000, Temperature: 0, RelativeHumidity: 10},
	}, DefaultMaxAltitude)
	require.NoError(t, err)

	up, err := s.Updraft(UpdraftConfig{DeltaT: 0.5, Steps: DefaultUpdraftSteps})
	require.NoError(t, err)
	assert.Less(t, len(up.Levels), DefaultUpdraftSteps)
	assert.Greater(t, len(up.Levels), 1)
	assert.Equal(t, LostBuoyancy, up.Ceiling)
	assert.Less(t, up.Top().Altitude, 3000.0)
	// twelve grid steps of 3000/49 m
	assert.Len(t, up.Levels, 13)
	assert.InDelta(t, 12*3000.0/49, up.Top().Altitude, 1e-9)
}

func TestUpdraftStableAirStopsAtSurface(t *testing.T) {
	s, err := Derive([]Level{
		{Altitude: 0, Temperature: 20, RelativeHumidity: 50},
		{Altitude: 3000, Temperature: 20, RelativeHumidity: 50},
	}, DefaultMaxAltitude)
	require.NoError(t, err)

	up, err := s.Updraft(UpdraftConfig{DeltaT: 0, Steps: 50})
	require.NoError(t, err)
	assert.Len(t, up.Levels, 1)
	assert.Equal(t, LostBuoyancy, up.Ceiling)
}

func TestUpdraftUnstableAirReachesCeiling(t *testing.T) {
	s, err := Derive([]Level{
		{Altitude: 0, Temperature: 30, RelativeHumidity: 0},
		{Altitude: 3000, Temperature: -30, RelativeHumidity: 0},
	}, DefaultMaxAltitude)
	require.NoError(t, err)

	up, err := s.Updraft(UpdraftConfig{DeltaT: 1, Steps: 50})
	require.NoError(t, err)
	require.Len(t, up.Levels, 50)
	assert.Equal(t, ReachedTop, up.Ceiling)
	assert.InDelta(t, 3000, up.Top().Altitude, 1e-9)
	// dry parcel cools at the dry adiabatic rate all the way
	assert.InDelta(t, 31-atmos.Gamma*3000, up.Top().Temperature, 1e-6)
	assert.InDelta(t, math.Pow(up.Top().Pressure/atmos.P0, -1/atmos.HeatCapacityRatio), up.Top().Volume, 1e-12)
	_, cloud := up.CloudBase()
	assert.False(t, cloud)
}

func TestUpdraftStopsAtSoundingTop(t *testing.T) {
	s, err := Derive([]Level{
		{Altitude: 0, Temperature: 30, RelativeHumidity: 0},
		{Altitude: 2000, Temperature: -10, RelativeHumidity: 0},
	}, DefaultMaxAltitude)
	require.NoError(t, err)

	up, err := s.Updraft(DefaultUpdraftConfig())
	require.NoError(t, err)
	assert.Equal(t, ReachedTop, up.Ceiling)
	assert.LessOrEqual(t, up.Top().Altitude, 2000.0)
	assert.Greater(t, up.Top().Altitude, 1900.0)
}

func TestUpdraftCondensesInMoistAir(t *testing.T) {
	s, err := Derive([]Level{
		{Altitude: 0, Temperature: 25, RelativeHumidity: 90},
		{Altitude: 3000, Temperature: -15, RelativeHumidity: 90},
	}, DefaultMaxAltitude)
	require.NoError(t, err)

	up, err := s.Updraft(UpdraftConfig{DeltaT: 2, Steps: 50})
	require.NoError(t, err)
	base, ok := up.CloudBase()
	require.True(t, ok)
	assert.Greater(t, base.Altitude, 0.0)
	assert.Less(t, base.Altitude, 1000.0)
}

func TestUpdraftRejectsBadConfig(t *testing.T) {
	s, err := Derive(defaultLevels(), DefaultMaxAltitude)
	require.NoError(t, err)
	for _, steps := range []int{-1, 0, 1} {
		_, err := s.Updraft(UpdraftConfig{DeltaT: 0.5, Steps: steps})
		assert.ErrorIs(t, err, ErrBadUpdraftConfig)
	}
}
