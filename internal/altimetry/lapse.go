package altimetry

import (
	"fmt"

	"github.com/san-kum/atmolab/internal/atmos"
)

// EnvironmentalCooling returns the air temperature (°C) at pressure p for a
// column whose surface is at p0 (hPa) and t0 (°C) and which cools at lr
// °C per 100 m.
//
// The column is walked in 1 hPa layers from p0 towards p. Each layer's
// thickness comes from the hypsometric equation at the running temperature
// and cools the air by thickness·lr/100. The layer ending within 1 hPa of p
// is not integrated.
func EnvironmentalCooling(p, p0, t0, lr float64) (float64, error) {
	if p0 <= p {
		return 0, fmt.Errorf("%w (p0=%.2f hPa, p=%.2f hPa)", ErrPressureOrder, p0, p)
	}

	t := t0
	for pp := p0 - 1; pp > p; pp-- {
		z := atmos.AltitudeFromPressure(pp, pp+1, t)
		t -= z * lr / 100
	}
	return t, nil
}
