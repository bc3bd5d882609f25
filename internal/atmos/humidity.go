package atmos

import "math"

// SaturationVaporPressure returns the saturation vapour pressure over water
// in hPa at temperature t (°C), Magnus-Bolton form of Clausius-Clapeyron.
func SaturationVaporPressure(t float64) float64 {
	return magnusE0 * math.Exp(magnusA*t/(t+magnusB))
}

// VaporPressure returns the partial pressure of water vapour (hPa) for a
// specific humidity q (g/kg) at pressure p (hPa).
func VaporPressure(q, p float64) float64 {
	q /= 1000
	return q * p / (Epsilon + (1-Epsilon)*q)
}

// specificFromVapor is the inverse of VaporPressure, g/kg.
func specificFromVapor(e, p float64) float64 {
	return 1000 * Epsilon * e / (p - (1-Epsilon)*e)
}

// MixingRatio converts specific humidity (vapour per total mass) to mixing
// ratio (vapour per dry air mass). Both in g/kg.
func MixingRatio(q float64) float64 {
	return q / (1 - q/1000)
}

// SpecificHumidityFromMixingRatio is the inverse of MixingRatio.
func SpecificHumidityFromMixingRatio(w float64) float64 {
	return w / (1 + w/1000)
}

// RelativeHumidity returns the relative humidity (%) of air with specific
// humidity q (g/kg) at pressure p (hPa) and temperature t (°C). The result is
// clamped at 0 but not at 100: supersaturated air reads above 100%.
func RelativeHumidity(q, p, t float64) float64 {
	rh := 100 * VaporPressure(q, p) / SaturationVaporPressure(t)
	return math.Max(rh, 0)
}

// SpecificHumidity returns the specific humidity (g/kg) of air with relative
// humidity rh (%) at pressure p (hPa) and temperature t (°C).
func SpecificHumidity(rh, p, t float64) float64 {
	e := rh / 100 * SaturationVaporPressure(t)
	return specificFromVapor(e, p)
}

// SaturationSpecificHumidity is the moisture capacity of air at p and t.
func SaturationSpecificHumidity(p, t float64) float64 {
	return SpecificHumidity(100, p, t)
}

// DewPoint returns the dew point (°C) of air at temperature t with relative
// humidity rh. DewPoint(100, t) == t; completely dry air has a dew point of -Inf.
func DewPoint(rh, t float64) float64 {
	if rh <= 0 {
		return math.Inf(-1)
	}
	gm := math.Log(rh/100) + magnusA*t/(t+magnusB)
	return magnusB * gm / (magnusA - gm)
}

// RelativeHumidityFromDewPoint is the inverse of DewPoint.
func RelativeHumidityFromDewPoint(td, t float64) float64 {
	return 100 * SaturationVaporPressure(td) / SaturationVaporPressure(t)
}
