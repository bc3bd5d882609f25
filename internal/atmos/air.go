package atmos

import "math"

// AirDensity returns the density (kg/m³) of moist air with relative humidity
// rh (%) at pressure p (hPa) and temperature t (°C). The ideal gas law is
// applied separately to the dry-air and water-vapour partial pressures.
func AirDensity(rh, p, t float64) float64 {
	q := SpecificHumidity(rh, p, t)
	e := VaporPressure(q, p)
	tk := t + K
	return (p-e)*100/(Rd*tk) + e*100/(Rv*tk)
}

// GammaMoist returns the saturated (moist) adiabatic lapse rate (°C/m) at
// temperature t (°C) and pressure p (hPa). It is always below Gamma.
func GammaMoist(t, p float64) float64 {
	tk := t + K
	es := SaturationVaporPressure(t)
	rs := Epsilon * es / (p - es)
	return G * (1 + Lv*rs/(Rd*tk)) / (Cpd + Lv*Lv*rs/(Rv*tk*tk))
}

// ExpansionRatio returns V/V0 for an adiabatic expansion from p0 to p,
// V = V0·(P/P0)^(-1/γ).
func ExpansionRatio(p, p0 float64) float64 {
	return math.Pow(p/p0, -1/HeatCapacityRatio)
}
