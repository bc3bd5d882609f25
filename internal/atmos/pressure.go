package atmos

import "math"

// PressureFromStandardAltitude returns the ICAO standard atmosphere pressure
// (hPa) at altitude h (m). Valid below TropopauseAltitude.
func PressureFromStandardAltitude(h float64) float64 {
	return P0 * math.Pow(1-ELR*h/(T0+K), standardExponent)
}

// AltitudeFromStandardPressure is the exact inverse of PressureFromStandardAltitude.
func AltitudeFromStandardPressure(p float64) float64 {
	return (T0 + K) / ELR * (1 - math.Pow(p/P0, 1/standardExponent))
}

// AltitudeFromPressure applies the hypsometric equation: the thickness (m)
// of the layer between reference pressure p0 and pressure p (hPa) for a
// column of mean temperature tMean (°C). The result is negative when p > p0.
func AltitudeFromPressure(p, p0, tMean float64) float64 {
	return Rd * (tMean + K) / G * math.Log(p0/p)
}

// PressureFromAltitude is the exact inverse of AltitudeFromPressure.
func PressureFromAltitude(h, p0, tMean float64) float64 {
	return p0 * math.Exp(-G*h/(Rd*(tMean+K)))
}

// PressureFromFL returns the pressure (hPa) of a flight level, i.e. the
// standard atmosphere pressure at fl hundreds of feet.
func PressureFromFL(fl float64) float64 {
	return PressureFromStandardAltitude(fl * 100 / FeetPerMeter)
}

// FLFromPressure is the inverse of PressureFromFL.
func FLFromPressure(p float64) float64 {
	return AltitudeFromStandardPressure(p) * FeetPerMeter / 100
}

// BoilingPoint returns the boiling point of water (°C) at pressure p (hPa),
// integrated Clausius-Clapeyron relation anchored at 100°C / P0.
func BoilingPoint(p float64) float64 {
	inv := 1/(waterBoilingPoint+K) - R*math.Log(p/P0)/waterVaporisation
	return 1/inv - K
}
