package atmos

const (
	P0 = 1013.25 // ICAO mean sea level pressure (hPa)
	T0 = 15.0    // ICAO mean sea level temperature (°C)
	K  = 273.15  // 0°C in Kelvin

	G  = 9.80665     // standard gravity (m/s²)
	Rd = 287.05      // specific gas constant of dry air (J/(kg·K))
	Rv = 461.5       // specific gas constant of water vapour (J/(kg·K))
	R  = 8.314462618 // universal gas constant (J/(mol·K))

	// Epsilon is the ratio of the molar masses of water vapour and dry air.
	Epsilon = Rd / Rv

	Cpd = 1004.0  // heat capacity of dry air at constant pressure (J/(kg·K))
	Lv  = 2.501e6 // latent heat of vaporisation of water (J/kg)

	// HeatCapacityRatio of a diatomic gas, used for isentropic expansion.
	HeatCapacityRatio = 1.4

	// Gamma is the dry adiabatic lapse rate (°C/m).
	Gamma = G / Cpd

	// ELR is the ICAO standard environmental lapse rate (°C/m).
	ELR = 0.0065

	// TropopauseAltitude bounds the validity of the standard atmosphere (m).
	TropopauseAltitude = 11000.0

	FeetPerMeter = 3.28084

	// Water boiling point at P0 (°C) and molar enthalpy of vaporisation (J/mol).
	waterBoilingPoint = 100.0
	waterVaporisation = 40660.0

	// Magnus-Bolton saturation vapour pressure coefficients.
	magnusE0 = 6.112
	magnusA  = 17.67
	magnusB  = 243.5
)

// standardExponent is g/(Rd·L), the exponent of the troposphere pressure law.
const standardExponent = G / (Rd * ELR)
