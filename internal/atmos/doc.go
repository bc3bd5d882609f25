// Package atmos provides the atmospheric formula library.
//
// Every function is pure and deterministic and works on plain float64 values
// in meteorological units:
//
//   - temperature in °C
//   - pressure in hPa
//   - altitude in m
//   - specific humidity and mixing ratio in g/kg
//   - relative humidity in %
//   - density in kg/m³
//
// Groups of functions:
//
//   - humidity: [MixingRatio], [SpecificHumidity], [RelativeHumidity], [DewPoint]
//   - pressure/altitude: [PressureFromStandardAltitude], [AltitudeFromPressure]
//   - lapse rates: [Gamma], [GammaMoist], [ELR]
//   - flight levels: [PressureFromFL], [FLFromPressure]
//   - air: [AirDensity], [BoilingPoint]
//
// # Caller contract
//
// The library does not guard against NaN, infinite or zero inputs. Callers
// keep pressure strictly positive and temperatures above absolute zero.
// Iteration lives in the packages built on top of this one.
package atmos
