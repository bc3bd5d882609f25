// Package state keeps a set of mutually dependent atmospheric quantities
// consistent when any one of them is edited.
//
//   - [State]: temperature, pressure, altitude and four moisture fields
//   - [Edit]: one field and its new value
//   - [Propagator]: the transition function (State, Edit) -> State
//   - [Session]: the current state of an interactive run, with a marker
//
// # Invariant
//
// Specific humidity is the canonical moisture value. Every humidity-family
// edit is first converted to specific humidity, then mixing ratio, relative
// humidity and dew point are derived from it at the current pressure and
// temperature. [Propagator.Verify] checks this after any sequence of edits.
//
// # Altitude changes
//
// Altitude and pressure edits lift or lower the air: temperature is
// integrated in [AdiabaticStep] increments under the selected [LapsePolicy]
// with specific humidity conserved, then pressure is re-derived through the
// [Reference] (ICAO standard atmosphere in QNH mode, hypsometric equation
// in QFF mode).
package state
