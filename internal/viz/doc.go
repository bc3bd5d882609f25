// Package viz renders air samples, soundings and flight levels for the
// terminal.
//
// Panels are lipgloss boxes styled by the current [Theme]. Charts use
// asciigraph for series over the updraft steps and a Braille [Canvas] for
// the temperature/altitude diagram, where each sounding segment is
// coloured with [TemperatureColor].
package viz
