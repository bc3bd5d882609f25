// Package altimetry relates flight levels, pressure and true altitude.
//
// A flight level is a pressure surface: the standard-atmosphere pressure at
// FL·100 ft. Its true altitude depends on the day's MSL pressure and on the
// mean temperature of the air column below it, which is found by walking
// the column with an observed environmental lapse rate.
package altimetry
