package profile

import "errors"

var (
	ErrTooFewLevels      = errors.New("profile: at least two levels are required")
	ErrDuplicateAltitude = errors.New("profile: duplicate level altitude")
	ErrAltitudeRange     = errors.New("profile: level altitude outside [0, max altitude]")

	// ErrOutOfRange indicates an interpolation query outside the sampled altitudes.
	ErrOutOfRange = errors.New("profile: altitude outside sampled range")

	ErrBadUpdraftConfig = errors.New("profile: invalid updraft configuration")
)
