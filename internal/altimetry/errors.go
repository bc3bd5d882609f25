package altimetry

import (
	"fmt"

	"github.com/san-kum/atmolab/internal/atmos"
)

// ErrPressureOrder is returned when the environmental integration would run
// downwards: the surface pressure must be strictly greater than the target.
var ErrPressureOrder = fmt.Errorf("altimetry: surface pressure not above target pressure: %w", atmos.ErrDomain)

// ErrSweepRange rejects a flight level sweep that would not advance or
// would not end.
var ErrSweepRange = fmt.Errorf("altimetry: sweep needs a positive step and from <= to: %w", atmos.ErrDomain)
