package atmos

import "errors"

// ErrDomain reports an input outside the domain a formula supports.
var ErrDomain = errors.New("atmos: value outside formula domain")
