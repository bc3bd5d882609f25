package state

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField indicates an edit naming a field that does not exist.
	ErrUnknownField = errors.New("state: unknown field")

	// ErrUnknownPolicy indicates an unparseable lapse rate policy name.
	ErrUnknownPolicy = errors.New("state: unknown lapse rate policy")

	// ErrUnknownMode indicates an unparseable altimeter mode name.
	ErrUnknownMode = errors.New("state: unknown altimeter mode")

	// ErrInconsistent indicates a stored field that does not match the value
	// re-derived from the other fields.
	ErrInconsistent = errors.New("state: fields are not mutually consistent")
)

// FieldError wraps an error with the field it concerns.
type FieldError struct {
	Field   Field
	Stored  float64
	Derived float64
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: stored %.6g, derived %.6g: %v", e.Field, e.Stored, e.Derived, e.Wrapped)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}
