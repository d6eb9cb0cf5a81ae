package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrSideCount indicates a regular prism with fewer than three sides.
	ErrSideCount = errors.New("geometry: prism needs at least 3 sides")

	// ErrNonPositive indicates a volume or unit cost that is zero, negative or not finite.
	ErrNonPositive = errors.New("geometry: parameter must be positive and finite")

	// ErrOutOfRange indicates finite inputs whose solution overflows or underflows float64.
	ErrOutOfRange = errors.New("geometry: parameters out of representable range")

	// ErrUnknownShape indicates an unrecognized shape kind.
	ErrUnknownShape = errors.New("geometry: unknown shape")
)

// ParamError wraps a precondition failure with the offending parameter.
type ParamError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s (%s=%g)", e.Wrapped.Error(), e.Param, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
