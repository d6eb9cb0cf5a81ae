package thermal

import "errors"

var (
	ErrNonPositiveHorizon = errors.New("thermal: simulation horizon must be positive")
	ErrNonPositiveRate    = errors.New("thermal: cooling constant must be positive")
	ErrNotFinite          = errors.New("thermal: temperatures must be finite")
	ErrOutOfRange         = errors.New("thermal: temperature differences overflow float64")
)
