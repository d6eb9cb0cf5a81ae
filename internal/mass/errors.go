package mass

import "errors"

var (
	// ErrNonPositiveDensity indicates a base density that is not positive or a negative top density.
	ErrNonPositiveDensity = errors.New("mass: density must be positive at the base and non-negative at the top")

	// ErrDegenerateGeometry indicates a geometry with no height or base area.
	ErrDegenerateGeometry = errors.New("mass: geometry has zero height or base area")

	// ErrOutOfRange indicates a mass or moment that overflows float64.
	ErrOutOfRange = errors.New("mass: result out of representable range")
)

// Warning is a non-fatal modeling concern attached to a result.
type Warning string

const (
	// WarnInvertedGradient: density increases with height.
	WarnInvertedGradient Warning = "top density exceeds base density; density increases with height"
)
