package minjerk

import "github.com/pkg/errors"

// Planner failures callers may need to tell apart. Wrapped errors returned
// from this package unwrap to one of these.
var (
	// ErrSizeMismatch indicates two joint vectors of unequal length.
	ErrSizeMismatch = errors.New("joint vector size mismatch")
	// ErrInvalidDuration indicates a trajectory duration at or below the numeric floor.
	ErrInvalidDuration = errors.New("invalid trajectory duration")
	// ErrSingularSystem indicates a boundary-value system with no usable pivot.
	ErrSingularSystem = errors.New("singular linear system")
)

func newSizeMismatchError(expected, actual int) error {
	return errors.Wrapf(ErrSizeMismatch, "expected %d values but got %d", expected, actual)
}

func newInvalidDurationError(duration float64) error {
	return errors.Wrapf(ErrInvalidDuration, "duration %v must be greater than %v", duration, minDuration)
}

func newSingularSystemError(column int) error {
	return errors.Wrapf(ErrSingularSystem, "no usable pivot in column %d", column)
}
