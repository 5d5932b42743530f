package armstate

import "github.com/pkg/errors"

// ErrSizeMismatch indicates a vector whose length disagrees with the model's
// joint count.
var ErrSizeMismatch = errors.New("joint vector size mismatch")

// NewSizeMismatchError returns an error wrapping ErrSizeMismatch for a vector
// of the wrong length.
func NewSizeMismatchError(expected, actual int) error {
	return errors.Wrapf(ErrSizeMismatch, "expected %d values but got %d", expected, actual)
}
