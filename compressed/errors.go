package compressed

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength is returned when an axis or grid is requested with a
	// non-positive extent.
	ErrBadLength = errors.New("compressed: extent must be > 0")

	// ErrOutOfRange indicates that an index or a [beg,end) range falls
	// outside the declared extent. Reaching it from a correct caller is an
	// internal invariant violation.
	ErrOutOfRange = errors.New("compressed: index out of range")
)

// rangeErrorf wraps ErrOutOfRange with the failing method and arguments.
func rangeErrorf(method string, args ...int) error {
	return fmt.Errorf("%s%v: %w", method, args, ErrOutOfRange)
}
