// Package numeric: sentinel error set.
package numeric

import "errors"

var (
	// ErrNegativeEpsilon is returned by NewKernel when the supplied tolerance
	// is negative; a negative epsilon would make Equal report false for a
	// value compared against itself.
	ErrNegativeEpsilon = errors.New("numeric: epsilon must be non-negative")
)
