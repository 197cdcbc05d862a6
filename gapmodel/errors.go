// Package gapmodel: sentinel error set.
package gapmodel

import "errors"

var (
	// ErrInvalidGapPenalty is returned by New when any of dx, ex, dy, ey is
	// negative. Penalties are subtracted from a score; a negative one would
	// silently reward gaps.
	ErrInvalidGapPenalty = errors.New("gapmodel: penalty must be non-negative")
)
