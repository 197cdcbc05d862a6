// Package seq: sentinel error set.
package seq

import "errors"

var (
	// ErrUnknownSymbol is returned by New when a rune in the raw string is
	// not present in the supplied alphabet.
	ErrUnknownSymbol = errors.New("seq: symbol not present in declared alphabet")
)
