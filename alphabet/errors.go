// Package alphabet: sentinel error set.
package alphabet

import "errors"

var (
	// ErrEmptyAlphabet is returned by New when given zero symbols.
	ErrEmptyAlphabet = errors.New("alphabet: must declare at least one symbol")

	// ErrDuplicateSymbol is returned by New when the same rune appears twice.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")
)
