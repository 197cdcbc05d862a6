// Package subtable: sentinel error set.
package subtable

import "errors"

var (
	// ErrInvalidSubstitutionEntry is returned when an entry's declared index
	// and character disagree with the corresponding alphabet, or the index
	// is out of range.
	ErrInvalidSubstitutionEntry = errors.New("subtable: entry index/character disagrees with alphabet")

	// ErrDuplicateSubstitutionEntry is returned when the same (ia, ib) pair
	// is supplied more than once.
	ErrDuplicateSubstitutionEntry = errors.New("subtable: duplicate entry for symbol pair")

	// ErrIncompleteTable is returned when NewTable is missing an entry for
	// some (ia, ib) pair in [0,|A|) x [0,|B|).
	ErrIncompleteTable = errors.New("subtable: missing entry for symbol pair")

	// ErrUnknownSymbolPair is returned by Score when either symbol is not a
	// member of its alphabet.
	ErrUnknownSymbolPair = errors.New("subtable: symbol not present in alphabet")
)
