package seq

import (
	"fmt"

	"github.com/katalvlaran/alignkit/alphabet"
)

// New validates raw against a and returns a Sequence with each symbol's
// alphabet position pre-resolved.
func New(raw string, a *alphabet.Alphabet) (*Sequence, error) {
	runes := []rune(raw)
	indices := make([]int, len(runes))
	for pos, r := range runes {
		idx, ok := a.IndexOf(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownSymbol, r, pos)
		}
		indices[pos] = idx
	}

	return &Sequence{alphabet: a, symbols: runes, indices: indices}, nil
}

// Len returns the number of symbols in the sequence.
func (s *Sequence) Len() int {
	return len(s.symbols)
}

// At returns the 1-based i-th symbol, matching the DP grid's 1-based
// indexing convention (position 0 is the boundary row/column).
func (s *Sequence) At(i int) rune {
	return s.symbols[i-1]
}

// IndexAt returns the 1-based i-th symbol's position in the sequence's
// alphabet, for O(1) substitution-table lookups.
func (s *Sequence) IndexAt(i int) int {
	return s.indices[i-1]
}

// Alphabet returns the alphabet this sequence was validated against.
func (s *Sequence) Alphabet() *alphabet.Alphabet {
	return s.alphabet
}

// String returns the raw symbol string.
func (s *Sequence) String() string {
	return string(s.symbols)
}
