package alphabet

import "fmt"

// New builds an Alphabet from an ordered slice of symbols. Order is
// preserved and becomes each symbol's position.
func New(symbols []rune) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}

	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if _, seen := index[r]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = i
	}

	cp := make([]rune, len(symbols))
	copy(cp, symbols)

	return &Alphabet{symbols: cp, index: index}, nil
}

// NewFromString is a convenience wrapper over New for a contiguous string
// of symbols, matching the input format's "contiguous characters, no
// separator" alphabet lines.
func NewFromString(s string) (*Alphabet, error) {
	return New([]rune(s))
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// SymbolAt returns the symbol at position i and whether i was in range.
func (a *Alphabet) SymbolAt(i int) (rune, bool) {
	if i < 0 || i >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[i], true
}

// IndexOf returns the position of r in the alphabet, if present.
func (a *Alphabet) IndexOf(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}
