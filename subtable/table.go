package subtable

import (
	"fmt"

	"github.com/katalvlaran/alignkit/alphabet"
	"github.com/katalvlaran/alignkit/numeric"
)

// NewTable validates entries against alphaA/alphaB and builds a complete
// substitution table. Every (ia, ib) pair in [0,|A|) x [0,|B|) must appear
// exactly once.
func NewTable[T numeric.Number](alphaA, alphaB *alphabet.Alphabet, entries []Entry[T]) (*Table[T], error) {
	n, m := alphaA.Len(), alphaB.Len()

	scores := make([][]T, n)
	seen := make([][]bool, n)
	for i := range scores {
		scores[i] = make([]T, m)
		seen[i] = make([]bool, m)
	}

	for _, e := range entries {
		if e.IA < 0 || e.IA >= n || e.IB < 0 || e.IB >= m {
			return nil, fmt.Errorf("%w: index (%d,%d) out of range", ErrInvalidSubstitutionEntry, e.IA, e.IB)
		}
		ca, _ := alphaA.SymbolAt(e.IA)
		cb, _ := alphaB.SymbolAt(e.IB)
		if ca != e.CA || cb != e.CB {
			return nil, fmt.Errorf("%w: (%d,%d) expected (%q,%q), got (%q,%q)",
				ErrInvalidSubstitutionEntry, e.IA, e.IB, ca, cb, e.CA, e.CB)
		}
		if seen[e.IA][e.IB] {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateSubstitutionEntry, e.IA, e.IB)
		}
		seen[e.IA][e.IB] = true
		scores[e.IA][e.IB] = e.Score
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if !seen[i][j] {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrIncompleteTable, i, j)
			}
		}
	}

	return &Table[T]{alphaA: alphaA, alphaB: alphaB, scores: scores}, nil
}

// AlphabetA returns the alphabet Table's rows are indexed against.
func (t *Table[T]) AlphabetA() *alphabet.Alphabet { return t.alphaA }

// AlphabetB returns the alphabet Table's columns are indexed against.
func (t *Table[T]) AlphabetB() *alphabet.Alphabet { return t.alphaB }

// Score returns the substitution score for a pair of raw symbols.
func (t *Table[T]) Score(ca, cb rune) (T, error) {
	var zero T

	ia, ok := t.alphaA.IndexOf(ca)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownSymbolPair, ca)
	}
	ib, ok := t.alphaB.IndexOf(cb)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownSymbolPair, cb)
	}

	return t.scores[ia][ib], nil
}

// ScoreAt is the O(1) hot-path lookup used by the DP filler, addressed
// directly by pre-resolved alphabet positions. Out-of-range indices panic:
// callers always derive ia/ib from a seq.Sequence already validated against
// these same alphabets, so an out-of-range index is a programmer error.
func (t *Table[T]) ScoreAt(ia, ib int) T {
	return t.scores[ia][ib]
}
