package subtable

import (
	"github.com/katalvlaran/alignkit/alphabet"
	"github.com/katalvlaran/alignkit/numeric"
)

// Entry is one input quintuple: a score for (alphabet-A position ia,
// alphabet-B position ib), carrying the expected characters ca, cb for
// cross-validation against the alphabets.
type Entry[T numeric.Number] struct {
	IA, IB int
	CA, CB rune
	Score  T
}

// Table is a complete |A| x |B| substitution score table. Symmetry is not
// required: Score(ca, cb) and Score(cb, ca) may differ, or may not even be
// defined over the same alphabets.
type Table[T numeric.Number] struct {
	alphaA, alphaB *alphabet.Alphabet
	scores         [][]T
}
