package seq

import "github.com/katalvlaran/alignkit/alphabet"

// Sequence is a symbol string validated against, and indexed into, a
// specific Alphabet. Zero-length sequences are valid — the DP grid and
// traceback engine both define well-formed behavior for |A|=0 or |B|=0.
type Sequence struct {
	alphabet *alphabet.Alphabet
	symbols  []rune
	indices  []int
}
