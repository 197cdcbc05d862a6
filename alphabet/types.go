package alphabet

// Alphabet is an ordered, deduplicated set of symbols. Position within the
// alphabet is the identity a substitution table indexes by.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}
