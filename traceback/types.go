package traceback

import "github.com/katalvlaran/alignkit/dpgrid"

// ChunkSize bounds how many alignments Next returns per call.
const ChunkSize = 16384

// Alignment is one fully reconstructed co-optimal alignment: A and B hold
// the aligned rows, gap-padded with '_' to equal length.
type Alignment struct {
	A string
	B string
}

// frame is one explicit-stack entry: the cell currently being expanded, the
// index of the next back-pointer of that cell to try, and the symbols
// accumulated so far on the path from a start cell down to here (in reverse
// emission order; reversed once at finalize).
type frame struct {
	matrix dpgrid.Matrix
	i, j   int
	ptrIdx int
	aAcc   []rune
	bAcc   []rune
}
