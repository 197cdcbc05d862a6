package dpgrid

import "github.com/katalvlaran/alignkit/numeric"

// Matrix identifies which of the three coupled score matrices a cell or
// back-pointer belongs to.
type Matrix byte

const (
	// MMatrix holds the best score for an alignment ending in a
	// substitution (symbol against symbol).
	MMatrix Matrix = iota
	// IxMatrix holds the best score for an alignment ending in a gap in A
	// (it consumes a symbol of B).
	IxMatrix
	// IyMatrix holds the best score for an alignment ending in a gap in B
	// (it consumes a symbol of A).
	IyMatrix
)

// String renders a Matrix for debugging and log lines.
func (m Matrix) String() string {
	switch m {
	case MMatrix:
		return "M"
	case IxMatrix:
		return "Ix"
	case IyMatrix:
		return "Iy"
	default:
		return "Matrix(?)"
	}
}

// Step names the displacement a back-pointer's move implies.
type Step byte

const (
	// StepDiag moves to (i-1, j-1) and consumes one symbol from each
	// sequence.
	StepDiag Step = iota
	// StepUp moves to (i-1, j) and consumes one symbol of A against a gap.
	StepUp
	// StepLeft moves to (i, j-1) and consumes one symbol of B against a
	// gap.
	StepLeft
)

// BackPointer names one predecessor that attains a cell's recorded score.
// A cell may carry several — one per tied predecessor.
type BackPointer struct {
	From Matrix
	Step Step
}

// Cell is one entry of one matrix: a score and the (possibly empty) set of
// back-pointers that justify it. An empty set marks a terminal cell for
// traceback purposes — either a boundary cell (row 0 or column 0), or, in
// local mode, a clamp-to-zero fresh start.
type Cell[T numeric.Number] struct {
	Score    T
	Pointers []BackPointer
}

// Mode selects global (end-to-end) or local (best-substring) alignment.
type Mode int

const (
	// Global requires the alignment to cover all of A and all of B.
	Global Mode = iota
	// Local finds the best-scoring substring pair of A and B.
	Local
)

// StartCell names one cell traceback may begin from.
type StartCell struct {
	Matrix Matrix
	I, J   int
}
