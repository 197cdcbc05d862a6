package cmd

import (
	"github.com/katalvlaran/alignkit/gapmodel"
	"github.com/katalvlaran/alignkit/subtable"
	"github.com/katalvlaran/alignkit/traceback"
	"gonum.org/v1/gonum/floats"
)

// recomputeScore independently recomputes al's score from its gapped rows,
// the substitution table, and the gap model — the cross-check spec.md's
// testable properties require of every enumerated alignment.
func recomputeScore(al traceback.Alignment, table *subtable.Table[float64], gaps gapmodel.Model[float64]) float64 {
	rowsA := []rune(al.A)
	rowsB := []rune(al.B)

	contributions := make([]float64, 0, len(rowsA))
	openGapInA, openGapInB := false, false
	for i := range rowsA {
		ca, cb := rowsA[i], rowsB[i]
		switch {
		case ca == '_':
			if openGapInA {
				contributions = append(contributions, -gaps.ExtendX())
			} else {
				contributions = append(contributions, -gaps.OpenX())
			}
			openGapInA, openGapInB = true, false
		case cb == '_':
			if openGapInB {
				contributions = append(contributions, -gaps.ExtendY())
			} else {
				contributions = append(contributions, -gaps.OpenY())
			}
			openGapInB, openGapInA = true, false
		default:
			score, _ := table.Score(ca, cb)
			contributions = append(contributions, score)
			openGapInA, openGapInB = false, false
		}
	}
	return floats.Sum(contributions)
}
