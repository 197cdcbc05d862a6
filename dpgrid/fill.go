package dpgrid

import (
	"github.com/katalvlaran/alignkit/gapmodel"
	"github.com/katalvlaran/alignkit/numeric"
	"github.com/katalvlaran/alignkit/seq"
	"github.com/katalvlaran/alignkit/subtable"
)

// Fill runs the Gotoh recurrences over a and b and returns the populated
// grid. Rows are filled outer, columns inner — one of the orderings the
// recurrences' dependency structure permits.
func Fill[T numeric.Number](a, b *seq.Sequence, table *subtable.Table[T], gaps gapmodel.Model[T], k numeric.Kernel[T], mode Mode) *Grid[T] {
	n, m := a.Len(), b.Len()
	g := newGrid[T](n, m, mode)

	initBoundary(g, gaps, mode)

	for i := 1; i < g.rows; i++ {
		for j := 1; j < g.cols; j++ {
			fillCell(g, i, j, a, b, table, gaps, k, mode)
		}
	}

	g.computeBest()
	return g
}

func initBoundary[T numeric.Number](g *Grid[T], gaps gapmodel.Model[T], mode Mode) {
	var zero T

	if mode != Global {
		for i := 0; i < g.rows; i++ {
			g.m[i][0] = Cell[T]{Score: zero}
			g.ix[i][0] = Cell[T]{Score: zero}
			g.iy[i][0] = Cell[T]{Score: zero}
		}
		for j := 0; j < g.cols; j++ {
			g.m[0][j] = Cell[T]{Score: zero}
			g.ix[0][j] = Cell[T]{Score: zero}
			g.iy[0][j] = Cell[T]{Score: zero}
		}
		return
	}

	negInf := numeric.NegInf[T]()

	g.m[0][0] = Cell[T]{Score: zero}
	g.ix[0][0] = Cell[T]{Score: negInf}
	g.iy[0][0] = Cell[T]{Score: negInf}

	for i := 1; i < g.rows; i++ {
		g.m[i][0] = Cell[T]{Score: negInf}
		g.ix[i][0] = Cell[T]{Score: negInf}
		g.iy[i][0] = Cell[T]{Score: -gaps.DY - T(i-1)*gaps.EY}
	}
	for j := 1; j < g.cols; j++ {
		g.m[0][j] = Cell[T]{Score: negInf}
		g.iy[0][j] = Cell[T]{Score: negInf}
		g.ix[0][j] = Cell[T]{Score: -gaps.DX - T(j-1)*gaps.EX}
	}
}

func fillCell[T numeric.Number](g *Grid[T], i, j int, a, b *seq.Sequence, table *subtable.Table[T], gaps gapmodel.Model[T], k numeric.Kernel[T], mode Mode) {
	s := table.ScoreAt(a.IndexAt(i), b.IndexAt(j))

	mDiag := g.m[i-1][j-1].Score + s
	ixDiag := g.ix[i-1][j-1].Score + s
	iyDiag := g.iy[i-1][j-1].Score + s
	rawM := k.Max(mDiag, ixDiag, iyDiag)
	var mPtrs []BackPointer
	if k.Equal(mDiag, rawM) {
		mPtrs = append(mPtrs, BackPointer{MMatrix, StepDiag})
	}
	if k.Equal(ixDiag, rawM) {
		mPtrs = append(mPtrs, BackPointer{IxMatrix, StepDiag})
	}
	if k.Equal(iyDiag, rawM) {
		mPtrs = append(mPtrs, BackPointer{IyMatrix, StepDiag})
	}
	g.m[i][j] = clamp(rawM, mPtrs, mode, k)

	mLeft := g.m[i][j-1].Score - gaps.DX
	ixLeft := g.ix[i][j-1].Score - gaps.EX
	iyLeft := g.iy[i][j-1].Score - gaps.DX
	rawIx := k.Max(mLeft, ixLeft, iyLeft)
	var ixPtrs []BackPointer
	if k.Equal(mLeft, rawIx) {
		ixPtrs = append(ixPtrs, BackPointer{MMatrix, StepLeft})
	}
	if k.Equal(ixLeft, rawIx) {
		ixPtrs = append(ixPtrs, BackPointer{IxMatrix, StepLeft})
	}
	if k.Equal(iyLeft, rawIx) {
		ixPtrs = append(ixPtrs, BackPointer{IyMatrix, StepLeft})
	}
	g.ix[i][j] = clamp(rawIx, ixPtrs, mode, k)

	mUp := g.m[i-1][j].Score - gaps.DY
	iyUp := g.iy[i-1][j].Score - gaps.EY
	ixUp := g.ix[i-1][j].Score - gaps.DY
	rawIy := k.Max(mUp, iyUp, ixUp)
	var iyPtrs []BackPointer
	if k.Equal(mUp, rawIy) {
		iyPtrs = append(iyPtrs, BackPointer{MMatrix, StepUp})
	}
	if k.Equal(ixUp, rawIy) {
		iyPtrs = append(iyPtrs, BackPointer{IxMatrix, StepUp})
	}
	if k.Equal(iyUp, rawIy) {
		iyPtrs = append(iyPtrs, BackPointer{IyMatrix, StepUp})
	}
	g.iy[i][j] = clamp(rawIy, iyPtrs, mode, k)
}

// clamp applies the local-mode Smith-Waterman floor: a negative value is
// raised to zero, and a zeroed cell's pointer set is cleared to mark it as
// a fresh start. Global mode passes the raw value and pointers through.
func clamp[T numeric.Number](raw T, ptrs []BackPointer, mode Mode, k numeric.Kernel[T]) Cell[T] {
	if mode != Local {
		return Cell[T]{Score: raw, Pointers: ptrs}
	}

	var zero T
	value := raw
	if k.Less(value, zero) {
		value = zero
	}
	if k.Equal(value, zero) {
		return Cell[T]{Score: value}
	}
	return Cell[T]{Score: value, Pointers: ptrs}
}
