package dpgrid

import "github.com/katalvlaran/alignkit/numeric"

// Grid holds the three filled score matrices for one alignment run.
// Dimensions are (|A|+1) x (|B|+1); row/column 0 is the boundary.
type Grid[T numeric.Number] struct {
	rows, cols int
	mode       Mode
	m, ix, iy  [][]Cell[T]
	best       T
}

// Rows returns |A|+1.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns |B|+1.
func (g *Grid[T]) Cols() int { return g.cols }

// Mode returns the alignment mode this grid was filled under.
func (g *Grid[T]) Mode() Mode { return g.mode }

// BestScore returns the optimal score under the grid's mode.
func (g *Grid[T]) BestScore() T { return g.best }

// CellAt returns the cell at (i, j) in the named matrix.
func (g *Grid[T]) CellAt(matrix Matrix, i, j int) Cell[T] {
	switch matrix {
	case IxMatrix:
		return g.ix[i][j]
	case IyMatrix:
		return g.iy[i][j]
	default:
		return g.m[i][j]
	}
}

func newGrid[T numeric.Number](n, m int, mode Mode) *Grid[T] {
	rows, cols := n+1, m+1
	g := &Grid[T]{rows: rows, cols: cols, mode: mode}
	g.m = make([][]Cell[T], rows)
	g.ix = make([][]Cell[T], rows)
	g.iy = make([][]Cell[T], rows)
	for i := 0; i < rows; i++ {
		g.m[i] = make([]Cell[T], cols)
		g.ix[i] = make([]Cell[T], cols)
		g.iy[i] = make([]Cell[T], cols)
	}
	return g
}

// StartCells returns the cells traceback may begin from, in canonical
// order (matrix M, Ix, Iy for Global; row-major over M for Local).
//
// Global: the three (|A|,|B|) cells across M/Ix/Iy, filtered to those
// tied with BestScore().
//
// Local: every cell in M tied with the global maximum of M. As a pinned
// resolution of the spec's zero-length-sequence open question (see
// DESIGN.md), an empty A or B yields zero start cells rather than the
// combinatorial pile of zero-scoring boundary ties that a literal scan
// would otherwise produce.
func (g *Grid[T]) StartCells(k numeric.Kernel[T]) []StartCell {
	if g.mode == Global {
		i, j := g.rows-1, g.cols-1
		var cells []StartCell
		if k.Equal(g.m[i][j].Score, g.best) {
			cells = append(cells, StartCell{MMatrix, i, j})
		}
		if k.Equal(g.ix[i][j].Score, g.best) {
			cells = append(cells, StartCell{IxMatrix, i, j})
		}
		if k.Equal(g.iy[i][j].Score, g.best) {
			cells = append(cells, StartCell{IyMatrix, i, j})
		}
		return cells
	}

	if g.rows == 1 || g.cols == 1 {
		return nil
	}

	var cells []StartCell
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if k.Equal(g.m[i][j].Score, g.best) {
				cells = append(cells, StartCell{MMatrix, i, j})
			}
		}
	}
	return cells
}

func (g *Grid[T]) computeBest() {
	if g.mode == Global {
		i, j := g.rows-1, g.cols-1
		best := g.m[i][j].Score
		if g.ix[i][j].Score > best {
			best = g.ix[i][j].Score
		}
		if g.iy[i][j].Score > best {
			best = g.iy[i][j].Score
		}
		g.best = best
		return
	}

	if g.rows == 1 || g.cols == 1 {
		var zero T
		g.best = zero
		return
	}

	best := g.m[0][0].Score
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if g.m[i][j].Score > best {
				best = g.m[i][j].Score
			}
		}
	}
	g.best = best
}
