package align

import (
	"github.com/katalvlaran/alignkit/dpgrid"
	"github.com/katalvlaran/alignkit/gapmodel"
	"github.com/katalvlaran/alignkit/numeric"
	"github.com/katalvlaran/alignkit/seq"
	"github.com/katalvlaran/alignkit/subtable"
	"github.com/katalvlaran/alignkit/traceback"
)

// Request bundles everything one alignment needs. Epsilon overrides the
// kernel's tolerance; the zero value selects numeric.DefaultEpsilon[T]().
type Request[T numeric.Number] struct {
	A, B    *seq.Sequence
	Table   *subtable.Table[T]
	Gaps    gapmodel.Model[T]
	Mode    dpgrid.Mode
	Epsilon T
}

// Run is the outcome of one Execute call: a filled grid plus enough
// bookkeeping to enumerate its co-optimal alignments on demand.
type Run[T numeric.Number] struct {
	grid   *dpgrid.Grid[T]
	kernel numeric.Kernel[T]
	a, b   *seq.Sequence
	mode   dpgrid.Mode
}

// BestScore returns the optimal alignment score under the run's mode.
func (r *Run[T]) BestScore() T { return r.grid.BestScore() }

// Alignments returns a fresh Enumerator over every co-optimal alignment.
// Calling it more than once yields independent enumerators over the same
// grid.
func (r *Run[T]) Alignments() *traceback.Enumerator[T] {
	return traceback.New(r.grid, r.a, r.b, r.mode, r.kernel)
}
