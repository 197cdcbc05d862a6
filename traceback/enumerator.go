package traceback

import (
	"github.com/katalvlaran/alignkit/dpgrid"
	"github.com/katalvlaran/alignkit/numeric"
	"github.com/katalvlaran/alignkit/seq"
)

// Enumerator walks a filled grid's back-pointer DAG and yields every
// co-optimal alignment path, in fixed-size chunks pulled by Next.
type Enumerator[T numeric.Number] struct {
	grid   *dpgrid.Grid[T]
	a, b   *seq.Sequence
	mode   dpgrid.Mode
	kernel numeric.Kernel[T]
	stack  []frame
	done   bool
}

// New builds an Enumerator ready to walk grid's start cells in canonical
// order. Callers should drain Next until it returns done == true.
func New[T numeric.Number](grid *dpgrid.Grid[T], a, b *seq.Sequence, mode dpgrid.Mode, kernel numeric.Kernel[T]) *Enumerator[T] {
	starts := grid.StartCells(kernel)
	e := &Enumerator[T]{grid: grid, a: a, b: b, mode: mode, kernel: kernel}

	// Push in reverse so the stack (LIFO) pops the first start cell first,
	// preserving StartCells' canonical order across chunk boundaries.
	for k := len(starts) - 1; k >= 0; k-- {
		s := starts[k]
		e.stack = append(e.stack, frame{matrix: s.Matrix, i: s.I, j: s.J})
	}
	if len(e.stack) == 0 {
		e.done = true
	}
	return e
}

// Next returns up to ChunkSize freshly reconstructed alignments and reports
// whether the enumeration is exhausted. The call that reports done == true
// may still return a non-empty slice (the final chunk); once exhausted,
// every subsequent call returns (nil, true).
//
// Contract: keep calling Next until it returns (chunk, true); every chunk
// up to and including that one is valid.
func (e *Enumerator[T]) Next() ([]Alignment, bool) {
	if e.done {
		return nil, true
	}

	var chunk []Alignment
	for len(e.stack) > 0 && len(chunk) < ChunkSize {
		idx := len(e.stack) - 1
		top := e.stack[idx]
		cell := e.grid.CellAt(top.matrix, top.i, top.j)

		if len(cell.Pointers) == 0 {
			chunk = append(chunk, e.finalize(top))
			e.stack = e.stack[:idx]
			continue
		}
		if top.ptrIdx >= len(cell.Pointers) {
			e.stack = e.stack[:idx]
			continue
		}

		ptr := cell.Pointers[top.ptrIdx]
		e.stack[idx].ptrIdx++
		e.stack = append(e.stack, e.derive(top, ptr))
	}

	if len(e.stack) == 0 {
		e.done = true
	}
	return chunk, e.done
}

// derive builds the child frame reached from parent by following ptr,
// recording the one column of aligned symbols that step consumes.
func (e *Enumerator[T]) derive(parent frame, ptr dpgrid.BackPointer) frame {
	aAcc := append([]rune{}, parent.aAcc...)
	bAcc := append([]rune{}, parent.bAcc...)

	var ni, nj int
	switch ptr.Step {
	case dpgrid.StepDiag:
		aAcc = append(aAcc, e.a.At(parent.i))
		bAcc = append(bAcc, e.b.At(parent.j))
		ni, nj = parent.i-1, parent.j-1
	case dpgrid.StepUp:
		aAcc = append(aAcc, e.a.At(parent.i))
		bAcc = append(bAcc, '_')
		ni, nj = parent.i-1, parent.j
	default: // StepLeft
		aAcc = append(aAcc, '_')
		bAcc = append(bAcc, e.b.At(parent.j))
		ni, nj = parent.i, parent.j-1
	}

	return frame{matrix: ptr.From, i: ni, j: nj, aAcc: aAcc, bAcc: bAcc}
}

// finalize reverses a terminal frame's accumulated path into an Alignment.
// In global mode a terminal that lands on a non-origin boundary cell (Ix at
// row 0, or Iy at column 0) still owes the deterministic run of gap steps
// the boundary's closed-form score represents; that run is appended before
// reversal so every alignment fully covers A and B.
func (e *Enumerator[T]) finalize(top frame) Alignment {
	aAcc := append([]rune{}, top.aAcc...)
	bAcc := append([]rune{}, top.bAcc...)

	if e.mode == dpgrid.Global {
		switch {
		case top.matrix == dpgrid.IxMatrix && top.i == 0 && top.j > 0:
			for jj := top.j; jj >= 1; jj-- {
				aAcc = append(aAcc, '_')
				bAcc = append(bAcc, e.b.At(jj))
			}
		case top.matrix == dpgrid.IyMatrix && top.j == 0 && top.i > 0:
			for ii := top.i; ii >= 1; ii-- {
				aAcc = append(aAcc, e.a.At(ii))
				bAcc = append(bAcc, '_')
			}
		}
	}

	reverseRunes(aAcc)
	reverseRunes(bAcc)
	return Alignment{A: string(aAcc), B: string(bAcc)}
}

func reverseRunes(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
