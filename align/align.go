package align

import (
	"github.com/katalvlaran/alignkit/dpgrid"
	"github.com/katalvlaran/alignkit/numeric"
	"github.com/pkg/errors"
)

// Execute validates req, fills the DP grid, and returns a Run over it. It
// never mutates req's sequences, table, or gap model.
func Execute[T numeric.Number](req Request[T]) (*Run[T], error) {
	if req.A == nil || req.B == nil {
		return nil, errors.Wrap(ErrNilSequence, "align.Execute")
	}
	if req.Table == nil {
		return nil, errors.Wrap(ErrNilTable, "align.Execute")
	}
	if req.Table.AlphabetA() != req.A.Alphabet() || req.Table.AlphabetB() != req.B.Alphabet() {
		return nil, errors.Wrap(ErrAlphabetMismatch, "align.Execute")
	}

	epsilon := req.Epsilon
	var zero T
	if epsilon == zero {
		epsilon = numeric.DefaultEpsilon[T]()
	}
	kernel, err := numeric.NewKernel(epsilon)
	if err != nil {
		return nil, errors.Wrap(err, "align.Execute: building kernel")
	}

	grid := dpgrid.Fill(req.A, req.B, req.Table, req.Gaps, kernel, req.Mode)

	return &Run[T]{grid: grid, kernel: kernel, a: req.A, b: req.B, mode: req.Mode}, nil
}
