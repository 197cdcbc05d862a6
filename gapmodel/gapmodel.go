package gapmodel

import "github.com/katalvlaran/alignkit/numeric"

// New validates dx, ex, dy, ey and returns a Model. All four values must be
// non-negative.
func New[T numeric.Number](dx, ex, dy, ey T) (Model[T], error) {
	var zero T
	if dx < zero || ex < zero || dy < zero || ey < zero {
		return Model[T]{}, ErrInvalidGapPenalty
	}
	return Model[T]{DX: dx, EX: ex, DY: dy, EY: ey}, nil
}

// OpenX returns the cost of opening a gap in A.
func (m Model[T]) OpenX() T { return m.DX }

// ExtendX returns the cost of extending an existing gap in A.
func (m Model[T]) ExtendX() T { return m.EX }

// OpenY returns the cost of opening a gap in B.
func (m Model[T]) OpenY() T { return m.DY }

// ExtendY returns the cost of extending an existing gap in B.
func (m Model[T]) ExtendY() T { return m.EY }
