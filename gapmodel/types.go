package gapmodel

import "github.com/katalvlaran/alignkit/numeric"

// Model holds the affine gap-penalty parameters: dx/ex open and extend a
// gap in A (a deletion from B); dy/ey open and extend a gap in B.
type Model[T numeric.Number] struct {
	DX, EX, DY, EY T
}
