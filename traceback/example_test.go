package traceback_test

import (
	"fmt"

	"github.com/katalvlaran/alignkit/alphabet"
	"github.com/katalvlaran/alignkit/dpgrid"
	"github.com/katalvlaran/alignkit/gapmodel"
	"github.com/katalvlaran/alignkit/numeric"
	"github.com/katalvlaran/alignkit/seq"
	"github.com/katalvlaran/alignkit/subtable"
	"github.com/katalvlaran/alignkit/traceback"
)

func ExampleEnumerator_Next() {
	alpha, _ := alphabet.NewFromString("AC")
	entries := []subtable.Entry[float64]{
		{IA: 0, IB: 0, CA: 'A', CB: 'A', Score: 1},
		{IA: 0, IB: 1, CA: 'A', CB: 'C', Score: -1},
		{IA: 1, IB: 0, CA: 'C', CB: 'A', Score: -1},
		{IA: 1, IB: 1, CA: 'C', CB: 'C', Score: 1},
	}
	tbl, _ := subtable.NewTable(alpha, alpha, entries)

	a, _ := seq.New("AC", alpha)
	b, _ := seq.New("AC", alpha)
	gaps, _ := gapmodel.New(1.0, 1.0, 1.0, 1.0)
	k := numeric.NewDefaultKernel[float64]()

	grid := dpgrid.Fill(a, b, tbl, gaps, k, dpgrid.Global)
	e := traceback.New(grid, a, b, dpgrid.Global, k)

	for {
		chunk, done := e.Next()
		for _, al := range chunk {
			fmt.Println(al.A, al.B)
		}
		if done {
			break
		}
	}
	// Output: AC AC
}
