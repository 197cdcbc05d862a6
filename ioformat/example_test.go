package ioformat_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/alignkit/traceback"

	"github.com/katalvlaran/alignkit/ioformat"
)

func ExampleWriteResult() {
	alignments := []traceback.Alignment{{A: "ACGT", B: "ACGT"}}
	served := false
	next := func() ([]traceback.Alignment, bool) {
		if served {
			return nil, true
		}
		served = true
		return alignments, true
	}

	if err := ioformat.WriteResult(os.Stdout, 4.0, next); err != nil {
		fmt.Println("error:", err)
	}
	// Output: 4
	//
	// ACGT
	// ACGT
}
