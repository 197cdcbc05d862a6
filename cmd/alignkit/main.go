// Command alignkit runs pairwise sequence alignment with affine gap costs
// and streams every co-optimal alignment.
package main

import (
	"fmt"
	"os"

	colorable "github.com/mattn/go-colorable"

	"github.com/katalvlaran/alignkit/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(colorable.NewColorableStderr(), "error:", err)
		os.Exit(1)
	}
}
