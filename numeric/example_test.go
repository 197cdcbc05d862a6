package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/alignkit/numeric"
)

// ExampleKernel_Equal shows the tolerance band in action for a floating
// score kernel.
func ExampleKernel_Equal() {
	k := numeric.Kernel[float64]{Epsilon: 1e-9}
	fmt.Println(k.Equal(4.0, 4.0+1e-10))
	fmt.Println(k.Equal(4.0, 4.1))
	// Output:
	// true
	// false
}
