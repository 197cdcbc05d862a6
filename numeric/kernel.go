package numeric

import "math"

// DefaultEpsilon returns the default tie tolerance for T. For floating-point
// kinds this is the spec's 1e-9; for integer kinds the conversion truncates
// to 0, which is exactly "integer tolerance is zero" with no type switch.
func DefaultEpsilon[T Number]() T {
	eps := 1e-9
	return T(eps)
}

// NegInf returns a sentinel value standing in for "unreachable" in a DP
// cell. Floating kinds use true negative infinity; integer kinds use a
// large negative value with enough headroom that a handful of additions or
// subtractions against real scores cannot lift it into plausible range.
func NegInf[T Number]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.Inf(-1))
	case float64:
		return T(math.Inf(-1))
	case int32:
		return T(math.MinInt32 / 4)
	default:
		minVal := int64(math.MinInt64) / 4
		return T(minVal)
	}
}

// Kernel is a tolerance-aware comparator over T. Every tie decision in the
// DP filler and every pointer-validity check in the traceback engine MUST
// route through the same Kernel instance so the set of co-optimal paths is
// deterministic and reproducible.
type Kernel[T Number] struct {
	Epsilon T
}

// NewKernel builds a Kernel with the given tolerance. Negative epsilon is
// rejected: it would make a value unequal to itself.
func NewKernel[T Number](epsilon T) (Kernel[T], error) {
	var zero T
	if epsilon < zero {
		return Kernel[T]{}, ErrNegativeEpsilon
	}
	return Kernel[T]{Epsilon: epsilon}, nil
}

// NewDefaultKernel builds a Kernel using DefaultEpsilon[T]().
func NewDefaultKernel[T Number]() Kernel[T] {
	return Kernel[T]{Epsilon: DefaultEpsilon[T]()}
}

func absT[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Equal reports whether a and b differ by no more than the kernel's
// epsilon.
func (k Kernel[T]) Equal(a, b T) bool {
	return absT(a-b) <= k.Epsilon
}

// Less reports whether a is strictly less than b, outside the tolerance
// band.
func (k Kernel[T]) Less(a, b T) bool {
	return a < b && !k.Equal(a, b)
}

// Greater reports whether a is strictly greater than b, outside the
// tolerance band.
func (k Kernel[T]) Greater(a, b T) bool {
	return a > b && !k.Equal(a, b)
}

// GreaterOrEqual reports whether a is greater than, or tied with, b.
func (k Kernel[T]) GreaterOrEqual(a, b T) bool {
	return a > b || k.Equal(a, b)
}

// Max returns the largest of values. Panics on an empty slice — callers
// always pass the fixed-arity recurrence operands, never a dynamic list.
func (k Kernel[T]) Max(values ...T) T {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
