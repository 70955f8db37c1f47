package raytracer

import (
	"cmp"
	"math"
)

// FloatEqual reports whether a and b differ by less than Epsilon.
func FloatEqual(a, b Real) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp limits value to [lower, higher].
func Clamp[T cmp.Ordered](lower, higher, value T) T {
	if value > higher {
		return higher
	}
	if value < lower {
		return lower
	}
	return value
}

// WithinRange reports whether lower <= value <= higher.
func WithinRange[T cmp.Ordered](lower, higher, value T) bool {
	return value >= lower && value <= higher
}

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }
