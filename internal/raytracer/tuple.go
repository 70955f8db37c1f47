package raytracer

import (
	"fmt"
	"math"
)

// Kind discriminates what a Tuple represents, derived from its w component.
type Kind uint8

const (
	KindRaw    Kind = iota // any w other than 0 or 1, e.g. mid-interpolation
	KindPoint              // w == 1
	KindVector             // w == 0
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindVector:
		return "vector"
	default:
		return "tuple"
	}
}

// kindOf classifies a homogeneous w.
func kindOf(w Real) Kind {
	switch w {
	case 0:
		return KindVector
	case 1:
		return KindPoint
	default:
		return KindRaw
	}
}

// Tuple is a homogeneous (x, y, z, w) value. Tuples are immutable; every
// operation returns a new one with its Kind recomputed from w.
type Tuple struct {
	X, Y, Z, W Real
	Kind       Kind
}

// NewTuple builds a tuple and classifies it from w.
func NewTuple(x, y, z, w Real) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w, Kind: kindOf(w)}
}

// Point returns a position (w = 1).
func Point(x, y, z Real) Tuple { return Tuple{X: x, Y: y, Z: z, W: 1, Kind: KindPoint} }

// Vector returns a direction (w = 0).
func Vector(x, y, z Real) Tuple { return Tuple{X: x, Y: y, Z: z, W: 0, Kind: KindVector} }

func (t Tuple) IsPoint() bool  { return t.Kind == KindPoint }
func (t Tuple) IsVector() bool { return t.Kind == KindVector }

// Equal compares x, y, z within Epsilon and w exactly.
func (t Tuple) Equal(o Tuple) bool {
	return t.W == o.W &&
		FloatEqual(t.X, o.X) &&
		FloatEqual(t.Y, o.Y) &&
		FloatEqual(t.Z, o.Z)
}

// Add sums two tuples. point+point is rejected with ErrInvalidKind.
func (t Tuple) Add(o Tuple) (Tuple, error) {
	if t.IsPoint() && o.IsPoint() {
		return Tuple{}, opErrorf("Add", ErrInvalidKind)
	}
	return NewTuple(t.X+o.X, t.Y+o.Y, t.Z+o.Z, t.W+o.W), nil
}

// Sub subtracts o from t. vector-point is rejected with ErrInvalidKind.
func (t Tuple) Sub(o Tuple) (Tuple, error) {
	if t.IsVector() && o.IsPoint() {
		return Tuple{}, opErrorf("Sub", ErrInvalidKind)
	}
	return NewTuple(t.X-o.X, t.Y-o.Y, t.Z-o.Z, t.W-o.W), nil
}

func (t Tuple) Negate() Tuple { return NewTuple(-t.X, -t.Y, -t.Z, -t.W) }

func (t Tuple) Mul(s Real) Tuple { return NewTuple(t.X*s, t.Y*s, t.Z*s, t.W*s) }

func (t Tuple) Div(s Real) Tuple { return NewTuple(t.X/s, t.Y/s, t.Z/s, t.W/s) }

// Magnitude returns the Euclidean length of a vector.
func (t Tuple) Magnitude() (Real, error) {
	if !t.IsVector() {
		return 0, opErrorf("Magnitude", ErrNotVector)
	}
	return t.length(), nil
}

func (t Tuple) length() Real {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns the unit vector pointing the same way.
func (t Tuple) Normalize() (Tuple, error) {
	if !t.IsVector() {
		return Tuple{}, opErrorf("Normalize", ErrNotVector)
	}
	l := t.length()
	if l == 0 {
		return Tuple{}, opErrorf("Normalize", ErrZeroLength)
	}
	return Vector(t.X/l, t.Y/l, t.Z/l), nil
}

// Dot returns the dot product of two vectors.
func (t Tuple) Dot(o Tuple) (Real, error) {
	if !t.IsVector() || !o.IsVector() {
		return 0, opErrorf("Dot", ErrNotVector)
	}
	return t.dot(o), nil
}

func (t Tuple) dot(o Tuple) Real {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the 3-component cross product of two vectors.
func (t Tuple) Cross(o Tuple) (Tuple, error) {
	if !t.IsVector() || !o.IsVector() {
		return Tuple{}, opErrorf("Cross", ErrNotVector)
	}
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	), nil
}

// Reflect mirrors the vector t around normal n: t - n*2(t.n).
func (t Tuple) Reflect(n Tuple) (Tuple, error) {
	d, err := t.Dot(n)
	if err != nil {
		return Tuple{}, opErrorf("Reflect", ErrNotVector)
	}
	return Vector(t.X-n.X*2*d, t.Y-n.Y*2*d, t.Z-n.Z*2*d), nil
}

func (t Tuple) String() string {
	return fmt.Sprintf("%s(%.5g, %.5g, %.5g, %.5g)", t.Kind, t.X, t.Y, t.Z, t.W)
}
