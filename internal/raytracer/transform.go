package raytracer

import (
	"fmt"
	"math"
)

// Axis selects the rotation axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", uint8(a))
}

// ParseAxis accepts "x", "y" or "z" (either case).
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("axis %q: %w", s, ErrBadConfig)
}

// Shear holds the six proportionality coefficients; XY moves x in
// proportion to y, and so on.
type Shear struct {
	XY, XZ, YX, YZ, ZX, ZY Real
}

// Translation moves points by (dx, dy, dz); vectors are unaffected.
func Translation(dx, dy, dz Real) *Matrix {
	M := Identity(TransformSize)
	M.set(0, 3, dx)
	M.set(1, 3, dy)
	M.set(2, 3, dz)
	return M
}

func Scaling(sx, sy, sz Real) *Matrix {
	M := Identity(TransformSize)
	M.set(0, 0, sx)
	M.set(1, 1, sy)
	M.set(2, 2, sz)
	return M
}

// Right-handed rotations about a single axis.
func RotationX(a Real) *Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity(TransformSize)
	M.set(1, 1, c)
	M.set(1, 2, -s)
	M.set(2, 1, s)
	M.set(2, 2, c)
	return M
}

func RotationY(a Real) *Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity(TransformSize)
	M.set(0, 0, c)
	M.set(0, 2, s)
	M.set(2, 0, -s)
	M.set(2, 2, c)
	return M
}

func RotationZ(a Real) *Matrix {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity(TransformSize)
	M.set(0, 0, c)
	M.set(0, 1, -s)
	M.set(1, 0, s)
	M.set(1, 1, c)
	return M
}

// Rotation dispatches on axis; an unknown axis yields the identity.
func Rotation(axis Axis, radians Real) *Matrix {
	switch axis {
	case AxisX:
		return RotationX(radians)
	case AxisY:
		return RotationY(radians)
	case AxisZ:
		return RotationZ(radians)
	}
	return Identity(TransformSize)
}

func Shearing(sh Shear) *Matrix {
	M := Identity(TransformSize)
	M.set(0, 1, sh.XY)
	M.set(0, 2, sh.XZ)
	M.set(1, 0, sh.YX)
	M.set(1, 2, sh.YZ)
	M.set(2, 0, sh.ZX)
	M.set(2, 1, sh.ZY)
	return M
}

// Radians converts degrees (config files use degrees).
func Radians(deg Real) Real { return deg * math.Pi / 180 }
