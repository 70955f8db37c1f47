package raytracer

// Ray is an origin point plus a direction vector.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay checks that origin is a point and direction a vector.
func NewRay(origin, direction Tuple) (Ray, error) {
	if !origin.IsPoint() || !direction.IsVector() {
		return Ray{}, opErrorf("NewRay", ErrInvalidKind)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns origin + direction*t.
func (r Ray) Position(t Real) Tuple {
	d := r.Direction.Mul(t)
	return NewTuple(r.Origin.X+d.X, r.Origin.Y+d.Y, r.Origin.Z+d.Z, r.Origin.W+d.W)
}

// Transform applies m to both origin and direction. The direction's w == 0
// keeps translation out of it.
func (r Ray) Transform(m *Matrix) (Ray, error) {
	o, err := m.MulTuple(r.Origin)
	if err != nil {
		return Ray{}, opErrorf("Ray.Transform", err)
	}
	d, err := m.MulTuple(r.Direction)
	if err != nil {
		return Ray{}, opErrorf("Ray.Transform", err)
	}
	return Ray{Origin: o, Direction: d}, nil
}
