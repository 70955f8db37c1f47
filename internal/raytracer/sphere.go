package raytracer

import (
	"fmt"
	"math"
)

// Sphere is the unit sphere at the object-space origin, placed in the world
// by Transform. Transform is read on every call; callers that mutate it
// while other goroutines intersect must synchronize themselves.
type Sphere struct {
	id        uint64
	Transform *Matrix
}

// centre of every sphere in object space
var sphereCentre = Point(0, 0, 0)

func NewSphere() *Sphere {
	s := &Sphere{id: nextObjectID(), Transform: Identity(TransformSize)}
	DebugLog("Created sphere #%d", s.id)
	return s
}

func (s *Sphere) ID() uint64 { return s.id }

// SetTransform replaces the transform; it must be 4x4.
func (s *Sphere) SetTransform(m *Matrix) error {
	if m == nil || m.Size() != TransformSize {
		return opErrorf("SetTransform", ErrUnsupportedSize)
	}
	s.Transform = m
	return nil
}

func (s *Sphere) String() string { return fmt.Sprintf("sphere#%d", s.id) }

// Intersect moves the ray into object space with the inverse transform and
// solves |o + t*d|^2 = 1. Hits come back low root first; a tangent ray gives
// two equal parameters and a miss gives none.
func (s *Sphere) Intersect(r Ray) ([]Intersection, error) {
	inv, err := s.Transform.Inverse()
	if err != nil {
		return nil, opErrorf("Sphere.Intersect", err)
	}
	local, err := r.Transform(inv)
	if err != nil {
		return nil, opErrorf("Sphere.Intersect", err)
	}
	sphereToRay, err := local.Origin.Sub(sphereCentre)
	if err != nil {
		return nil, opErrorf("Sphere.Intersect", err)
	}
	D := local.Direction

	a := D.dot(D)
	if a == 0 {
		return nil, opErrorf("Sphere.Intersect", ErrZeroLength)
	}
	b := 2 * D.dot(sphereToRay)
	c := sphereToRay.dot(sphereToRay) - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil, nil
	}
	sqrtD := math.Sqrt(disc)
	return []Intersection{
		{T: (-b - sqrtD) / (2 * a), Object: s},
		{T: (-b + sqrtD) / (2 * a), Object: s},
	}, nil
}

// NormalAt returns the unit world-space normal at worldPoint, mapping it
// with the inverse-transpose of Transform.
func (s *Sphere) NormalAt(worldPoint Tuple) (Tuple, error) {
	if !worldPoint.IsPoint() {
		return Tuple{}, opErrorf("Sphere.NormalAt", ErrInvalidKind)
	}
	inv, err := s.Transform.Inverse()
	if err != nil {
		return Tuple{}, opErrorf("Sphere.NormalAt", err)
	}
	objectPoint, err := inv.MulTuple(worldPoint)
	if err != nil {
		return Tuple{}, opErrorf("Sphere.NormalAt", err)
	}
	objectNormal, err := objectPoint.Sub(sphereCentre)
	if err != nil {
		return Tuple{}, opErrorf("Sphere.NormalAt", err)
	}
	worldNormal, err := inv.Transpose().MulTuple(objectNormal)
	if err != nil {
		return Tuple{}, opErrorf("Sphere.NormalAt", err)
	}
	// the transposed inverse can leak translation into w
	n := Vector(worldNormal.X, worldNormal.Y, worldNormal.Z)
	return n.Normalize()
}
