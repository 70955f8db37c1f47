package raytracer

import "sync/atomic"

// Object is anything a ray can be intersected with. Identity is by ID, not geometry.
type Object interface {
	ID() uint64
	Intersect(r Ray) ([]Intersection, error)
	NormalAt(worldPoint Tuple) (Tuple, error)
}

var lastObjectID atomic.Uint64

// nextObjectID hands out process-unique IDs starting at 1.
func nextObjectID() uint64 { return lastObjectID.Add(1) }
