package raytracer

// Intersection pairs a ray parameter with the object it hit.
type Intersection struct {
	T      Real
	Object Object
}

// Intersections collects xs in the given order; it does not sort.
func Intersections(xs ...Intersection) []Intersection {
	out := make([]Intersection, len(xs))
	copy(out, xs)
	return out
}

// Hit returns the intersection with the smallest strictly positive T.
// ok is false when nothing qualifies, including for an empty input. NaN
// parameters never qualify.
func Hit(xs []Intersection) (hit Intersection, ok bool) {
	for _, x := range xs {
		if !(x.T > 0) {
			continue
		}
		if !ok || x.T < hit.T {
			hit, ok = x, true
		}
	}
	return hit, ok
}

// IntersectAll aggregates the intersections of r with every object, object
// by object in argument order.
func IntersectAll(r Ray, objects ...Object) ([]Intersection, error) {
	var all []Intersection
	for _, o := range objects {
		xs, err := o.Intersect(r)
		if err != nil {
			return nil, err
		}
		all = append(all, xs...)
	}
	return all, nil
}
