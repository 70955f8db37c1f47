package raytracer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersections(t *testing.T) {
	s := NewSphere()
	xs := Intersections(Intersection{T: 1, Object: s}, Intersection{T: 2, Object: s})
	require.Len(t, xs, 2)
	assert.Equal(t, 1.0, xs[0].T)
	assert.Equal(t, 2.0, xs[1].T)
	assert.Same(t, s, xs[0].Object)
	assert.Empty(t, Intersections())
}

func TestHit(t *testing.T) {
	s := NewSphere()
	at := func(ts ...Real) []Intersection {
		out := make([]Intersection, len(ts))
		for i, v := range ts {
			out[i] = Intersection{T: v, Object: s}
		}
		return out
	}

	tests := []struct {
		name string
		xs   []Intersection
		want Real
		ok   bool
	}{
		{"all positive", at(1, 2), 1, true},
		{"some negative", at(-1, 1), 1, true},
		{"all negative", at(-2, -1), 0, false},
		{"unsorted", at(5, 7, -3, 2), 2, true},
		{"unsorted with negative", at(6, 9, -2, 1), 1, true},
		{"zero is not a hit", at(0, 3), 3, true},
		{"NaN is not a hit", at(math.NaN(), 2), 2, true},
		{"only NaN", at(math.NaN(), math.NaN()), 0, false},
		{"empty", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Hit(tt.xs)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, hit.T)
				assert.Equal(t, s.ID(), hit.Object.ID())
			}
		})
	}
}

func TestIntersectAll(t *testing.T) {
	near, far := NewSphere(), NewSphere()
	require.NoError(t, far.SetTransform(Translation(0, 0, 10)))
	r := mustRay(t, Point(0, 0, -5), Vector(0, 0, 1))

	xs, err := IntersectAll(r, far, near)
	require.NoError(t, err)
	require.Len(t, xs, 4)
	// object by object in argument order
	assert.InDeltaSlice(t, []Real{14, 16, 4, 6}, ts(xs), Epsilon)

	hit, ok := Hit(xs)
	require.True(t, ok)
	assert.Equal(t, near.ID(), hit.Object.ID())

	xs, err = IntersectAll(r)
	require.NoError(t, err)
	assert.Empty(t, xs)
}
