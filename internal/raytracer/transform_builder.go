package raytracer

import "fmt"

// TransformBuilder queues transforms in the order they should act on a tuple
// and collapses them right to left: Build() == last * ... * first.
//
//	m, err := NewTransformBuilder().
//		Rotate(AxisX, math.Pi/2).
//		Scale(5, 5, 5).
//		Translate(10, 5, 7).
//		Build()
type TransformBuilder struct {
	queued []*Matrix
}

func NewTransformBuilder() *TransformBuilder {
	return &TransformBuilder{}
}

// Add queues an arbitrary matrix. A nil matrix makes Build fail.
func (b *TransformBuilder) Add(m *Matrix) *TransformBuilder {
	b.queued = append(b.queued, m)
	return b
}

func (b *TransformBuilder) Translate(x, y, z Real) *TransformBuilder {
	return b.Add(Translation(x, y, z))
}

func (b *TransformBuilder) Scale(x, y, z Real) *TransformBuilder {
	return b.Add(Scaling(x, y, z))
}

func (b *TransformBuilder) Rotate(axis Axis, radians Real) *TransformBuilder {
	return b.Add(Rotation(axis, radians))
}

func (b *TransformBuilder) Shear(sh Shear) *TransformBuilder {
	return b.Add(Shearing(sh))
}

// Len returns the number of queued transforms.
func (b *TransformBuilder) Len() int { return len(b.queued) }

// Build collapses the queue into one matrix.
func (b *TransformBuilder) Build() (*Matrix, error) {
	if len(b.queued) == 0 {
		return nil, opErrorf("Build", ErrNoTransforms)
	}
	for i, m := range b.queued {
		if m == nil {
			return nil, opErrorf("Build", fmt.Errorf("transform %d is nil: %w", i, ErrBadShape))
		}
	}
	result := b.queued[len(b.queued)-1].Clone()
	for i := len(b.queued) - 2; i >= 0; i-- {
		var err error
		result, err = result.Mul(b.queued[i])
		if err != nil {
			return nil, opErrorf("Build", err)
		}
	}
	return result, nil
}

// Apply is Build followed by MulTuple.
func (b *TransformBuilder) Apply(t Tuple) (Tuple, error) {
	m, err := b.Build()
	if err != nil {
		return Tuple{}, err
	}
	return m.MulTuple(t)
}

// Reset empties the queue so the builder can be reused.
func (b *TransformBuilder) Reset() {
	b.queued = b.queued[:0]
}
