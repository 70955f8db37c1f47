package raytracer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatEqual(t *testing.T) {
	tests := []struct {
		a, b Real
		want bool
	}{
		{1, 1, true},
		{1, 1 + Epsilon/2, true},
		{1, 1 + 0.9*Epsilon, true},
		{1, 1 + 2*Epsilon, false},
		{-3, -3 - 0.9*Epsilon, true},
		{-0.0, 0, true},
		{0, 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FloatEqual(tt.a, tt.b), "%v %v", tt.a, tt.b)
		assert.Equal(t, tt.want, FloatEqual(tt.b, tt.a), "%v %v", tt.b, tt.a)
		assert.True(t, FloatEqual(tt.a, tt.a))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(0, 255, -3))
	assert.Equal(t, 255, Clamp(0, 255, 300))
	assert.Equal(t, 128, Clamp(0, 255, 128))
	assert.Equal(t, 1.0, Clamp(0.0, 1.0, 1.5))
}

func TestWithinRange(t *testing.T) {
	assert.True(t, WithinRange(0, 4, 0))
	assert.True(t, WithinRange(0, 4, 4))
	assert.False(t, WithinRange(0, 4, 5))
	assert.False(t, WithinRange(0, 4, -1))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, isFinite(1e300))
	assert.False(t, isFinite(math.Inf(-1)))
	assert.False(t, isFinite(math.NaN()))
}
