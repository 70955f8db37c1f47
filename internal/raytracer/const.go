package raytracer

// Real is the scalar type used everywhere in the kernel.
type Real = float64

const (
	Epsilon       = 1e-5 // tolerance for FloatEqual, Tuple.Equal and Matrix.Equal
	TransformSize = 4    // every geometric transform is a 4x4 matrix
	MaxDetSize    = 4    // determinant is defined for sizes 1..MaxDetSize only

	// PPM output
	PPMMagic       = "P3"
	PPMMaxValue    = 255
	PPMMaxLineLen  = 70
	ChannelsPerPix = 3

	// scenario / scene defaults
	CanvasW      = 500
	CanvasH      = 500
	WallZ        = 10
	WallSize     = 10
	EyeZ         = -3
	GIFDelay     = 25 // 100ths of a second per frame
	DefaultScale = 1
	DefaultOut   = "scene.ppm"
)
