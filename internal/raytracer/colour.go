package raytracer

// Colour stores red, green and blue intensities, nominally in [0,1].
type Colour struct {
	R, G, B Real
}

var (
	Black = Colour{0, 0, 0}
	White = Colour{1, 1, 1}
	Red   = Colour{1, 0, 0}
)

func (c Colour) Add(o Colour) Colour { return Colour{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Colour) Sub(o Colour) Colour { return Colour{c.R - o.R, c.G - o.G, c.B - o.B} }
func (c Colour) Mul(s Real) Colour   { return Colour{c.R * s, c.G * s, c.B * s} }

// Hadamard multiplies channel by channel.
func (c Colour) Hadamard(o Colour) Colour {
	return Colour{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Colour) Equal(o Colour) bool {
	return FloatEqual(c.R, o.R) && FloatEqual(c.G, o.G) && FloatEqual(c.B, o.B)
}

// Clamp01 clamps each channel to [0,1].
func (c Colour) Clamp01() Colour {
	return Colour{Clamp(0, 1, c.R), Clamp(0, 1, c.G), Clamp(0, 1, c.B)}
}
