package raytracer

// Canvas is a width×height grid of colours; pixels start black.
type Canvas struct {
	w, h int
	pix  []Colour // flat: y*w + x
}

func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, opErrorf("NewCanvas", ErrBadShape)
	}
	return &Canvas{w: width, h: height, pix: make([]Colour, width*height)}, nil
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

func (c *Canvas) idx(op string, x, y int) (int, error) {
	if !WithinRange(0, c.w-1, x) || !WithinRange(0, c.h-1, y) {
		return 0, indexErrorf(op, x, y, ErrOutOfRange)
	}
	return y*c.w + x, nil
}

// Pixel returns the colour at (x, y).
func (c *Canvas) Pixel(x, y int) (Colour, error) {
	i, err := c.idx("Pixel", x, y)
	if err != nil {
		return Colour{}, err
	}
	return c.pix[i], nil
}

// SetPixel writes col at (x, y).
func (c *Canvas) SetPixel(x, y int, col Colour) error {
	i, err := c.idx("SetPixel", x, y)
	if err != nil {
		return err
	}
	c.pix[i] = col
	return nil
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col Colour) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{w: c.w, h: c.h, pix: make([]Colour, len(c.pix))}
	copy(out.pix, c.pix)
	return out
}
