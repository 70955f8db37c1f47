package raytracer

import (
	"image"
	"math"
)

// channel maps v in [0,1] to [0,max] with optional gamma (1 = linear).
func channel(v, gamma, max Real) Real {
	if v <= 0 {
		return 0
	}
	if v > 1 {
		v = 1
	}
	if gamma > 0 && gamma != 1 {
		v = math.Pow(v, 1.0/gamma)
	}
	return math.Round(v * max)
}

// NRGBA64 converts the canvas to a 16-bit image. Row 0 of the canvas is the
// top row of the image.
func (c *Canvas) NRGBA64(gamma Real) *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, c.w, c.h))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for y := 0; y < c.h; y++ {
		rowOff := y * img.Stride
		for x := 0; x < c.w; x++ {
			p := c.pix[y*c.w+x]
			r := uint16(channel(p.R, gamma, 65535))
			g := uint16(channel(p.G, gamma, 65535))
			b := uint16(channel(p.B, gamma, 65535))
			a := uint16(0xFFFF)

			o := rowOff + x*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[o+0] = uint8(r >> 8)
			img.Pix[o+1] = uint8(r)
			img.Pix[o+2] = uint8(g >> 8)
			img.Pix[o+3] = uint8(g)
			img.Pix[o+4] = uint8(b >> 8)
			img.Pix[o+5] = uint8(b)
			img.Pix[o+6] = uint8(a >> 8)
			img.Pix[o+7] = uint8(a)
		}
	}
	return img
}

// NRGBA converts the canvas to an 8-bit image.
func (c *Canvas) NRGBA(gamma Real) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.w, c.h))
	for y := 0; y < c.h; y++ {
		rowOff := y * img.Stride
		for x := 0; x < c.w; x++ {
			p := c.pix[y*c.w+x]
			o := rowOff + x*4
			img.Pix[o+0] = uint8(channel(p.R, gamma, 255))
			img.Pix[o+1] = uint8(channel(p.G, gamma, 255))
			img.Pix[o+2] = uint8(channel(p.B, gamma, 255))
			img.Pix[o+3] = 255
		}
	}
	return img
}
