package raytracer

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Kernel selects the resampling filter used by Upscale.
type Kernel uint8

const (
	KernelNearest Kernel = iota // keeps plotted pixels crisp
	KernelCatmullRom
)

func (k Kernel) scaler() draw.Scaler {
	if k == KernelCatmullRom {
		return draw.CatmullRom
	}
	return draw.NearestNeighbor
}

// Upscale enlarges img by an integer factor. factor <= 1 returns img as is.
func Upscale(img image.Image, factor int, k Kernel) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	k.scaler().Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

const captionPad = 4

// Caption returns a copy of img with text drawn in a band along the bottom,
// using the fixed 7x13 font.
func Caption(img image.Image, text string) image.Image {
	if text == "" {
		return img
	}
	face := basicfont.Face7x13
	b := img.Bounds()
	band := face.Metrics().Height.Ceil() + 2*captionPad
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+band))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(captionPad, b.Dy()+captionPad+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return dst
}
