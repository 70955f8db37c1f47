package raytracer

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveAnimatedGIF writes one GIF frame per image, looping forever.
// delay is in 100ths of a second (e.g., 25 => 4 fps).
func SaveAnimatedGIF(frames []image.Image, path string, delay int) error {
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, img := range frames {
		// quantize to paletted for GIF
		pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, img.Bounds().Min)

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
