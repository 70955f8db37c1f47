package raytracer

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG writes img as a lossless PNG. A 16-bit source stays 16-bit.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePNGSequence16 writes one 16-bit PNG per frame as <prefix>_<k>.png, k
// zero-padded to the width of the last index.
func SavePNGSequence16(frames []*Canvas, prefix string, gamma Real) error {
	width := len(fmt.Sprint(max(len(frames)-1, 0)))
	for k, c := range frames {
		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		if err := SavePNG(c.NRGBA64(gamma), full); err != nil {
			return err
		}
		DebugLog("Saved PNG frame %s", full)
	}
	return nil
}
