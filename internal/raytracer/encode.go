package raytracer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// OutputOptions control how canvases become image files. PPM and raw
// outputs ignore everything but the canvas itself.
type OutputOptions struct {
	Gamma    Real   // 1 = linear
	Scale    int    // integer upscale factor, <= 1 keeps the canvas size
	Kernel   Kernel // upscale filter
	Caption  string // drawn under the image when non-empty
	GIFDelay int    // per-frame delay for animated GIFs, 100ths of a second
}

func (o OutputOptions) withDefaults() OutputOptions {
	if o.Gamma <= 0 {
		o.Gamma = 1
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.GIFDelay <= 0 {
		o.GIFDelay = GIFDelay
	}
	return o
}

// Formats lists the supported output extensions.
var Formats = []string{".ppm", ".png", ".gif", ".bmp", ".tiff", ".tif", ".raw"}

// postprocess applies upscale and caption to one canvas.
func (o OutputOptions) postprocess(c *Canvas, deep bool) image.Image {
	var img image.Image
	if deep {
		img = c.NRGBA64(o.Gamma)
	} else {
		img = c.NRGBA(o.Gamma)
	}
	img = Upscale(img, o.Scale, o.Kernel)
	return Caption(img, o.Caption)
}

// SaveFrames writes frames to path, choosing the encoder from the extension.
// Only GIF keeps every frame; other formats write the last one, which for
// every built-in scenario is the complete picture.
func SaveFrames(frames []*Canvas, path string, opt OutputOptions) error {
	if len(frames) == 0 {
		return fmt.Errorf("%s: no frames: %w", path, ErrBadShape)
	}
	opt = opt.withDefaults()
	last := frames[len(frames)-1]
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	var err error
	switch ext {
	case ".ppm":
		err = os.WriteFile(path, []byte(last.PPM()), 0o644)
	case ".raw":
		err = last.SaveRawRGB64(path)
	case ".png":
		err = SavePNG(opt.postprocess(last, true), path)
	case ".gif":
		imgs := make([]image.Image, len(frames))
		for i, c := range frames {
			imgs[i] = opt.postprocess(c, false)
		}
		err = SaveAnimatedGIF(imgs, path, opt.GIFDelay)
	case ".bmp":
		err = encodeFile(path, func(f *os.File) error {
			return bmp.Encode(f, opt.postprocess(last, false))
		})
	case ".tif", ".tiff":
		err = encodeFile(path, func(f *os.File) error {
			return tiff.Encode(f, opt.postprocess(last, true), &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		})
	default:
		return fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}
	if err != nil {
		return err
	}
	DebugLog("Saved %d frame(s) to %s", len(frames), path)
	return nil
}

func encodeFile(path string, enc func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
