package raytracer

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 dumps the canvas losslessly: int32 width and height
// (little-endian), then width*height*3 float64 channels row by row.
func (c *Canvas) SaveRawRGB64(path string) error {
	if len(c.pix) != c.w*c.h {
		return fmt.Errorf("pixel buffer length mismatch: got %d, expected %d", len(c.pix), c.w*c.h)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(c.w)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(c.h)); err != nil {
		return err
	}
	buf := make([]float64, 0, len(c.pix)*ChannelsPerPix)
	for _, p := range c.pix {
		buf = append(buf, p.R, p.G, p.B)
	}
	if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
		return err
	}
	return w.Flush()
}

// LoadRawRGB64 reads a file written by SaveRawRGB64.
func LoadRawRGB64(path string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var w, h int32
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	c, err := NewCanvas(int(w), int(h))
	if err != nil {
		return nil, err
	}
	buf := make([]float64, len(c.pix)*ChannelsPerPix)
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, err
	}
	for i := range c.pix {
		c.pix[i] = Colour{buf[3*i], buf[3*i+1], buf[3*i+2]}
	}
	return c, nil
}
