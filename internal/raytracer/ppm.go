package raytracer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// toByte maps a channel in [0,1] to 0..PPMMaxValue, rounding and clamping.
func toByte(v Real) int {
	return Clamp(0, PPMMaxValue, int(math.Round(v*PPMMaxValue)))
}

// WritePPM writes the canvas as plain-text PPM (P3). No line exceeds
// PPMMaxLineLen characters, each canvas row ends a line, and the output ends
// with a single newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", PPMMagic, c.w, c.h, PPMMaxValue); err != nil {
		return err
	}
	line := make([]byte, 0, PPMMaxLineLen+1)
	for y := 0; y < c.h; y++ {
		line = line[:0]
		for x := 0; x < c.w; x++ {
			p := c.pix[y*c.w+x]
			for _, v := range [ChannelsPerPix]Real{p.R, p.G, p.B} {
				tok := strconv.Itoa(toByte(v))
				if len(line) > 0 && len(line)+1+len(tok) > PPMMaxLineLen {
					line = append(line, '\n')
					if _, err := bw.Write(line); err != nil {
						return err
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, tok...)
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PPM returns the WritePPM output as a string.
func (c *Canvas) PPM() string {
	var sb strings.Builder
	_ = c.WritePPM(&sb) // strings.Builder never fails
	return sb.String()
}
