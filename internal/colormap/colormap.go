// Package colormap renders single-channel maps with a jet-style
// pseudocolor palette for visualization.
package colormap

import (
	"image"
	"image/color"
)

// Normalize rescales src min-max into the full [0, 255] range. A constant
// image maps to all zeros.
func Normalize(src *image.Gray) *image.Gray {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}

	lo, hi := src.Pix[0], src.Pix[0]
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi == lo {
		return dst
	}

	span := int(hi) - int(lo)
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range srcRow {
			dstRow[x] = uint8((int(v-lo)*255 + span/2) / span)
		}
	}
	return dst
}

// Jet maps an intensity to the jet palette: dark blue at 0 through cyan,
// green and yellow to dark red at 255.
func Jet(v uint8) color.RGBA {
	t := float64(v) / 255
	r := channel(1.5 - abs(4*t-3))
	g := channel(1.5 - abs(4*t-2))
	b := channel(1.5 - abs(4*t-1))
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Apply normalizes nothing; it maps each cell of src through the jet
// palette. Run Normalize first to use the full palette range.
func Apply(src *image.Gray) *image.RGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w]
		for x, v := range srcRow {
			c := Jet(v)
			i := y*dst.Stride + x*4
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = c.A
		}
	}
	return dst
}

func channel(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
