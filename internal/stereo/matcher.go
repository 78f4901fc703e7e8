package stereo

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
)

// matcher holds the per-worker scratch buffers for one disparity scan.
// The feature patch and the search strip are lifted into float64 once per
// output pixel; every candidate window is then scored with dot-product
// reductions over the shared strip.
type matcher struct {
	left, right *image.Gray
	p           Params
	w           int // half block
	maxDisp     int

	feat   []float64 // BlockSize*BlockSize, row-major
	strip  []float64 // BlockSize*stripW, row-major
	stripW int
}

func newMatcher(left, right *image.Gray, p Params) *matcher {
	stripW := p.BlockSize + p.NumDisparities
	return &matcher{
		left:    left,
		right:   right,
		p:       p,
		w:       p.BlockSize / 2,
		maxDisp: p.NumDisparities + p.MinDisparity,
		feat:    make([]float64, p.BlockSize*p.BlockSize),
		strip:   make([]float64, p.BlockSize*stripW),
		stripW:  stripW,
	}
}

// bestOffset returns the strip offset in [0, NumDisparities] whose window
// has the highest normalized cross-correlation with the feature patch
// centered at (x, y). Offsets are scanned left to right and only a strictly
// better score displaces the incumbent, so ties resolve to the smallest
// offset.
func (m *matcher) bestOffset(x, y int) int {
	bs := m.p.BlockSize

	for r := 0; r < bs; r++ {
		src := m.left.Pix[(y-m.w+r)*m.left.Stride+(x-m.w):]
		dst := m.feat[r*bs : (r+1)*bs]
		for c := range dst {
			dst[c] = float64(src[c])
		}
	}
	featSq := floats.Dot(m.feat, m.feat)

	stripX := x - m.w - m.maxDisp
	for r := 0; r < bs; r++ {
		src := m.right.Pix[(y-m.w+r)*m.right.Stride+stripX:]
		dst := m.strip[r*m.stripW : (r+1)*m.stripW]
		for c := range dst {
			dst[c] = float64(src[c])
		}
	}

	best := 0
	bestScore := math.Inf(-1)
	for k := 0; k <= m.p.NumDisparities; k++ {
		var dot, winSq float64
		for r := 0; r < bs; r++ {
			win := m.strip[r*m.stripW+k : r*m.stripW+k+bs]
			dot += floats.Dot(m.feat[r*bs:(r+1)*bs], win)
			winSq += floats.Dot(win, win)
		}
		// A flat zero window has no defined correlation; score it 0 so
		// the arg-max stays total.
		var score float64
		if denom := math.Sqrt(winSq * featSq); denom > 0 {
			score = dot / denom
		}
		if score > bestScore {
			bestScore = score
			best = k
		}
	}
	return best
}
