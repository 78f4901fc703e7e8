// Package stereo computes dense disparity maps from rectified stereo pairs
// using block matching with normalized cross-correlation.
package stereo

import (
	"fmt"
	"image"
	"runtime"
	"sync"
)

// Default search parameters, matching the CLI defaults.
const (
	DefaultNumDisparities = 64
	DefaultBlockSize      = 21
)

// Params holds the disparity search parameters.
type Params struct {
	// MinDisparity is the smallest disparity searched. May be negative.
	MinDisparity int
	// NumDisparities is the extent of the search range; candidate offsets
	// run over [0, NumDisparities] inclusive.
	NumDisparities int
	// BlockSize is the side of the square matching patch. Must be odd.
	BlockSize int
}

// DefaultParams returns the standard search parameters.
func DefaultParams() Params {
	return Params{NumDisparities: DefaultNumDisparities, BlockSize: DefaultBlockSize}
}

// Validate rejects parameter combinations that cannot describe a search.
// Combinations that are merely too large for a given image are fine: they
// produce an empty computed region, not an error. Compute never calls
// Validate; callers that want the check run it up front.
func (p Params) Validate() error {
	if p.BlockSize <= 0 || p.BlockSize%2 == 0 {
		return fmt.Errorf("block size must be a positive odd number, got %d", p.BlockSize)
	}
	if p.NumDisparities < 1 {
		return fmt.Errorf("number of disparities must be at least 1, got %d", p.NumDisparities)
	}
	if p.MinDisparity < -p.NumDisparities {
		return fmt.Errorf("minimum disparity %d is below -numdisp (%d)", p.MinDisparity, -p.NumDisparities)
	}
	return nil
}

// Compute produces a disparity map with the same geometry as left. For every
// pixel in the computed interior region it slides the BlockSize×BlockSize
// patch centered there across a horizontal search strip of the right image
// and records the strip offset with the highest normalized cross-correlation
// score. Ties go to the smallest offset.
//
// The recorded value is the raw offset within the strip, in
// [0, NumDisparities]: offset k corresponds to an actual disparity of
// MinDisparity + NumDisparities - k, so a pair of identical images peaks at
// NumDisparities, not 0. Cells outside the computed region keep the zero
// fill of the allocation and carry no meaning.
//
// Both images must have equal width and height; that is the caller's
// responsibility. Loop bounds are clamped to the image geometry, so any
// parameter combination yields a well-defined (possibly empty) region.
func Compute(left, right *image.Gray, p Params) *image.Gray {
	w := p.BlockSize / 2
	maxDisp := p.NumDisparities + p.MinDisparity
	width := left.Rect.Dx()
	height := left.Rect.Dy()

	out := image.NewGray(image.Rect(0, 0, width, height))

	yStart := w
	yEnd := height - w - 1
	xStart := maxDisp + w
	if xStart < w {
		xStart = w
	}
	xEnd := width + p.MinDisparity - w - 1
	if xEnd > width-w {
		xEnd = width - w
	}
	if yStart >= yEnd || xStart >= xEnd {
		return out
	}

	// Each output cell is independent, so shard the scan by rows.
	shards := splitRows(yStart, yEnd, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for _, shard := range shards {
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			m := newMatcher(left, right, p)
			for y := y0; y < y1; y++ {
				row := out.Pix[y*out.Stride:]
				for x := xStart; x < xEnd; x++ {
					row[x] = uint8(m.bestOffset(x, y))
				}
			}
		}(shard[0], shard[1])
	}
	wg.Wait()

	return out
}

// splitRows divides [start, end) into at most workers contiguous shards.
func splitRows(start, end, workers int) [][2]int {
	n := end - start
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	shards := make([][2]int, 0, workers)
	step := n / workers
	lo := start
	for i := 0; i < workers; i++ {
		hi := lo + step
		if i == workers-1 {
			hi = end
		}
		shards = append(shards, [2]int{lo, hi})
		lo = hi
	}
	return shards
}
