package pipeline

import (
	"fmt"
	"image"

	"github.com/davesmith10/stereodepth/internal/imgio"
	"github.com/davesmith10/stereodepth/internal/stereo"
)

// Options controls a full disparity run.
type Options struct {
	LeftPath  string
	RightPath string
	Params    stereo.Params
}

// Result holds the output of a pipeline run.
type Result struct {
	Map    *image.Gray // raw disparity offsets, same geometry as the inputs
	Width  int
	Height int
}

// Run executes the full pipeline: validate parameters, load both images,
// check geometry, compute the disparity map.
func Run(opts Options) (*Result, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, fmt.Errorf("search parameters: %w", err)
	}

	left, err := imgio.LoadGray(opts.LeftPath)
	if err != nil {
		return nil, fmt.Errorf("left image: %w", err)
	}
	right, err := imgio.LoadGray(opts.RightPath)
	if err != nil {
		return nil, fmt.Errorf("right image: %w", err)
	}

	lw, lh := left.Rect.Dx(), left.Rect.Dy()
	rw, rh := right.Rect.Dx(), right.Rect.Dy()
	if lw != rw || lh != rh {
		return nil, fmt.Errorf("image geometry mismatch: left is %dx%d, right is %dx%d", lw, lh, rw, rh)
	}

	dispmap := stereo.Compute(left, right, opts.Params)

	return &Result{Map: dispmap, Width: lw, Height: lh}, nil
}
