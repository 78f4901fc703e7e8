//go:build !withcv
// +build !withcv

// Package display renders disparity maps in an OpenCV window with the jet
// colormap, blocking until a key is pressed.
package display

import (
	"errors"
	"image"
)

// ErrNoDisplay reports a build without OpenCV window support.
var ErrNoDisplay = errors.New("built without OpenCV display support; rebuild with -tags withcv or use the render command")

// Show is unavailable without the withcv build tag.
func Show(dispmap *image.Gray, title string) error {
	return ErrNoDisplay
}
