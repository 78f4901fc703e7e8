//go:build withcv
// +build withcv

// Package display renders disparity maps in an OpenCV window with the jet
// colormap, blocking until a key is pressed.
package display

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Show min-max normalizes dispmap, applies the jet colormap and displays
// the result in a window titled title. Returns after a key press.
func Show(dispmap *image.Gray, title string) error {
	rows := dispmap.Rect.Dy()
	cols := dispmap.Rect.Dx()

	mat, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC1, dispmap.Pix)
	if err != nil {
		return fmt.Errorf("wrapping disparity map: %w", err)
	}
	defer mat.Close()

	scaled := gocv.NewMat()
	defer scaled.Close()
	gocv.Normalize(mat, &scaled, 0, 255, gocv.NormMinMax)

	colored := gocv.NewMat()
	defer colored.Close()
	gocv.ApplyColorMap(scaled, &colored, gocv.ColormapJet)

	win := gocv.NewWindow(title)
	defer win.Close()
	win.IMShow(colored)
	win.WaitKey(0)

	return nil
}
