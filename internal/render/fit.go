package render

import (
	"image"
	"math"
)

// Fit centres a w×h raster in an fbW×fbH framebuffer at the largest scale
// that fits. Scales of 1 or more are rounded down to whole pixels so
// nearest-neighbour sampling stays even.
func Fit(fbW, fbH, w, h int) image.Rectangle {
	if fbW <= 0 || fbH <= 0 || w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	scale := math.Min(float64(fbW)/float64(w), float64(fbH)/float64(h))
	if scale >= 1 {
		scale = math.Floor(scale)
	}
	vw := int(float64(w) * scale)
	vh := int(float64(h) * scale)
	x := (fbW - vw) / 2
	y := (fbH - vh) / 2
	return image.Rect(x, y, x+vw, y+vh)
}
