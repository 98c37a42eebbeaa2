package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// Binarize maps every pixel to pure black or white by luminance: values below
// level become black (wall), the rest white (empty). It cleans up
// anti-aliased or lossy maze images before normalization. A level of 0
// returns img unchanged.
func Binarize(img image.Image, level uint8) image.Image {
	if level == 0 {
		return img
	}
	return segment.Threshold(img, level)
}
