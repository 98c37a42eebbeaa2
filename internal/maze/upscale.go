package maze

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Upscale renders g as an image where every cell is a solid scale x scale
// block of its color. Unknown cells keep the color they were sampled with.
func Upscale(g *Grid, scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("scale must be at least 1, got %d", scale)
	}
	dst := imaging.New(g.width*scale, g.height*scale, WallRGB.NRGBA())

	for y := 0; y < g.height; y++ {
		// Build the first pixel row of this cell row, then copy it down.
		rowStart := dst.PixOffset(0, y*scale)
		row := dst.Pix[rowStart : rowStart+g.width*scale*4]
		for x := 0; x < g.width; x++ {
			rgb := g.CellAt(Point{x, y}).RGB
			for i := x * scale * 4; i < (x+1)*scale*4; i += 4 {
				row[i] = rgb.R
				row[i+1] = rgb.G
				row[i+2] = rgb.B
				row[i+3] = 255
			}
		}
		for dy := 1; dy < scale; dy++ {
			off := dst.PixOffset(0, y*scale+dy)
			copy(dst.Pix[off:off+len(row)], row)
		}
	}
	return dst, nil
}
