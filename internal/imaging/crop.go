package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropCells extracts the cell rectangle (x1,y1)-(x2,y2) from a rendered maze
// whose cells are cellSize pixels wide. The end coordinates are exclusive.
// A zoom above 1 enlarges the crop with nearest-neighbour sampling so cell
// edges stay sharp.
func CropCells(img image.Image, cellSize, x1, y1, x2, y2, zoom int) (*EncodedImage, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("cell size must be at least 1, got %d", cellSize)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	bounds := img.Bounds()
	cols, rows := bounds.Dx()/cellSize, bounds.Dy()/cellSize
	if x1 < 0 || y1 < 0 || x2 > cols || y2 > rows {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside grid %dx%d", x1, y1, x2, y2, cols, rows)
	}

	rect := image.Rect(x1*cellSize, y1*cellSize, x2*cellSize, y2*cellSize).Add(bounds.Min)
	cropped := imaging.Crop(img, rect)

	if zoom > 1 {
		cropped = imaging.Resize(cropped, cropped.Bounds().Dx()*zoom, cropped.Bounds().Dy()*zoom, imaging.NearestNeighbor)
	}
	return EncodePNG(cropped)
}
