package maze

import (
	"fmt"
	"image"
)

// BlockSize infers the side length in pixels of one maze cell.
//
// Starting from 1, the size grows while the top-left (size+1)x(size+1) block
// is the same color as pixel (0,0). The top-left cell must therefore be a
// solid block, which holds for any bordered maze. Growth is capped at the
// smaller image dimension; an image whose corner color fills that whole
// square has no recognizable cells and is reported as malformed.
func BlockSize(img image.Image) (int, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 0, &MalformedMazeError{Reason: "image is empty"}
	}
	limit := min(w, h)

	corner := RGBOf(img.At(b.Min.X, b.Min.Y))
	same := func(x, y int) bool {
		return RGBOf(img.At(b.Min.X+x, b.Min.Y+y)) == corner
	}

	// The (n)x(n) block is uniform when the (n-1)x(n-1) block is and the new
	// bottom row and right column match, so only that ring is checked.
	ringMatches := func(n int) bool {
		edge := n - 1
		for i := 0; i < n; i++ {
			if !same(i, edge) || !same(edge, i) {
				return false
			}
		}
		return true
	}

	bs := 1
	for bs < limit && ringMatches(bs+1) {
		bs++
	}
	if bs == limit {
		return 0, &MalformedMazeError{
			Reason: fmt.Sprintf("corner color %s fills the whole %dx%d corner square", corner.Hex(), limit, limit),
		}
	}
	return bs, nil
}

// Normalize downsamples img into a logical grid using the given block size.
// Each cell takes the color of the top-left pixel of its block; blocks are
// assumed uniform. Both image dimensions must be multiples of blockSize.
func Normalize(img image.Image, blockSize int, cl Classifier) (*Grid, error) {
	if blockSize < 1 {
		return nil, &MalformedMazeError{Reason: fmt.Sprintf("block size must be positive, got %d", blockSize)}
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, &MalformedMazeError{Reason: "image is empty"}
	}
	if w%blockSize != 0 {
		return nil, &MalformedMazeError{Reason: "width not divisible by block size", Dimension: "width", Size: w, BlockSize: blockSize}
	}
	if h%blockSize != 0 {
		return nil, &MalformedMazeError{Reason: "height not divisible by block size", Dimension: "height", Size: h, BlockSize: blockSize}
	}

	g, err := NewGrid(w/blockSize, h/blockSize, Empty)
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			px := img.At(b.Min.X+x*blockSize, b.Min.Y+y*blockSize)
			g.SetCell(Point{x, y}, cl.Classify(RGBOf(px)))
		}
	}
	return g, nil
}

// NormalizeImage infers the block size of img and normalizes it.
func NormalizeImage(img image.Image, cl Classifier) (*Grid, int, error) {
	bs, err := BlockSize(img)
	if err != nil {
		return nil, 0, err
	}
	g, err := Normalize(img, bs, cl)
	if err != nil {
		return nil, 0, err
	}
	return g, bs, nil
}
