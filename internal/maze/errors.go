package maze

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrMalformedMaze = errors.New("malformed maze")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
)

// MalformedMazeError reports an image that cannot be read as a maze of
// uniform square cells.
type MalformedMazeError struct {
	Reason    string
	Dimension string // "width", "height" or empty
	Size      int    // offending dimension in pixels
	BlockSize int
}

func (e *MalformedMazeError) Error() string {
	if e.Dimension != "" {
		return fmt.Sprintf("malformed maze: %s (%s %d, block size %d)", e.Reason, e.Dimension, e.Size, e.BlockSize)
	}
	return "malformed maze: " + e.Reason
}

func (e *MalformedMazeError) Unwrap() error { return ErrMalformedMaze }

// OutOfBoundsError reports a start or stop coordinate outside the grid.
type OutOfBoundsError struct {
	Which  string // "start" or "stop"
	Point  Point
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s coordinate (%d,%d) outside grid %dx%d", e.Which, e.Point.X, e.Point.Y, e.Width, e.Height)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
