package maze

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is the semantic state of a maze cell. It doubles as the rendering
// color and as the search state.
type Color uint8

const (
	// Unknown marks a pixel that matched none of the recognized colors.
	// Unknown cells are never traversable.
	Unknown Color = iota
	Wall
	Empty
	CorrectPath
	Visited
)

func (c Color) String() string {
	switch c {
	case Unknown:
		return "unknown"
	case Wall:
		return "wall"
	case Empty:
		return "empty"
	case CorrectPath:
		return "correct_path"
	case Visited:
		return "visited"
	}
	return fmt.Sprintf("invalid color: %d", uint8(c))
}

// RGB is an 8-bit color triple. Alpha is not part of a maze.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Reference values of the recognized colors.
var (
	WallRGB        = RGB{0, 0, 0}
	EmptyRGB       = RGB{255, 255, 255}
	CorrectPathRGB = RGB{0, 255, 0}
	VisitedRGB     = RGB{255, 150, 150}
)

// RGB returns the reference triple for c. Unknown has no reference value and
// returns ok == false.
func (c Color) RGB() (rgb RGB, ok bool) {
	switch c {
	case Wall:
		return WallRGB, true
	case Empty:
		return EmptyRGB, true
	case CorrectPath:
		return CorrectPathRGB, true
	case Visited:
		return VisitedRGB, true
	}
	return RGB{}, false
}

// RGBOf converts any color.Color to an 8-bit triple, dropping alpha.
func RGBOf(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// NRGBA returns the opaque color.NRGBA for this triple.
func (rgb RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Hex formats the triple as "#RRGGBB".
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// Cell is one entry of a logical grid. RGB always holds the color the cell
// renders as; for recognized colors it equals the reference value.
type Cell struct {
	Color Color
	RGB   RGB
}

// NewCell returns a cell of a recognized color.
func NewCell(c Color) Cell {
	rgb, _ := c.RGB()
	return Cell{Color: c, RGB: rgb}
}

// Classifier maps pixel colors onto the recognized colors.
//
// With a zero Tolerance only exact matches are recognized. A positive
// Tolerance accepts the nearest recognized color whose CIE L*a*b* distance
// (go-colorful DistanceLab, roughly 0..1) is at most Tolerance. Pixels outside
// the tolerance become Unknown.
type Classifier struct {
	Tolerance float64
}

var recognized = [...]Color{Wall, Empty, CorrectPath, Visited}

// Classify returns the cell for a pixel triple.
func (cl Classifier) Classify(rgb RGB) Cell {
	for _, c := range recognized {
		if ref, _ := c.RGB(); ref == rgb {
			return Cell{Color: c, RGB: rgb}
		}
	}
	if cl.Tolerance <= 0 {
		return Cell{Color: Unknown, RGB: rgb}
	}

	px, _ := colorful.MakeColor(rgb.NRGBA())
	best, bestDist := Unknown, cl.Tolerance
	for _, c := range recognized {
		ref, _ := c.RGB()
		refColor, _ := colorful.MakeColor(ref.NRGBA())
		if d := px.DistanceLab(refColor); d <= bestDist {
			best, bestDist = c, d
		}
	}
	if best == Unknown {
		return Cell{Color: Unknown, RGB: rgb}
	}
	return NewCell(best)
}
