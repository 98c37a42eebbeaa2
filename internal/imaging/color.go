package imaging

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/maze-tools-mcp/internal/maze"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes one pixel color and what the maze reader makes of it.
type ColorResult struct {
	Hex  string   `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  maze.RGB `json:"rgb"`  // RGB components
	HSL  HSLColor `json:"hsl"`  // HSL representation
	Cell string   `json:"cell"` // Maze color name under exact matching
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based from the top-left of the image bounds. The result
// includes the maze color the pixel classifies as with exact matching, which
// helps diagnose "unknown" cells in images that are not pure black and white.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	rgb := maze.RGBOf(img.At(px, py))
	return &ColorResult{
		Hex:  rgb.Hex(),
		RGB:  rgb,
		HSL:  toHSL(rgb),
		Cell: maze.Classifier{}.Classify(rgb).Color.String(),
	}, nil
}

// PaletteEntry is one distinct color of an image and its share of pixels.
type PaletteEntry struct {
	Hex        string   `json:"hex"`
	RGB        maze.RGB `json:"rgb"`
	Pixels     int      `json:"pixels"`
	Percentage float64  `json:"percentage"` // 0-100
	Cell       string   `json:"cell"`
}

// PaletteResult lists colors by frequency, most common first.
type PaletteResult struct {
	Colors   []PaletteEntry `json:"colors"`
	Distinct int            `json:"distinct"`
}

// Palette counts the exact colors of img and returns the count most frequent.
//
// Unlike a quantized dominant-color scan, colors are not grouped: a clean
// maze has at most four entries, and any extra entries point at
// anti-aliasing or compression noise. Ties are ordered by hex value.
func Palette(img image.Image, count int) (*PaletteResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return &PaletteResult{}, nil
	}

	counts := make(map[maze.RGB]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			counts[maze.RGBOf(img.At(x, y))]++
		}
	}

	entries := make([]PaletteEntry, 0, len(counts))
	for rgb, n := range counts {
		entries = append(entries, PaletteEntry{
			Hex:        rgb.Hex(),
			RGB:        rgb,
			Pixels:     n,
			Percentage: math.Round(float64(n)/float64(total)*10000) / 100,
			Cell:       maze.Classifier{}.Classify(rgb).Color.String(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Pixels != entries[j].Pixels {
			return entries[i].Pixels > entries[j].Pixels
		}
		return entries[i].Hex < entries[j].Hex
	})

	distinct := len(entries)
	if len(entries) > count {
		entries = entries[:count]
	}
	return &PaletteResult{Colors: entries, Distinct: distinct}, nil
}

func toHSL(rgb maze.RGB) HSLColor {
	c, _ := colorful.MakeColor(rgb.NRGBA())
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
