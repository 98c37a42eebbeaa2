package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// GridOverlayResult contains the rendered maze with cell boundaries drawn in.
type GridOverlayResult struct {
	EncodedImage
	CellSize   int `json:"cell_size"`
	Columns    int `json:"columns"`
	Rows       int `json:"rows"`
	LabelEvery int `json:"label_every,omitempty"`
}

// Default line color for CellGridOverlay: opaque blue, distinct from every
// maze color.
var defaultGridColor = color.NRGBA{0, 0, 255, 255}

// CellGridOverlay draws the boundaries of a maze's cells onto a copy of img.
// With showCoordinates, cells are labelled "x,y" in grid coordinates; labels
// are spaced out so they do not overlap on small cells. An unparsable
// gridColorHex falls back to blue.
func CellGridOverlay(img image.Image, cellSize int, showCoordinates bool, gridColorHex string) (*GridOverlayResult, error) {
	if cellSize < 2 {
		return nil, fmt.Errorf("cell size must be at least 2 to draw a grid, got %d", cellSize)
	}
	gridColor, err := parseHexColor(gridColorHex)
	if err != nil {
		gridColor = defaultGridColor
	}

	result := imaging.Clone(img)
	width, height := result.Bounds().Dx(), result.Bounds().Dy()
	cols, rows := width/cellSize, height/cellSize

	for x := 0; x < width; x += cellSize {
		for y := 0; y < height; y++ {
			result.SetNRGBA(x, y, gridColor)
		}
	}
	for y := 0; y < height; y += cellSize {
		for x := 0; x < width; x++ {
			result.SetNRGBA(x, y, gridColor)
		}
	}

	labelEvery := 0
	if showCoordinates {
		// Widest label is "cols-1,rows-1".
		widest := len(strconv.Itoa(cols-1)+","+strconv.Itoa(rows-1)) * glyphAdvance
		labelEvery = 1
		for labelEvery*cellSize < widest+2 {
			labelEvery++
		}
		fg := color.NRGBA{255, 255, 255, 255}
		bg := color.NRGBA{0, 0, 0, 180}
		for cy := 0; cy < rows; cy += labelEvery {
			for cx := 0; cx < cols; cx += labelEvery {
				drawLabel(result, cx*cellSize+2, cy*cellSize+2, fmt.Sprintf("%d,%d", cx, cy), fg, bg)
			}
		}
	}

	encoded, err := EncodePNG(result)
	if err != nil {
		return nil, err
	}
	return &GridOverlayResult{
		EncodedImage: *encoded,
		CellSize:     cellSize,
		Columns:      cols,
		Rows:         rows,
		LabelEvery:   labelEvery,
	}, nil
}

// parseHexColor parses "#RRGGBB" (go-colorful) or "#RRGGBBAA".
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 9 && hex[0] == '#' {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, err
		}
		c, err := parseHexColor(hex[:7])
		c.A = uint8(a)
		return c, err
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

const glyphAdvance = 4

// drawLabel draws text in a 3x5 pixel font with a background box.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	inside := func(px, py int) bool {
		return px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y
	}

	labelWidth := len(text) * glyphAdvance
	for dy := -1; dy < 6; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			if px, py := x+dx, y+dy; inside(px, py) {
				img.Set(px, py, blend(img.NRGBAAt(px, py), bg))
			}
		}
	}

	cx := x
	for _, ch := range text {
		for row, line := range glyphs[ch] {
			for col, pixel := range line {
				if px, py := cx+col, y+row; pixel == '1' && inside(px, py) {
					img.SetNRGBA(px, py, fg)
				}
			}
		}
		cx += glyphAdvance
	}
}

// blend composites src over an opaque dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
