package maze

import (
	"image"
	"testing"
)

// mustParse builds a grid from text rows or fails the test.
func mustParse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return g
}

// mazeImage draws the text rows as an image with k x k pixel cells.
func mazeImage(t *testing.T, k int, rows ...string) *image.RGBA {
	t.Helper()
	g := mustParse(t, rows...)
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*k, g.Height()*k))
	for y := 0; y < g.Height()*k; y++ {
		for x := 0; x < g.Width()*k; x++ {
			img.Set(x, y, g.CellAt(Point{x / k, y / k}).RGB.NRGBA())
		}
	}
	return img
}

// rows renders g back to the ParseGrid alphabet.
func rows(g *Grid) []string {
	out := make([]string, g.Height())
	for y := range out {
		b := make([]byte, g.Width())
		for x := range b {
			switch g.At(Point{x, y}) {
			case Wall:
				b[x] = '#'
			case Empty:
				b[x] = '.'
			case CorrectPath:
				b[x] = '*'
			case Visited:
				b[x] = 'v'
			default:
				b[x] = '?'
			}
		}
		out[y] = string(b)
	}
	return out
}

var bordered = []string{
	"#########",
	"#...#...#",
	"#.#.#.#.#",
	"#.#...#.#",
	"#.#####.#",
	"#.......#",
	"#########",
}
