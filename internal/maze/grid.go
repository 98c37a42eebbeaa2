package maze

import (
	"fmt"
	"strings"
)

// Point indexes a grid cell: X is the column, Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid is the logical maze: one Cell per maze block, stored row-major.
// A Grid is mutated in place by the search and must not be shared between
// goroutines while a search runs.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns a width x height grid with every cell set to fill.
func NewGrid(width, height int, fill Color) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("grid dimensions must be at least 1, got %dx%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c := NewCell(fill)
	for i := range g.cells {
		g.cells[i] = c
	}
	return g, nil
}

// ParseGrid builds a grid from rows of text, one byte per cell:
// '#' wall, '.' or ' ' empty, '*' correct path, 'v' visited, anything else
// unknown. All rows must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid must have at least one row and one column")
	}
	g, err := NewGrid(len(rows[0]), len(rows), Empty)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				g.Set(Point{x, y}, Wall)
			case '.', ' ':
				g.Set(Point{x, y}, Empty)
			case '*':
				g.Set(Point{x, y}, CorrectPath)
			case 'v':
				g.Set(Point{x, y}, Visited)
			default:
				g.SetCell(Point{x, y}, Cell{Color: Unknown, RGB: RGB{R: row[x], G: row[x], B: row[x]}})
			}
		}
	}
	return g, nil
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the color at p. p must be inside the grid.
func (g *Grid) At(p Point) Color {
	return g.cells[p.Y*g.width+p.X].Color
}

// CellAt returns the full cell at p. p must be inside the grid.
func (g *Grid) CellAt(p Point) Cell {
	return g.cells[p.Y*g.width+p.X]
}

// Set recolors the cell at p with a recognized color.
func (g *Grid) Set(p Point, c Color) {
	g.cells[p.Y*g.width+p.X] = NewCell(c)
}

// SetCell stores cell at p unchanged.
func (g *Grid) SetCell(p Point, cell Cell) {
	g.cells[p.Y*g.width+p.X] = cell
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Counts tallies the cells of each color.
func (g *Grid) Counts() map[Color]int {
	counts := make(map[Color]int)
	for _, c := range g.cells {
		counts[c.Color]++
	}
	return counts
}

// Points returns every point holding color c, in row-major order.
func (g *Grid) Points(c Color) []Point {
	var pts []Point
	for i, cell := range g.cells {
		if cell.Color == c {
			pts = append(pts, Point{X: i % g.width, Y: i / g.width})
		}
	}
	return pts
}

// Text glyphs, two runes per cell so the output keeps a square aspect.
var glyphs = map[Color]string{
	Wall:        "██",
	Empty:       "  ",
	CorrectPath: "()",
	Visited:     "..",
	Unknown:     "??",
}

// String renders the grid as text, one line per row.
func (g *Grid) String() string {
	size := g.height
	for _, c := range g.cells {
		size += len(glyphs[c.Color])
	}
	var sb strings.Builder
	sb.Grow(size)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteString(glyphs[g.At(Point{x, y})])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
