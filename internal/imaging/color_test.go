package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates a solid in-memory test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createMazeImage draws a bordered 5x5-cell maze with k x k pixel cells:
//
//	#####
//	#...#
//	#.#.#
//	#...#
//	#####
func createMazeImage(k int) *image.RGBA {
	layout := []string{"#####", "#...#", "#.#.#", "#...#", "#####"}
	img := image.NewRGBA(image.Rect(0, 0, 5*k, 5*k))
	for y := 0; y < 5*k; y++ {
		for x := 0; x < 5*k; x++ {
			c := color.White
			if layout[y/k][x/k] == '#' {
				c = color.Black
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if result.Cell != "unknown" {
		t.Errorf("Cell: got %s, want unknown", result.Cell)
	}
}

func TestSampleColor_MazeColors(t *testing.T) {
	tests := []struct {
		name     string
		color    color.RGBA
		wantHex  string
		wantCell string
		wantHSL  HSLColor
	}{
		{"wall", color.RGBA{0, 0, 0, 255}, "#000000", "wall", HSLColor{0, 0, 0}},
		{"empty", color.RGBA{255, 255, 255, 255}, "#FFFFFF", "empty", HSLColor{0, 0, 100}},
		{"correct path", color.RGBA{0, 255, 0, 255}, "#00FF00", "correct_path", HSLColor{120, 100, 50}},
		{"visited", color.RGBA{255, 150, 150, 255}, "#FF9696", "visited", HSLColor{0, 100, 79}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.Cell != tt.wantCell {
				t.Errorf("Cell: got %s, want %s", result.Cell, tt.wantCell)
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.wantHSL)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestPalette(t *testing.T) {
	img := createMazeImage(2)
	// One stray anti-aliasing pixel.
	img.Set(3, 3, color.RGBA{200, 200, 200, 255})

	result, err := Palette(img, 5)
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if result.Distinct != 3 || len(result.Colors) != 3 {
		t.Fatalf("colors: got %d (distinct %d), want 3", len(result.Colors), result.Distinct)
	}
	// 17 wall cells, 8 empty cells, 4 pixels each.
	want := []struct {
		hex    string
		pixels int
		cell   string
	}{
		{"#000000", 68, "wall"},
		{"#FFFFFF", 31, "empty"},
		{"#C8C8C8", 1, "unknown"},
	}
	for i, w := range want {
		got := result.Colors[i]
		if got.Hex != w.hex || got.Pixels != w.pixels || got.Cell != w.cell {
			t.Errorf("entry %d: got %+v, want %+v", i, got, w)
		}
	}
	if result.Colors[0].Percentage != 68 {
		t.Errorf("wall percentage: got %v, want 68", result.Colors[0].Percentage)
	}
}

func TestPalette_Truncates(t *testing.T) {
	result, err := Palette(createMazeImage(1), 1)
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Distinct != 2 {
		t.Errorf("got %d colors (distinct %d), want 1 (2)", len(result.Colors), result.Distinct)
	}
	if _, err := Palette(createMazeImage(1), 0); err == nil {
		t.Error("Palette should reject count 0")
	}
}
