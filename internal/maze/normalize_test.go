package maze

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBlockSize(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5, 8} {
		img := mazeImage(t, k, bordered...)
		got, err := BlockSize(img)
		if err != nil {
			t.Fatalf("k=%d: BlockSize failed: %v", k, err)
		}
		if got != k {
			t.Errorf("k=%d: got %d", k, got)
		}
	}
}

func TestBlockSize_EmptyCorner(t *testing.T) {
	// Unbordered maze whose top-left cell is empty.
	img := mazeImage(t, 4,
		"..#",
		"#.#",
		"#..",
	)
	got, err := BlockSize(img)
	if err != nil {
		t.Fatalf("BlockSize failed: %v", err)
	}
	if got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

func TestBlockSize_OffsetBounds(t *testing.T) {
	src := mazeImage(t, 3, bordered...)
	sub := src.SubImage(image.Rect(3, 3, src.Bounds().Max.X, src.Bounds().Max.Y))
	// Starts on the empty (1,1) cell, a 3x3 block.
	got, err := BlockSize(sub)
	if err != nil {
		t.Fatalf("BlockSize failed: %v", err)
	}
	if got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestBlockSize_Malformed(t *testing.T) {
	mono := image.NewRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			mono.Set(x, y, color.White)
		}
	}
	tests := []struct {
		name string
		img  image.Image
	}{
		{"monochrome", mono},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BlockSize(tt.img)
			if !errors.Is(err, ErrMalformedMaze) {
				t.Fatalf("got %v, want ErrMalformedMaze", err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	img := mazeImage(t, 4, bordered...)
	g, err := Normalize(img, 4, Classifier{})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if g.Width() != 9 || g.Height() != 7 {
		t.Fatalf("dimensions: got %dx%d, want 9x7", g.Width(), g.Height())
	}
	if diff := cmp.Diff(bordered, rows(g)); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_BlockSizeOneIsIdentity(t *testing.T) {
	in := []string{
		"#####",
		"#.*v#",
		"#####",
	}
	img := mazeImage(t, 1, in...)
	g, err := Normalize(img, 1, Classifier{})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if diff := cmp.Diff(in, rows(g)); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_PointSample(t *testing.T) {
	img := mazeImage(t, 3, "#.", ".#")
	// Only the top-left pixel of a block counts.
	img.Set(4, 1, color.Black)
	img.Set(1, 1, color.White)

	g, err := Normalize(img, 3, Classifier{})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if diff := cmp.Diff([]string{"#.", ".#"}, rows(g)); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_UnknownKeepsRGB(t *testing.T) {
	img := mazeImage(t, 2, "##", "##")
	img.Set(2, 2, color.RGBA{10, 20, 30, 255})

	g, err := Normalize(img, 2, Classifier{})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	cell := g.CellAt(Point{1, 1})
	if cell.Color != Unknown || cell.RGB != (RGB{10, 20, 30}) {
		t.Errorf("cell: got %+v, want unknown (10,20,30)", cell)
	}
}

func TestNormalize_NotDivisible(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantDim string
		wantLen int
	}{
		{"width", 9, 8, "width", 9},
		{"height", 8, 9, "height", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			_, err := Normalize(img, 2, Classifier{})
			var me *MalformedMazeError
			if !errors.As(err, &me) {
				t.Fatalf("got %v, want *MalformedMazeError", err)
			}
			if me.Dimension != tt.wantDim || me.Size != tt.wantLen || me.BlockSize != 2 {
				t.Errorf("error: got %+v", me)
			}
		})
	}
}

func TestNormalize_BadBlockSize(t *testing.T) {
	img := mazeImage(t, 1, "#")
	if _, err := Normalize(img, 0, Classifier{}); !errors.Is(err, ErrMalformedMaze) {
		t.Errorf("got %v, want ErrMalformedMaze", err)
	}
}

func TestNormalizeImage(t *testing.T) {
	img := mazeImage(t, 6, bordered...)
	g, bs, err := NormalizeImage(img, Classifier{})
	if err != nil {
		t.Fatalf("NormalizeImage failed: %v", err)
	}
	if bs != 6 {
		t.Errorf("block size: got %d, want 6", bs)
	}
	if diff := cmp.Diff(bordered, rows(g)); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}
