package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
	"github.com/ironsheep/maze-tools-mcp/internal/maze"
)

// writeBMP draws rows ('#' wall, anything else empty) with k x k pixel cells.
func writeBMP(t *testing.T, dir string, k int, rows ...string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0])*k, len(rows)*k))
	for y := 0; y < len(rows)*k; y++ {
		for x := 0; x < len(rows[0])*k; x++ {
			var c color.Color = color.White
			if rows[y/k][x/k] == '#' {
				c = color.Black
			}
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, "maze.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatalf("failed to encode bmp: %v", err)
	}
	return path
}

var solvable = []string{
	"#######",
	"#.....#",
	"#####.#",
	"#.....#",
	"#######",
}

var blocked = []string{
	"#######",
	"#..#..#",
	"#######",
}

func TestRun_Solved(t *testing.T) {
	dir := t.TempDir()
	in := writeBMP(t, dir, 3, solvable...)
	out := filepath.Join(dir, "solved.png")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-in", in, "-out", out, "-scale", "2", "-print"}, &stdout, &stderr)
	if code != exitFound {
		t.Fatalf("exit code: got %d, want %d\n%s", code, exitFound, stderr.String())
	}

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("solution not readable: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 14 || b.Dy() != 10 {
		t.Errorf("solution size: got %dx%d, want 14x10", b.Dx(), b.Dy())
	}
	// The stop cell (5,3) is on the path
	if got := maze.RGBOf(img.At(5*2, 3*2)); got != maze.CorrectPathRGB {
		t.Errorf("stop pixel: got %v, want %v", got, maze.CorrectPathRGB)
	}

	if lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n"); len(lines) != 5 {
		t.Errorf("printed grid: got %d lines, want 5:\n%s", len(lines), stdout.String())
	}
	if !strings.Contains(stderr.String(), "path found") {
		t.Errorf("log should report the path:\n%s", stderr.String())
	}
}

func TestRun_NoPath(t *testing.T) {
	dir := t.TempDir()
	in := writeBMP(t, dir, 2, blocked...)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-in", in, "-out", filepath.Join(dir, "out.png"), "-stop", "5,1"}, &stdout, &stderr)
	if code != exitNoPath {
		t.Errorf("exit code: got %d, want %d\n%s", code, exitNoPath, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); err != nil {
		t.Errorf("image should be written even without a path: %v", err)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeBMP(t, dir, 2, solvable...)
	out := filepath.Join(dir, "from-config.png")
	cfg := filepath.Join(dir, "solve.json")
	body := `{"input": "` + filepath.ToSlash(in) + `", "output": "` + filepath.ToSlash(out) + `", "scale": 4, "stop": "1,3"}`
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	var stdout, stderr bytes.Buffer

	// -scale on the command line wins over the file
	code := run([]string{"-config", cfg, "-scale", "1"}, &stdout, &stderr)
	if code != exitFound {
		t.Fatalf("exit code: got %d, want %d\n%s", code, exitFound, stderr.String())
	}
	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("solution not readable: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Errorf("solution size: got %dx%d, want 7x5", b.Dx(), b.Dy())
	}
	if got := maze.RGBOf(img.At(1, 3)); got != maze.CorrectPathRGB {
		t.Errorf("configured stop (1,3) should be on the path, got %v", got)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writeBMP(t, dir, 2, solvable...)

	tests := []struct {
		name    string
		args    []string
		wantLog string
	}{
		{"missing input", []string{"-in", filepath.Join(dir, "nope.bmp")}, "failed to read maze"},
		{"bad start", []string{"-in", in, "-start", "1"}, "invalid options"},
		{"out of bounds", []string{"-in", in, "-stop", "9,9"}, "outside grid"},
		{"bad scale", []string{"-in", in, "-scale", "0"}, "scale"},
		{"bad output", []string{"-in", in, "-out", filepath.Join(dir, "out.txt")}, "failed to write solution"},
		{"bad log level", []string{"-in", in, "-log-level", "loud"}, "invalid log level"},
		{"unknown flag", []string{"-frobnicate"}, "frobnicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != exitError {
				t.Errorf("exit code: got %d, want %d", code, exitError)
			}
			if !strings.Contains(stderr.String(), tt.wantLog) {
				t.Errorf("stderr should mention %q:\n%s", tt.wantLog, stderr.String())
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != exitFound {
		t.Errorf("exit code: got %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "maze-solve ") {
		t.Errorf("version output: %q", stdout.String())
	}
}
