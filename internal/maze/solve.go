package maze

import (
	"image"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultScale is the upscale factor used when Options.Scale is zero.
const DefaultScale = 5

// Options controls Solve. The zero value solves from cell (1,1) to the
// bottom-right interior cell with exact color matching.
type Options struct {
	// Start and Stop override the default endpoints when non-nil.
	Start *Point
	Stop  *Point
	// Scale is the upscale factor of the rendered result.
	Scale int
	// Classifier decides how pixels map onto cell colors.
	Classifier Classifier
	// Logger receives debug progress. Nil discards it.
	Logger logrus.FieldLogger
}

// Result is the outcome of a full solve.
type Result struct {
	BlockSize int
	Grid      *Grid
	Start     Point
	Stop      Point
	SearchResult
	Image *image.NRGBA
}

// DefaultEndpoints returns the conventional start (1,1) and stop
// (width-2, height-2) of a bordered maze.
func DefaultEndpoints(g *Grid) (start, stop Point) {
	return Point{1, 1}, Point{g.width - 2, g.height - 2}
}

// Solve normalizes img into a grid, searches it and renders the result.
// A maze without a path is not an error; check Result.Found.
func Solve(img image.Image, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	g, bs, err := NormalizeImage(img, opts.Classifier)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"block_size": bs,
		"width":      g.width,
		"height":     g.height,
	}).Debug("normalized maze")

	start, stop := DefaultEndpoints(g)
	if opts.Start != nil {
		start = *opts.Start
	}
	if opts.Stop != nil {
		stop = *opts.Stop
	}

	sr, err := Search(g, start, stop)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"start":   start.String(),
		"stop":    stop.String(),
		"found":   sr.Found,
		"path":    len(sr.Path),
		"visited": sr.Visited,
	}).Debug("search finished")

	out, err := Upscale(g, scale)
	if err != nil {
		return nil, err
	}
	return &Result{
		BlockSize:    bs,
		Grid:         g,
		Start:        start,
		Stop:         stop,
		SearchResult: *sr,
		Image:        out,
	}, nil
}
