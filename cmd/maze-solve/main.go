// Command maze-solve reads a maze image, finds a path from start to stop and
// writes the solved maze, scaled up, to an image file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/maze-tools-mcp/internal/config"
	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
	"github.com/ironsheep/maze-tools-mcp/internal/maze"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes.
const (
	exitFound  = 0
	exitError  = 1
	exitNoPath = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)

	fs := flag.NewFlagSet("maze-solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in        = fs.String("in", config.DefaultInput, "input maze image")
		out       = fs.String("out", config.DefaultOutput, "output image, format from extension")
		start     = fs.String("start", "", "start cell as x,y (default 1,1)")
		stop      = fs.String("stop", "", "stop cell as x,y (default bottom-right interior cell)")
		scale     = fs.Int("scale", maze.DefaultScale, "output pixels per cell")
		tolerance = fs.Float64("tolerance", 0, "Lab distance within which a pixel snaps to a maze color (0 = exact)")
		threshold = fs.Int("threshold", 0, "binarize at this luminance before reading (0 = off)")
		cfgPath   = fs.String("config", "", "JSON config file; explicit flags override it")
		printGrid = fs.Bool("print", false, "print the solved grid as text")
		logLevel  = fs.String("log-level", config.DefaultLogLevel, "log level")
		version   = fs.Bool("version", false, "print version information")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: maze-solve [flags]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Exit status is 0 when a path is found, 2 when there is none and 1 on error.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		return exitError
	}
	if *version {
		fmt.Fprintf(stdout, "maze-solve %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return exitFound
	}

	cfg := config.Defaults()
	if *cfgPath != "" {
		fileCfg, err := config.Load(*cfgPath)
		if err != nil {
			log.WithError(err).Error("failed to load config")
			return exitError
		}
		cfg = cfg.Merge(fileCfg)
	}

	// Only flags given on the command line override the config file.
	flagCfg := &config.SolveConfig{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			flagCfg.Input = in
		case "out":
			flagCfg.Output = out
		case "start":
			flagCfg.Start = start
		case "stop":
			flagCfg.Stop = stop
		case "scale":
			flagCfg.Scale = scale
		case "tolerance":
			flagCfg.Tolerance = tolerance
		case "threshold":
			flagCfg.Threshold = threshold
		case "log-level":
			flagCfg.LogLevel = logLevel
		}
	})
	cfg = cfg.Merge(flagCfg)

	level, err := logrus.ParseLevel(*cfg.LogLevel)
	if err != nil {
		log.WithError(err).Error("invalid log level")
		return exitError
	}
	log.SetLevel(level)

	opts, err := cfg.Options()
	if err != nil {
		log.WithError(err).Error("invalid options")
		return exitError
	}
	opts.Logger = log

	img, err := imaging.Open(*cfg.Input)
	if err != nil {
		log.WithError(err).Error("failed to read maze")
		return exitError
	}
	res, err := maze.Solve(imaging.Binarize(img, cfg.ThresholdLevel()), opts)
	if err != nil {
		log.WithError(err).WithField("input", *cfg.Input).Error("failed to solve maze")
		return exitError
	}
	if err := imaging.Save(res.Image, *cfg.Output); err != nil {
		log.WithError(err).Error("failed to write solution")
		return exitError
	}

	if *printGrid {
		fmt.Fprint(stdout, res.Grid.String())
	}
	fields := logrus.Fields{
		"input":      *cfg.Input,
		"output":     *cfg.Output,
		"block_size": res.BlockSize,
		"start":      res.Start.String(),
		"stop":       res.Stop.String(),
	}
	if !res.Found {
		log.WithFields(fields).Warn("no path found")
		return exitNoPath
	}
	fields["path_length"] = len(res.Path)
	log.WithFields(fields).Info("path found")
	return exitFound
}
