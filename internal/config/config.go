package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ironsheep/maze-tools-mcp/internal/maze"
)

// Defaults used when neither a config file nor a flag sets a value.
const (
	DefaultInput    = "maze.bmp"
	DefaultOutput   = "solution.png"
	DefaultLogLevel = "info"
)

// SolveConfig holds the parameters of one solve. Every field is optional;
// nil means "use the default". The same JSON shape is accepted by the
// maze_solve tool arguments.
type SolveConfig struct {
	Input     *string  `json:"input,omitempty"`
	Output    *string  `json:"output,omitempty"`
	Start     *string  `json:"start,omitempty"` // "x,y"
	Stop      *string  `json:"stop,omitempty"`  // "x,y"
	Scale     *int     `json:"scale,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty"`
	Threshold *int     `json:"threshold,omitempty"` // 0-255, 0 disables
	LogLevel  *string  `json:"log_level,omitempty"`
}

// Helper functions to create pointers
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }
func ptrFloat64(v float64) *float64 { return &v }

// Defaults returns a config with every field set to its default. Start and
// Stop stay nil: their defaults depend on the maze size.
func Defaults() *SolveConfig {
	return &SolveConfig{
		Input:     ptrString(DefaultInput),
		Output:    ptrString(DefaultOutput),
		Scale:     ptrInt(maze.DefaultScale),
		Tolerance: ptrFloat64(0),
		Threshold: ptrInt(0),
		LogLevel:  ptrString(DefaultLogLevel),
	}
}

// Load reads a SolveConfig from a JSON file. The file must have a .json
// extension and be under 1MB. Fields omitted from the file stay nil, so the
// result is meant to be merged over Defaults.
func Load(path string) (*SolveConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg SolveConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cleanPath, err)
	}
	return &cfg, nil
}

// Merge returns a copy of c with every non-nil field of over applied.
func (c *SolveConfig) Merge(over *SolveConfig) *SolveConfig {
	out := *c
	if over == nil {
		return &out
	}
	if over.Input != nil {
		out.Input = over.Input
	}
	if over.Output != nil {
		out.Output = over.Output
	}
	if over.Start != nil {
		out.Start = over.Start
	}
	if over.Stop != nil {
		out.Stop = over.Stop
	}
	if over.Scale != nil {
		out.Scale = over.Scale
	}
	if over.Tolerance != nil {
		out.Tolerance = over.Tolerance
	}
	if over.Threshold != nil {
		out.Threshold = over.Threshold
	}
	if over.LogLevel != nil {
		out.LogLevel = over.LogLevel
	}
	return &out
}

// Validate checks the fields that are set.
func (c *SolveConfig) Validate() error {
	if c.Scale != nil && *c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", *c.Scale)
	}
	if c.Tolerance != nil && *c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %v", *c.Tolerance)
	}
	if c.Threshold != nil && (*c.Threshold < 0 || *c.Threshold > 255) {
		return fmt.Errorf("threshold must be in 0-255, got %d", *c.Threshold)
	}
	if c.Start != nil {
		if _, err := ParsePoint(*c.Start); err != nil {
			return fmt.Errorf("start: %w", err)
		}
	}
	if c.Stop != nil {
		if _, err := ParsePoint(*c.Stop); err != nil {
			return fmt.Errorf("stop: %w", err)
		}
	}
	return nil
}

// Options converts the config into solver options. Logger is left for the
// caller to set.
func (c *SolveConfig) Options() (maze.Options, error) {
	if err := c.Validate(); err != nil {
		return maze.Options{}, err
	}
	var opts maze.Options
	if c.Start != nil {
		p, _ := ParsePoint(*c.Start)
		opts.Start = &p
	}
	if c.Stop != nil {
		p, _ := ParsePoint(*c.Stop)
		opts.Stop = &p
	}
	if c.Scale != nil {
		opts.Scale = *c.Scale
	}
	if c.Tolerance != nil {
		opts.Classifier.Tolerance = *c.Tolerance
	}
	return opts, nil
}

// ThresholdLevel returns the binarize level, 0 when unset.
func (c *SolveConfig) ThresholdLevel() uint8 {
	if c.Threshold == nil {
		return 0
	}
	return uint8(*c.Threshold)
}

// ParsePoint parses "x,y" into a maze point. Surrounding spaces are allowed.
func ParsePoint(s string) (maze.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return maze.Point{}, fmt.Errorf("point %q must have the form x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return maze.Point{}, fmt.Errorf("point %q: invalid x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return maze.Point{}, fmt.Errorf("point %q: invalid y: %w", s, err)
	}
	return maze.Point{X: x, Y: y}, nil
}
