package server

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/maze-tools-mcp/internal/config"
	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
	"github.com/ironsheep/maze-tools-mcp/internal/maze"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "maze_load", "maze_solve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithFields(logrus.Fields{"tool": params.Name, "error": err}).Debug("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	switch name {
	// Maze pipeline
	case "maze_load":
		return s.handleMazeLoad(args)
	case "maze_solve":
		return s.handleMazeSolve(args)
	case "maze_text":
		return s.handleMazeText(args)

	// Image inspection
	case "maze_sample_color":
		return s.handleMazeSampleColor(args)
	case "maze_palette":
		return s.handleMazePalette(args)

	// Solution inspection
	case "maze_crop_cells":
		return s.handleMazeCropCells(args)
	case "maze_grid_overlay":
		return s.handleMazeGridOverlay(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Maze Pipeline Handlers ===

type mazeLoadArgs struct {
	Path string `json:"path"`
}

type mazeLoadResult struct {
	imaging.ImageInfo
	BlockSize  int `json:"block_size"`
	GridWidth  int `json:"grid_width"`
	GridHeight int `json:"grid_height"`
}

func (s *Server) handleMazeLoad(args json.RawMessage) (interface{}, error) {
	var a mazeLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	g, bs, err := maze.NormalizeImage(img, maze.Classifier{})
	if err != nil {
		return nil, err
	}
	return &mazeLoadResult{
		ImageInfo:  *info,
		BlockSize:  bs,
		GridWidth:  g.Width(),
		GridHeight: g.Height(),
	}, nil
}

// mazeSolveArgs takes the config file shape plus tool-only fields. "input"
// and "output" are accepted as aliases of "path" and "output_path".
type mazeSolveArgs struct {
	Path string `json:"path"`
	config.SolveConfig
	OutputPath   string `json:"output_path,omitempty"`
	IncludeImage bool   `json:"include_image,omitempty"`
}

type mazeSolveResult struct {
	SolveID    string                `json:"solve_id"`
	Found      bool                  `json:"found"`
	BlockSize  int                   `json:"block_size"`
	GridWidth  int                   `json:"grid_width"`
	GridHeight int                   `json:"grid_height"`
	Start      maze.Point            `json:"start"`
	Stop       maze.Point            `json:"stop"`
	PathLength int                   `json:"path_length"`
	Path       []maze.Point          `json:"path,omitempty"`
	Visited    int                   `json:"visited"`
	Counts     map[string]int        `json:"counts"`
	Scale      int                   `json:"scale"`
	SavedTo    string                `json:"saved_to,omitempty"`
	Image      *imaging.EncodedImage `json:"image,omitempty"`
}

func (s *Server) handleMazeSolve(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" && a.Input != nil {
		a.Path = *a.Input
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.OutputPath == "" && a.Output != nil {
		a.OutputPath = *a.Output
	}
	if a.LogLevel != nil {
		return nil, fmt.Errorf("log_level is not accepted by maze_solve; set MAZE_MCP_LOG_LEVEL instead")
	}

	cfg := config.Defaults().Merge(&a.SolveConfig)
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger = s.log

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, err := maze.Solve(imaging.Binarize(img, cfg.ThresholdLevel()), opts)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s.storeSolution(id, &solution{path: a.Path, scale: opts.Scale, result: res})

	counts := make(map[string]int)
	for c, n := range res.Grid.Counts() {
		counts[c.String()] = n
	}
	out := &mazeSolveResult{
		SolveID:    id,
		Found:      res.Found,
		BlockSize:  res.BlockSize,
		GridWidth:  res.Grid.Width(),
		GridHeight: res.Grid.Height(),
		Start:      res.Start,
		Stop:       res.Stop,
		PathLength: len(res.Path),
		Path:       res.Path,
		Visited:    res.Visited,
		Counts:     counts,
		Scale:      opts.Scale,
	}
	if a.OutputPath != "" {
		if err := imaging.Save(res.Image, a.OutputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		out.SavedTo = a.OutputPath
	}
	if a.IncludeImage {
		enc, err := imaging.EncodePNG(res.Image)
		if err != nil {
			return nil, err
		}
		out.Image = enc
	}
	s.log.WithFields(logrus.Fields{"solve_id": id, "path": a.Path, "found": res.Found}).Info("maze solved")
	return out, nil
}

type solveRefArgs struct {
	SolveID string `json:"solve_id"`
}

type mazeTextResult struct {
	SolveID string `json:"solve_id"`
	Text    string `json:"text"`
}

func (s *Server) handleMazeText(args json.RawMessage) (interface{}, error) {
	var a solveRefArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sol, err := s.lookupSolution(a.SolveID)
	if err != nil {
		return nil, err
	}
	return &mazeTextResult{SolveID: a.SolveID, Text: sol.result.Grid.String()}, nil
}

// === Image Inspection Handlers ===

type mazeSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleMazeSampleColor(args json.RawMessage) (interface{}, error) {
	var a mazeSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type mazePaletteArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handleMazePalette(args json.RawMessage) (interface{}, error) {
	var a mazePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 8
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Palette(img, a.Count)
}

// === Solution Inspection Handlers ===

type mazeCropCellsArgs struct {
	SolveID string `json:"solve_id"`
	X1      int    `json:"x1"`
	Y1      int    `json:"y1"`
	X2      int    `json:"x2"`
	Y2      int    `json:"y2"`
	Zoom    int    `json:"zoom"`
}

func (s *Server) handleMazeCropCells(args json.RawMessage) (interface{}, error) {
	var a mazeCropCellsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sol, err := s.lookupSolution(a.SolveID)
	if err != nil {
		return nil, err
	}
	return imaging.CropCells(sol.result.Image, sol.scale, a.X1, a.Y1, a.X2, a.Y2, a.Zoom)
}

type mazeGridOverlayArgs struct {
	SolveID         string `json:"solve_id"`
	ShowCoordinates *bool  `json:"show_coordinates"`
	GridColor       string `json:"grid_color"`
}

func (s *Server) handleMazeGridOverlay(args json.RawMessage) (interface{}, error) {
	var a mazeGridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridColor == "" {
		a.GridColor = "#0000FF"
	}
	showCoords := true
	if a.ShowCoordinates != nil {
		showCoords = *a.ShowCoordinates
	}
	sol, err := s.lookupSolution(a.SolveID)
	if err != nil {
		return nil, err
	}
	return imaging.CellGridOverlay(sol.result.Image, sol.scale, showCoords, a.GridColor)
}
