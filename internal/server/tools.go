package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the maze image file",
	}
}

func solveIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Id returned by maze_solve",
	}
}

func integerProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Maze Pipeline
		{
			Name:        "maze_load",
			Description: "Load a maze image and report its dimensions, format, inferred block size and the size of the normalized grid in cells.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_solve",
			Description: "Solve a maze image. Walls are black, open cells white. Returns whether a path exists, the path in cell coordinates and a solve_id for the other maze_* tools. The solved image marks the path in green and explored dead ends in pink.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"start": map[string]interface{}{
						"type":        "string",
						"description": "Start cell as \"x,y\". Default \"1,1\"",
					},
					"stop": map[string]interface{}{
						"type":        "string",
						"description": "Stop cell as \"x,y\". Default is the bottom-right interior cell",
					},
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Output pixels per cell. Default 5",
						"default":     5,
					},
					"tolerance": map[string]interface{}{
						"type":        "number",
						"description": "CIE Lab distance within which a pixel snaps to a maze color. Default 0 (exact match)",
						"default":     0,
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Binarize the image at this luminance (1-255) before reading it. Default 0 (off)",
						"default":     0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write the solved image to; format follows the extension",
					},
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the solved image as base64 PNG. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_text",
			Description: "Render a solved maze grid as text: walls as blocks, the path as (), explored cells as dots.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"solve_id": solveIDProperty(),
				},
				"required": []string{"solve_id"},
			},
		},

		// Image Inspection
		{
			Name:        "maze_sample_color",
			Description: "Get the exact color at a pixel as hex, RGB and HSL, and which maze color it reads as.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x":    integerProperty("X coordinate (0-based, from left)"),
					"y":    integerProperty("Y coordinate (0-based, from top)"),
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "maze_palette",
			Description: "List the most frequent exact colors in a maze image with pixel counts. Useful for spotting anti-aliasing or stray shades that the solver would not recognize.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 8",
						"default":     8,
					},
				},
				"required": []string{"path"},
			},
		},

		// Solution Inspection
		{
			Name:        "maze_crop_cells",
			Description: "Crop a rectangle of cells out of a solved maze image and return it as base64 PNG. End coordinates are exclusive.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"solve_id": solveIDProperty(),
					"x1":       integerProperty("Left cell column (0-based)"),
					"y1":       integerProperty("Top cell row (0-based)"),
					"x2":       integerProperty("Right cell column (exclusive)"),
					"y2":       integerProperty("Bottom cell row (exclusive)"),
					"zoom": map[string]interface{}{
						"type":        "integer",
						"description": "Optional nearest-neighbour zoom factor. Default 1",
						"default":     1,
					},
				},
				"required": []string{"solve_id", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "maze_grid_overlay",
			Description: "Draw cell boundaries over a solved maze image, optionally labelled with cell coordinates, and return it as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"solve_id": solveIDProperty(),
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label grid lines with cell coordinates. Default true",
						"default":     true,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex (#RRGGBB or #RRGGBBAA). Default #0000FF",
						"default":     "#0000FF",
					},
				},
				"required": []string{"solve_id"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
