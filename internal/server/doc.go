// Package server implements the MCP (Model Context Protocol) server for the
// maze tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Maze pipeline:
//   - maze_load: Image metadata, inferred block size and grid size
//   - maze_solve: Solve a maze image and keep the result under a solve_id
//   - maze_text: Text rendering of a solved grid
//
// Image inspection:
//   - maze_sample_color: Color at a pixel and how it classifies
//   - maze_palette: Exact colors present in an image
//
// Solution inspection:
//   - maze_crop_cells: Crop a rectangle of cells from a solved image
//   - maze_grid_overlay: Draw cell boundaries over a solved image
//
// # State
//
// Loaded images are cached by path for the lifetime of the process. Solved
// mazes are kept in memory under a random UUID so the inspection tools can
// refer back to them; nothing is evicted.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Log output goes to the logger passed to New, never to stdout.
package server
