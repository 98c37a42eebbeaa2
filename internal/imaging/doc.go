// Package imaging provides the image side of the maze tools: loading and
// saving maze images, cleaning them up before they are read as a grid, and
// inspecting rendered solutions.
//
// # File Formats
//
// Decoding and encoding go through github.com/disintegration/imaging, so
// PNG, JPEG, GIF, TIFF and BMP are supported. Output format follows the file
// extension.
//
// # Coordinate System
//
// Pixel coordinates are 0-based from the top-left corner, X rightward and Y
// downward. Functions that work in maze cells (CropCells, CellGridOverlay)
// take a cell size in pixels and cell coordinates; region end coordinates
// are exclusive.
//
// # Preprocessing
//
// The maze reader only recognizes four exact colors. Binarize thresholds an
// anti-aliased or lossy image to pure black and white first; Palette lists
// the exact colors present so stray shades are easy to spot.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless
// and never modify their input image.
package imaging
