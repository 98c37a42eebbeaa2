// Package maze turns a bitmap of a maze into a logical grid, searches it and
// renders the result.
//
// # Pipeline
//
//  1. BlockSize infers the pixel width of one cell from the solid block in
//     the top-left corner.
//  2. Normalize point-samples the top-left pixel of every block into a Grid.
//  3. Search walks the grid depth-first from start to stop, recoloring cells
//     as it goes: Empty cells it enters become Visited, the cells of the
//     successful branch become CorrectPath.
//  4. Upscale renders the grid back to pixels, one solid block per cell.
//
// Solve chains the four steps with the conventional defaults: start at (1,1),
// stop at (width-2, height-2), scale 5.
//
// # Colors
//
// Four colors are recognized: Wall (black), Empty (white), CorrectPath
// (0,255,0) and Visited (255,150,150). Anything else is Unknown and blocks
// the search like a wall. A Classifier with a positive Tolerance snaps
// near-matches onto the recognized colors.
//
// # Search order
//
// Neighbors are tried right, left, down, up. The first path found is
// returned; it is not necessarily the shortest.
package maze
