// Package gridgraph treats a rectangular grid of symbols as a graph of cells.
//
// What:
//
//   - Grid wraps a non-empty, rectangular [][]rune parsed from text lines.
//   - Vector addresses a cell by (Row, Col); Direction names the four compass
//     neighbours and converts between unit vectors and directions.
//   - Neighbors enumerates in-bounds adjacent cells under ConnRow (W/E),
//     Conn4 (N/E/S/W) or Conn8 (Conn4 plus diagonals).
//   - ConnectedComponents groups cells accepted by a membership predicate into
//     contiguous regions, e.g. runs of digits under ConnRow.
//
// Complexity:
//
//   - New:                 O(W×H) time and memory.
//   - ConnectedComponents: O(W×H×d), d = 2, 4 or 8 neighbours.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or an empty first row.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNotNeighbors:   DirectionTo on cells that are not orthogonally adjacent.
package gridgraph
