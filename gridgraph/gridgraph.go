package gridgraph

import (
	"github.com/pkg/errors"
)

// Grid is an immutable rectangular grid of symbols.
// Cells[r][c] holds the symbol at row r, column c.
type Grid struct {
	Width, Height int
	Cells         [][]rune
}

// New builds a Grid from text lines, one row per line.
// A trailing empty line (from a final newline) is ignored.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(lines []string) (*Grid, error) {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]rune, len(lines))
	for r, line := range lines {
		cells[r] = []rune(line)
	}
	w := len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d columns, want %d", r, len(row), w)
		}
	}

	return &Grid{Width: w, Height: len(cells), Cells: cells}, nil
}

// InBounds reports whether v lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(v Vector) bool {
	return v.Row >= 0 && v.Row < g.Height && v.Col >= 0 && v.Col < g.Width
}

// At returns the symbol at v. v must be in bounds.
func (g *Grid) At(v Vector) rune {
	return g.Cells[v.Row][v.Col]
}

// Index maps v to a row-major index: Row*Width + Col.
func (g *Grid) Index(v Vector) int {
	return v.Row*g.Width + v.Col
}

// Coordinate converts a row-major index back to a Vector.
func (g *Grid) Coordinate(idx int) Vector {
	return Vector{Row: idx / g.Width, Col: idx % g.Width}
}

// Neighbors returns the in-bounds neighbours of v under conn,
// in a fixed order per connectivity.
func (g *Grid) Neighbors(v Vector, conn Connectivity) []Vector {
	offsets := neighborOffsets[conn]
	out := make([]Vector, 0, len(offsets))
	for _, d := range offsets {
		if n := v.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Find returns the first cell holding symbol in row-major order.
func (g *Grid) Find(symbol rune) (Vector, bool) {
	for r, row := range g.Cells {
		for c, s := range row {
			if s == symbol {
				return Vector{Row: r, Col: c}, true
			}
		}
	}

	return Vector{}, false
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(v Vector, symbol rune)) {
	for r, row := range g.Cells {
		for c, s := range row {
			fn(Vector{Row: r, Col: c}, s)
		}
	}
}
