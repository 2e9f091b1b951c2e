package gridgraph

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNotNeighbors indicates two cells that are not orthogonally adjacent.
	ErrNotNeighbors = errors.New("gridgraph: cells are not neighbours")
)

// Connectivity selects which adjacent cells count as neighbours.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
	// ConnRow uses horizontal connectivity only: W, E.
	ConnRow
)

var neighborOffsets = map[Connectivity][]Vector{
	Conn4:   {{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
	Conn8:   {{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}},
	ConnRow: {{0, -1}, {0, 1}},
}

// Vector is a cell position (or offset) as row and column.
type Vector struct {
	Row, Col int
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector { return Vector{v.Row + w.Row, v.Col + w.Col} }

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.Row - w.Row, v.Col - w.Col} }

// Scale returns v scaled by k.
func (v Vector) Scale(k int) Vector { return Vector{v.Row * k, v.Col * k} }

// String formats v as "(row, col)".
func (v Vector) String() string { return fmt.Sprintf("(%d, %d)", v.Row, v.Col) }

// Direction is a compass direction on the grid. North is towards row 0.
type Direction int

const (
	North Direction = iota
	East
	West
	South
)

// Directions lists every direction in probing order.
var Directions = []Direction{North, East, West, South}

var unitVectors = [...]Vector{
	North: {-1, 0},
	East:  {0, 1},
	West:  {0, -1},
	South: {1, 0},
}

// Unit returns the offset of one step towards d.
func (d Direction) Unit() Vector { return unitVectors[d] }

// Opposite returns the direction facing away from d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case West:
		return "west"
	case South:
		return "south"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectionTo returns the direction d with from + d.Unit() == to.
// Returns ErrNotNeighbors if the cells are not orthogonally adjacent.
func DirectionTo(from, to Vector) (Direction, error) {
	delta := to.Sub(from)
	for _, d := range Directions {
		if d.Unit() == delta {
			return d, nil
		}
	}

	return 0, errors.Wrapf(ErrNotNeighbors, "%s and %s", from, to)
}
