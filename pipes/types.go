package pipes

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/gridgraph"
)

// Sentinel errors for maze parsing and walking.
var (
	ErrUnknownSymbol = errors.New("pipes: unknown tile symbol")
	ErrNoStart       = errors.New("pipes: no start tile found")
	ErrNoConnection  = errors.New("pipes: no neighbouring pipe connects to the start")
	ErrEmptyTile     = errors.New("pipes: walked onto an empty tile")
	ErrInvalidEntry  = errors.New("pipes: tile cannot be entered from this side")
	ErrAmbiguousExit = errors.New("pipes: tile does not have exactly one exit")
	ErrOutOfBounds   = errors.New("pipes: pipe leads off the grid")
	ErrNoLoop        = errors.New("pipes: walk does not return to the start")
)

// Tile is a maze cell symbol.
type Tile rune

const (
	Vertical   Tile = '|'
	Horizontal Tile = '-'
	NorthEast  Tile = 'L'
	NorthWest  Tile = 'J'
	SouthWest  Tile = '7'
	SouthEast  Tile = 'F'
	Ground     Tile = '.'
	Start      Tile = 'S'
)

// entryDirections lists, per connector, the sides a pipe opens to.
// Ground and Start have no fixed entries.
var entryDirections = map[Tile][2]gridgraph.Direction{
	Vertical:   {gridgraph.North, gridgraph.South},
	Horizontal: {gridgraph.West, gridgraph.East},
	NorthEast:  {gridgraph.North, gridgraph.East},
	NorthWest:  {gridgraph.North, gridgraph.West},
	SouthWest:  {gridgraph.South, gridgraph.West},
	SouthEast:  {gridgraph.South, gridgraph.East},
}

// Valid reports whether t is a known tile symbol.
func (t Tile) Valid() bool {
	_, ok := entryDirections[t]
	return ok || t == Ground || t == Start
}

// Connector reports whether t has two fixed entry sides.
func (t Tile) Connector() bool {
	_, ok := entryDirections[t]
	return ok
}

// Entries returns the sides of a connector; nil for Ground and Start.
func (t Tile) Entries() []gridgraph.Direction {
	e, ok := entryDirections[t]
	if !ok {
		return nil
	}
	return e[:]
}

// HasEntry reports whether a connector t is open on side d.
func (t Tile) HasEntry(d gridgraph.Direction) bool {
	e, ok := entryDirections[t]
	return ok && (e[0] == d || e[1] == d)
}

// String returns the tile symbol.
func (t Tile) String() string { return string(t) }
