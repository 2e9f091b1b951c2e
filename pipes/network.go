package pipes

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/gridgraph"
)

// Network is an immutable pipe maze.
type Network struct {
	grid *gridgraph.Grid
}

// NewNetwork parses a maze from text lines, one row per line.
// Returns gridgraph errors for empty or ragged input and ErrUnknownSymbol
// for any cell outside the tile table.
func NewNetwork(lines []string) (*Network, error) {
	g, err := gridgraph.New(lines)
	if err != nil {
		return nil, errors.Wrap(err, "pipes: parsing maze")
	}
	var bad error
	g.Each(func(v gridgraph.Vector, s rune) {
		if bad == nil && !Tile(s).Valid() {
			bad = errors.Wrapf(ErrUnknownSymbol, "%q at %s", s, v)
		}
	})
	if bad != nil {
		return nil, bad
	}

	return &Network{grid: g}, nil
}

// Grid exposes the underlying grid.
func (n *Network) Grid() *gridgraph.Grid { return n.grid }

// TileAt returns the tile at v. v must be in bounds.
func (n *Network) TileAt(v gridgraph.Vector) Tile { return Tile(n.grid.At(v)) }

// FindStart returns the first start tile in row-major order.
func (n *Network) FindStart() (gridgraph.Vector, error) {
	v, ok := n.grid.Find(rune(Start))
	if !ok {
		return gridgraph.Vector{}, ErrNoStart
	}

	return v, nil
}

// admits reports whether the tile at v lies in bounds and opens to side d.
func (n *Network) admits(v gridgraph.Vector, d gridgraph.Direction) bool {
	return n.grid.InBounds(v) && n.TileAt(v).HasEntry(d)
}

// Exits returns the directions, in N, E, W, S order, in which the start tile
// at pos connects to a neighbouring pipe.
func (n *Network) Exits(pos gridgraph.Vector) []gridgraph.Direction {
	var out []gridgraph.Direction
	for _, d := range gridgraph.Directions {
		if n.admits(pos.Add(d.Unit()), d.Opposite()) {
			out = append(out, d)
		}
	}

	return out
}

// Next moves one tile along the pipe from pos.
// arrival is the side of pos the walker entered through, nil for none.
// It returns the next position and the side of that tile being entered.
//
// On the start tile every direction other than arrival is tried in
// N, E, W, S order; the first in-bounds neighbour open towards pos wins.
// On a connector the exit is its entry pair minus arrival, which must leave
// exactly one side.
func (n *Network) Next(pos gridgraph.Vector, arrival *gridgraph.Direction) (gridgraph.Vector, gridgraph.Direction, error) {
	tile := n.TileAt(pos)
	switch {
	case tile == Ground:
		return pos, 0, errors.Wrapf(ErrEmptyTile, "at %s", pos)

	case tile == Start:
		for _, d := range gridgraph.Directions {
			if arrival != nil && d == *arrival {
				continue
			}
			if next := pos.Add(d.Unit()); n.admits(next, d.Opposite()) {
				return next, d.Opposite(), nil
			}
		}
		return pos, 0, errors.Wrapf(ErrNoConnection, "from %s", pos)
	}

	// 1) Remove the arrival side from the entry pair
	entries := tile.Entries()
	exits := make([]gridgraph.Direction, 0, len(entries))
	for _, d := range entries {
		if arrival == nil || d != *arrival {
			exits = append(exits, d)
		}
	}
	// 2) The arrival side must have been one of the entries
	if len(exits) == len(entries) && arrival != nil {
		return pos, 0, errors.Wrapf(ErrInvalidEntry, "%s at %s from the %s", tile, pos, *arrival)
	}
	// 3) Exactly one exit must remain
	if len(exits) != 1 {
		return pos, 0, errors.Wrapf(ErrAmbiguousExit, "%s at %s has %d exits", tile, pos, len(exits))
	}
	next := pos.Add(exits[0].Unit())
	if !n.grid.InBounds(next) {
		return pos, 0, errors.Wrapf(ErrOutOfBounds, "%s at %s exits %s", tile, pos, exits[0])
	}

	return next, exits[0].Opposite(), nil
}

// LoopLength walks from the start tile until it returns there and reports
// the number of steps taken. The farthest loop tile is LoopLength()/2 away.
func (n *Network) LoopLength() (int, error) {
	loop, err := n.Loop()
	if err != nil {
		return 0, err
	}

	return len(loop), nil
}

// Loop returns the loop positions in walk order, starting with the start
// tile and leaving the start through its first exit.
func (n *Network) Loop() ([]gridgraph.Vector, error) {
	return n.walk(nil)
}

// LoopVia is Loop leaving the start tile in direction exit.
// Returns ErrNoConnection if no pipe connects to the start that way.
func (n *Network) LoopVia(exit gridgraph.Direction) ([]gridgraph.Vector, error) {
	return n.walk(&exit)
}

// walk follows the loop from the start. A nil exit picks the first
// connecting direction.
func (n *Network) walk(exit *gridgraph.Direction) ([]gridgraph.Vector, error) {
	start, err := n.FindStart()
	if err != nil {
		return nil, err
	}

	var (
		pos     gridgraph.Vector
		arrival gridgraph.Direction
	)
	if exit == nil {
		pos, arrival, err = n.Next(start, nil)
		if err != nil {
			return nil, err
		}
	} else {
		pos = start.Add(exit.Unit())
		arrival = exit.Opposite()
		if !n.admits(pos, arrival) {
			return nil, errors.Wrapf(ErrNoConnection, "from %s towards the %s", start, *exit)
		}
	}

	loop := []gridgraph.Vector{start}
	limit := n.grid.Width * n.grid.Height
	for pos != start {
		if len(loop) >= limit {
			return nil, errors.Wrapf(ErrNoLoop, "after %d steps", len(loop))
		}
		loop = append(loop, pos)
		if pos, arrival, err = n.Next(pos, &arrival); err != nil {
			return nil, err
		}
	}
	klog.V(2).Infof("pipes: loop from %s has %d tiles", start, len(loop))

	return loop, nil
}

// FarthestDistance returns the largest breadth-first distance from the start
// to any loop tile, following only sides open on both tiles.
func (n *Network) FarthestDistance() (int, error) {
	loop, err := n.Loop()
	if err != nil {
		return 0, err
	}
	onLoop := make(map[gridgraph.Vector]bool, len(loop))
	for _, v := range loop {
		onLoop[v] = true
	}

	res, err := bfs.BFS(loop[0], n.connected, bfs.WithFilterNeighbor(func(_, nbr gridgraph.Vector) bool {
		return onLoop[nbr]
	}))
	if err != nil {
		return 0, errors.Wrap(err, "pipes: searching loop")
	}

	return res.MaxDepth(), nil
}

// connected lists the neighbours of v that share an open side with it.
func (n *Network) connected(v gridgraph.Vector) ([]gridgraph.Vector, error) {
	tile := n.TileAt(v)
	var sides []gridgraph.Direction
	if tile == Start {
		sides = n.Exits(v)
	} else {
		sides = tile.Entries()
	}

	out := make([]gridgraph.Vector, 0, len(sides))
	for _, d := range sides {
		nbr := v.Add(d.Unit())
		if !n.grid.InBounds(nbr) {
			continue
		}
		if t := n.TileAt(nbr); t == Start || t.HasEntry(d.Opposite()) {
			out = append(out, nbr)
		}
	}

	return out, nil
}
