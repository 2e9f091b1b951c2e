package dfs

import (
	"github.com/pkg/errors"
)

// walker encapsulates state during DFS.
type walker[V comparable] struct {
	neighbors NeighborFunc[V]
	opts      Options[V]
	res       *Result[V]
}

// DFS performs depth-first search from start, expanding vertices with
// neighbors in the order it returns them.
// Returns the Result or an error if aborted by context, hook or neighbour
// failure. On error Order is cleared and the rest of the Result is partial.
func DFS[V comparable](start V, neighbors NeighborFunc[V], opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}

	// 2. Apply options
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result
	res := &Result[V]{
		Depth:   make(map[V]int),
		Parent:  make(map[V]V),
		Visited: make(map[V]bool),
	}
	w := &walker[V]{neighbors: neighbors, opts: o, res: res}

	// 4. Traverse
	err := w.traverse(start, 0)

	// 5. Expose diagnostics
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, err
}

// traverse visits v at the given depth, recursing to neighbours.
func (w *walker[V]) traverse(v V, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return errors.Wrapf(err, "dfs: OnVisit hook for %v", v)
		}
	}

	// 5. Fetch neighbours once
	nbs, err := w.neighbors(v)
	if err != nil {
		w.res.Order = nil
		return errors.Wrapf(ErrNeighbors, "expanding %v: %v", v, err)
	}

	// 6. Explore each neighbour
	for _, nb := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nb] {
			w.res.Parent[nb] = v
			if err = w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return errors.Wrapf(err, "dfs: OnExit hook for %v", v)
		}
	}

	// 8. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}

// Reaches reports whether any vertex reachable from start, start included,
// satisfies target. The search stops at the first match.
func Reaches[V comparable](start V, neighbors NeighborFunc[V], target func(V) bool) (bool, error) {
	_, err := DFS(start, neighbors, WithOnVisit(func(v V) error {
		if target(v) {
			return errFound
		}
		return nil
	}))
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}
