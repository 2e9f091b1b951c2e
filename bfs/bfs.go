package bfs

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	neighbors NeighborFunc[V]
	opts      Options[V]
	ctx       context.Context
	queue     []queueItem[V]
	res       *Result[V]
}

// BFS runs breadth-first search from start, expanding vertices with
// neighbors and applying any number of functional Options.
// Returns ErrNilNeighbors or ErrOptionViolation for invalid input,
// ErrNeighbors when neighbors fails, ctx.Err() on cancellation, or any
// user-supplied hook error. On error the partial Result is still returned.
func BFS[V comparable](start V, neighbors NeighborFunc[V], opts ...Option[V]) (*Result[V], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		res: &Result[V]{
			Start:  start,
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}

	w.enqueue(start, 0)
	err := w.loop()
	klog.V(3).Infof("bfs: visited %d vertices, max depth %d", len(w.res.Order), w.res.MaxDepth())

	return w.res, err
}

// enqueue records v at depth d, calls OnEnqueue, and appends it to the queue.
// Depth doubles as the visited set.
func (w *walker[V]) enqueue(v V, d int) {
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit error at %v", item.v)
	}

	return nil
}

// enqueueNeighbors expands item, applies filtering and MaxDepth,
// and enqueues each unseen neighbour.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.neighbors(item.v)
	if err != nil {
		return errors.Wrapf(ErrNeighbors, "expanding %v: %v", item.v, err)
	}
	for _, nbr := range nbrs {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Parent[nbr] = item.v
		w.enqueue(nbr, nextDepth)
	}

	return nil
}
