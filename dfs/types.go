package dfs

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrNilNeighbors is returned when DFS is given no neighbour function.
	ErrNilNeighbors = errors.New("dfs: neighbor function is nil")

	// ErrNeighbors wraps a failure of the neighbour function.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")

	// errFound stops a Reaches search once the target is seen.
	errFound = errors.New("dfs: target found")
)

// NeighborFunc lists the vertices adjacent to v.
type NeighborFunc[V comparable] func(v V) ([]V, error)

// Option configures optional behavior of DFS traversal.
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[V comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v V) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v V) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbour before recursing.
	// Return true to traverse into that neighbour, false to skip it.
	FilterNeighbor func(v V) bool

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and no filtering.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor[V comparable](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[V comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Depth maps each vertex to its tree depth from the start.
	Depth map[V]int

	// Parent maps each vertex to the vertex it was first discovered from.
	// The start vertex is absent.
	Parent map[V]V

	// Visited flags which vertices were reached.
	Visited map[V]bool

	// SkippedNeighbors reports how many neighbours FilterNeighbor rejected.
	SkippedNeighbors int
}
