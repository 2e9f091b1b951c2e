// Package bfs provides breadth-first search over any implicit graph whose
// vertices are comparable values and whose edges come from a neighbour
// function, returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbours are enqueued in the order the neighbour function returns them,
//	so a deterministic neighbour function yields a reproducible visit sequence.
//
// Complexity (V = reachable vertices, E = edges among them)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(start, func(v Cell) ([]Cell, error) {
//		return grid.Neighbors(v), nil
//	})
//	if err != nil {
//		// ErrOptionViolation, ErrNeighbors, context errors or hook errors
//	}
//	far := res.Farthest()
package bfs
