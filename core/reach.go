// File: reach.go
// Role: reachability over the Left/Right edges, ignoring the tape.
package core

import (
	"github.com/katalvlaran/advent/dfs"
)

// Successors returns the distinct children of n, Left first.
// It has the shape of a dfs.NeighborFunc.
func Successors(n *Node) ([]*Node, error) {
	if n.Left() == n.Right() {
		return []*Node{n.Left()}, nil
	}
	return []*Node{n.Left(), n.Right()}, nil
}

// Reachable returns every node reachable from start, start included, in
// depth-first discovery order.
// Complexity: O(V).
func (g *Graph) Reachable(start *Node) []*Node {
	var out []*Node
	// Successors never fails, so neither does the search.
	_, _ = dfs.DFS(start, Successors, dfs.WithOnVisit(func(n *Node) error {
		out = append(out, n)
		return nil
	}))

	return out
}

// CanReach reports whether some node satisfying target is reachable from
// start. A walk under any tape can only end on such a node if this holds.
func (g *Graph) CanReach(start *Node, target func(*Node) bool) bool {
	ok, _ := dfs.Reaches(start, Successors, target)
	return ok
}
