// File: methods.go
// Role: Read-only queries over a built Graph.
package core

import (
	"github.com/pkg/errors"
)

// Find returns the node called name.
//
// Repeated calls with the same name return the same *Node instance.
// Returns ErrNodeNotFound (wrapped with the name) when absent.
// Complexity: O(1) average.
func (g *Graph) Find(name string) (*Node, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "%q", name)
	}

	return g.nodes[i], nil
}

// Has reports whether name is a node of g.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Len returns the number of nodes, including undeclared edge targets.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns every node in arena order.
// The returned slice is a copy; the nodes are shared.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Filter returns the nodes for which keep reports true, in arena order.
// Complexity: O(V).
func (g *Graph) Filter(keep func(*Node) bool) []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if keep(n) {
			out = append(out, n)
		}
	}

	return out
}

// Names returns node names in arena order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.name
	}

	return out
}

// ParseSide converts an instruction symbol ('L' or 'R') into a Side.
func ParseSide(r rune) (Side, error) {
	switch r {
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	default:
		return 0, errors.Wrapf(ErrBadSide, "%q", r)
	}
}
