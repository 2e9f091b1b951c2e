// File: types.go
// Role: Node, Graph, Triple and Side declarations plus sentinel errors.
package core

import (
	"github.com/pkg/errors"
)

// Sentinel errors for configuration graph operations.
var (
	// ErrEmptyName indicates a triple with an empty name, left or right field.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates the same source name declared with different edges.
	ErrDuplicateNode = errors.New("core: node declared twice with different edges")

	// ErrNodeNotFound indicates a lookup for a name that is not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadSide indicates a Side value other than Left or Right.
	ErrBadSide = errors.New("core: side must be Left or Right")
)

// Side selects one of the two outgoing edges of a Node.
type Side uint8

const (
	// Left selects the first edge of a declaration.
	Left Side = iota
	// Right selects the second edge of a declaration.
	Right
)

// String returns "L" or "R", the symbols used on instruction tapes.
func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// Triple is one node declaration: Name has edges to Left and Right.
type Triple struct {
	Name  string
	Left  string
	Right string
}

// Node is a named vertex with exactly two outgoing edges.
//
// Edges point at other nodes owned by the same Graph; a Node never outlives
// its Graph and is never mutated after Build returns.
type Node struct {
	name  string
	index int
	edges [2]*Node
}

// Name returns the unique identifier of the node.
func (n *Node) Name() string { return n.name }

// Index returns the arena position of the node (declaration order).
func (n *Node) Index() int { return n.index }

// Left returns the node reached through the Left edge.
func (n *Node) Left() *Node { return n.edges[Left] }

// Right returns the node reached through the Right edge.
func (n *Node) Right() *Node { return n.edges[Right] }

// Child returns the node reached through side s.
// It returns nil for a Side that is neither Left nor Right.
func (n *Node) Child(s Side) *Node {
	if s > Right {
		return nil
	}

	return n.edges[s]
}

// String implements fmt.Stringer as "NAME = (LEFT, RIGHT)".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return n.name + " = (" + n.edges[Left].name + ", " + n.edges[Right].name + ")"
}

// Graph owns every Node of a configuration graph.
//
// nodes is the arena in declaration order; index maps a name to its arena slot.
type Graph struct {
	nodes []*Node
	index map[string]int
}
