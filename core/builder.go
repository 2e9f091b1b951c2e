// File: builder.go
// Role: Two-pass arena construction of a Graph from declaration triples.
//
// Determinism:
//   - Arena order is: declared names in first-declaration order, then names
//     only ever referenced as edge targets, in order of first reference.
package core

import (
	"github.com/pkg/errors"
)

// Build constructs a Graph from triples.
//
// Implementation:
//   - Stage 1: Validate every triple (no empty fields) and fold duplicates.
//   - Stage 2: Materialise one Node per distinct name into the arena:
//     sources first, then names that only appear as Left/Right targets.
//   - Stage 3: Wire Left/Right edges by index lookup.
//
// Behavior highlights:
//   - Forward references resolve to the same instance as the later declaration.
//   - Redeclaring a name with identical edges is a no-op; different edges fail.
//   - A name referenced but never declared becomes a sink whose edges point
//     back at itself, so every node has two resolved edges.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateNode (wrapped with the offending name).
//
// Complexity:
//   - Time O(T), Space O(T) for T triples.
func Build(triples []Triple) (*Graph, error) {
	// 1) Validate and fold duplicate declarations.
	decl := make(map[string]Triple, len(triples))
	order := make([]string, 0, len(triples))
	for i, t := range triples {
		if t.Name == "" || t.Left == "" || t.Right == "" {
			return nil, errors.Wrapf(ErrEmptyName, "triple %d %q", i, t.Name)
		}
		if prev, ok := decl[t.Name]; ok {
			if prev != t {
				return nil, errors.Wrapf(ErrDuplicateNode, "%s", t.Name)
			}
			continue
		}
		decl[t.Name] = t
		order = append(order, t.Name)
	}

	// 2) Materialise the arena.
	g := &Graph{
		nodes: make([]*Node, 0, len(order)),
		index: make(map[string]int, len(order)),
	}
	for _, name := range order {
		g.add(name)
	}
	for _, name := range order {
		t := decl[name]
		for _, target := range [2]string{t.Left, t.Right} {
			if _, ok := g.index[target]; !ok {
				g.add(target)
			}
		}
	}

	// 3) Wire edges; undeclared targets loop back onto themselves.
	for _, n := range g.nodes {
		t, ok := decl[n.name]
		if !ok {
			n.edges[Left], n.edges[Right] = n, n
			continue
		}
		n.edges[Left] = g.nodes[g.index[t.Left]]
		n.edges[Right] = g.nodes[g.index[t.Right]]
	}

	return g, nil
}

// add appends a fresh node named name to the arena.
func (g *Graph) add(name string) {
	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, &Node{name: name, index: len(g.nodes)})
}
