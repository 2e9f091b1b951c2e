// Package core defines the configuration graph: a set of uniquely named nodes,
// each carrying exactly two labelled outgoing edges (Left and Right).
//
// What:
//
//   - Triple describes one declaration "NAME = (LEFT, RIGHT)".
//   - Build materialises every distinct name into an arena and then wires the
//     edges by lookup, so forward references never create placeholder nodes.
//   - Find resolves a name to its single shared *Node instance.
//
// Why:
//
//   - Walks driven by an instruction tape (see package traversal) only ever ask
//     "which node is on my left / right"; a two-slot node is the whole model.
//   - Cycles are expected and never rejected: they are what the walks exploit.
//
// Complexity:
//
//   - Build: O(T) time and memory for T triples.
//   - Find:  O(1) average.
//
// Errors:
//
//   - ErrEmptyName:      a triple carries an empty name field.
//   - ErrDuplicateNode:  one name is declared twice with different edges.
//   - ErrNodeNotFound:   Find was asked for a name that is not in the graph.
//
// A Graph is immutable once built and safe for concurrent readers.
package core
