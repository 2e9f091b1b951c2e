// Package advent solves a season of daily programming puzzles.
//
// The reusable pieces live in their own packages:
//
//	core/       configuration graph of named nodes with Left/Right edges
//	traversal/  instruction tape, single and lockstep walks, cycle analysis
//	lcm/        least common multiple via prime factorisation
//	pipes/      pipe-maze loop walker
//	gridgraph/  rectangular symbol grids, vectors and directions
//	bfs/, dfs/  generic breadth- and depth-first search
//	input/      input files, lines and numeric tokens
//	solution/   answers and their printing
//	config/     YAML runner configuration
//
// Each day lives under puzzles/dayNN and registers itself with puzzles;
// cmd/advent runs them:
//
//	go run ./cmd/advent -d 8 -i puzzles/day08/input.txt
package advent
