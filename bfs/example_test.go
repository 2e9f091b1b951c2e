package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/advent/bfs"
)

// ExampleBFS finds the shortest path through a small directed network.
func ExampleBFS() {
	edges := map[string][]string{
		"home":   {"park", "shop"},
		"park":   {"lake"},
		"shop":   {"office"},
		"office": {"lake"},
	}
	res, _ := bfs.BFS("home", func(v string) ([]string, error) { return edges[v], nil })
	path, _ := res.PathTo("lake")
	fmt.Println(path, res.Depth["lake"])
	// Output:
	// [home park lake] 2
}
