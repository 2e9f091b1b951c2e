package lcm

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// render formats a prime → exponent tree as "2^3 · 5 · 7^2".
func render(tree *redblacktree.Tree) string {
	if tree.Empty() {
		return "1"
	}
	parts := make([]string, 0, tree.Size())
	it := tree.Iterator()
	for it.Next() {
		if e := it.Value().(int); e > 1 {
			parts = append(parts, fmt.Sprintf("%v^%d", it.Key(), e))
		} else {
			parts = append(parts, fmt.Sprint(it.Key()))
		}
	}

	return strings.Join(parts, " · ")
}
