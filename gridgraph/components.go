package gridgraph

// ConnectedComponents finds all contiguous regions of cells whose symbol is
// accepted by member, according to conn connectivity.
// Components are returned in row-major order of their first cell; the cells
// of each component are in BFS order from that first cell. Under ConnRow this
// is left to right.
//
// Time:   O(W·H·d), where d = 2, 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(member func(rune) bool, conn Connectivity) [][]Vector {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Vector

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			v0 := Vector{Row: r, Col: c}
			if !member(g.At(v0)) || seen[g.Index(v0)] {
				continue
			}
			// BFS to collect component
			queue := []Vector{v0}
			seen[g.Index(v0)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi], conn) {
					if !member(g.At(n)) || seen[g.Index(n)] {
						continue
					}
					seen[g.Index(n)] = true
					queue = append(queue, n)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
