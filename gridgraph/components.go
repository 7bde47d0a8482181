package gridgraph

// ConnectedComponents finds every contiguous region of non-wall cells under
// 4-connectivity. Components are ordered by their first cell in row-major
// order; cells within a component are in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, len(g.roles))
	var comps [][]Cell

	for i0, r := range g.roles {
		if r == RoleWall || seen[i0] {
			continue
		}
		// BFS to collect component
		seen[i0] = true
		queue := []Cell{g.Coordinate(i0)}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi]) {
				ni := g.Index(n)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a and b are both open and reachable from one
// another without crossing a wall.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.InBounds(a) || !g.InBounds(b) || g.IsWall(a) || g.IsWall(b) {
		return false
	}
	if a == b {
		return true
	}

	seen := make([]bool, len(g.roles))
	seen[g.Index(a)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if n == b {
				return true
			}
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
