package grid

// Components splits the passable cells into 4-connected regions. Regions
// are ordered by their first cell in row-major order; cells inside a
// region are in BFS order from that first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, g.Size())
	var comps [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i0 := r*g.cols + c
			if g.blocked[i0] || seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []Cell{{r, c}}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				for nb := range g.Neighbors(queue[qi]) {
					if j := g.Index(nb); !seen[j] {
						seen[j] = true
						queue = append(queue, nb)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether a and b are passable and lie in the same
// 4-connected region.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.Size())
	seen[g.Index(a)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for nb := range g.Neighbors(queue[qi]) {
			if nb == b {
				return true
			}
			if j := g.Index(nb); !seen[j] {
				seen[j] = true
				queue = append(queue, nb)
			}
		}
	}
	return false
}
