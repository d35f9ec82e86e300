package maze

import "github.com/zyedidia/generic/mapset"

// OpenRegions groups the grid's open cells into 4-connected components.
// Regions are ordered by their first cell in top-to-bottom, left-to-right
// scan order; within a region, cells appear in breadth-first discovery
// order. A perfect maze yields exactly one region, which makes this the
// connectivity oracle for generated grids.
//
// Complexity: O(rows × cols) time and memory.
func (g *Grid) OpenRegions() [][]Cell {
	visited := mapset.New[Cell]()
	var regions [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			seed := Cell{Col: c, Row: r}
			if g.wall[r][c] || visited.Has(seed) {
				continue
			}

			// Flood fill from the seed.
			region := make([]Cell, 0, 4)
			queue := []Cell{seed}
			visited.Put(seed)
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				region = append(region, cur)
				for _, d := range backtrackOrder {
					nb := cur.Step(d)
					if g.open(nb) && !visited.Has(nb) {
						visited.Put(nb)
						queue = append(queue, nb)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
