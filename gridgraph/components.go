package gridgraph

// Regions labels the 4-connected walkable areas of the grid.
// labels[idx] is the region number of cell idx (row-major), or -1 for blocked
// cells; count is the number of regions.
//
// Corner-safe diagonal movement (Conn8) never joins two 4-connected regions,
// since a diagonal step needs both orthogonal cells walkable, so the labels are
// valid reachability classes for either connectivity.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the BFS queue.
func (g *Grid) Regions() (labels []int, count int) {
	total := g.Len()
	labels = make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, total)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.index(x, y)
			if !g.walkable[i0] || labels[i0] >= 0 {
				continue
			}
			// BFS to flood the region
			labels[i0] = count
			queue = append(queue[:0], i0)
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range orthogonalOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.Walkable(vx, vy) {
						continue
					}
					vi := g.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = count
						queue = append(queue, vi)
					}
				}
			}
			count++
		}
	}

	return labels, count
}

// RegionsFrom returns the distinct region labels a walk starting at (x,y) can
// enter. A walkable cell belongs to exactly one region; a blocked start (for
// example an entrance that is also registered as a shelf) can still step onto
// any walkable neighbor, so its result is the set of neighbor regions.
// labels must come from Regions on the same grid.
func (g *Grid) RegionsFrom(labels []int, x, y int, conn Connectivity) []int {
	if g.Walkable(x, y) {
		return []int{labels[g.index(x, y)]}
	}
	var out []int
	for _, p := range g.AppendNeighbors(nil, x, y, conn) {
		r := labels[g.index(p.X, p.Y)]
		dup := false
		for _, seen := range out {
			if seen == r {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}

	return out
}
