package floorplan

// Entrance scans Cells in order and returns the coordinates of the first
// entrance cell. Returns ErrNoEntrance if none is registered.
//
// With more than one entrance the result depends on Cells order; that is kept
// as-is rather than picking a "best" entrance.
//
// Complexity: O(len(Cells)).
func (fp *FloorPlan) Entrance() (Point, error) {
	for _, c := range fp.Cells {
		if c.Type == Entrance {
			return c.Point(), nil
		}
	}

	return Point{}, ErrNoEntrance
}

// Empty reports whether the plan is nil or has no registered cells.
func (fp *FloorPlan) Empty() bool {
	return fp == nil || len(fp.Cells) == 0
}
