// Package gridgraph turns a store floor plan into an immutable navigable grid
// and answers walkability, adjacency and region questions on it.
//
// What:
//
//   - Grid wraps a Width×Height walkability map built from a floorplan.FloorPlan.
//   - Every registered cell that is not the entrance is blocked; every other
//     in-bounds coordinate is floor and therefore walkable.
//   - Neighbors are produced in a fixed order (N, E, S, W, then NW, NE, SE, SW).
//   - Regions labels 4-connected walkable areas for cheap reachability checks.
//
// Why:
//
//   - Shelves, fridges, checkout counters and obstacles are equally impassable;
//     only empty floor and the entrance can be walked on.
//   - The grid is never mutated after Build, so any number of searches may
//     read it at once; per-search bookkeeping lives with the search.
//
// Complexity:
//
//   - Build:          O(W×H + C), Memory: O(W×H)   (C = registered cells).
//   - Walkable:       O(1).
//   - AppendNeighbors: O(d), d = 4 or 8.
//   - Regions:        O(W×H×4), Memory: O(W×H).
//
// Options:
//
//   - Conn4: orthogonal moves only.
//   - Conn8: orthogonal moves plus diagonals, a diagonal allowed only when both
//     orthogonal cells it passes between are walkable (no corner cutting).
//
// Errors:
//
//   - ErrNilPlan:     Build was given a nil floor plan.
//   - ErrOutOfBounds: a registered cell or a requested coordinate lies outside the grid.
//   - floorplan.ErrDimensions: non-positive width or height.
package gridgraph
