// Package astar provides heuristic shortest-path search (A*) between two cells
// of a gridgraph.Grid.
//
// Overview:
//
//   - FindPath returns the ordered cells from start to goal inclusive, or an
//     empty path when the goal cannot be reached. Unreachable is not an error;
//     callers treat an empty path as infinite cost.
//   - Orthogonal steps cost 1. With diagonal movement (the default) a diagonal
//     step costs √2 and is only taken when both orthogonal cells beside it are
//     walkable, so the walker never cuts a shelf corner.
//   - The heuristic is octile distance with diagonals and Manhattan distance
//     without; both are admissible and consistent, so returned paths are optimal.
//
// Isolation:
//
//   - The grid is only read. Every call allocates its own search arena (scores,
//     parents, open/closed flags, heap), so FindPath is idempotent and any
//     number of calls may run concurrently against one grid.
//
// Options:
//
//   - WithConnectivity: gridgraph.Conn8 (default) or gridgraph.Conn4.
//   - WithHeuristic:    replace the default heuristic (must stay admissible
//     for optimal paths).
//
// Complexity:
//
//   - Time:  O(N log N) with N = W×H cells (lazy decrease-key heap).
//   - Space: O(N) per call.
//
// Errors (sentinel):
//
//   - ErrNilGrid:     grid pointer is nil.
//   - ErrOutOfBounds: start or goal lies outside the grid.
//
// Example usage:
//
//	path, err := astar.FindPath(g, entrance, shelfAccess)
//	if err != nil {
//	    return err
//	}
//	if len(path) == 0 {
//	    // unreachable
//	}
package astar
