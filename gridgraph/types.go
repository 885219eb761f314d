// Package gridgraph defines core types, options, and sentinel errors
// for the navigable grid.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilPlan indicates Build received a nil floor plan.
	ErrNilPlan = errors.New("gridgraph: floor plan is nil")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of grid bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including
// corner-safe diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds NW, NE, SE, SW, each only when both adjacent orthogonal cells are walkable.
	Conn8
)

// String returns "orthogonal" or "diagonal".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "diagonal"
	}

	return "orthogonal"
}

// Grid is an immutable walkability map. walkable[y*Width+x] is true for floor
// and the entrance, false for every other registered cell.
type Grid struct {
	Width, Height int
	walkable      []bool
}

// orthogonalOffsets is N, E, S, W.
var orthogonalOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// diagonalOffsets is NW, NE, SE, SW. diagonalOffsets[i] is guarded by
// orthogonal directions (i+3)%4 and i, i.e. NW needs W and N.
var diagonalOffsets = [4][2]int{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
