package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/shoproute/floorplan"
)

// Build constructs the navigable Grid of fp on a w×h grid.
// Every registered cell whose type is not floorplan.Entrance becomes
// non-walkable; all other coordinates stay walkable. A coordinate registered
// both as entrance and as something else is non-walkable.
//
// Returns floorplan.ErrDimensions for non-positive w or h, ErrNilPlan for a
// nil plan, and ErrOutOfBounds (naming the cell) for any registered cell
// outside the grid.
// Complexity: O(W×H + C) time, O(W×H) memory.
func Build(fp *floorplan.FloorPlan, w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, floorplan.ErrDimensions
	}
	if fp == nil {
		return nil, ErrNilPlan
	}
	g := New(w, h)
	for _, c := range fp.Cells {
		if !g.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: %s cell at (%d,%d) on %dx%d grid", ErrOutOfBounds, c.Type, c.X, c.Y, w, h)
		}
		if !c.Type.Walkable() {
			g.walkable[g.index(c.X, c.Y)] = false
		}
	}

	return g, nil
}

// FromPlan builds the grid using the plan's own dimensions (10×10 when unset).
func FromPlan(fp *floorplan.FloorPlan) (*Grid, error) {
	if fp == nil {
		return nil, ErrNilPlan
	}
	w, h := fp.Dimensions()

	return Build(fp, w, h)
}

// New returns a fully walkable w×h grid. Callers must pass positive sizes.
func New(w, h int) *Grid {
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = true
	}

	return &Grid{Width: w, Height: h, walkable: cells}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Walkable reports whether (x,y) is inside the grid and walkable.
// Complexity: O(1).
func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.walkable[g.index(x, y)]
}

// WalkableAt is Walkable for a floorplan.Point.
func (g *Grid) WalkableAt(p floorplan.Point) bool {
	return g.Walkable(p.X, p.Y)
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The caller must ensure (x,y) is in bounds.
func (g *Grid) Index(x, y int) int {
	return g.index(x, y)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// AppendNeighbors appends the walkable neighbors of (x,y) to dst and returns
// the extended slice. Orthogonal neighbors come first in N, E, S, W order; with
// Conn8 the diagonals follow in NW, NE, SE, SW order, each present only when
// both orthogonal cells it squeezes between are walkable.
//
// The walkability of (x,y) itself is not checked.
// Complexity: O(d).
func (g *Grid) AppendNeighbors(dst []floorplan.Point, x, y int, conn Connectivity) []floorplan.Point {
	var open [4]bool
	for i, d := range orthogonalOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.Walkable(nx, ny) {
			open[i] = true
			dst = append(dst, floorplan.Point{X: nx, Y: ny})
		}
	}
	if conn != Conn8 {
		return dst
	}
	for i, d := range diagonalOffsets {
		if !open[(i+3)%4] || !open[i] {
			continue
		}
		nx, ny := x+d[0], y+d[1]
		if g.Walkable(nx, ny) {
			dst = append(dst, floorplan.Point{X: nx, Y: ny})
		}
	}

	return dst
}
