// Package render draws floor plans and planned routes as ASCII grids.
//
// One row per y (top row is y = 0), one character per x:
//
//	E entrance   # shelf   F fridge   C checkout counter   X obstacle   . floor
//
// Route overlays mark the cells of leg i with 1..9 then a..z, and the return
// leg with *. Registered cells are never overdrawn; where legs cross, the
// later leg wins.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/planner"
)

const (
	floor      = '.'
	returnMark = '*'
	overflow   = '+'
)

var cellGlyphs = map[floorplan.CellType]byte{
	floorplan.Entrance:        'E',
	floorplan.Shelf:           '#',
	floorplan.Fridge:          'F',
	floorplan.CheckoutCounter: 'C',
	floorplan.Obstacle:        'X',
}

// Glyph returns the character drawn for a registered cell type.
func Glyph(t floorplan.CellType) byte {
	if g, ok := cellGlyphs[t]; ok {
		return g
	}

	return '?'
}

// LegMarker returns the overlay character of the i-th (0-based) leg.
func LegMarker(i int) byte {
	switch {
	case i < 0:
		return overflow
	case i < 9:
		return byte('1' + i)
	case i < 9+26:
		return byte('a' + i - 9)
	default:
		return overflow
	}
}

type canvas struct {
	w, h  int
	cells [][]byte
}

// newCanvas draws fp's registered cells on a w×h floor. A coordinate named
// by an entrance and a blocking record shows the blocking type; out-of-bounds
// cells are skipped.
func newCanvas(fp *floorplan.FloorPlan, w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]byte, h)}
	for y := range c.cells {
		c.cells[y] = []byte(strings.Repeat(string(rune(floor)), w))
	}
	if fp == nil {
		return c
	}
	for _, cell := range fp.Cells {
		if cell.X < 0 || cell.X >= w || cell.Y < 0 || cell.Y >= h {
			continue
		}
		if cell.Type == floorplan.Entrance && c.cells[cell.Y][cell.X] != floor {
			continue
		}
		c.cells[cell.Y][cell.X] = Glyph(cell.Type)
	}

	return c
}

// mark draws m on (x,y) when it is plain floor or already a route mark.
func (c *canvas) mark(x, y int, m byte) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	cur := c.cells[y][x]
	if cur == floor || !isGlyph(cur) {
		c.cells[y][x] = m
	}
}

func isGlyph(b byte) bool {
	for _, g := range cellGlyphs {
		if g == b {
			return true
		}
	}

	return false
}

func (c *canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.w + 1) * c.h)
	for _, row := range c.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Grid draws fp on a w×h grid.
func Grid(fp *floorplan.FloorPlan, w, h int) string {
	return newCanvas(fp, w, h).String()
}

// Route draws fp with r overlaid, followed by a legend line per leg and the
// total cost.
func Route(fp *floorplan.FloorPlan, w, h int, r *planner.Route) string {
	c := newCanvas(fp, w, h)
	var legend strings.Builder
	legend.WriteByte('\n')
	for i, leg := range r.Legs {
		m, name := LegMarker(i), leg.ProductID
		if leg.Return {
			m, name = returnMark, "return"
		}
		for _, p := range leg.Path {
			c.mark(p.X, p.Y, m)
		}
		fmt.Fprintf(&legend, "%c %s (%d cells)\n", m, name, len(leg.Path))
	}
	fmt.Fprintf(&legend, "cost %d\n", r.Cost)

	return c.String() + legend.String()
}
