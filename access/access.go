// Package access resolves a shelf location to the walkable cell a shopper
// actually walks to in order to reach it.
//
// Resolution rules:
//
//  1. A walkable target is returned unchanged.
//  2. Otherwise its four axis neighbors are examined in this order:
//     up (x-1, y), down (x+1, y), left (x, y-1), right (x, y+1).
//     "Up/down" move along x and "left/right" along y; this naming is part of
//     the observable behavior and is kept.
//  3. Among walkable neighbors the one nearest (Euclidean) to a reference
//     point wins; on a tie the earliest in the order above is kept.
//  4. No walkable neighbor yields ErrUnreachable.
//
// The planner always passes Origin (0,0) as the reference point, not the
// shopper's actual approach position. This is how deployed stores behave today
// and route outputs depend on it.
package access

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/gridgraph"
)

// ErrUnreachable indicates a shelf location with no walkable 4-neighbor.
var ErrUnreachable = errors.New("access: unreachable shelf location")

// Origin is the reference point the planner measures neighbor distance from.
var Origin = floorplan.Point{X: 0, Y: 0}

// candidateOffsets is up, down, left, right as (dx, dy).
var candidateOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Resolve returns the walkable cell to aim for when visiting target.
// See the package documentation for the rules.
// Complexity: O(1).
func Resolve(g *gridgraph.Grid, ref, target floorplan.Point) (floorplan.Point, error) {
	if g.WalkableAt(target) {
		return target, nil
	}

	var (
		best  floorplan.Point
		found bool
		dist  float64
	)
	for _, d := range candidateOffsets {
		c := floorplan.Point{X: target.X + d[0], Y: target.Y + d[1]}
		if !g.WalkableAt(c) {
			continue
		}
		cd := euclidean(ref, c)
		// strict < keeps the first candidate on ties
		if !found || cd < dist {
			best, dist, found = c, cd, true
		}
	}
	if !found {
		return floorplan.Point{}, fmt.Errorf("%w %s", ErrUnreachable, target)
	}

	return best, nil
}

// ResolveAll resolves every target against ref, in order. The first failure
// is returned wrapped with the product id.
func ResolveAll(g *gridgraph.Grid, ref floorplan.Point, targets []floorplan.ShelfTarget) ([]floorplan.AccessPoint, error) {
	out := make([]floorplan.AccessPoint, 0, len(targets))
	for _, t := range targets {
		p, err := Resolve(g, ref, t.Location)
		if err != nil {
			return nil, fmt.Errorf("%w for product %q", err, t.ProductID)
		}
		out = append(out, floorplan.AccessPoint{ProductID: t.ProductID, Point: p})
	}

	return out, nil
}

func euclidean(a, b floorplan.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}
