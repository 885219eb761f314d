package planner

import (
	"fmt"

	"github.com/katalvlaran/shoproute/astar"
	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/gridgraph"
	"github.com/katalvlaran/shoproute/tsp"
)

// Assemble walks entrance → stops[0] → … → stops[n-1] (→ entrance when
// returnTrip) with a fresh A* search per leg and returns the labeled legs and
// their total cell count.
//
// Every waypoint of a leg carries the product id of the leg's destination;
// the return leg is flagged Return and carries none. An unreachable leg
// yields tsp.ErrNoFeasibleRoute naming the leg.
//
// Complexity: n+1 A* searches.
func Assemble(g *gridgraph.Grid, entrance floorplan.Point, stops []floorplan.AccessPoint, returnTrip bool, opts ...astar.Option) ([]Leg, int, error) {
	legs := make([]Leg, 0, len(stops)+1)
	cost := 0
	prev := entrance

	walk := func(to floorplan.Point, productID string, ret bool) error {
		path, err := astar.FindPath(g, prev, to, opts...)
		if err != nil {
			return err
		}
		if len(path) == 0 {
			return fmt.Errorf("%w: no path %s -> %s", tsp.ErrNoFeasibleRoute, prev, to)
		}
		wps := make([]Waypoint, len(path))
		for i, p := range path {
			wps[i] = Waypoint{X: p.X, Y: p.Y, ProductID: productID}
		}
		legs = append(legs, Leg{ProductID: productID, Return: ret, Path: wps})
		cost += len(path)
		prev = to

		return nil
	}

	for _, s := range stops {
		if err := walk(s.Point, s.ProductID, false); err != nil {
			return nil, 0, err
		}
	}
	if returnTrip {
		if err := walk(entrance, "", true); err != nil {
			return nil, 0, err
		}
	}

	return legs, cost, nil
}
