// Package tsp — leg cost providers.
//
// PathCoster prices a leg as the number of cells on the A* path between two
// points, searching afresh on every call. Memoize caches any coster's answers
// for the lifetime of one optimization.
package tsp

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/shoproute/astar"
	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/gridgraph"
)

// PathCoster prices legs on a grid with A*. It only reads the grid, so it is
// safe for concurrent use.
type PathCoster struct {
	grid  *gridgraph.Grid
	depot floorplan.Point
	stops []floorplan.Point
	opts  []astar.Option
}

// NewPathCoster returns a coster for stops 0..len(stops)-1 plus Depot at depot.
// opts are passed to every astar.FindPath call.
func NewPathCoster(g *gridgraph.Grid, depot floorplan.Point, stops []floorplan.Point, opts ...astar.Option) *PathCoster {
	return &PathCoster{grid: g, depot: depot, stops: stops, opts: opts}
}

// LegCost returns the walked-cell count of the shortest path (both endpoints
// included, so a leg onto the same cell costs 1), or math.Inf(1) when the
// destination is unreachable.
// Complexity: one A* search.
func (c *PathCoster) LegCost(from, to int) (float64, error) {
	a, err := c.point(from)
	if err != nil {
		return 0, err
	}
	b, err := c.point(to)
	if err != nil {
		return 0, err
	}
	n, err := astar.Length(c.grid, a, b, c.opts...)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return math.Inf(1), nil
	}

	return float64(n), nil
}

func (c *PathCoster) point(i int) (floorplan.Point, error) {
	if i == Depot {
		return c.depot, nil
	}
	if i < 0 || i >= len(c.stops) {
		return floorplan.Point{}, fmt.Errorf("%w: %d of %d", ErrStopIndex, i, len(c.stops))
	}

	return c.stops[i], nil
}

// memo caches LegCost answers in an (n+1)×(n+1) table; row/column 0 is the depot.
type memo struct {
	inner LegCoster
	n     int
	mu    sync.Mutex
	known []bool
	cost  []float64
}

// Memoize wraps inner with a cache sized for n stops. Indices outside
// [Depot, n) are passed through uncached. The wrapper is safe for concurrent
// use if inner is.
func Memoize(inner LegCoster, n int) LegCoster {
	size := (n + 1) * (n + 1)

	return &memo{
		inner: inner,
		n:     n,
		known: make([]bool, size),
		cost:  make([]float64, size),
	}
}

// LegCost returns the cached cost or asks inner once.
func (m *memo) LegCost(from, to int) (float64, error) {
	if from < Depot || from >= m.n || to < Depot || to >= m.n {
		return m.inner.LegCost(from, to)
	}
	k := (from+1)*(m.n+1) + (to + 1)

	m.mu.Lock()
	if m.known[k] {
		c := m.cost[k]
		m.mu.Unlock()

		return c, nil
	}
	m.mu.Unlock()

	// Price outside the lock; two workers may race on the same leg, both get
	// the same deterministic answer.
	c, err := m.inner.LegCost(from, to)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	m.known[k] = true
	m.cost[k] = c
	m.mu.Unlock()

	return c, nil
}
