package tsp_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shoproute/astar"
	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/gridgraph"
	"github.com/katalvlaran/shoproute/tsp"
)

func pt(x, y int) floorplan.Point { return floorplan.Point{X: x, Y: y} }

// wallGrid is a 5×5 floor with a full wall at x=2 except a gap at (2,4),
// plus an isolated cell (4,0) boxed in by obstacles.
func wallGrid(t testing.TB) *gridgraph.Grid {
	t.Helper()
	fp := &floorplan.FloorPlan{}
	for y := 0; y < 4; y++ {
		fp.Cells = append(fp.Cells, floorplan.Cell{X: 2, Y: y, Type: floorplan.Obstacle})
	}
	for _, p := range []floorplan.Point{pt(3, 0), pt(3, 1), pt(4, 1)} {
		fp.Cells = append(fp.Cells, floorplan.Cell{X: p.X, Y: p.Y, Type: floorplan.Obstacle})
	}
	g, err := gridgraph.Build(fp, 5, 5)
	require.NoError(t, err)

	return g
}

func TestPathCoster_LegCost(t *testing.T) {
	g := wallGrid(t)
	c := tsp.NewPathCoster(g, pt(0, 0), []floorplan.Point{pt(0, 3), pt(4, 0), pt(4, 4)})

	// Same cell: a single node.
	got, err := c.LegCost(tsp.Depot, tsp.Depot)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	// Straight down the left aisle: (0,0)..(0,3).
	got, err = c.LegCost(tsp.Depot, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	// Boxed-in cell.
	got, err = c.LegCost(tsp.Depot, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	// Through the gap at (2,4).
	want, err := astar.Length(g, pt(0, 3), pt(4, 4))
	require.NoError(t, err)
	got, err = c.LegCost(0, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(want), got)
}

func TestPathCoster_BadIndex(t *testing.T) {
	c := tsp.NewPathCoster(wallGrid(t), pt(0, 0), []floorplan.Point{pt(0, 3)})
	_, err := c.LegCost(tsp.Depot, 1)
	require.ErrorIs(t, err, tsp.ErrStopIndex)
	_, err = c.LegCost(-2, 0)
	require.ErrorIs(t, err, tsp.ErrStopIndex)
}

func TestPathCoster_OrthogonalOption(t *testing.T) {
	g := wallGrid(t)
	diag := tsp.NewPathCoster(g, pt(0, 0), []floorplan.Point{pt(1, 1)})
	orth := tsp.NewPathCoster(g, pt(0, 0), []floorplan.Point{pt(1, 1)},
		astar.WithConnectivity(gridgraph.Conn4))

	d, err := diag.LegCost(tsp.Depot, 0)
	require.NoError(t, err)
	o, err := orth.LegCost(tsp.Depot, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
	assert.Equal(t, 3.0, o)
}

func TestMemoize_CallsInnerOncePerLeg(t *testing.T) {
	var (
		mu    sync.Mutex
		calls = map[[2]int]int{}
	)
	inner := tsp.LegCosterFunc(func(from, to int) (float64, error) {
		mu.Lock()
		calls[[2]int{from, to}]++
		mu.Unlock()
		return float64(1 + (from+2)*(to+3)%5), nil
	})
	m := tsp.Memoize(inner, 4)

	direct, err := tsp.BruteForce(context.Background(), 4, inner, tsp.DefaultOptions())
	require.NoError(t, err)
	clear(calls)

	cached, err := tsp.BruteForce(context.Background(), 4, m, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, direct.Order, cached.Order)
	assert.Equal(t, direct.Cost, cached.Cost)
	for leg, n := range calls {
		assert.Equal(t, 1, n, "leg %v priced %d times", leg, n)
	}
}

func TestMemoize_PassesThroughUnknownIndices(t *testing.T) {
	inner := tsp.NewPathCoster(wallGrid(t), pt(0, 0), []floorplan.Point{pt(0, 3)})
	m := tsp.Memoize(inner, 1)
	_, err := m.LegCost(tsp.Depot, 5)
	require.ErrorIs(t, err, tsp.ErrStopIndex)
}
