package render_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/planner"
	"github.com/katalvlaran/shoproute/render"
)

func samplePlan() *floorplan.FloorPlan {
	return &floorplan.FloorPlan{Cells: []floorplan.Cell{
		{X: 0, Y: 0, Type: floorplan.Entrance},
		{X: 2, Y: 1, Type: floorplan.Shelf},
		{X: 3, Y: 1, Type: floorplan.Shelf},
		{X: 4, Y: 2, Type: floorplan.Obstacle},
		{X: 0, Y: 3, Type: floorplan.CheckoutCounter},
		{X: 5, Y: 3, Type: floorplan.Fridge},
	}}
}

func path(id string, pts ...[2]int) []planner.Waypoint {
	out := make([]planner.Waypoint, len(pts))
	for i, p := range pts {
		out[i] = planner.Waypoint{X: p[0], Y: p[1], ProductID: id}
	}

	return out
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGrid_Golden(t *testing.T) {
	newGoldie(t).Assert(t, "grid", []byte(render.Grid(samplePlan(), 6, 4)))
}

func TestRoute_Golden(t *testing.T) {
	r := &planner.Route{
		Entrance: floorplan.Point{},
		Legs: []planner.Leg{
			{ProductID: "milk", Path: path("milk", [2]int{0, 0}, [2]int{1, 1})},
			{ProductID: "tea", Path: path("tea", [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3})},
			{Return: true, Path: path("", [2]int{4, 3}, [2]int{3, 3}, [2]int{2, 2}, [2]int{1, 2}, [2]int{0, 1}, [2]int{0, 0})},
		},
		Cost:       13,
		ReturnTrip: true,
	}
	newGoldie(t).Assert(t, "route", []byte(render.Route(samplePlan(), 6, 4, r)))
}

func TestGrid_BlockedEntranceShowsBlocker(t *testing.T) {
	fp := &floorplan.FloorPlan{Cells: []floorplan.Cell{
		{X: 1, Y: 0, Type: floorplan.Entrance},
		{X: 1, Y: 0, Type: floorplan.Shelf},
		{X: 0, Y: 0, Type: floorplan.Obstacle},
		{X: 0, Y: 0, Type: floorplan.Entrance},
		{X: 7, Y: 7, Type: floorplan.Shelf},
	}}
	assert.Equal(t, "X#.\n", render.Grid(fp, 3, 1))
}

func TestGrid_NilPlan(t *testing.T) {
	assert.Equal(t, "..\n..\n", render.Grid(nil, 2, 2))
}

func TestLegMarker(t *testing.T) {
	var sb strings.Builder
	for i := -1; i < 36; i++ {
		sb.WriteByte(render.LegMarker(i))
	}
	assert.Equal(t, "+123456789abcdefghijklmnopqrstuvwxyz+", sb.String())
}

func TestRoute_NeverOverdrawsCells(t *testing.T) {
	fp := &floorplan.FloorPlan{Cells: []floorplan.Cell{
		{X: 0, Y: 0, Type: floorplan.Entrance},
		{X: 2, Y: 0, Type: floorplan.Shelf},
	}}
	r := &planner.Route{Legs: []planner.Leg{
		{ProductID: "a", Path: path("a", [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{9, 9})},
	}, Cost: 4}
	out := render.Route(fp, 3, 1, r)
	assert.Equal(t, "E1#\n\n1 a (4 cells)\ncost 4\n", out)
}
