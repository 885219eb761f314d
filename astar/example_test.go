package astar_test

import (
	"fmt"

	"github.com/katalvlaran/shoproute/astar"
	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/gridgraph"
)

// ExampleFindPath walks from the entrance to the cell beside a shelf while
// refusing to cut the shelf's corner.
//
//	E . .
//	. # .
//	. . G
func ExampleFindPath() {
	fp := &floorplan.FloorPlan{Cells: []floorplan.Cell{
		{X: 0, Y: 0, Type: floorplan.Entrance},
		{X: 1, Y: 1, Type: floorplan.Shelf},
	}}
	g, _ := gridgraph.Build(fp, 3, 3)

	path, _ := astar.FindPath(g, floorplan.Point{X: 0, Y: 0}, floorplan.Point{X: 2, Y: 2},
		astar.WithConnectivity(gridgraph.Conn4))
	fmt.Println("cells walked:", len(path))
	fmt.Println("start:", path[0], "end:", path[len(path)-1])

	// Output:
	// cells walked: 5
	// start: (0,0) end: (2,2)
}
