package planner

import (
	"context"
	"errors"

	"github.com/katalvlaran/shoproute/floorplan"
)

// Sentinel errors returned by the planner itself. Stage failures keep the
// sentinel of the package that produced them.
var (
	// ErrNilStore indicates New was called without a MapStore.
	ErrNilStore = errors.New("planner: map store is nil")

	// ErrNilList indicates ComputeRoute was called with a nil shopping list.
	ErrNilList = errors.New("planner: shopping list is nil")
)

// MapStore supplies floor plans. Implementations return
// floorplan.ErrNoFloorPlan (possibly wrapped) when a store has none.
type MapStore interface {
	FloorPlan(ctx context.Context, storeID string) (*floorplan.FloorPlan, error)
}

// Waypoint is one cell of a leg, labeled with the product the leg walks to.
// The return leg carries no product id.
type Waypoint struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	ProductID string `json:"productId,omitempty"`
}

// Point returns the waypoint's coordinates.
func (w Waypoint) Point() floorplan.Point {
	return floorplan.Point{X: w.X, Y: w.Y}
}

// Leg is the walk from the previous stop (or the entrance) to the next one.
type Leg struct {
	ProductID string     `json:"productId,omitempty"`
	Return    bool       `json:"return,omitempty"`
	Path      []Waypoint `json:"path"`
}

// Route is the planned walk for one shopping list.
type Route struct {
	RequestID  string                  `json:"requestId"`
	StoreID    string                  `json:"storeId"`
	Entrance   floorplan.Point         `json:"entrance"`
	Stops      []floorplan.AccessPoint `json:"stops"`
	Legs       []Leg                   `json:"legs"`
	Cost       int                     `json:"cost"`
	ReturnTrip bool                    `json:"returnTrip"`
}

// Waypoints flattens the legs into one sequence, the shape consumed by map
// clients. Cells shared by consecutive legs appear once per leg.
func (r *Route) Waypoints() []Waypoint {
	n := 0
	for _, l := range r.Legs {
		n += len(l.Path)
	}
	out := make([]Waypoint, 0, n)
	for _, l := range r.Legs {
		out = append(out, l.Path...)
	}

	return out
}
