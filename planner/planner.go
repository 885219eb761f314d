package planner

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/shoproute/access"
	"github.com/katalvlaran/shoproute/astar"
	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/gridgraph"
	"github.com/katalvlaran/shoproute/tsp"
)

// Planner computes routes against one MapStore.
type Planner struct {
	store MapStore
	opts  Options
	log   *slog.Logger
}

// New returns a Planner reading floor plans from store.
// Returns ErrNilStore when store is nil.
func New(store MapStore, opts ...Option) (*Planner, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Planner{store: store, opts: cfg, log: log}, nil
}

// Options returns the effective configuration.
func (p *Planner) Options() Options {
	return p.opts
}

// ComputeRoute plans the shortest walk that visits every product of list in
// store storeID. See the package documentation for the stages and errors.
// Item quantities are ignored.
func (p *Planner) ComputeRoute(ctx context.Context, storeID string, list *floorplan.ShoppingList) (*Route, error) {
	if list == nil {
		return nil, ErrNilList
	}
	started := time.Now()
	reqID := newRequestID()
	log := p.log.With(slog.String("request_id", reqID), slog.String("store_id", storeID))

	// 1) Floor plan.
	plan, err := p.store.FloorPlan(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("store %q: %w", storeID, err)
	}
	if plan == nil || plan.Empty() {
		return nil, fmt.Errorf("store %q: %w", storeID, floorplan.ErrNoFloorPlan)
	}
	log.DebugContext(ctx, "floor plan loaded", slog.Int("cells", len(plan.Cells)))

	// 2) Grid.
	w, h := p.opts.Width, p.opts.Height
	if w == 0 || h == 0 {
		w, h = plan.Dimensions()
	}
	g, err := gridgraph.Build(plan, w, h)
	if err != nil {
		return nil, fmt.Errorf("store %q: %w", storeID, err)
	}
	log.DebugContext(ctx, "grid built", slog.Int("width", w), slog.Int("height", h))

	// 3) Entrance.
	entrance, err := plan.Entrance()
	if err != nil {
		return nil, fmt.Errorf("store %q: %w", storeID, err)
	}

	// 4) Shelf locations.
	targets, err := list.Targets()
	if err != nil {
		return nil, err
	}
	for _, t := range targets {
		if !g.InBounds(t.Location.X, t.Location.Y) {
			return nil, fmt.Errorf("%w: product %q at %s on %dx%d grid",
				gridgraph.ErrOutOfBounds, t.ProductID, t.Location, w, h)
		}
	}

	// 5) Access points.
	stops, err := access.ResolveAll(g, access.Origin, targets)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "access points resolved",
		slog.String("entrance", entrance.String()), slog.Int("stops", len(stops)))

	if err = p.precheck(g, entrance, stops); err != nil {
		return nil, err
	}

	// 6) Visiting order.
	astarOpts := []astar.Option{astar.WithConnectivity(p.opts.Connectivity)}
	points := make([]floorplan.Point, len(stops))
	for i, s := range stops {
		points[i] = s.Point
	}
	var coster tsp.LegCoster = tsp.NewPathCoster(g, entrance, points, astarOpts...)
	if p.opts.CacheLegs {
		coster = tsp.Memoize(coster, len(points))
	}
	res, err := tsp.BruteForce(ctx, len(points), coster, tsp.Options{
		ReturnToDepot: p.opts.ReturnTrip,
		MaxStops:      p.opts.MaxStops,
		TimeLimit:     p.opts.TimeLimit,
		Workers:       p.opts.Workers,
	})
	if err != nil {
		return nil, err
	}
	ordered := make([]floorplan.AccessPoint, 0, len(stops))
	for _, i := range res.Order {
		if i != tsp.Depot {
			ordered = append(ordered, stops[i])
		}
	}
	log.DebugContext(ctx, "visiting order chosen",
		slog.Int("evaluated", res.Evaluated), slog.Float64("cost", res.Cost))

	// 7) Legs.
	legs, cost, err := Assemble(g, entrance, ordered, p.opts.ReturnTrip, astarOpts...)
	if err != nil {
		return nil, err
	}

	route := &Route{
		RequestID:  reqID,
		StoreID:    storeID,
		Entrance:   entrance,
		Stops:      ordered,
		Legs:       legs,
		Cost:       cost,
		ReturnTrip: p.opts.ReturnTrip,
	}
	log.InfoContext(ctx, "route computed",
		slog.Int("products", len(ordered)),
		slog.Int("legs", len(legs)),
		slog.Int("cost", cost),
		slog.Duration("elapsed", time.Since(started)))

	return route, nil
}

// precheck rejects lists with an access point in a region the entrance cannot
// reach, before any order is scored.
func (p *Planner) precheck(g *gridgraph.Grid, entrance floorplan.Point, stops []floorplan.AccessPoint) error {
	if len(stops) == 0 {
		return nil
	}
	labels, _ := g.Regions()
	reachable := g.RegionsFrom(labels, entrance.X, entrance.Y, p.opts.Connectivity)
	for _, s := range stops {
		if !slices.Contains(reachable, labels[g.Index(s.X, s.Y)]) {
			return fmt.Errorf("%w: product %q at %s is walled off from the entrance %s",
				tsp.ErrNoFeasibleRoute, s.ProductID, s.Point, entrance)
		}
	}

	return nil
}

// newRequestID returns a time-ordered UUID, falling back to a random one.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
