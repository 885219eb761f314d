// Package planner turns a shopping list into a walking route through a store.
//
// What:
//
//	ComputeRoute runs one linear pipeline per request:
//
//	  1. fetch the store's floor plan (the only I/O step);
//	  2. build the navigable grid (gridgraph.Build);
//	  3. locate the entrance (first entrance cell in plan order);
//	  4. read the shelf location of every listed product and check it lies
//	     on the grid;
//	  5. pick a walkable access point per shelf (access.ResolveAll, measured
//	     from access.Origin);
//	  6. choose the visiting order (tsp.BruteForce over A* leg lengths);
//	  7. assemble the legs (Assemble), re-running A* for every leg.
//
//	The first failure aborts the request and is returned wrapped; callers
//	distinguish failures with errors.Is against floorplan.ErrNoFloorPlan,
//	floorplan.ErrNoEntrance, floorplan.ErrMissingLocation,
//	gridgraph.ErrOutOfBounds, access.ErrUnreachable and tsp.ErrNoFeasibleRoute.
//
// Cost:
//
//	A leg costs the number of cells on its path, both ends included, so
//	Route.Cost is the sum of len(Leg.Path). The return leg, when requested,
//	is part of the route and of the cost.
//
// Concurrency:
//
//	A Planner holds no per-request state; ComputeRoute may be called from any
//	number of goroutines as long as the MapStore allows it.
//
// Logging:
//
//	Every stage is logged at Debug and the finished route at Info, all tagged
//	with the route's request id. The default logger discards everything.
package planner
