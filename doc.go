// Package shoproute plans walking routes through a store floor plan.
//
// Given a store's floor plan and a shopping list, the engine finds the order
// in which to pick up the products that minimizes the walked distance from
// the entrance, and returns the cell-by-cell path for every leg.
//
// The work is split into small packages, each usable on its own:
//
//	floorplan/  — cell kinds, floor plans, shopping lists, YAML/JSON codecs
//	gridgraph/  — walkability grid built from a floor plan, neighbours, regions
//	access/     — picks the walkable cell from which a shelf is picked up
//	astar/      — shortest cell path between two points (octile, corner-safe)
//	tsp/        — exhaustive visiting order search over a leg coster
//	planner/    — ComputeRoute: the pipeline tying the above together
//	mapstore/   — floor plan storage (memory, YAML directory, SQLite)
//	render/     — ASCII rendering of plans and routes
//
// The shoproute command (cmd/shoproute) exposes the planner and the stores:
//
//	shoproute map import --db store.db --store 1 plan.yaml
//	shoproute route --db store.db --store 1 --list list.yaml
//
// Cost model: a leg costs the number of cells on its path, both ends
// included, so a route's cost is the sum of its legs' cell counts.
package shoproute
