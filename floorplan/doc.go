// Package floorplan describes a store's registered floor-plan cells and the
// shopping-list data that the route planner consumes.
//
// What:
//
//   - Point: integer grid coordinates (X, Y).
//   - Cell: a registered cell with a CellType (entrance, shelf, fridge,
//     checkout counter, obstacle).
//   - FloorPlan: a store identifier, grid dimensions and an ordered slice of
//     registered cells. Order matters: Entrance returns the first entrance.
//   - ShelfTarget / AccessPoint: a product bound to its shelf cell, and the
//     walkable cell a shopper actually walks to.
//
// Why:
//
//   - Floor plans are owned by an external map store; this package is the
//     read-only view the planner builds its navigable grid from.
//
// Errors:
//
//   - ErrNoFloorPlan: the store has no registered floor plan (or it is empty).
//   - ErrNoEntrance:  no cell of type entrance is registered.
//   - ErrCellType:    an unknown cell-type label was decoded.
//   - ErrDimensions:  width or height is not positive.
package floorplan
