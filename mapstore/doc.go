// Package mapstore persists store floor plans.
//
// Three Store implementations share one contract:
//
//   - SQLite: a modernc.org/sqlite database whose schema is managed by
//     embedded golang-migrate migrations. Cell order is kept in a position
//     column because entrance lookup depends on it.
//   - Dir: one YAML file per store (<store id>.yaml) in a directory, the
//     format produced by floorplan.Encode.
//   - Memory: a process-local map, for tests and one-shot CLI runs.
//
// FloorPlan returns floorplan.ErrNoFloorPlan (wrapped with the store id) for
// unknown stores. SaveFloorPlan creates or fully replaces a plan. StoreIDs
// lists stores in ascending order. Returned plans are copies; callers may
// modify them freely.
package mapstore
