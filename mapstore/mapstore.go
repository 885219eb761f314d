package mapstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/shoproute/floorplan"
)

// Sentinel errors returned by every Store.
var (
	// ErrStoreID indicates an empty or malformed store id.
	ErrStoreID = errors.New("mapstore: invalid store id")

	// ErrDriver indicates an unknown driver name passed to Open.
	ErrDriver = errors.New("mapstore: unknown driver")
)

// Driver names accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverYAML   = "yaml"
	DriverMemory = "memory"
)

// Store reads and writes floor plans keyed by store id.
type Store interface {
	FloorPlan(ctx context.Context, storeID string) (*floorplan.FloorPlan, error)
	SaveFloorPlan(ctx context.Context, plan *floorplan.FloorPlan) error
	StoreIDs(ctx context.Context) ([]string, error)
	Close() error
}

// Open returns the Store for driver. path is the database file for
// DriverSQLite, the plan directory for DriverYAML and ignored for
// DriverMemory.
func Open(ctx context.Context, driver, path string, log *slog.Logger) (Store, error) {
	switch driver {
	case DriverSQLite:
		return OpenSQLite(ctx, path, log)
	case DriverYAML:
		return OpenDir(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrDriver, driver)
	}
}

// checkID rejects ids that cannot name a row or a file.
func checkID(id string) error {
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrStoreID, id)
	}

	return nil
}

// checkPlan validates a plan about to be saved.
func checkPlan(plan *floorplan.FloorPlan) error {
	if plan == nil {
		return fmt.Errorf("%w: nil plan", ErrStoreID)
	}

	return checkID(plan.StoreID)
}

func notFound(id string) error {
	return fmt.Errorf("store %q: %w", id, floorplan.ErrNoFloorPlan)
}

// clonePlan deep-copies fp.
func clonePlan(fp *floorplan.FloorPlan) *floorplan.FloorPlan {
	out := *fp
	out.Cells = append([]floorplan.Cell(nil), fp.Cells...)

	return &out
}
