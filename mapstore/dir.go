package mapstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/katalvlaran/shoproute/floorplan"
)

const planExt = ".yaml"

// Dir stores one YAML floor plan per file in a directory.
type Dir struct {
	root string
}

// OpenDir uses root as the plan directory, creating it if needed.
func OpenDir(root string) (*Dir, error) {
	if root == "" {
		return nil, errors.New("mapstore: plan directory is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("mapstore: create %s: %w", root, err)
	}

	return &Dir{root: root}, nil
}

func (d *Dir) path(id string) string {
	return filepath.Join(d.root, id+planExt)
}

// FloorPlan loads <root>/<storeID>.yaml. A plan without store_id takes the
// file's id.
func (d *Dir) FloorPlan(ctx context.Context, storeID string) (*floorplan.FloorPlan, error) {
	if err := checkID(storeID); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fp, err := floorplan.Load(d.path(storeID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(storeID)
	}
	if err != nil {
		return nil, err
	}
	if fp.StoreID == "" {
		fp.StoreID = storeID
	}

	return fp, nil
}

// SaveFloorPlan writes the plan to a temporary file and renames it over the
// previous one.
func (d *Dir) SaveFloorPlan(ctx context.Context, plan *floorplan.FloorPlan) error {
	if err := checkPlan(plan); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.root, "."+plan.StoreID+"-*")
	if err != nil {
		return fmt.Errorf("mapstore: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = floorplan.Encode(tmp, plan); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("mapstore: %w", err)
	}
	if err = os.Rename(tmp.Name(), d.path(plan.StoreID)); err != nil {
		return fmt.Errorf("mapstore: %w", err)
	}

	return nil
}

// StoreIDs lists the ids of every *.yaml file in the directory.
func (d *Dir) StoreIDs(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("mapstore: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != planExt {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, planExt))
	}
	slices.Sort(ids)

	return ids, nil
}

// Close is a no-op.
func (d *Dir) Close() error { return nil }
