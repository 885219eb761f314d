// Package mapstore_test runs one behavioral contract against every Store.
package mapstore_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/mapstore"
)

func samplePlan(id string) *floorplan.FloorPlan {
	return &floorplan.FloorPlan{
		StoreID: id,
		Width:   10,
		Height:  8,
		Cells: []floorplan.Cell{
			{X: 4, Y: 4, Type: floorplan.Shelf},
			{X: 0, Y: 0, Type: floorplan.Entrance},
			{X: 9, Y: 7, Type: floorplan.CheckoutCounter},
			{X: 2, Y: 5, Type: floorplan.Fridge},
			{X: 9, Y: 0, Type: floorplan.Entrance},
			{X: 5, Y: 5, Type: floorplan.Obstacle},
		},
	}
}

// stores opens a fresh instance of every implementation.
func stores(t *testing.T) map[string]mapstore.Store {
	t.Helper()
	ctx := context.Background()

	sq, err := mapstore.OpenSQLite(ctx, filepath.Join(t.TempDir(), "plans.db"), nil)
	require.NoError(t, err)
	dir, err := mapstore.OpenDir(filepath.Join(t.TempDir(), "plans"))
	require.NoError(t, err)

	out := map[string]mapstore.Store{
		"sqlite": sq,
		"yaml":   dir,
		"memory": mapstore.NewMemory(),
	}
	t.Cleanup(func() {
		for _, s := range out {
			_ = s.Close()
		}
	})

	return out
}

func TestStore_Contract(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			// 1) Unknown store.
			_, err := s.FloorPlan(ctx, "nowhere")
			require.ErrorIs(t, err, floorplan.ErrNoFloorPlan)

			// 2) Round trip keeps cell order.
			want := samplePlan("store-1")
			require.NoError(t, s.SaveFloorPlan(ctx, want))
			got, err := s.FloorPlan(ctx, "store-1")
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("plan mismatch (-want +got):\n%s", diff)
			}
			e, err := got.Entrance()
			require.NoError(t, err)
			assert.Equal(t, floorplan.Point{X: 0, Y: 0}, e)

			// 3) Replace, not merge.
			repl := &floorplan.FloorPlan{StoreID: "store-1", Cells: []floorplan.Cell{
				{X: 1, Y: 1, Type: floorplan.Entrance},
			}}
			require.NoError(t, s.SaveFloorPlan(ctx, repl))
			got, err = s.FloorPlan(ctx, "store-1")
			require.NoError(t, err)
			if diff := cmp.Diff(repl, got); diff != "" {
				t.Fatalf("replaced plan mismatch (-want +got):\n%s", diff)
			}

			// 4) Listing.
			require.NoError(t, s.SaveFloorPlan(ctx, samplePlan("a-store")))
			ids, err := s.StoreIDs(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a-store", "store-1"}, ids)
		})
	}
}

func TestStore_RejectsBadIDs(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, id := range []string{"", "  ", "../etc", `a\b`} {
				err := s.SaveFloorPlan(ctx, samplePlan(id))
				require.ErrorIs(t, err, mapstore.ErrStoreID, "id %q", id)
			}
			require.ErrorIs(t, s.SaveFloorPlan(ctx, nil), mapstore.ErrStoreID)
		})
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			plan := samplePlan("s")
			require.NoError(t, s.SaveFloorPlan(ctx, plan))
			plan.Cells[0].Type = floorplan.Entrance

			got, err := s.FloorPlan(ctx, "s")
			require.NoError(t, err)
			assert.Equal(t, floorplan.Shelf, got.Cells[0].Type)
			got.Cells[1].Type = floorplan.Obstacle

			again, err := s.FloorPlan(ctx, "s")
			require.NoError(t, err)
			assert.Equal(t, floorplan.Entrance, again.Cells[1].Type)
		})
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := mapstore.NewMemory(samplePlan("s"))
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := m.FloorPlan(ctx, "s")
				assert.NoError(t, err)
				assert.NoError(t, m.SaveFloorPlan(ctx, samplePlan("s")))
			}
		}()
	}
	wg.Wait()
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()
	for _, d := range []string{mapstore.DriverSQLite, mapstore.DriverYAML, mapstore.DriverMemory} {
		path := filepath.Join(t.TempDir(), "store")
		s, err := mapstore.Open(ctx, d, path, nil)
		require.NoError(t, err, d)
		require.NoError(t, s.Close())
	}
	_, err := mapstore.Open(ctx, "postgres", "", nil)
	require.ErrorIs(t, err, mapstore.ErrDriver)
}

func TestSQLite_ReopenKeepsDataAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "plans.db")

	s, err := mapstore.OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, s.SaveFloorPlan(ctx, samplePlan("kept")))
	require.NoError(t, s.Close())

	s, err = mapstore.OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	defer s.Close()

	v, dirty, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)

	got, err := s.FloorPlan(ctx, "kept")
	require.NoError(t, err)
	assert.Len(t, got.Cells, 6)
}

func TestDir_FileWithoutStoreID(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	d, err := mapstore.OpenDir(root)
	require.NoError(t, err)

	plan := samplePlan("")
	plan.StoreID = "x"
	require.NoError(t, d.SaveFloorPlan(ctx, plan))
	require.NoError(t, writeFile(filepath.Join(root, "bare.yaml"), "cells:\n  - {x: 0, y: 0, type: Entrada}\n"))

	got, err := d.FloorPlan(ctx, "bare")
	require.NoError(t, err)
	assert.Equal(t, "bare", got.StoreID)
	assert.Equal(t, floorplan.Entrance, got.Cells[0].Type)

	ids, err := d.StoreIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bare", "x"}, ids)
}
