package mapstore

import (
	"context"
	"slices"
	"sync"

	"github.com/katalvlaran/shoproute/floorplan"
)

// Memory is an in-process Store. The zero value is not usable; call NewMemory.
type Memory struct {
	mu    sync.RWMutex
	plans map[string]*floorplan.FloorPlan
}

// NewMemory returns an empty Memory store, optionally preloaded with plans.
func NewMemory(plans ...*floorplan.FloorPlan) *Memory {
	m := &Memory{plans: make(map[string]*floorplan.FloorPlan, len(plans))}
	for _, p := range plans {
		m.plans[p.StoreID] = clonePlan(p)
	}

	return m
}

// FloorPlan returns a copy of the stored plan.
func (m *Memory) FloorPlan(_ context.Context, storeID string) (*floorplan.FloorPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plans[storeID]
	if !ok {
		return nil, notFound(storeID)
	}

	return clonePlan(p), nil
}

// SaveFloorPlan stores a copy of plan under plan.StoreID.
func (m *Memory) SaveFloorPlan(_ context.Context, plan *floorplan.FloorPlan) error {
	if err := checkPlan(plan); err != nil {
		return err
	}
	m.mu.Lock()
	m.plans[plan.StoreID] = clonePlan(plan)
	m.mu.Unlock()

	return nil
}

// StoreIDs lists the stored ids in ascending order.
func (m *Memory) StoreIDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	ids := make([]string, 0, len(m.plans))
	for id := range m.plans {
		ids = append(ids, id)
	}
	m.mu.RUnlock()
	slices.Sort(ids)

	return ids, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
