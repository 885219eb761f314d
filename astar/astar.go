// Package astar implements A* search on an immutable navigable grid.
//
// Notes on implementation choices:
//
//   - The grid is read-only; all mutable bookkeeping lives in a runner that is
//     allocated per call and dropped when the call returns.
//   - We use a "lazy" decrease-key strategy: a better score pushes a duplicate
//     heap entry and stale entries are skipped when popped (closed check).
//   - Ties on f are broken by insertion order so results are deterministic.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/gridgraph"
)

// FindPath computes a shortest walking path from start to goal on g.
//
// Returns:
//
//   - path: cells from start to goal inclusive; [start] when start == goal;
//     nil when the goal cannot be reached (including a blocked goal).
//   - err:  ErrNilGrid or ErrOutOfBounds for invalid input only.
//
// The walkability of start itself is not checked, so a search may begin on a
// blocked cell (for example an entrance that is also registered as a shelf).
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func FindPath(g *gridgraph.Grid, start, goal floorplan.Point, opts ...Option) ([]floorplan.Point, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !g.InBounds(goal.X, goal.Y) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, goal)
	}

	// 3) Trivial leg
	if start == goal {
		return []floorplan.Point{start}, nil
	}

	// 4) Fresh arena for this call
	r := newRunner(g, cfg, goal)
	r.init(start)

	return r.process(), nil
}

// Length returns the walked-cell count of the shortest path, or -1 when the
// goal is unreachable.
func Length(g *gridgraph.Grid, start, goal floorplan.Point, opts ...Option) (int, error) {
	path, err := FindPath(g, start, goal, opts...)
	if err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return -1, nil
	}

	return len(path), nil
}

const (
	stateNew uint8 = iota
	stateOpen
	stateClosed
)

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *gridgraph.Grid        // read-only grid
	conn   gridgraph.Connectivity // movement policy
	h      Heuristic              // distance estimate to goal
	goal   floorplan.Point        // search target
	gScore []float64              // best known cost from start, by cell index
	parent []int                  // predecessor cell index, -1 for none
	state  []uint8                // stateNew / stateOpen / stateClosed
	pq     nodePQ                 // open list
	seq    uint64                 // insertion counter for tie-breaking
	nbuf   []floorplan.Point      // neighbor scratch buffer
}

func newRunner(g *gridgraph.Grid, cfg Options, goal floorplan.Point) *runner {
	n := g.Len()
	r := &runner{
		g:      g,
		conn:   cfg.Connectivity,
		h:      cfg.heuristic(),
		goal:   goal,
		gScore: make([]float64, n),
		parent: make([]int, n),
		state:  make([]uint8, n),
		pq:     make(nodePQ, 0, 64),
		nbuf:   make([]floorplan.Point, 0, 8),
	}
	for i := range r.gScore {
		r.gScore[i] = math.Inf(1)
		r.parent[i] = -1
	}

	return r
}

// init seeds the open list with the start cell at g=0.
func (r *runner) init(start floorplan.Point) {
	idx := r.g.Index(start.X, start.Y)
	r.gScore[idx] = 0
	r.state[idx] = stateOpen
	heap.Init(&r.pq)
	r.push(idx, 0)
}

// process is the main A* loop. It returns the reconstructed path once the goal
// is popped, or nil when the open list runs dry.
func (r *runner) process() []floorplan.Point {
	goalIdx := r.g.Index(r.goal.X, r.goal.Y)
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-f entry; skip stale duplicates.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx
		if r.state[u] == stateClosed {
			continue
		}
		r.state[u] = stateClosed

		// 2) Goal reached: rebuild the path from parents.
		if u == goalIdx {
			return r.backtrace(u)
		}

		// 3) Relax neighbors.
		r.relax(u)
	}

	return nil
}

// relax tries to improve every walkable neighbor of u.
func (r *runner) relax(u int) {
	ux, uy := r.g.Coordinate(u)
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], ux, uy, r.conn)
	for _, p := range r.nbuf {
		v := r.g.Index(p.X, p.Y)
		if r.state[v] == stateClosed {
			continue
		}
		step := 1.0
		if p.X != ux && p.Y != uy {
			step = math.Sqrt2
		}
		ng := r.gScore[u] + step
		// strict < : an equal-cost route never replaces the first parent found
		if r.state[v] == stateOpen && ng >= r.gScore[v] {
			continue
		}
		r.gScore[v] = ng
		r.parent[v] = u
		r.state[v] = stateOpen
		r.push(v, ng+r.h(abs(p.X-r.goal.X), abs(p.Y-r.goal.Y)))
	}
}

func (r *runner) push(idx int, f float64) {
	heap.Push(&r.pq, &nodeItem{idx: idx, f: f, seq: r.seq})
	r.seq++
}

// backtrace walks parents from the goal back to the start and reverses.
func (r *runner) backtrace(goal int) []floorplan.Point {
	var path []floorplan.Point
	for at := goal; at >= 0; at = r.parent[at] {
		x, y := r.g.Coordinate(at)
		path = append(path, floorplan.Point{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// nodeItem is one open-list entry.
type nodeItem struct {
	idx int     // cell index
	f   float64 // g + h at push time
	seq uint64  // insertion order
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by insertion order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f ascending; equal f keeps insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
