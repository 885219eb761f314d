// Package astar defines core types and configuration options
// for grid A* search.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/shoproute/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint out of grid bounds")
)

// Heuristic estimates the remaining cost from a cell to the goal given the
// absolute coordinate deltas dx, dy.
type Heuristic func(dx, dy int) float64

// Manhattan is dx + dy; admissible for orthogonal movement.
func Manhattan(dx, dy int) float64 {
	return float64(dx + dy)
}

// Octile is the exact cost of an unobstructed walk mixing diagonal (√2) and
// orthogonal (1) steps; admissible for 8-directional movement.
func Octile(dx, dy int) float64 {
	const f = math.Sqrt2 - 1
	if dx < dy {
		return f*float64(dx) + float64(dy)
	}

	return f*float64(dy) + float64(dx)
}

// Options configures one search.
//
// Connectivity – gridgraph.Conn8 (diagonals without corner cutting) or gridgraph.Conn4.
// Heuristic    – distance estimate; nil selects Octile for Conn8 and Manhattan for Conn4.
type Options struct {
	Connectivity gridgraph.Connectivity
	Heuristic    Heuristic
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithConnectivity selects orthogonal-only or corner-safe diagonal movement.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = c
	}
}

// WithHeuristic overrides the heuristic. A nil h restores the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// DefaultOptions returns the movement policy of the store floor:
//   - Connectivity: gridgraph.Conn8 (diagonals only when both orthogonals are walkable).
//   - Heuristic:    nil (resolved to Octile).
func DefaultOptions() Options {
	return Options{
		Connectivity: gridgraph.Conn8,
	}
}

// heuristic returns the configured heuristic or the default for the connectivity.
func (o Options) heuristic() Heuristic {
	if o.Heuristic != nil {
		return o.Heuristic
	}
	if o.Connectivity == gridgraph.Conn8 {
		return Octile
	}

	return Manhattan
}
