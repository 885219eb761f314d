package tsp

import (
	"errors"
	"time"
)

// Sentinel errors returned by the optimizer.
var (
	// ErrNoFeasibleRoute is returned when every visiting order contains an unreachable leg.
	ErrNoFeasibleRoute = errors.New("tsp: no feasible route")

	// ErrTooManyStops is returned when the stop count exceeds Options.MaxStops.
	ErrTooManyStops = errors.New("tsp: too many stops for exhaustive search")

	// ErrTimeLimit is returned when Options.TimeLimit elapses before enumeration completes.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrNilCoster is returned when no LegCoster is supplied.
	ErrNilCoster = errors.New("tsp: leg coster is nil")

	// ErrBadOptions is returned for negative MaxStops, TimeLimit or Workers, or negative n.
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrStopIndex is returned by a LegCoster asked for a stop it does not know.
	ErrStopIndex = errors.New("tsp: stop index out of range")
)

// Depot is the stop index of the route's start and end (the store entrance).
const Depot = -1

// DefaultMaxStops caps exhaustive search at 8! = 40320 orderings.
const DefaultMaxStops = 8

// Options tunes BruteForce.
type Options struct {
	// ReturnToDepot adds a final leg back to the depot and appends Depot to Result.Order.
	ReturnToDepot bool

	// MaxStops rejects instances with more stops (ErrTooManyStops). 0 disables the cap.
	MaxStops int

	// TimeLimit bounds the enumeration (ErrTimeLimit). 0 disables the limit.
	TimeLimit time.Duration

	// Workers scores permutations in parallel when > 1. The result is identical
	// to the sequential one; the coster must then be safe for concurrent use.
	Workers int
}

// DefaultOptions returns the reference behavior: return trip on, MaxStops =
// DefaultMaxStops, no time limit, sequential scoring.
func DefaultOptions() Options {
	return Options{
		ReturnToDepot: true,
		MaxStops:      DefaultMaxStops,
	}
}

// Result holds the winning visiting order.
type Result struct {
	// Order lists stop indices in visiting order. With ReturnToDepot it ends with Depot.
	Order []int

	// Cost is the summed leg cost of Order.
	Cost float64

	// Evaluated is the number of permutations scored.
	Evaluated int
}

// LegCoster prices the leg between two stops. from or to may be Depot.
// An unreachable leg costs math.Inf(1); errors are reserved for invalid input.
type LegCoster interface {
	LegCost(from, to int) (float64, error)
}

// LegCosterFunc adapts a function to LegCoster.
type LegCosterFunc func(from, to int) (float64, error)

// LegCost calls f(from, to).
func (f LegCosterFunc) LegCost(from, to int) (float64, error) {
	return f(from, to)
}
