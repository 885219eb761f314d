// Package tsp - validation shared by the sequential and parallel solvers.
//
// Deterministic, side-effect free; only sentinel errors from types.go.
package tsp

import "fmt"

// validate checks n, the coster and Options before any leg is priced.
//
// Contract:
//   - n ≥ 0; n == 0 is legal (only the optional depot→depot leg is priced).
//   - coster non-nil.
//   - MaxStops, TimeLimit, Workers non-negative.
//   - n ≤ MaxStops when MaxStops > 0.
//
// Complexity: O(1).
func validate(n int, coster LegCoster, opts Options) error {
	if n < 0 || opts.MaxStops < 0 || opts.TimeLimit < 0 || opts.Workers < 0 {
		return ErrBadOptions
	}
	if coster == nil {
		return ErrNilCoster
	}
	if opts.MaxStops > 0 && n > opts.MaxStops {
		return fmt.Errorf("%w: %d stops, limit %d", ErrTooManyStops, n, opts.MaxStops)
	}

	return nil
}
