// Package tsp chooses the order in which a shopper visits the access points of
// a shopping list.
//
// It solves the path (or, with a return trip, cycle) variant of the
// Travelling Salesman Problem exactly, by enumerate-and-score:
//
//   - BruteForce walks all n! permutations of the stops in lexicographic index
//     order. Each permutation starts at the depot (the store entrance), sums
//     the cost of every leg, and optionally adds a leg back to the depot.
//
//   - A leg cost of math.Inf(1) means "unreachable": the permutation is
//     abandoned and can never win.
//
//   - Ties keep the first minimum in enumeration order (strict <).
//
//   - If no permutation is finite, ErrNoFeasibleRoute is returned.
//
// Leg costs come from a LegCoster. PathCoster runs a fresh A* search per leg
// and reports the walked-cell count; Memoize wraps any coster with a
// concurrency-safe cache, which gives identical results because A* is
// deterministic.
//
// Complexity:
//
//   - Time:   O(n! · n · leg), leg = A* cost or O(1) when memoized.
//   - Memory: O(n) per worker plus O(n²) for a memoized coster.
//
// The factorial growth is a hard ceiling, not a defect: shopping lists are
// human-sized. Options.MaxStops rejects lists that would not finish in
// reasonable time (ErrTooManyStops) and Options.TimeLimit bounds wall-clock
// time (ErrTimeLimit). Larger instances need a different algorithm.
package tsp
