// Package tsp — exhaustive permutation search.
//
// BruteForce enumerates every visiting order of n stops in lexicographic index
// order, scores each one with a LegCoster and keeps the first strict minimum.
//
// Determinism:
//   - Sequential: permutations are generated by the classic next-permutation
//     step, which yields exactly the lexicographic sequence.
//   - Parallel: the sequence is split into n contiguous blocks by first stop.
//     Each block keeps its own first minimum; the reduction prefers the lower
//     cost and, on ties, the lower block. The answer equals the sequential one.
//
// Pruning: a partial sum that already reaches the incumbent cost cannot win
// under strict <, so the permutation is abandoned early. Leg costs are never
// negative, which keeps the pruning exact.
package tsp

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"
)

// checkEvery is the cancellation check period, in permutations.
const checkEvery = 64

// BruteForce returns the cheapest order in which to visit stops 0..n-1,
// starting at Depot and, with opts.ReturnToDepot, ending there too.
//
// Errors:
//   - ErrBadOptions, ErrNilCoster, ErrTooManyStops: see validate.
//   - ErrNoFeasibleRoute when every order contains an unreachable leg.
//   - ErrTimeLimit when opts.TimeLimit elapses; ctx.Err() when ctx ends first.
//   - Any error returned by coster, unchanged.
//
// Complexity: O(n!·n) leg lookups in the worst case, O(n) memory per worker.
func BruteForce(ctx context.Context, n int, coster LegCoster, opts Options) (Result, error) {
	if err := validate(n, coster, opts); err != nil {
		return Result{}, err
	}

	parent := ctx
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	var (
		best Result
		err  error
	)
	if opts.Workers > 1 && n > 1 {
		best, err = bruteForceParallel(ctx, n, coster, opts)
	} else {
		perm := identity(n)
		s := newSearch(ctx, coster, opts.ReturnToDepot)
		err = s.run(perm, 0)
		best = s.result()
	}
	if err != nil {
		return Result{}, interruption(parent, err)
	}
	if best.Order == nil {
		return Result{Evaluated: best.Evaluated}, ErrNoFeasibleRoute
	}

	return best, nil
}

// bruteForceParallel scores one block of permutations per first stop.
func bruteForceParallel(ctx context.Context, n int, coster LegCoster, opts Options) (Result, error) {
	blocks := make([]Result, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for first := 0; first < n; first++ {
		g.Go(func() error {
			// Block "first": the fixed head followed by the remaining stops in
			// ascending order, i.e. the first permutation of that block.
			perm := make([]int, 0, n)
			perm = append(perm, first)
			for i := 0; i < n; i++ {
				if i != first {
					perm = append(perm, i)
				}
			}
			s := newSearch(gctx, coster, opts.ReturnToDepot)
			if err := s.run(perm, 1); err != nil {
				return err
			}
			blocks[first] = s.result()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var best Result
	for _, b := range blocks {
		evaluated := best.Evaluated + b.Evaluated
		if b.Order != nil && (best.Order == nil || b.Cost < best.Cost) {
			best = b
		}
		best.Evaluated = evaluated
	}

	return best, nil
}

// search holds per-worker enumeration state.
type search struct {
	ctx       context.Context
	coster    LegCoster
	closed    bool
	bestCost  float64
	bestOrder []int
	evaluated int
}

func newSearch(ctx context.Context, coster LegCoster, closed bool) *search {
	return &search{
		ctx:      ctx,
		coster:   coster,
		closed:   closed,
		bestCost: math.Inf(1),
	}
}

// run scores perm and every lexicographic successor that keeps perm[:fixed]
// unchanged.
func (s *search) run(perm []int, fixed int) error {
	for {
		if s.evaluated%checkEvery == 0 {
			if err := s.ctx.Err(); err != nil {
				return err
			}
		}
		s.evaluated++

		cost, ok, err := s.score(perm)
		if err != nil {
			return err
		}
		if ok && cost < s.bestCost {
			s.bestCost = cost
			s.bestOrder = append(s.bestOrder[:0], perm...)
		}

		if !nextPermutation(perm[fixed:]) {
			return nil
		}
	}
}

// score sums the legs of perm. ok is false when a leg is unreachable or the
// partial sum already reaches the incumbent.
func (s *search) score(perm []int) (float64, bool, error) {
	var (
		total float64
		prev  = Depot
	)
	for _, stop := range perm {
		c, err := s.coster.LegCost(prev, stop)
		if err != nil {
			return 0, false, err
		}
		total += c
		if math.IsInf(c, 1) || total >= s.bestCost {
			return 0, false, nil
		}
		prev = stop
	}
	if s.closed {
		c, err := s.coster.LegCost(prev, Depot)
		if err != nil {
			return 0, false, err
		}
		total += c
		if math.IsInf(c, 1) {
			return 0, false, nil
		}
	}

	return total, true, nil
}

// result converts the incumbent to a Result; Order is nil when nothing was feasible.
func (s *search) result() Result {
	r := Result{Evaluated: s.evaluated}
	if math.IsInf(s.bestCost, 1) {
		return r
	}
	r.Cost = s.bestCost
	r.Order = make([]int, 0, len(s.bestOrder)+1)
	r.Order = append(r.Order, s.bestOrder...)
	if s.closed {
		r.Order = append(r.Order, Depot)
	}

	return r
}

// interruption maps a context error to the caller's vocabulary: the parent's
// own cancellation is reported as is, the internal deadline as ErrTimeLimit.
func interruption(parent context.Context, err error) error {
	if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}
	if perr := parent.Err(); perr != nil {
		return perr
	}

	return ErrTimeLimit
}

// identity returns [0, 1, …, n-1].
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed. On false p is left in its last (descending) order.
func nextPermutation(p []int) bool {
	// 1) Find the rightmost ascent p[i] < p[i+1].
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// 2) Swap p[i] with the rightmost element greater than it.
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	// 3) Reverse the suffix to its smallest arrangement.
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
