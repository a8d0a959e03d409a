// Package search - parallel multistart: independent restarts fanned out
// over workers.
//
// Concurrency discipline: share nothing; clone to parallelize. Every
// worker receives its own candidate clone (worker 0 starts from the given
// vector, the rest from random restarts), its own derived seed, and builds
// its own iterators and samplers — no live component crosses a goroutine
// boundary. Workers run under an errgroup; the first error cancels the
// remaining starts.
//
// Determinism: per-worker seeds derive from Options.Seed before any
// goroutine launches, and ties between equal costs resolve to the lowest
// worker index — a fixed (seed, workers) pair reproduces the result
// exactly, regardless of scheduling.
//
// Complexity: workers × the per-solver cost; memory grows linearly with
// the worker count.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlopt/bitvec"
	"github.com/katalvlaran/lvlopt/gaussian"
)

// Multistart runs opts.Algo from `workers` independent starting points and
// returns the best result. The start vector seeds worker 0 verbatim;
// workers 1..n-1 begin from deterministically derived random vectors.
func Multistart(ctx context.Context, obj Objective, workers int, start *bitvec.BitVector, opts Options) (Result, error) {
	if workers < 1 {
		return Result{}, ErrBadWorkers
	}
	if err := validateCommon(obj, start, opts); err != nil {
		return Result{}, err
	}
	if opts.Algo != HillClimb && opts.Algo != Annealing {
		return Result{}, ErrUnsupportedAlgo
	}

	// Derive all worker inputs up front, on one goroutine: seeds first,
	// then starting vectors, so the fan-out itself is pure.
	var (
		base   = gaussian.NewSource(opts.Seed)
		starts = make([]*bitvec.BitVector, workers)
		seeds  = make([]int64, workers)
	)
	starts[0] = start.Clone()
	for w := 1; w < workers; w++ {
		src := gaussian.DeriveSource(base, uint64(w))
		rv, err := bitvec.NewRandom(start.Len(), src)
		if err != nil {
			return Result{}, err
		}
		starts[w] = rv
	}
	for w := 0; w < workers; w++ {
		seeds[w] = int64(uint64(base.Uint32())<<32 | uint64(base.Uint32()))
		if seeds[w] == 0 {
			seeds[w] = 1 // keep the explicit-seed path, not the default-stream one
		}
	}

	results := make([]Result, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			wopts := opts
			wopts.Seed = seeds[w]

			var (
				r   Result
				err error
			)
			switch opts.Algo {
			case Annealing:
				r, err = Anneal(obj, starts[w], wopts)
			default:
				r, err = Climb(obj, starts[w], wopts)
			}
			if err != nil {
				return err
			}
			results[w] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Lowest cost wins; ties go to the lowest worker index.
	bestIdx := 0
	for w := 1; w < workers; w++ {
		if results[w].Cost < results[bestIdx].Cost {
			bestIdx = w
		}
	}

	out := results[bestIdx]
	for w := range results {
		if w != bestIdx {
			out.Evals += results[w].Evals
		}
	}

	return out, nil
}
