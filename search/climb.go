// Package search - hill climbing over the bit-flip neighborhood.
//
// Climb explores the up-to-MaxBits flip neighborhood of the current
// candidate through a mutate.BitFlip iterator, in the canonical protocol:
// advance, evaluate, savepoint on improvement, rollback exactly once at
// loop exit. Rollback lands on the last savepoint, so a pass ends at the
// first improving neighbor (FirstImprovement) or the best one
// (SteepestDescent); passes repeat until a local optimum or MaxPasses.
//
// Design:
//   - The input vector is cloned once up front; neighbors are applied and
//     undone in place — no per-neighbor allocation.
//   - Acceptance is strict: cost < best − Eps. Eps guards against FP noise
//     masquerading as improvement.
//   - Deterministic: the neighborhood order is fixed by the iterator, so
//     identical inputs yield identical trajectories.
//
// Complexity: O(passes · Σ C(n,s)) objective evaluations, s = 1..MaxBits;
// O(n/32) extra space for the working clone.
package search

import (
	"github.com/katalvlaran/lvlopt/bitvec"
	"github.com/katalvlaran/lvlopt/mutate"
)

// Climb runs hill climbing from start and returns the best candidate
// found. The start vector itself is never modified.
func Climb(obj Objective, start *bitvec.BitVector, opts Options) (Result, error) {
	if err := validateCommon(obj, start, opts); err != nil {
		return Result{}, err
	}
	if opts.Mode != FirstImprovement && opts.Mode != SteepestDescent {
		return Result{}, ErrBadMode
	}
	if opts.MaxPasses < 0 {
		return Result{}, ErrBadPasses
	}

	v := start.Clone()
	res := Result{Best: v}
	best := obj.Cost(v)
	res.Evals = 1

	// Degenerate candidate: nothing to flip, the start is the optimum.
	if v.Len() == 0 {
		res.Cost = round1e9(best)
		return res, nil
	}

	for pass := 1; opts.MaxPasses == 0 || pass <= opts.MaxPasses; pass++ {
		it, err := mutate.NewBitFlip(v, opts.MaxBits)
		if err != nil {
			return Result{}, err
		}

		improved := false
		for it.HasNext() {
			if err = it.NextMutant(); err != nil {
				it.Rollback()
				return Result{}, err
			}
			res.Evals++
			if c := obj.Cost(v); c < best-opts.Eps {
				best = c
				improved = true
				it.SetSavepoint()
				if opts.Mode == FirstImprovement {
					break
				}
			}
		}
		// Exactly one rollback per traversal: v now holds the savepoint
		// (the accepted neighbor) or its pre-pass pattern.
		it.Rollback()
		res.Passes++

		if !improved {
			break // local optimum w.r.t. the whole neighborhood
		}
	}

	res.Cost = round1e9(best)
	return res, nil
}
