// Package search - simulated annealing over bit-string candidates.
//
// Anneal proposes multi-bit flip moves whose size is drawn from a
// Gaussian — 1+⌊|N(0,SigmaBits)|⌋ bits, capped at MaxBits — and accepts
// them by the Metropolis criterion under a geometric cooling schedule
// T_{k+1} = Cooling·T_k. Rejected moves are undone by re-flipping the same
// positions; the candidate is never copied per move.
//
// Design:
//   - One uniform source drives move positions and acceptance; the
//     Ziggurat sampler sharing that source sizes the moves. Same seed ⇒
//     identical trajectory.
//   - Worsening moves are accepted with probability exp(−Δ/T); Δ ≤ 0 is
//     always accepted. The best-so-far candidate is tracked separately, so
//     late uphill wandering cannot lose the optimum.
//
// Complexity: O(Iters) objective evaluations; O(MaxBits) scratch.
package search

import (
	"math"

	"github.com/katalvlaran/lvlopt/bitvec"
	"github.com/katalvlaran/lvlopt/gaussian"
)

// Anneal runs simulated annealing from start and returns the best
// candidate seen anywhere along the trajectory. The start vector itself is
// never modified.
func Anneal(obj Objective, start *bitvec.BitVector, opts Options) (Result, error) {
	if err := validateCommon(obj, start, opts); err != nil {
		return Result{}, err
	}
	if opts.InitTemp <= 0 || opts.Cooling <= 0 || opts.Cooling >= 1 {
		return Result{}, ErrBadTemperature
	}
	if opts.Iters < 1 {
		return Result{}, ErrBadIters
	}
	if opts.SigmaBits <= 0 {
		return Result{}, ErrBadSigma
	}

	v := start.Clone()
	cur := obj.Cost(v)
	res := Result{Best: v.Clone(), Cost: round1e9(cur), Evals: 1}
	best := cur

	n := v.Len()
	if n == 0 {
		return res, nil
	}

	var (
		rng   = gaussian.NewSource(opts.Seed)
		zig   = gaussian.NewZiggurat(rng) // shares rng: one trajectory, one stream
		temp  = opts.InitTemp
		moved = make([]int, 0, opts.MaxBits) // positions of the pending move
	)

	for iter := 0; iter < opts.Iters; iter++ {
		// Move size: Gaussian magnitude, at least 1 bit, at most MaxBits.
		k := 1 + int(math.Abs(zig.NextSigma(opts.SigmaBits)))
		if k > opts.MaxBits {
			k = opts.MaxBits
		}
		if k > n {
			k = n
		}

		// Flip k distinct random positions, remembering them for undo.
		moved = moved[:0]
		for len(moved) < k {
			p := rng.Intn(n)
			dup := false
			for _, q := range moved {
				if q == p {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			if err := v.Flip(p); err != nil {
				return Result{}, err
			}
			moved = append(moved, p)
		}

		c := obj.Cost(v)
		res.Evals++
		delta := c - cur

		if delta <= 0 || rng.Float64() < math.Exp(-delta/temp) {
			cur = c
			res.Passes++ // accepted moves
			if c < best-opts.Eps {
				best = c
				res.Best = v.Clone()
			}
		} else {
			// Undo: re-flip the same positions (in range by construction).
			for _, p := range moved {
				_ = v.Flip(p)
			}
		}

		temp *= opts.Cooling
	}

	res.Cost = round1e9(best)
	return res, nil
}
