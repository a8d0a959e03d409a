// Package search provides reference orchestration over the lvlopt core:
// hill climbing and simulated annealing for bit-string candidates, plus a
// parallel multistart driver.
//
// 🚀 What is search?
//
//	The consuming side of the mutation-iterator protocol:
//	  • Climb  — first-improvement or steepest-descent hill climbing over
//	    the up-to-maxBits bit-flip neighborhood, in the canonical
//	    HasNext / NextMutant / SetSavepoint / Rollback loop
//	  • Anneal — simulated annealing with geometric cooling and
//	    Gaussian-sized multi-bit moves
//	  • Multistart — parallel independent restarts, one clone of every
//	    component per worker (share nothing; clone to parallelize)
//
// ✨ Design principles (shared with the rest of the library):
//
//   - Deterministic: seed routing everywhere; no time-based randomness;
//     Multistart resolves ties by lowest worker index.
//   - Strict sentinels: only errors from types.go; no logging, no panics
//     on user input.
//   - Allocation-conscious: candidates mutate in place through the
//     iterator; the input vector is never modified (solvers clone it).
//   - Stable costs: results are rounded to 1e-9 to avoid cross-platform
//     floating-point drift.
//
// ⚙️ Usage:
//
//	opts := search.DefaultOptions()
//	opts.Seed = 42
//	res, err := search.Climb(objective, start, opts)
//	// res.Best, res.Cost
//
// The Objective contract is minimization: lower cost is better.
//
// Complexity: Climb is O(passes · C(n,1..maxBits)) objective evaluations;
// Anneal is O(Iters); Multistart divides wall time by the worker count at
// the price of proportional memory.
package search
