// Package lvlopt is an in-process toolkit for local-search and metaheuristic
// optimization over fixed-length bit strings — from the packed bit-vector
// substrate up to savepoint-aware neighborhood iteration and precise
// Gaussian sampling.
//
// 🚀 What is lvlopt?
//
//	A deterministic, allocation-conscious library that brings together:
//		• bitvec/   — packed 32-bit-word bit vectors with block-wise cursors
//		• mutate/   — in-place neighborhood iteration with savepoint/rollback
//		• gaussian/ — Ziggurat and Polar standard-normal samplers
//		• search/   — hill climbing, simulated annealing, parallel multistart
//
// ✨ Why choose lvlopt?
//
//   - Reproducible – same seed ⇒ identical results; no time-based randomness
//   - Allocation-free neighborhoods – mutants are applied and undone in
//     place, never materialized as per-neighbor copies
//   - Rock-solid contracts – strict sentinel errors, no logging, no panics
//     on user input
//   - Share nothing – every stateful component offers an independent clone
//     (Split / Clone) for parallel fan-out
//
// The intended flow: encode a candidate solution as a bitvec.BitVector, walk
// its k-bit-flip neighborhood through mutate.NewBitFlip (marking
// improvements with SetSavepoint and always finishing with Rollback), and
// let the search package — or your own orchestration — decide which mutants
// to keep.
//
// Quick taste:
//
//	v, _ := bitvec.New(64)
//	it, _ := mutate.NewBitFlip(v, 2)
//	for it.HasNext() {
//	    if err := it.NextMutant(); err != nil {
//	        break
//	    }
//	    if better(v) {
//	        it.SetSavepoint()
//	    }
//	}
//	it.Rollback() // v now holds the last improvement (or the original)
//
// See the per-package documentation for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
