// Package mutate implements lazy, in-place neighborhood enumeration for
// candidate solutions, with savepoint/rollback semantics — the mutation
// half of a hill climber or annealer.
//
// 🚀 What is mutate?
//
//	An Iterator walks the neighbors of one live candidate object by
//	mutating it directly, never allocating a copy per neighbor:
//	  • HasNext / NextMutant — advance to the next neighbor in a fixed,
//	    reproducible order
//	  • SetSavepoint — mark the current mutated state as the rollback target
//	  • Rollback — restore the candidate to the savepoint (or the original
//	    pre-iteration state) and end the traversal
//
//	BitFlip is the concrete enumerator for bitvec.BitVector: every distinct
//	way to flip up to maxBits bits, in combinatorial order by size then
//	position.
//
// ✨ Why in-place?
//
//	A first- or steepest-descent climber over an n-bit candidate examines
//	O(n^k) neighbors and rejects almost all of them. Materializing each
//	neighbor is O(n) allocation per step; applying and undoing a bit delta
//	is O(k). The iterator therefore tracks its own net effect on the
//	candidate so it can undo it exactly.
//
// ⚙️ Canonical usage (always rollback exactly once at loop exit):
//
//	it, err := mutate.NewBitFlip(v, 2)
//	for it.HasNext() {
//	    if err = it.NextMutant(); err != nil {
//	        break
//	    }
//	    if improved(v) {
//	        it.SetSavepoint()
//	    }
//	}
//	it.Rollback() // v holds the savepoint, or its original pattern
//
// Concurrency: an iterator and its candidate are confined to one
// goroutine; parallel searches clone the candidate and build one iterator
// per worker.
//
// Determinism: for a given starting vector and maxBits, successive
// NextMutant calls produce exactly the same combination sequence.
package mutate
