// Package mutate - BitFlip: the k-bit-flip neighborhood enumerator for
// bitvec.BitVector.
//
// Enumeration order: all combinations of 1 bit position, then all of 2, up
// to maxBits; within one size, lexicographically increasing combinations of
// ascending indices, produced by standard next-combination stepping
// (advance the rightmost index that can still grow; when none can, widen
// the combination by one).
//
// Design:
//   - The shared vector is mutated directly; each step applies only the
//     bit delta between consecutive combinations (unflip abandoned
//     positions, flip newly chosen ones), never rebuilding the candidate.
//   - The iterator tracks its own net effect — the current combination is
//     exactly the set of positions that differ from the pre-iteration
//     pattern — so Rollback can undo it precisely.
//   - Savepoints store a copy of the combination, O(maxBits) ints; the
//     vector itself is never cloned.
//
// Contracts:
//   - One iterator per traversal per candidate; strictly sequential calls.
//   - The combination sequence is deterministic for a given (vector length,
//     maxBits) pair.
//
// Complexity: O(maxBits) per NextMutant in the worst case, O(1) amortized
// for the dominant rightmost-index advance; C(n,1)+…+C(n,maxBits) mutants
// in total.
package mutate

import "github.com/katalvlaran/lvlopt/bitvec"

// BitFlip enumerates every distinct way to flip up to maxBits bits of one
// BitVector. It implements Iterator.
type BitFlip struct {
	v        *bitvec.BitVector
	maxBits  int
	comb     []int // current combination, ascending; empty before first mutant
	saved    []int // savepoint combination, meaningful when hasSaved
	hasSaved bool
	rolled   bool
}

// compile-time conformance check
var _ Iterator = (*BitFlip)(nil)

// NewBitFlip returns a BitFlip iterator bound to v, enumerating flips of
// 1..maxBits simultaneous bits.
//
// Returns ErrNilVector when v is nil and ErrMaxBitsRange when maxBits < 1
// or (for a non-empty vector) maxBits > v.Len(). A 0-bit vector is legal
// and yields an immediately exhausted iterator.
func NewBitFlip(v *bitvec.BitVector, maxBits int) (*BitFlip, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	if maxBits < 1 || (v.Len() > 0 && maxBits > v.Len()) {
		return nil, ErrMaxBitsRange
	}
	return &BitFlip{
		v:       v,
		maxBits: maxBits,
		comb:    make([]int, 0, maxBits),
	}, nil
}

// HasNext reports whether another mutant remains. False after Rollback.
//
// Complexity: O(1).
func (b *BitFlip) HasNext() bool {
	if b.rolled {
		return false
	}
	n := b.v.Len()
	if n == 0 {
		return false
	}
	s := len(b.comb)
	if s == 0 || s < b.maxBits {
		return true
	}
	// At full width the lexicographic maximum {n-s,…,n-1} is terminal;
	// comb[0] pins the whole combination, so one probe suffices.
	return b.comb[0] != n-s
}

// NextMutant advances the shared vector to the next neighbor, applying the
// minimal flip delta between the current combination and its successor.
// Returns ErrIteratorDone when the enumeration is exhausted or rolled back.
//
// Complexity: O(maxBits) worst case, O(1) amortized.
func (b *BitFlip) NextMutant() error {
	if !b.HasNext() {
		return ErrIteratorDone
	}
	n := b.v.Len()
	s := len(b.comb)

	// First mutant: flip bit 0, combination {0}.
	if s == 0 {
		b.comb = append(b.comb, 0)
		return b.v.Flip(0)
	}

	// Rightmost index that can still grow: comb[j] < n-s+j.
	j := s - 1
	for j >= 0 && b.comb[j] == n-s+j {
		j--
	}

	if j < 0 {
		// Size s exhausted; widen to s+1 starting at {0,1,…,s}.
		return b.replaceTail(0, 0, s)
	}

	// Advance comb[j]; the tail resets to consecutive values after it.
	start := b.comb[j] + 1
	return b.replaceTail(j, start, start+(s-1-j))
}

// replaceTail swaps the combination suffix comb[j:] for the consecutive
// run [start..hi], flipping only positions in the symmetric difference of
// the two sets. The run may be one element longer than the old suffix
// (size transition).
func (b *BitFlip) replaceTail(j, start, hi int) error {
	var (
		oi  int
		x   int
		err error
	)

	// Unflip abandoned positions: old suffix values outside the new run.
	for oi = j; oi < len(b.comb); oi++ {
		if v := b.comb[oi]; v < start || v > hi {
			if err = b.v.Flip(v); err != nil {
				return err
			}
		}
	}

	// Flip newly chosen positions: run values absent from the old suffix.
	oi = j
	for x = start; x <= hi; x++ {
		for oi < len(b.comb) && b.comb[oi] < x {
			oi++
		}
		if oi < len(b.comb) && b.comb[oi] == x {
			continue
		}
		if err = b.v.Flip(x); err != nil {
			return err
		}
	}

	// Rewrite the suffix as the run.
	b.comb = b.comb[:j]
	for x = start; x <= hi; x++ {
		b.comb = append(b.comb, x)
	}

	return nil
}

// SetSavepoint records the current mutated state as the rollback target.
// Calling before any NextMutant marks "rollback to original". No effect
// after Rollback.
//
// Complexity: O(maxBits).
func (b *BitFlip) SetSavepoint() {
	if b.rolled {
		return
	}
	b.saved = append(b.saved[:0], b.comb...)
	b.hasSaved = true
}

// Rollback unflips the current combination, reflips the most recent
// savepoint (nothing, if never saved), and permanently ends the iterator.
// Idempotent: a second call is a no-op.
//
// Complexity: O(maxBits).
func (b *BitFlip) Rollback() {
	if b.rolled {
		return
	}
	b.rolled = true

	// Positions originate from tracked combinations, always in range.
	var i int
	for i = 0; i < len(b.comb); i++ {
		_ = b.v.Flip(b.comb[i])
	}
	if b.hasSaved {
		for i = 0; i < len(b.saved); i++ {
			_ = b.v.Flip(b.saved[i])
		}
	}
}
