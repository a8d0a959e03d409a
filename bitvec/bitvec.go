// Package bitvec - BitVector: a fixed-length bit array packed into uint32 words.
//
// Design:
//   - Backing storage is []uint32 of length ceil(bits/32); bit i lives in
//     word i>>5 at in-word position i&31 (LSB-first).
//   - lastMask keeps the trailing word canonical: bits at index ≥ Len() are
//     always zero, so word-wise Equal/Hash/OnesCount need no special cases.
//   - Strict sentinel errors only (see types.go); no silent clamping.
//   - Hot-path discipline: no hidden allocations; Clone and construction are
//     the only allocating operations.
//
// Contracts:
//   - Len() is immutable after construction.
//   - Every mutating operation restores the lastMask invariant before
//     returning.
//   - A BitVector is single-goroutine; parallel fan-out clones it.
//
// Complexity: O(1) per bit operation, O(w) per word-wise operation where
// w = ceil(Len()/32).
package bitvec

import (
	"math/bits"
	"math/rand"
	"strings"
)

// wordBits is the width of one backing word.
const wordBits = 32

// defaultRandomSeed is the fixed "zero" seed used when NewRandom receives a
// nil generator. Arbitrary but stable, to keep reproducible defaults.
const defaultRandomSeed int64 = 1

// BitVector is a fixed-length, mutable, packed bit array.
// The zero value is an empty (0-bit) vector; use New for anything longer.
type BitVector struct {
	n        int      // number of addressable bits; immutable
	words    []uint32 // backing words, len == ceil(n/32)
	lastMask uint32   // mask of valid bits in the final word (0 when n == 0)
}

// wordsFor returns ceil(n/32).
func wordsFor(n int) int { return (n + wordBits - 1) >> 5 }

// maskFor returns the valid-bit mask of the final word for an n-bit vector.
func maskFor(n int) uint32 {
	if n == 0 {
		return 0
	}
	if r := n & (wordBits - 1); r != 0 {
		return (uint32(1) << r) - 1
	}
	return ^uint32(0)
}

// New returns a zero-filled BitVector of n bits.
// Returns ErrNegativeLength when n < 0.
//
// Complexity: O(n/32).
func New(n int) (*BitVector, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	return &BitVector{
		n:        n,
		words:    make([]uint32, wordsFor(n)),
		lastMask: maskFor(n),
	}, nil
}

// NewRandom returns a BitVector of n bits with uniformly random contents
// drawn from rng. A nil rng falls back to a deterministic default stream
// (the library-wide seed==0 policy). Returns ErrNegativeLength when n < 0.
//
// Complexity: O(n/32).
func NewRandom(n int, rng *rand.Rand) (*BitVector, error) {
	v, err := New(n)
	if err != nil {
		return nil, err
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRandomSeed))
	}

	var i int
	for i = 0; i < len(v.words); i++ {
		v.words[i] = r.Uint32()
	}
	v.maskLast()

	return v, nil
}

// FromWords returns a BitVector of n bits backed by a copy of words.
// The slice length must equal ceil(n/32) (ErrWordCount otherwise); bits of
// the final word beyond n are discarded by re-masking.
//
// Complexity: O(n/32).
func FromWords(words []uint32, n int) (*BitVector, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if len(words) != wordsFor(n) {
		return nil, ErrWordCount
	}
	v := &BitVector{
		n:        n,
		words:    make([]uint32, len(words)),
		lastMask: maskFor(n),
	}
	copy(v.words, words)
	v.maskLast()

	return v, nil
}

// maskLast re-applies the final-word mask. Called by every mutating
// operation that can write past Len() within the last word.
func (v *BitVector) maskLast() {
	if len(v.words) > 0 {
		v.words[len(v.words)-1] &= v.lastMask
	}
}

// Len returns the number of addressable bits.
func (v *BitVector) Len() int { return v.n }

// Words returns the number of backing 32-bit words.
func (v *BitVector) Words() int { return len(v.words) }

// Get reports the value of bit i. Returns ErrBitRange when i is outside
// [0, Len()).
//
// Complexity: O(1).
func (v *BitVector) Get(i int) (bool, error) {
	if i < 0 || i >= v.n {
		return false, ErrBitRange
	}
	return v.words[i>>5]>>(uint(i)&31)&1 == 1, nil
}

// Set writes bit i. Returns ErrBitRange when i is outside [0, Len()).
//
// Complexity: O(1).
func (v *BitVector) Set(i int, value bool) error {
	if i < 0 || i >= v.n {
		return ErrBitRange
	}
	mask := uint32(1) << (uint(i) & 31)
	if value {
		v.words[i>>5] |= mask
	} else {
		v.words[i>>5] &^= mask
	}

	return nil
}

// Flip toggles bit i. Returns ErrBitRange when i is outside [0, Len()).
//
// Complexity: O(1).
func (v *BitVector) Flip(i int) error {
	if i < 0 || i >= v.n {
		return ErrBitRange
	}
	v.words[i>>5] ^= uint32(1) << (uint(i) & 31)

	return nil
}

// Word32 returns backing word k. Returns ErrWordRange when k is outside
// [0, Words()).
//
// Complexity: O(1).
func (v *BitVector) Word32(k int) (uint32, error) {
	if k < 0 || k >= len(v.words) {
		return 0, ErrWordRange
	}
	return v.words[k], nil
}

// SetWord32 overwrites backing word k. Writing the final word re-masks, so
// the canonical-trailing-zeros invariant survives arbitrary input.
// Returns ErrWordRange when k is outside [0, Words()).
//
// Complexity: O(1).
func (v *BitVector) SetWord32(k int, word uint32) error {
	if k < 0 || k >= len(v.words) {
		return ErrWordRange
	}
	v.words[k] = word
	if k == len(v.words)-1 {
		v.maskLast()
	}

	return nil
}

// And replaces v with v AND other, word-wise.
// Returns ErrLengthMismatch when the lengths differ.
//
// Complexity: O(w).
func (v *BitVector) And(other *BitVector) error {
	if other == nil || other.n != v.n {
		return ErrLengthMismatch
	}

	var i int
	for i = 0; i < len(v.words); i++ {
		v.words[i] &= other.words[i]
	}

	return nil
}

// Or replaces v with v OR other, word-wise.
// Returns ErrLengthMismatch when the lengths differ.
//
// Complexity: O(w).
func (v *BitVector) Or(other *BitVector) error {
	if other == nil || other.n != v.n {
		return ErrLengthMismatch
	}

	var i int
	for i = 0; i < len(v.words); i++ {
		v.words[i] |= other.words[i]
	}

	return nil
}

// Xor replaces v with v XOR other, word-wise.
// Returns ErrLengthMismatch when the lengths differ.
//
// Complexity: O(w).
func (v *BitVector) Xor(other *BitVector) error {
	if other == nil || other.n != v.n {
		return ErrLengthMismatch
	}

	var i int
	for i = 0; i < len(v.words); i++ {
		v.words[i] ^= other.words[i]
	}

	return nil
}

// Not complements every addressable bit in place, then re-masks the final
// word so bits beyond Len() stay zero.
//
// Complexity: O(w).
func (v *BitVector) Not() {
	var i int
	for i = 0; i < len(v.words); i++ {
		v.words[i] = ^v.words[i]
	}
	v.maskLast()
}

// ShiftLeft shifts all bits toward higher indices by n positions with
// zero-fill; bits shifted past Len()-1 are discarded. Shifting by ≥ Len()
// zeroes the vector. Returns ErrShiftRange when n < 0.
//
// Implemented as a whole-word move for the n>>5 portion plus a sub-word
// shift-with-carry for the n&31 remainder.
//
// Complexity: O(w).
func (v *BitVector) ShiftLeft(n int) error {
	if n < 0 {
		return ErrShiftRange
	}
	if n >= v.n {
		v.Clear()
		return nil
	}
	if n == 0 {
		return nil
	}

	var (
		ws = n >> 5        // whole words to move
		bs = uint(n) & 31  // residual in-word shift
		w  = len(v.words)  // word count
		i  int             // scan index, high to low
	)
	for i = w - 1; i >= 0; i-- {
		var word uint32
		if i-ws >= 0 {
			word = v.words[i-ws] << bs
			// Carry from the next-lower source word.
			if i-ws-1 >= 0 && bs != 0 {
				word |= v.words[i-ws-1] >> (wordBits - bs)
			}
		}
		v.words[i] = word
	}
	v.maskLast()

	return nil
}

// ShiftRight shifts all bits toward lower indices by n positions with
// zero-fill; bits shifted below index 0 are discarded. Shifting by ≥ Len()
// zeroes the vector. Returns ErrShiftRange when n < 0.
//
// Complexity: O(w).
func (v *BitVector) ShiftRight(n int) error {
	if n < 0 {
		return ErrShiftRange
	}
	if n >= v.n {
		v.Clear()
		return nil
	}
	if n == 0 {
		return nil
	}

	var (
		ws = n >> 5
		bs = uint(n) & 31
		w  = len(v.words)
		i  int
	)
	for i = 0; i < w; i++ {
		var word uint32
		if i+ws < w {
			word = v.words[i+ws] >> bs
			if i+ws+1 < w && bs != 0 {
				word |= v.words[i+ws+1] << (wordBits - bs)
			}
		}
		v.words[i] = word
	}
	v.maskLast()

	return nil
}

// Clear zeroes every bit, keeping the length.
//
// Complexity: O(w).
func (v *BitVector) Clear() {
	var i int
	for i = 0; i < len(v.words); i++ {
		v.words[i] = 0
	}
}

// OnesCount returns the number of set bits (population count), summing a
// per-word popcount. The trailing-zeros invariant makes the final word safe
// to count as-is.
//
// Complexity: O(w).
func (v *BitVector) OnesCount() int {
	var (
		total int
		i     int
	)
	for i = 0; i < len(v.words); i++ {
		total += bits.OnesCount32(v.words[i])
	}

	return total
}

// ZerosCount returns Len() - OnesCount().
//
// Complexity: O(w).
func (v *BitVector) ZerosCount() int { return v.n - v.OnesCount() }

// Clone returns a deep copy with independent word storage.
//
// Complexity: O(w).
func (v *BitVector) Clone() *BitVector {
	out := &BitVector{
		n:        v.n,
		words:    make([]uint32, len(v.words)),
		lastMask: v.lastMask,
	}
	copy(out.words, v.words)

	return out
}

// Equal reports whether other has the same length and bit pattern.
// Canonical trailing zeros make a word-wise comparison exact.
//
// Complexity: O(w).
func (v *BitVector) Equal(other *BitVector) bool {
	if other == nil || other.n != v.n {
		return false
	}

	var i int
	for i = 0; i < len(v.words); i++ {
		if v.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit FNV-1a digest over (length, words). Vectors equal
// under Equal hash identically; the converse is probabilistic.
//
// Complexity: O(w).
func (v *BitVector) Hash() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	h ^= uint64(v.n)
	h *= prime64

	var i int
	for i = 0; i < len(v.words); i++ {
		h ^= uint64(v.words[i])
		h *= prime64
	}

	return h
}

// String renders the bits index-0-first ("0110…"), a debugging aid only.
//
// Complexity: O(n).
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)

	var i int
	for i = 0; i < v.n; i++ {
		if v.words[i>>5]>>(uint(i)&31)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
