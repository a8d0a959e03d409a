// Package bitvec - sentinel errors shared by BitVector and Iterator.
//
// Error taxonomy (mirrors the library-wide discipline):
//   - Range errors: indices, word indices or block widths outside their
//     documented domain. Rejected at the call boundary, never clamped.
//   - Argument consistency errors: mismatched vector lengths, word slices
//     inconsistent with the declared bit length. Rejected at construction
//     or call time, not at first use.
//   - Protocol-violation errors: reading past the end of a cursor.
//
// All of these are programming-contract violations: no retries, no
// recovery, no logging — they propagate synchronously to the caller.
package bitvec

import "errors"

var (
	// ErrNegativeLength indicates a requested bit length below zero.
	ErrNegativeLength = errors.New("bitvec: bit length must be non-negative")

	// ErrBitRange indicates a bit index outside [0, Len()).
	ErrBitRange = errors.New("bitvec: bit index out of range")

	// ErrWordRange indicates a word index outside [0, Words()).
	ErrWordRange = errors.New("bitvec: word index out of range")

	// ErrWordCount indicates a word slice whose length disagrees with the
	// declared bit length (must equal ceil(bits/32)).
	ErrWordCount = errors.New("bitvec: word count inconsistent with bit length")

	// ErrLengthMismatch indicates two vectors of different Len() passed to a
	// word-wise operation (And/Or/Xor/Equal-with-error paths).
	ErrLengthMismatch = errors.New("bitvec: vector lengths differ")

	// ErrShiftRange indicates a negative shift distance.
	ErrShiftRange = errors.New("bitvec: shift distance must be non-negative")

	// ErrBlockSize indicates a block width outside its documented domain
	// ([1,32] for fixed blocks, ≥1 for large blocks and skips).
	ErrBlockSize = errors.New("bitvec: block width out of range")

	// ErrNoBitsLeft indicates a cursor read or skip past the last bit.
	ErrNoBitsLeft = errors.New("bitvec: no bits remaining in iterator")
)
