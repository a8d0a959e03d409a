// Package bitvec - Iterator: a single-pass, block-wise read cursor.
//
// Design:
//   - One shared cursor serves every read form (NextBit, NextBlock,
//     NextBlockN, NextLargeBlock, Skip); mixing widths mid-traversal is
//     well-defined.
//   - The absolute bit offset is kept decomposed as (index, off), i.e.
//     word index plus in-word position, so a read touches at most two
//     words with no division.
//   - Strict sentinel errors: ErrBlockSize for widths outside their domain,
//     ErrNoBitsLeft for reads or skips past the end.
//
// Contracts:
//   - count is monotonically non-decreasing and never exceeds Len();
//     HasNext() ⇔ count < Len().
//   - An Iterator is created per traversal, is single-pass, and is never
//     shared between goroutines.
//
// Complexity: O(1) per fixed-width read or skip; O(k/32) for large blocks.
package bitvec

// Iterator is a stateful cursor over the bits of one BitVector, yielding
// blocks of a default width k (1..32) or any width requested per call.
type Iterator struct {
	v     *BitVector
	k     int // default block width for NextBlock
	count int // absolute bits consumed; invariant: count == index*32 + off
	index int // current word index
	off   int // bits consumed within the current word (0..31)
}

// Bits returns a fresh 1-bit cursor over v.
func (v *BitVector) Bits() *Iterator {
	it, _ := v.BlockIterator(1) // k==1 is always in range
	return it
}

// BlockIterator returns a fresh cursor over v with default block width k.
// Returns ErrBlockSize when k is outside [1,32].
func (v *BitVector) BlockIterator(k int) (*Iterator, error) {
	if k < 1 || k > wordBits {
		return nil, ErrBlockSize
	}
	return &Iterator{v: v, k: k}, nil
}

// HasNext reports whether unread bits remain.
func (it *Iterator) HasNext() bool { return it.count < it.v.n }

// Remaining returns the number of unread bits.
func (it *Iterator) Remaining() int { return it.v.n - it.count }

// advance moves the cursor forward by k bits, maintaining the
// (index, off) decomposition.
func (it *Iterator) advance(k int) {
	it.count += k
	it.index = it.count >> 5
	it.off = it.count & 31
}

// blockMask returns a mask of the k lowest bits, 1 ≤ k ≤ 32.
func blockMask(k int) uint32 { return ^uint32(0) >> (wordBits - uint(k)) }

// NextBit reads a single bit. Shares the cursor with every block read.
// Returns ErrNoBitsLeft when the cursor is exhausted.
//
// Complexity: O(1).
func (it *Iterator) NextBit() (bool, error) {
	if it.count >= it.v.n {
		return false, ErrNoBitsLeft
	}
	b := it.v.words[it.index]>>uint(it.off)&1 == 1
	it.advance(1)

	return b, nil
}

// NextBlock reads the next block of the default width. See NextBlockN.
func (it *Iterator) NextBlock() (uint32, error) { return it.NextBlockN(it.k) }

// NextBlockN reads the next k bits (1..32) as an unsigned integer in the
// low bits of the result, crossing word boundaries transparently. When
// fewer than k bits remain, the read returns just the remaining bits; when
// none remain it returns ErrNoBitsLeft. Returns ErrBlockSize when k is
// outside [1,32].
//
// Complexity: O(1).
func (it *Iterator) NextBlockN(k int) (uint32, error) {
	if k < 1 || k > wordBits {
		return 0, ErrBlockSize
	}
	if it.count >= it.v.n {
		return 0, ErrNoBitsLeft
	}
	if rem := it.v.n - it.count; k > rem {
		k = rem // final partial block: yield what is left
	}

	var (
		avail = wordBits - it.off // unread bits in the current word
		out   uint32
	)
	if k <= avail {
		out = it.v.words[it.index] >> uint(it.off) & blockMask(k)
	} else {
		// Split read: low part from the current word, high part from the
		// next. avail ≥ 1 here, so both shifts are in range.
		out = it.v.words[it.index] >> uint(it.off)
		out |= (it.v.words[it.index+1] & blockMask(k-avail)) << uint(avail)
	}
	it.advance(k)

	return out, nil
}

// NextLargeBlock reads the next k bits, k ≥ 1 and possibly greater than 32,
// assembled from repeated 32-bit reads plus a final partial-width read. The
// result is packed LSB-first into ceil(k/32) words, suitable for
// reconstruction via FromWords. Unlike NextBlockN, a large block never
// truncates: ErrNoBitsLeft is returned when fewer than k bits remain.
// Returns ErrBlockSize when k < 1.
//
// Complexity: O(k/32).
func (it *Iterator) NextLargeBlock(k int) ([]uint32, error) {
	if k < 1 {
		return nil, ErrBlockSize
	}
	if k > it.v.n-it.count {
		return nil, ErrNoBitsLeft
	}

	out := make([]uint32, wordsFor(k))

	var (
		i    int
		left = k
	)
	for ; left > 0; i++ {
		take := left
		if take > wordBits {
			take = wordBits
		}
		w, err := it.NextBlockN(take)
		if err != nil {
			return nil, err // unreachable: remaining was pre-checked
		}
		out[i] = w
		left -= take
	}

	return out, nil
}

// Skip advances the cursor by k bits without reading, adjusting the word
// index and in-word offset directly. Returns ErrBlockSize when k < 0 and
// ErrNoBitsLeft when fewer than k bits remain.
//
// Complexity: O(1).
func (it *Iterator) Skip(k int) error {
	if k < 0 {
		return ErrBlockSize
	}
	if k > it.v.n-it.count {
		return ErrNoBitsLeft
	}
	it.advance(k)

	return nil
}
