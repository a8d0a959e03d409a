// Package bitvec implements fixed-length bit vectors packed into 32-bit
// words, plus a block-wise read cursor (Iterator) — the canonical
// candidate-solution substrate for the rest of lvlopt.
//
// 🚀 What is bitvec?
//
//	A small, deterministic, allocation-conscious bit container:
//	  • O(1) Get / Set / Flip with strict bounds checks
//	  • word-wise And / Or / Xor / Not, logical shifts with carry
//	  • population count via per-word popcount (math/bits)
//	  • deep Clone, structural Equal, FNV-1a Hash
//	  • Iterator: read 1–32 bits per call (or larger aggregates), mixing
//	    widths freely over one shared cursor
//
// ✨ Key invariants:
//
//   - Bits at index ≥ Len() inside the final backing word are always zero;
//     every mutating operation re-applies the final-word mask.
//   - Bit index 0 is the least-significant bit of word 0; index i lives in
//     word i>>5 at in-word position i&31.
//   - Length is immutable after construction; values mutate in place.
//
// ⚙️ Usage:
//
//	v, err := bitvec.New(100)          // zero-filled, 100 bits
//	_ = v.Set(3, true)                 // bounds-checked
//	it := v.Bits()                     // 1-bit cursor
//	for it.HasNext() {
//	    b, _ := it.NextBit()
//	    _ = b
//	}
//
// Concurrency: a BitVector is confined to one goroutine; parallel workers
// each take their own Clone. Nothing in this package locks or logs.
//
// Performance:
//
//   - Time:   O(1) per bit op, O(n/32) per word-wise op
//   - Memory: ceil(n/32) words; Clone is the only allocating operation
//     besides construction
package bitvec
