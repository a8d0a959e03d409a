// Package gaussian - uniform-source plumbing and the deterministic seed
// policy shared by every sampler in lvlopt.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single source factory; no time-based seeding hidden
//     anywhere.
//   - Independence: substreams for parallel restarts or workers derive via
//     a SplitMix64-style avalanche mix, eliminating correlations.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a Source across
//     goroutines; use DeriveSource (or a sampler's Split) to create one
//     independent stream per worker.
package gaussian

import "math/rand"

// Source is the minimal uniform-randomness capability a sampler needs:
// full-width 32-bit words for the Ziggurat fast path and float64 in [0,1)
// for rejection tests. *math/rand.Rand satisfies it.
type Source interface {
	Uint32() uint32
	Float64() float64
}

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

// NewSource returns a deterministic uniform source.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewSource(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 multipliers/finalizer (Vigna 2014):
// strong bit diffusion, so adjacent stream ids give uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveSource creates an independent deterministic stream from a base
// source and a stream identifier. A nil base derives from defaultSeed.
// Otherwise two 32-bit words are consumed from base and mixed with the
// stream id via deriveSeed, so repeated calls with the same id still
// produce distinct children.
//
// Call during setup (not in hot loops) to create per-worker sources.
//
// Complexity: O(1).
func DeriveSource(base Source, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = int64(uint64(base.Uint32())<<32 | uint64(base.Uint32()))
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
