// Package gaussian implements two interchangeable standard-normal samplers
// — Ziggurat (table-driven, O(1) amortized) and Polar (rejection sampling,
// pair-producing) — over an injectable uniform source.
//
// 🚀 What is gaussian?
//
//	Bit-exact, numerically delicate sampling kernels that underlie
//	stochastic mutation and annealing acceptance:
//	  • Ziggurat — 128 precomputed rejection layers; one 32-bit draw
//	    resolves the common case with a single multiply
//	  • Polar    — Marsaglia's unit-disk rejection; each accepted trial
//	    yields two deviates, the second cached per sampler instance
//
// ✨ Determinism & concurrency:
//
//   - Both samplers draw from a Source you supply; *math/rand.Rand
//     satisfies it. Same seed ⇒ identical sample streams.
//   - NewSource / DeriveSource centralize the library-wide seed policy:
//     seed==0 ⇒ fixed default seed; substreams derive via a
//     SplitMix64-style mix.
//   - A sampler instance is confined to one goroutine (Polar's pending
//     second deviate lives in per-instance state, not thread-local storage).
//     Parallel workers call Split() for an independent sampler on a
//     derived stream — share nothing, clone to parallelize.
//
// ⚙️ Usage:
//
//	z := gaussian.NewZiggurat(gaussian.NewSource(42))
//	x := z.Next()            // standard normal
//	y := z.NextSigma(0.5)    // scaled by sigma
//
// Statistical contract: both algorithms produce mean 0, standard deviation
// 1; the Ziggurat tables are embedded literal constants, so its output
// distribution matches the reference tables exactly.
//
// Performance:
//
//   - Ziggurat: ~1 uniform draw per deviate in the common case
//   - Polar:    ~1.27 trials per pair, plus one ln and one sqrt
package gaussian
