// Package gaussian - Ziggurat: table-driven standard-normal sampling.
//
// Algorithm (per draw): pull one 32-bit word u.
//   - top bit        → sign
//   - next 7 bits    → rejection layer i ∈ [0,127]
//   - low 24 bits    → j, the horizontal coordinate
//
// Candidate x = j·wtab[i]. If j < ktab[i] the point is inside the layer's
// guaranteed-accept core: return sign·x immediately (the common case — one
// uniform draw, one multiply, no transcendental calls). Otherwise:
//   - i < 127: wedge test — accept iff a vertical uniform between ytab[i+1]
//     and ytab[i] falls under f(x) = exp(-x²/2); on reject, redraw.
//   - i == 127: tail — sample x = R − ln(1−u₁)/R past the rightmost layer
//     boundary R and accept with the exponential-wedge test
//     y = exp(−R(x−R/2))·u₂ < exp(−x²/2), looping until accepted.
//
// Contracts:
//   - Output: standard normal, mean 0, s.d. 1; NextSigma scales by sigma.
//   - Same Source state ⇒ identical deviate stream.
//   - One goroutine per sampler; Split derives an independent sibling.
//
// Complexity: O(1) amortized; ≈99% of draws resolve on the fast path.
package gaussian

import "math"

// paramR is the x-coordinate of the rightmost layer boundary for the
// 128-level tables in tables.go. halfParamR and invParamR are derived
// convenience constants (multiplication instead of division on the tail
// path); recomputing them changes nothing behaviorally.
const (
	paramR     = 3.44428647676
	halfParamR = paramR / 2
	invParamR  = 1 / paramR
)

// Ziggurat is a standard-normal sampler over a uniform Source.
type Ziggurat struct {
	src     Source
	streams uint64 // number of Split children derived so far
}

// NewZiggurat returns a Ziggurat sampler drawing from src. A nil src falls
// back to the deterministic default stream (seed==0 policy).
func NewZiggurat(src Source) *Ziggurat {
	if src == nil {
		src = NewSource(0)
	}
	return &Ziggurat{src: src}
}

// Next returns one standard-normal deviate.
//
// Complexity: O(1) amortized.
func (z *Ziggurat) Next() float64 {
	for {
		u := z.src.Uint32()
		sign := u&0x8000_0000 != 0
		i := u >> 24 & 0x7F
		j := u & 0x00FF_FFFF

		x := float64(j) * wtab[i]
		if j < ktab[i] {
			// Fast accept: strictly inside the layer core.
			if sign {
				return -x
			}
			return x
		}

		if i < 127 {
			// Wedge: vertical uniform between adjacent layer heights.
			y0, y1 := ytab[i], ytab[i+1]
			y := y1 + (y0-y1)*z.src.Float64()
			if y < math.Exp(-0.5*x*x) {
				if sign {
					return -x
				}
				return x
			}
			continue // reject: redraw from scratch
		}

		// Tail layer: exponential-wedge rejection past paramR.
		for {
			x = paramR - math.Log(1.0-z.src.Float64())*invParamR
			y := math.Exp(-paramR*(x-halfParamR)) * z.src.Float64()
			if y < math.Exp(-0.5*x*x) {
				if sign {
					return -x
				}
				return x
			}
		}
	}
}

// NextSigma returns one normal deviate with mean 0 and the given standard
// deviation.
func (z *Ziggurat) NextSigma(sigma float64) float64 { return sigma * z.Next() }

// Split returns an independent Ziggurat on a freshly derived stream. The
// parent advances its own source state in the process, so repeated splits
// yield distinct children; the lookup tables are shared (immutable).
func (z *Ziggurat) Split() *Ziggurat {
	z.streams++
	return NewZiggurat(DeriveSource(z.src, z.streams))
}
