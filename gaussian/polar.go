// Package gaussian - Polar: Marsaglia's polar method, the simpler and
// slower sibling of the Ziggurat.
//
// Algorithm: draw (v1, v2) uniform in [-1,1]² until 0 < s = v1²+v2² < 1;
// then m = sqrt(-2·ln(s)/s) makes (v1·m, v2·m) two independent standard
// normals. The first is returned, the second cached for the following
// call, so draws alternate compute/cache and return-from-cache.
//
// The cache is an explicit per-instance field, not thread-local state:
// callers needing per-goroutine isolation construct one sampler per
// goroutine (via Split), the same discipline the rest of the library uses.
//
// Degenerate trials (s == 0, or s ≥ 1 outside the disk) are handled by the
// rejection loop itself — they are re-drawn, never surfaced as errors.
//
// Complexity: expected 4/π ≈ 1.27 trials per accepted pair.
package gaussian

import "math"

// Polar is a standard-normal sampler over a uniform Source, producing
// deviates in pairs.
type Polar struct {
	src      Source
	spare    float64 // pending second deviate of the last accepted pair
	hasSpare bool
	streams  uint64
}

// NewPolar returns a Polar sampler drawing from src. A nil src falls back
// to the deterministic default stream (seed==0 policy).
func NewPolar(src Source) *Polar {
	if src == nil {
		src = NewSource(0)
	}
	return &Polar{src: src}
}

// Next returns one standard-normal deviate. Every other call is served
// from the cached second deviate of the preceding accepted trial.
func (p *Polar) Next() float64 {
	if p.hasSpare {
		p.hasSpare = false
		return p.spare
	}

	for {
		v1 := 2.0*p.src.Float64() - 1.0
		v2 := 2.0*p.src.Float64() - 1.0
		s := v1*v1 + v2*v2
		if s >= 1.0 || s == 0.0 {
			continue // outside the unit disk, or the degenerate origin
		}
		m := math.Sqrt(-2.0 * math.Log(s) / s)
		p.spare = v2 * m
		p.hasSpare = true

		return v1 * m
	}
}

// NextSigma returns one normal deviate with mean 0 and the given standard
// deviation.
func (p *Polar) NextSigma(sigma float64) float64 { return sigma * p.Next() }

// Split returns an independent Polar on a freshly derived stream, with an
// empty cache — a pending second deviate belongs to the parent's sequence,
// never to a child's.
func (p *Polar) Split() *Polar {
	p.streams++
	return NewPolar(DeriveSource(p.src, p.streams))
}
