// Package search - options, results and sentinel errors for the solvers.
package search

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlopt/bitvec"
)

// Sentinel errors returned by the search solvers.
var (
	// ErrNilObjective indicates a nil Objective.
	ErrNilObjective = errors.New("search: objective must be non-nil")

	// ErrNilStart indicates a nil starting vector.
	ErrNilStart = errors.New("search: start vector must be non-nil")

	// ErrUnsupportedAlgo indicates an Algo value the dispatcher does not know.
	ErrUnsupportedAlgo = errors.New("search: unsupported algorithm")

	// ErrBadMode indicates a Mode value outside the declared constants.
	ErrBadMode = errors.New("search: unknown climb mode")

	// ErrBadMaxBits indicates MaxBits < 1 or > start.Len() for a non-empty start.
	ErrBadMaxBits = errors.New("search: MaxBits out of range")

	// ErrBadEps indicates a negative improvement tolerance.
	ErrBadEps = errors.New("search: Eps must be non-negative")

	// ErrBadPasses indicates MaxPasses < 0 (0 means "until local optimum").
	ErrBadPasses = errors.New("search: MaxPasses must be non-negative")

	// ErrBadTemperature indicates InitTemp ≤ 0 or Cooling outside (0,1).
	ErrBadTemperature = errors.New("search: invalid annealing temperature schedule")

	// ErrBadIters indicates Iters < 1 for annealing.
	ErrBadIters = errors.New("search: Iters must be positive")

	// ErrBadSigma indicates SigmaBits ≤ 0 for annealing move sizing.
	ErrBadSigma = errors.New("search: SigmaBits must be positive")

	// ErrBadWorkers indicates a Multistart worker count < 1.
	ErrBadWorkers = errors.New("search: worker count must be positive")
)

// Objective evaluates a candidate; lower cost is better. Implementations
// must be pure with respect to the vector (read-only) and safe to call
// from multiple goroutines on distinct vectors.
type Objective interface {
	Cost(v *bitvec.BitVector) float64
}

// Mode selects the climb acceptance discipline.
//
//   - FirstImprovement — take the first strictly improving neighbor and
//     restart the neighborhood scan from it.
//   - SteepestDescent  — scan the full neighborhood, move to the best
//     improving neighbor.
type Mode int

const (
	FirstImprovement Mode = iota
	SteepestDescent
)

// Algo selects the solver Multistart runs per worker.
type Algo int

const (
	HillClimb Algo = iota
	Annealing
)

// Options configures the solvers. The zero value is NOT valid; start from
// DefaultOptions.
//
// Fields:
//   - Algo      — solver for Multistart workers (Climb/Anneal use themselves).
//   - Mode      — climb acceptance discipline.
//   - MaxBits   — neighborhood radius: up to MaxBits simultaneous flips.
//   - MaxPasses — climb pass bound; 0 ⇒ run until a local optimum.
//   - Eps       — improvement tolerance: accept when cost < best − Eps.
//   - Seed      — RNG routing; 0 ⇒ the deterministic default stream.
//   - InitTemp  — annealing start temperature (> 0).
//   - Cooling   — geometric cooling factor per move, in (0,1).
//   - Iters     — annealing move budget (≥ 1).
//   - SigmaBits — spread of the Gaussian move-size distribution: each
//     annealing move flips 1+⌊|N(0,SigmaBits)|⌋ bits, capped at MaxBits.
type Options struct {
	Algo      Algo
	Mode      Mode
	MaxBits   int
	MaxPasses int
	Eps       float64
	Seed      int64
	InitTemp  float64
	Cooling   float64
	Iters     int
	SigmaBits float64
}

// DefaultOptions returns the canonical starting configuration: 1-bit
// first-improvement climbing, tolerance 1e-9, a gentle geometric schedule.
func DefaultOptions() Options {
	return Options{
		Algo:      HillClimb,
		Mode:      FirstImprovement,
		MaxBits:   1,
		MaxPasses: 0,
		Eps:       1e-9,
		Seed:      0,
		InitTemp:  1.0,
		Cooling:   0.995,
		Iters:     10_000,
		SigmaBits: 1.0,
	}
}

// Result is the outcome of one solver run.
type Result struct {
	// Best is the best candidate found; owned by the caller afterwards.
	Best *bitvec.BitVector

	// Cost is the objective value of Best, stabilized to 1e-9.
	Cost float64

	// Evals counts objective evaluations performed.
	Evals int

	// Passes counts completed neighborhood passes (Climb) or accepted
	// moves (Anneal).
	Passes int
}

// roundScale stabilizes reported costs to 1e-9, preventing tiny FP drifts
// across platforms from leaking into comparisons and tests.
const roundScale = 1e9

func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Round(x*roundScale) / roundScale
}

// validateCommon checks the option fields every solver consumes.
func validateCommon(obj Objective, start *bitvec.BitVector, opts Options) error {
	if obj == nil {
		return ErrNilObjective
	}
	if start == nil {
		return ErrNilStart
	}
	if opts.Eps < 0 {
		return ErrBadEps
	}
	if opts.MaxBits < 1 || (start.Len() > 0 && opts.MaxBits > start.Len()) {
		return ErrBadMaxBits
	}
	return nil
}
