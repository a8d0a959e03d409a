// Package search_test exercises the solvers via the public API, with
// classic bit-string objectives (OneMax, a deceptive trap) as fixtures.
// Focus: convergence to known optima, determinism, validation sentinels,
// and multistart reproducibility.
package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/bitvec"
	"github.com/katalvlaran/lvlopt/search"
)

// oneMax rewards set bits; cost = zeros, global optimum all-ones, cost 0.
// Every single-bit flip of a suboptimal vector changes the cost, so
// 1-bit hill climbing always solves it.
type oneMax struct{}

func (oneMax) Cost(v *bitvec.BitVector) float64 { return float64(v.ZerosCount()) }

// trap is deceptive: all-ones is the global optimum (cost 0) but every
// other vector scores better the fewer ones it has — 1-bit climbers slide
// to all-zeros (cost 1) instead.
type trap struct{}

func (trap) Cost(v *bitvec.BitVector) float64 {
	if v.ZerosCount() == 0 {
		return 0
	}
	return 1 + float64(v.OnesCount())/float64(v.Len()+1)
}

func TestClimb_Validation(t *testing.T) {
	start, err := bitvec.New(8)
	require.NoError(t, err)
	opts := search.DefaultOptions()

	_, err = search.Climb(nil, start, opts)
	assert.ErrorIs(t, err, search.ErrNilObjective)

	_, err = search.Climb(oneMax{}, nil, opts)
	assert.ErrorIs(t, err, search.ErrNilStart)

	bad := opts
	bad.MaxBits = 0
	_, err = search.Climb(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadMaxBits)

	bad = opts
	bad.MaxBits = 9
	_, err = search.Climb(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadMaxBits)

	bad = opts
	bad.Eps = -1
	_, err = search.Climb(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadEps)

	bad = opts
	bad.MaxPasses = -1
	_, err = search.Climb(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadPasses)

	bad = opts
	bad.Mode = search.Mode(42)
	_, err = search.Climb(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadMode)
}

func TestClimb_SolvesOneMax(t *testing.T) {
	for _, mode := range []search.Mode{search.FirstImprovement, search.SteepestDescent} {
		start, err := bitvec.New(32) // all zeros, worst case
		require.NoError(t, err)

		opts := search.DefaultOptions()
		opts.Mode = mode

		res, cerr := search.Climb(oneMax{}, start, opts)
		require.NoError(t, cerr, "mode=%d", mode)
		assert.Equal(t, 0.0, res.Cost, "mode=%d", mode)
		assert.Equal(t, 0, res.Best.ZerosCount(), "mode=%d", mode)
		assert.Equal(t, 0, start.OnesCount(), "start must stay untouched")
	}
}

func TestClimb_RespectsMaxPasses(t *testing.T) {
	start, err := bitvec.New(64)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.MaxPasses = 3 // each first-improvement pass fixes exactly one bit

	res, cerr := search.Climb(oneMax{}, start, opts)
	require.NoError(t, cerr)
	assert.Equal(t, 3, res.Passes)
	assert.Equal(t, 61.0, res.Cost)
}

func TestClimb_TrapDeceivesSingleBitFlips(t *testing.T) {
	// From a near-zero start, 1-bit climbing must land on all-zeros (the
	// deceptive local optimum), not the global one.
	start, err := bitvec.New(10)
	require.NoError(t, err)
	require.NoError(t, start.Set(4, true))

	res, cerr := search.Climb(trap{}, start, search.DefaultOptions())
	require.NoError(t, cerr)
	assert.Equal(t, 0, res.Best.OnesCount())
	assert.InDelta(t, 1.0, res.Cost, 1e-9)
}

func TestClimb_WiderNeighborhoodEscapesSmallTrap(t *testing.T) {
	// With MaxBits = n the neighborhood contains the global optimum
	// directly, so even a deceptive landscape is solved in one pass.
	const n = 6
	start, err := bitvec.New(n)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.MaxBits = n
	opts.Mode = search.SteepestDescent

	res, cerr := search.Climb(trap{}, start, opts)
	require.NoError(t, cerr)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, n, res.Best.OnesCount())
}

func TestClimb_Deterministic(t *testing.T) {
	run := func() search.Result {
		start, err := bitvec.NewRandom(40, nil)
		require.NoError(t, err)
		res, cerr := search.Climb(oneMax{}, start, search.DefaultOptions())
		require.NoError(t, cerr)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a.Cost, b.Cost)
	assert.Equal(t, a.Evals, b.Evals)
	assert.True(t, a.Best.Equal(b.Best))
}

func TestAnneal_Validation(t *testing.T) {
	start, err := bitvec.New(8)
	require.NoError(t, err)
	opts := search.DefaultOptions()

	bad := opts
	bad.InitTemp = 0
	_, err = search.Anneal(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadTemperature)

	bad = opts
	bad.Cooling = 1.0
	_, err = search.Anneal(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadTemperature)

	bad = opts
	bad.Iters = 0
	_, err = search.Anneal(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadIters)

	bad = opts
	bad.SigmaBits = 0
	_, err = search.Anneal(oneMax{}, start, bad)
	assert.ErrorIs(t, err, search.ErrBadSigma)
}

func TestAnneal_SolvesOneMax(t *testing.T) {
	start, err := bitvec.New(24)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Seed = 42
	opts.Iters = 20_000
	opts.MaxBits = 2
	opts.InitTemp = 2.0

	res, aerr := search.Anneal(oneMax{}, start, opts)
	require.NoError(t, aerr)
	assert.Equal(t, 0.0, res.Cost, "annealing should flatten OneMax(24) in 20k moves")
	assert.Equal(t, 0, start.OnesCount(), "start must stay untouched")
}

func TestAnneal_Deterministic(t *testing.T) {
	start, err := bitvec.New(16)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Seed = 7
	opts.Iters = 2_000
	opts.MaxBits = 3

	a, aerr := search.Anneal(trap{}, start, opts)
	require.NoError(t, aerr)
	b, berr := search.Anneal(trap{}, start, opts)
	require.NoError(t, berr)

	assert.Equal(t, a.Cost, b.Cost)
	assert.Equal(t, a.Passes, b.Passes)
	assert.True(t, a.Best.Equal(b.Best))
}

func TestMultistart_Validation(t *testing.T) {
	start, err := bitvec.New(8)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = search.Multistart(ctx, oneMax{}, 0, start, search.DefaultOptions())
	assert.ErrorIs(t, err, search.ErrBadWorkers)

	bad := search.DefaultOptions()
	bad.Algo = search.Algo(9)
	_, err = search.Multistart(ctx, oneMax{}, 2, start, bad)
	assert.ErrorIs(t, err, search.ErrUnsupportedAlgo)
}

func TestMultistart_FindsOptimumAndReproduces(t *testing.T) {
	start, err := bitvec.New(20)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.Seed = 1234

	ctx := context.Background()
	a, aerr := search.Multistart(ctx, oneMax{}, 4, start, opts)
	require.NoError(t, aerr)
	assert.Equal(t, 0.0, a.Cost)

	b, berr := search.Multistart(ctx, oneMax{}, 4, start, opts)
	require.NoError(t, berr)
	assert.Equal(t, a.Cost, b.Cost)
	assert.True(t, a.Best.Equal(b.Best), "fixed (seed, workers) must reproduce")
	assert.Equal(t, a.Evals, b.Evals)
}

func TestMultistart_CancelledContext(t *testing.T) {
	start, err := bitvec.New(8)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = search.Multistart(ctx, oneMax{}, 2, start, search.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
