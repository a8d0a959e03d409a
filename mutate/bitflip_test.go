// Package mutate_test exercises the BitFlip enumerator through the public
// API. Focus: combinatorial completeness, savepoint/rollback exactness,
// protocol-violation sentinels, and determinism.
package mutate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/bitvec"
	"github.com/katalvlaran/lvlopt/mutate"
)

// binomialSum returns C(n,1)+…+C(n,k).
func binomialSum(n, k int) int {
	total := 0
	c := 1
	for s := 1; s <= k; s++ {
		c = c * (n - s + 1) / s
		total += c
	}
	return total
}

// drain runs the iterator to exhaustion, recording every mutant's Hash.
func drain(t *testing.T, it mutate.Iterator, v *bitvec.BitVector) []uint64 {
	t.Helper()
	var seen []uint64
	for it.HasNext() {
		require.NoError(t, it.NextMutant())
		seen = append(seen, v.Hash())
	}
	return seen
}

func TestNewBitFlip_Validation(t *testing.T) {
	v, err := bitvec.New(8)
	require.NoError(t, err)

	_, err = mutate.NewBitFlip(nil, 1)
	assert.ErrorIs(t, err, mutate.ErrNilVector)

	for _, k := range []int{0, -1, 9} {
		_, err = mutate.NewBitFlip(v, k)
		assert.ErrorIs(t, err, mutate.ErrMaxBitsRange, "maxBits=%d", k)
	}

	_, err = mutate.NewBitFlip(v, 8)
	assert.NoError(t, err)
}

func TestBitFlip_EmptyVector(t *testing.T) {
	v, err := bitvec.New(0)
	require.NoError(t, err)

	it, err := mutate.NewBitFlip(v, 1)
	require.NoError(t, err)
	assert.False(t, it.HasNext())
	assert.ErrorIs(t, it.NextMutant(), mutate.ErrIteratorDone)
	it.Rollback() // legal, restores nothing
}

func TestBitFlip_SingleBitNeighborhood(t *testing.T) {
	// n=8, maxBits=1: exactly 8 neighbors, each with one bit set — the
	// first-word values 1,2,4,…,128 — and rollback restores all-zero.
	v, err := bitvec.New(8)
	require.NoError(t, err)

	it, err := mutate.NewBitFlip(v, 1)
	require.NoError(t, err)

	var got []uint32
	for it.HasNext() {
		require.NoError(t, it.NextMutant())
		require.Equal(t, 1, v.OnesCount())
		w, werr := v.Word32(0)
		require.NoError(t, werr)
		got = append(got, w)
	}
	assert.Equal(t, []uint32{1, 2, 4, 8, 16, 32, 64, 128}, got)

	it.Rollback()
	assert.Equal(t, 0, v.OnesCount())
}

func TestBitFlip_Completeness(t *testing.T) {
	// For assorted (n, maxBits): exactly C(n,1)+…+C(n,b) distinct mutated
	// states, never repeating and never equal to the original.
	cases := []struct{ n, b int }{
		{4, 2}, // 4 + 6 = 10, the documented example
		{6, 3}, // 6 + 15 + 20 = 41
		{5, 5}, // full power set minus the original: 31
		{40, 2},
	}
	for _, tc := range cases {
		rng := rand.New(rand.NewSource(int64(tc.n*100 + tc.b)))
		v, err := bitvec.NewRandom(tc.n, rng)
		require.NoError(t, err)
		orig := v.Clone()

		it, err := mutate.NewBitFlip(v, tc.b)
		require.NoError(t, err)

		seen := make(map[uint64]bool)
		count := 0
		for it.HasNext() {
			require.NoError(t, it.NextMutant())
			require.False(t, v.Equal(orig), "n=%d b=%d mutant %d equals original", tc.n, tc.b, count)
			h := v.Hash()
			require.False(t, seen[h], "n=%d b=%d duplicate state at mutant %d", tc.n, tc.b, count)
			seen[h] = true
			count++
		}
		assert.Equal(t, binomialSum(tc.n, tc.b), count, "n=%d b=%d", tc.n, tc.b)

		// No savepoint: rollback must restore the exact original pattern.
		it.Rollback()
		assert.True(t, v.Equal(orig), "n=%d b=%d", tc.n, tc.b)
	}
}

func TestBitFlip_MutantDistance(t *testing.T) {
	// Every mutant differs from the original in 1..maxBits positions —
	// the iterator's net effect is always exactly its current combination.
	const n, b = 10, 3
	v, err := bitvec.New(n)
	require.NoError(t, err)
	orig := v.Clone()

	it, err := mutate.NewBitFlip(v, b)
	require.NoError(t, err)

	for it.HasNext() {
		require.NoError(t, it.NextMutant())
		diff := v.Clone()
		require.NoError(t, diff.Xor(orig))
		d := diff.OnesCount()
		require.GreaterOrEqual(t, d, 1)
		require.LessOrEqual(t, d, b)
	}
	it.Rollback()
	require.True(t, v.Equal(orig))
}

func TestBitFlip_SavepointRollback(t *testing.T) {
	// For every prefix length p: savepoint after the p-th mutant, iterate
	// to exhaustion, rollback — the vector must equal its state right
	// after that p-th mutation.
	const n, b = 5, 2
	total := binomialSum(n, b)

	var p int
	for p = 1; p <= total; p++ {
		v, err := bitvec.New(n)
		require.NoError(t, err)

		it, err := mutate.NewBitFlip(v, b)
		require.NoError(t, err)

		var want *bitvec.BitVector
		step := 0
		for it.HasNext() {
			require.NoError(t, it.NextMutant())
			step++
			if step == p {
				it.SetSavepoint()
				want = v.Clone()
			}
		}
		require.Equal(t, total, step)
		require.NotNil(t, want)

		it.Rollback()
		assert.True(t, v.Equal(want), "p=%d", p)
	}
}

func TestBitFlip_SavepointOverwrite(t *testing.T) {
	// Only the most recent savepoint matters.
	v, err := bitvec.New(6)
	require.NoError(t, err)

	it, err := mutate.NewBitFlip(v, 2)
	require.NoError(t, err)

	require.NoError(t, it.NextMutant())
	it.SetSavepoint() // superseded below

	require.NoError(t, it.NextMutant())
	require.NoError(t, it.NextMutant())
	it.SetSavepoint()
	want := v.Clone()

	for it.HasNext() {
		require.NoError(t, it.NextMutant())
	}
	it.Rollback()
	assert.True(t, v.Equal(want))
}

func TestBitFlip_SavepointBeforeFirstMutant(t *testing.T) {
	// An explicit savepoint before any mutant means rollback-to-original.
	rng := rand.New(rand.NewSource(9))
	v, err := bitvec.NewRandom(7, rng)
	require.NoError(t, err)
	orig := v.Clone()

	it, err := mutate.NewBitFlip(v, 2)
	require.NoError(t, err)
	it.SetSavepoint()

	require.NoError(t, it.NextMutant())
	require.NoError(t, it.NextMutant())
	it.Rollback()
	assert.True(t, v.Equal(orig))
}

func TestBitFlip_RollbackIsTerminalAndIdempotent(t *testing.T) {
	v, err := bitvec.New(4)
	require.NoError(t, err)
	orig := v.Clone()

	it, err := mutate.NewBitFlip(v, 2)
	require.NoError(t, err)
	require.NoError(t, it.NextMutant())

	it.Rollback()
	require.True(t, v.Equal(orig))
	assert.False(t, it.HasNext())
	assert.ErrorIs(t, it.NextMutant(), mutate.ErrIteratorDone)

	// Second rollback: no-op, vector untouched.
	it.Rollback()
	assert.True(t, v.Equal(orig))
	assert.ErrorIs(t, it.NextMutant(), mutate.ErrIteratorDone)
}

func TestBitFlip_MidwayRollbackRestoresSavepoint(t *testing.T) {
	// Rollback mid-traversal (not at exhaustion) also lands on the
	// savepoint exactly.
	v, err := bitvec.New(9)
	require.NoError(t, err)

	it, err := mutate.NewBitFlip(v, 3)
	require.NoError(t, err)

	var i int
	for i = 0; i < 5; i++ {
		require.NoError(t, it.NextMutant())
	}
	it.SetSavepoint()
	want := v.Clone()

	for i = 0; i < 7; i++ {
		require.NoError(t, it.NextMutant())
	}
	it.Rollback()
	assert.True(t, v.Equal(want))
}

func TestBitFlip_DeterministicSequence(t *testing.T) {
	// Two iterators over equal vectors produce identical state sequences.
	mk := func() []uint64 {
		v, err := bitvec.New(12)
		require.NoError(t, err)
		it, err := mutate.NewBitFlip(v, 2)
		require.NoError(t, err)
		seq := drain(t, it, v)
		it.Rollback()
		return seq
	}
	assert.Equal(t, mk(), mk())
}
