package mutate_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/bitvec"
	"github.com/katalvlaran/lvlopt/mutate"
)

// benchNeighborhood drains the full up-to-maxBits neighborhood of an n-bit
// vector once per benchmark iteration.
func benchNeighborhood(b *testing.B, n, maxBits int) {
	b.Helper()
	v, err := bitvec.New(n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, nerr := mutate.NewBitFlip(v, maxBits)
		if nerr != nil {
			b.Fatalf("NewBitFlip failed: %v", nerr)
		}
		for it.HasNext() {
			if merr := it.NextMutant(); merr != nil {
				b.Fatalf("NextMutant failed: %v", merr)
			}
		}
		it.Rollback()
	}
}

func BenchmarkBitFlip_1024x1(b *testing.B) { benchNeighborhood(b, 1024, 1) }
func BenchmarkBitFlip_256x2(b *testing.B)  { benchNeighborhood(b, 256, 2) }
func BenchmarkBitFlip_64x3(b *testing.B)   { benchNeighborhood(b, 64, 3) }
