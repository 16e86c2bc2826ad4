package vam_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vogel/vam"
)

// benchmarkVAM is a helper that runs ComputeAllocation on a random balanced
// m×n problem. It resets the timer before entering the loop.
func benchmarkVAM(b *testing.B, m, n int) {
	in := randomInstance(rand.New(rand.NewSource(1)), m, n, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vam.ComputeAllocation(in.supply, in.demand, in.costs)
	}
}

// BenchmarkVAM_10x10 benchmarks a small 10×10 problem.
func BenchmarkVAM_10x10(b *testing.B) { benchmarkVAM(b, 10, 10) }

// BenchmarkVAM_50x50 benchmarks a medium 50×50 problem.
func BenchmarkVAM_50x50(b *testing.B) { benchmarkVAM(b, 50, 50) }

// BenchmarkVAM_100x20 benchmarks a tall problem with many origins.
func BenchmarkVAM_100x20(b *testing.B) { benchmarkVAM(b, 100, 20) }
