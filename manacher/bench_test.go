package manacher_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpal/internal/lpstest"
	"github.com/katalvlaran/lvpal/manacher"
)

// benchmarkManacher runs the solver on a random text of length n.
func benchmarkManacher(b *testing.B, n int) {
	text := lpstest.RandomText(rand.New(rand.NewSource(1)), n, "abcdefghijklmnopqrstuvwxyz")
	s := manacher.New()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.Solve(text); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkManacher_1000(b *testing.B)   { benchmarkManacher(b, 1000) }
func BenchmarkManacher_100000(b *testing.B) { benchmarkManacher(b, 100_000) }
