package benchmark_test

import (
	"testing"

	"github.com/katalvlaran/lvpal/benchmark"
	"github.com/katalvlaran/lvpal/lps"
	"github.com/stretchr/testify/assert"
)

func TestPolicy_Allows(t *testing.T) {
	p := benchmark.DefaultPolicy()
	assert.True(t, p.Allows(lps.BruteForce, benchmark.DefaultBruteForceMax))
	assert.False(t, p.Allows(lps.BruteForce, benchmark.DefaultBruteForceMax+1))
	assert.True(t, p.Allows(lps.Manacher, 1_000_000))

	limit, ok := p.Limit(lps.BruteForce)
	assert.True(t, ok)
	assert.Equal(t, benchmark.DefaultBruteForceMax, limit)

	_, ok = benchmark.Policy{lps.Manacher: 0}.Limit(lps.Manacher)
	assert.False(t, ok)

	var none benchmark.Policy
	assert.True(t, none.Allows(lps.BruteForce, 1<<20))
}

func TestPolicy_Clone(t *testing.T) {
	p := benchmark.DefaultPolicy()
	c := p.Clone()
	c[lps.BruteForce] = 1
	assert.Equal(t, benchmark.DefaultBruteForceMax, p[lps.BruteForce])
}

func TestText_Deterministic(t *testing.T) {
	a := benchmark.Text(42, 0, 100, benchmark.DefaultAlphabet)
	b := benchmark.Text(42, 0, 100, benchmark.DefaultAlphabet)
	c := benchmark.Text(42, 1, 100, benchmark.DefaultAlphabet)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, []rune(a), 100)
	for _, r := range a {
		assert.Contains(t, benchmark.DefaultAlphabet, string(r))
	}
	assert.Len(t, []rune(benchmark.Text(1, 0, 10, "日本")), 10)
}
