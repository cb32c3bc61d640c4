// Package lpstest provides the shared test table and assertions used by the
// solver packages. It is imported only from _test files.
package lpstest

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpal/lps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Case is one input with every acceptable answer.
type Case struct {
	Name string
	Text string
	Want []string
	Len  int
}

// Cases mirrors the reference test table, including the multi-answer inputs.
var Cases = []Case{
	{"babad", "babad", []string{"bab", "aba"}, 3},
	{"cbbd", "cbbd", []string{"bb"}, 2},
	{"empty", "", []string{""}, 0},
	{"single", "a", []string{"a"}, 1},
	{"pair", "aa", []string{"aa"}, 2},
	{"racecar", "racecar", []string{"racecar"}, 7},
	{"abba", "abba", []string{"abba"}, 4},
	{"abacabad", "abacabad", []string{"abacaba"}, 7},
	{"distinct", "abcdef", []string{"a", "b", "c", "d", "e", "f"}, 1},
	{"uniform", "aaaaaaa", []string{"aaaaaaa"}, 7},
	{"embedded", "xyzabcdedcbapqr", []string{"abcdedcba"}, 9},
	{"prefix", "racecarXYZ", []string{"racecar"}, 7},
	{"suffix", "XYZabba", []string{"abba"}, 4},
	{"even inner", "abccbae", []string{"abccba"}, 6},
	{"two maxima", "cabbaab", []string{"abba", "baab"}, 4},
	{"spaces", "a man, a plan", []string{" a p a ", "ana", " a a ", " a "}, 3},
	{"case sensitive", "Aa", []string{"A", "a"}, 1},
	{"cjk", "日本語本日", []string{"日本語本日"}, 5},
	{"latin accent", "mañana", []string{"aña", "ana"}, 3},
	{"emoji", "😊abccba😊", []string{"😊abccba😊"}, 8},
	{"combining mark", "e\u0301e", []string{"e\u0301e"}, 3},
	{"punctuation", "a!@#@!a", []string{"a!@#@!a"}, 7},
}

// AssertValid checks the Result invariants against text.
func AssertValid(t testing.TB, text string, res lps.Result) {
	t.Helper()
	runes := []rune(text)
	require.GreaterOrEqual(t, res.Start, 0)
	require.LessOrEqual(t, res.Start+res.Length, len(runes))
	assert.Equal(t, res.End-res.Start+1, res.Length, "length must equal end-start+1")
	assert.Equal(t, string(runes[res.Start:res.Start+res.Length]), res.Substring, "substring must be text[start..end]")
	assert.True(t, lps.IsPalindrome([]rune(res.Substring)), "%q is not a palindrome", res.Substring)
}

// Longest computes the answer length by the definition, O(n³). Reference only.
func Longest(text string) int {
	runes := []rune(text)
	best := 0
	for i := range runes {
		for j := i; j < len(runes); j++ {
			if j-i+1 > best && lps.IsPalindrome(runes[i:j+1]) {
				best = j - i + 1
			}
		}
	}

	return best
}

// RandomText returns a deterministic string of length n over alphabet.
func RandomText(rng *rand.Rand, n int, alphabet string) string {
	a := []rune(alphabet)
	out := make([]rune, n)
	for i := range out {
		out[i] = a[rng.Intn(len(a))]
	}

	return string(out)
}

// RunSuite runs the shared table and the silent/traced and determinism
// properties against s.
func RunSuite(t *testing.T, s lps.Solver) {
	t.Helper()

	t.Run("table", func(t *testing.T) {
		for _, tc := range Cases {
			t.Run(tc.Name, func(t *testing.T) {
				res, trace, err := s.Solve(tc.Text)
				require.NoError(t, err)
				assert.Nil(t, trace)
				AssertValid(t, tc.Text, res)
				assert.Equal(t, tc.Len, res.Length)
				assert.Contains(t, tc.Want, res.Substring)
				assert.Equal(t, s.ID(), res.Algorithm)
			})
		}
	})

	t.Run("traced equals silent", func(t *testing.T) {
		for _, tc := range Cases {
			silent, _, err := s.Solve(tc.Text)
			require.NoError(t, err)
			traced, trace, err := s.Solve(tc.Text, lps.WithTrace())
			require.NoError(t, err)
			require.True(t, trace.Available(), "trace for %q: %v", tc.Text, trace.Err())
			assert.True(t, silent.Same(traced), "%q: silent %+v traced %+v", tc.Text, silent, traced)
		}
	})

	t.Run("idempotent and deterministic", func(t *testing.T) {
		for _, tc := range Cases {
			r1, tr1, err := s.Solve(tc.Text, lps.WithTrace())
			require.NoError(t, err)
			r2, tr2, err := s.Solve(tc.Text, lps.WithTrace())
			require.NoError(t, err)
			assert.True(t, r1.Same(r2))

			b1, err := json.Marshal(tr1)
			require.NoError(t, err)
			b2, err := json.Marshal(tr2)
			require.NoError(t, err)
			assert.Equal(t, string(b1), string(b2), "trace for %q must be byte-identical", tc.Text)
		}
	})

	t.Run("random against definition", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 60; i++ {
			text := RandomText(rng, rng.Intn(40), "ab")
			res, _, err := s.Solve(text)
			require.NoError(t, err)
			AssertValid(t, text, res)
			assert.Equal(t, Longest(text), res.Length, "text %q", text)
		}
	})
}
