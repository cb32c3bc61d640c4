package lps_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstRune is a trivial algorithm: the first codepoint is always a palindrome.
func firstRune(text []rune, tr *step.Tracer) (int, int, error) {
	if tr.Enabled() {
		tr.Emit(step.KindInit, 1, "start", nil)
	}
	if len(text) == 0 {
		return 0, 0, nil
	}

	return 0, 1, nil
}

// TestSolve_InvalidUTF8 verifies the typed failure happens before the algorithm runs.
func TestSolve_InvalidUTF8(t *testing.T) {
	called := false
	s := lps.New("probe", func(text []rune, tr *step.Tracer) (int, int, error) {
		called = true
		return 0, 0, nil
	})

	_, trace, err := s.Solve("ab\xffc", lps.WithTrace())
	assert.ErrorIs(t, err, lps.ErrInvalidInput)
	assert.Nil(t, trace)
	assert.False(t, called, "algorithm must not run on invalid input")
}

// TestSolve_SilentAndTraced checks the envelope: identical result, result event last.
func TestSolve_SilentAndTraced(t *testing.T) {
	s := lps.New("first", firstRune)

	silent, trace, err := s.Solve("xyz")
	require.NoError(t, err)
	assert.Nil(t, trace, "silent mode returns no trace")

	traced, trace, err := s.Solve("xyz", lps.WithTrace())
	require.NoError(t, err)
	require.True(t, trace.Available())
	assert.True(t, silent.Same(traced))
	assert.Equal(t, []step.Kind{step.KindInit, step.KindResult}, trace.Kinds())

	last := trace.Events()[trace.Len()-1]
	assert.Equal(t, step.Span{Start: 0, End: 0, Length: 1}, last.Payload)
}

// TestSolve_EmptyText pins the empty answer shape.
func TestSolve_EmptyText(t *testing.T) {
	res, _, err := lps.New("first", firstRune).Solve("")
	require.NoError(t, err)
	assert.Equal(t, "", res.Substring)
	assert.Equal(t, 0, res.Start)
	assert.Equal(t, -1, res.End)
	assert.Equal(t, 0, res.Length)
}

// TestSolve_Failures covers panics, returned errors and impossible answers.
func TestSolve_Failures(t *testing.T) {
	cases := []struct {
		name string
		fn   lps.Algorithm
	}{
		{"panic", func([]rune, *step.Tracer) (int, int, error) { panic("index out of range") }},
		{"error", func([]rune, *step.Tracer) (int, int, error) { return 0, 0, errors.New("boom") }},
		{"out of range", func([]rune, *step.Tracer) (int, int, error) { return 2, 5, nil }},
		{"not a palindrome", func([]rune, *step.Tracer) (int, int, error) { return 0, 2, nil }},
		{"zero length", func([]rune, *step.Tracer) (int, int, error) { return 0, 0, nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := lps.New("broken", tc.fn).Solve("abc")
			assert.ErrorIs(t, err, lps.ErrAlgorithmFailure)
		})
	}
}

// TestSolve_ClockInjection verifies Elapsed comes from the injected clock.
func TestSolve_ClockInjection(t *testing.T) {
	clock := step.NewManualClock(time.Unix(0, 0), 3*time.Millisecond)
	res, _, err := lps.New("first", firstRune).Solve("aa", lps.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Millisecond, res.Elapsed)
	assert.InDelta(t, 3.0, res.ElapsedMillis(), 1e-9)
}

// TestSolve_TraceLimit verifies an over-long trace is withheld but the result survives.
func TestSolve_TraceLimit(t *testing.T) {
	res, trace, err := lps.New("first", firstRune).Solve("aba", lps.WithTraceLimit(1))
	require.NoError(t, err)
	assert.Equal(t, "a", res.Substring)
	require.NotNil(t, trace)
	assert.ErrorIs(t, trace.Err(), step.ErrTraceUnavailable)
}

// TestRegistry covers registration order, lookup misses and duplicates.
func TestRegistry(t *testing.T) {
	a := lps.New("a", firstRune)
	b := lps.New("b", firstRune)
	reg, err := lps.NewRegistry(a, b)
	require.NoError(t, err)
	assert.Equal(t, []lps.ID{"a", "b"}, reg.IDs())

	got, err := reg.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, lps.ID("b"), got.ID())

	_, err = reg.Lookup("quantum")
	assert.ErrorIs(t, err, lps.ErrUnknownAlgorithm)

	assert.ErrorIs(t, reg.Register(lps.New("a", firstRune)), lps.ErrDuplicateAlgorithm)
	assert.Error(t, reg.Register(nil))
	assert.Len(t, reg.Solvers(), 2)
}

// TestResult_JSON pins the API field names.
func TestResult_JSON(t *testing.T) {
	in := lps.Result{Substring: "aba", Start: 1, End: 3, Length: 3, Algorithm: lps.Manacher, Elapsed: 1500 * time.Microsecond}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"substring":"aba","start_index":1,"end_index":3,"length":3,"algorithm":"manacher","execution_time_ms":1.5}`, string(data))

	var out lps.Result
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Same(out))
	assert.Equal(t, in.Elapsed, out.Elapsed)
}

// TestResult_JSONElapsedPrecision checks that nanosecond durations survive the
// fractional-millisecond encoding.
func TestResult_JSONElapsedPrecision(t *testing.T) {
	for _, d := range []time.Duration{1, 7, 1234567, 987654321, 3*time.Hour + 17} {
		data, err := json.Marshal(lps.Result{Algorithm: lps.BruteForce, Elapsed: d})
		require.NoError(t, err)

		var out lps.Result
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, d, out.Elapsed, "round trip of %d ns", int64(d))
	}

	var out lps.Result
	assert.Error(t, json.Unmarshal([]byte(`{"length":"x"}`), &out))
}

// TestSolve_ResultLine verifies the closing event carries the configured line.
func TestSolve_ResultLine(t *testing.T) {
	_, trace, err := lps.New("first", firstRune, lps.WithResultLine(7)).Solve("ab", lps.WithTrace())
	require.NoError(t, err)
	evs := trace.Events()
	assert.Equal(t, 1, evs[0].Line)
	assert.Equal(t, 7, evs[len(evs)-1].Line)

	_, trace, err = lps.New("first", firstRune).Solve("ab", lps.WithTrace())
	require.NoError(t, err)
	evs = trace.Events()
	assert.Zero(t, evs[len(evs)-1].Line)
}

// TestIsPalindrome covers the shared helper.
func TestIsPalindrome(t *testing.T) {
	assert.True(t, lps.IsPalindrome(nil))
	assert.True(t, lps.IsPalindrome([]rune("日本日")))
	assert.False(t, lps.IsPalindrome([]rune("ab")))
}
