package manacher_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/lvpal/internal/lpstest"
	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/manacher"
	"github.com/katalvlaran/lvpal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManacher_Suite runs the shared table and properties.
func TestManacher_Suite(t *testing.T) {
	lpstest.RunSuite(t, manacher.New())
}

// TestTransform_Length checks len(T) == 2n+3 and the sentinel layout.
func TestTransform_Length(t *testing.T) {
	for _, tc := range lpstest.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			s := []rune(tc.Text)
			tt := manacher.Transform(s)
			require.Len(t, tt, 2*len(s)+3)
			assert.Equal(t, manacher.LeftSentinel, tt[0])
			assert.Equal(t, manacher.RightSentinel, tt[len(tt)-1])
			for i, r := range s {
				assert.Equal(t, r, tt[2*i+2])
				assert.Equal(t, manacher.Filler, tt[2*i+1])
			}
		})
	}
}

// TestTransform_NoCollision checks printable look-alikes in the input stay distinct.
func TestTransform_NoCollision(t *testing.T) {
	res, _, err := manacher.Solve("#^#$#")
	require.NoError(t, err)
	assert.Equal(t, "#^#", res.Substring)
	assert.Equal(t, 0, res.Start)
}

// TestPrintable renders the sentinels.
func TestPrintable(t *testing.T) {
	assert.Equal(t, "^#a#b#$", manacher.Printable(manacher.Transform([]rune("ab"))))
	assert.Equal(t, "^#$", manacher.Printable(manacher.Transform(nil)))
}

// TestRadii pins P for "aba".
func TestRadii(t *testing.T) {
	p, err := manacher.Radii([]rune("aba"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 0, 3, 0, 1, 0, 0}, p)
}

// TestManacher_TraceA pins the full event sequence for "a".
func TestManacher_TraceA(t *testing.T) {
	res, trace, err := manacher.Solve("a", lps.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, "a", res.Substring)

	want := []step.Kind{
		step.KindInit, step.KindTransform, step.KindInitVars,
		step.KindSelectCenter, step.KindCalcMirror, step.KindCompare, step.KindMismatch, step.KindUpdateCenter,
		step.KindSelectCenter, step.KindCalcMirror, step.KindCompare, step.KindMatch, step.KindCompare, step.KindMismatch, step.KindUpdateCenter,
		step.KindSelectCenter, step.KindCalcMirror, step.KindCompare, step.KindMismatch,
		step.KindUpdateMax, step.KindResult,
	}
	assert.Equal(t, want, trace.Kinds())

	evs := trace.Events()
	assert.Equal(t, step.Transformed{String: "^#a#$"}, evs[1].Payload)
	assert.Equal(t, step.MirrorCalc{Index: 1, MirrorIndex: -1}, evs[4].Payload)
	assert.Equal(t, step.Boundary{Center: 2, Right: 3}, evs[14].Payload)
	assert.Equal(t, step.Span{Start: 0, End: 0, Length: 1}, evs[19].Payload)
}

// TestManacher_MirrorSeeded checks mirror events appear only inside R.
func TestManacher_MirrorSeeded(t *testing.T) {
	_, trace, err := manacher.Solve("aba", lps.WithTrace())
	require.NoError(t, err)

	var seeds []step.MirrorSeed
	for ev := range trace.All() {
		if ev.Kind == step.KindMirror {
			seed, ok := ev.Payload.(step.MirrorSeed)
			require.True(t, ok)
			seeds = append(seeds, seed)
		}
	}
	assert.Equal(t, []step.MirrorSeed{
		{Index: 5, MirrorIndex: 3, Value: 0},
		{Index: 6, MirrorIndex: 2, Value: 1},
	}, seeds)
}

// TestManacher_EmptyTrace checks the early return for "".
func TestManacher_EmptyTrace(t *testing.T) {
	res, trace, err := manacher.Solve("", lps.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, -1, res.End)
	assert.Equal(t, []step.Kind{step.KindInit, step.KindResult}, trace.Kinds())
}

// TestManacher_LinearProbes bounds the comparisons on a uniform string.
func TestManacher_LinearProbes(t *testing.T) {
	text := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	_, trace, err := manacher.Solve(text, lps.WithTrace())
	require.NoError(t, err)

	compares := 0
	for ev := range trace.All() {
		if ev.Kind == step.KindCompare {
			compares++
		}
	}
	m := 2*len(text) + 3
	assert.LessOrEqual(t, compares, 2*m)
}

// TestManacher_TraceLines pins lines and the center index for "a". The final
// update_max lies outside the scan loop and has no line.
func TestManacher_TraceLines(t *testing.T) {
	_, trace, err := manacher.Solve("a", lps.WithTrace())
	require.NoError(t, err)

	var lines []int
	for ev := range trace.All() {
		lines = append(lines, ev.Line)
	}
	assert.Equal(t, []int{
		1, 1, 2,
		3, 4, 6, 6, 7,
		3, 4, 6, 6, 6, 6, 7,
		3, 4, 6, 6,
		0, 8,
	}, lines)

	evs := trace.Events()
	assert.Equal(t, step.Center{Index: 1}, evs[3].Payload)
	assert.Equal(t, step.Center{Index: 2}, evs[8].Payload)
	assert.Equal(t, step.Center{Index: 3}, evs[15].Payload)
}

// TestManacher_SelectCenterJSON checks the center is exported as index.
func TestManacher_SelectCenterJSON(t *testing.T) {
	_, trace, err := manacher.Solve("ab", lps.WithTrace())
	require.NoError(t, err)

	ev := trace.Events()[3]
	require.Equal(t, step.KindSelectCenter, ev.Kind)
	got, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"select_center","line":3,"description":"process center 1 (#)","index":1}`, string(got))

	for _, ev := range trace.Events() {
		if ev.Kind != step.KindUpdateMax {
			assert.Positive(t, ev.Line, "%s has no line", ev.Kind)
		}
	}
}
