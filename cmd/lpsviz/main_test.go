package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpal/benchmark"
	"github.com/katalvlaran/lvpal/internal/config"
	"github.com/katalvlaran/lvpal/lps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
		assert.NotEmpty(t, c.Short, c.Name())
		assert.NotEmpty(t, c.Long, c.Name())
	}
	for _, want := range []string{"serve", "solve", "trace", "bench"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestSolve_Table(t *testing.T) {
	out, err := run(t, "", "solve", "--algorithm", "expand_center", "cbbd")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "algorithm"))
	assert.Contains(t, lines[1], `"bb"`)
}

func TestSolve_AllJSON(t *testing.T) {
	out, err := run(t, "", "solve", "--algorithm", "all", "--format", "json", "racecar")
	require.NoError(t, err)

	var results []lps.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 4)
	for _, r := range results {
		assert.Equal(t, "racecar", r.Substring)
	}
}

func TestSolve_StdinYAML(t *testing.T) {
	out, err := run(t, "babad\n", "solve", "--format", "yaml", "-")
	require.NoError(t, err)

	var views []resultView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "bab", views[0].Substring)
	assert.Equal(t, lps.Manacher, views[0].Algorithm)
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "", "solve", "--algorithm", "quantum", "abc")
	assert.ErrorIs(t, err, lps.ErrUnknownAlgorithm)

	_, err = run(t, "", "solve", "--format", "xml", "abc")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "", "solve", "a\xffb")
	assert.ErrorIs(t, err, lps.ErrInvalidInput)
}

func TestTrace(t *testing.T) {
	out, err := run(t, "", "trace", "--algorithm", "brute_force", "--format", "json", "ab")
	require.NoError(t, err)

	var events []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.NotEmpty(t, events)
	assert.Equal(t, "init", events[0]["type"])
	assert.Equal(t, "result", events[len(events)-1]["type"])
	assert.EqualValues(t, 1, events[0]["line"])
	assert.EqualValues(t, 7, events[len(events)-1]["line"])

	out, err = run(t, "", "trace", "--algorithm", "dynamic_programming", "aa")
	require.NoError(t, err)
	assert.Contains(t, out, "dp_update")
	assert.Contains(t, out, "line")

	out, err = run(t, "", "trace", "--format", "yaml", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "type: transform")
	assert.Contains(t, out, "^#a#$")
}

func TestTrace_Limit(t *testing.T) {
	_, err := run(t, "", "trace", "--limit", "3", "racecar")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out, err := run(t, "", "bench", "--lengths", "10,20", "--format", "json")
	require.NoError(t, err)

	var rep benchmark.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []int{10, 20}, rep.Lengths)
	assert.Len(t, rep.Cells, 8)
	assert.Equal(t, 8, rep.Count(benchmark.StatusOK))
}

func TestBench_Table(t *testing.T) {
	t.Setenv("LVPAL_BENCHMARK_SKIP_BRUTE_FORCE", "5")
	out, err := run(t, "", "bench", "--lengths", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "SKIPPED")
}

func TestServerConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 9999
	sc := serverConfig(&cfg)
	assert.Equal(t, 9999, sc.Port)
	assert.Equal(t, 100, sc.Limits[lps.BruteForce])
	assert.Equal(t, 1000, sc.Limits[lps.Manacher])
}
