package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/step"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func checkFormat(f string) error {
	switch f {
	case formatTable, formatJSON, formatYAML:
		return nil
	}

	return fmt.Errorf("unknown format %q: want table, json or yaml", f)
}

// resultView is the YAML shape of lps.Result, matching its JSON field names.
type resultView struct {
	Substring string  `yaml:"substring"`
	Start     int     `yaml:"start_index"`
	End       int     `yaml:"end_index"`
	Length    int     `yaml:"length"`
	Algorithm lps.ID  `yaml:"algorithm"`
	ElapsedMS float64 `yaml:"execution_time_ms"`
}

func viewOf(r lps.Result) resultView {
	return resultView{
		Substring: r.Substring,
		Start:     r.Start,
		End:       r.End,
		Length:    r.Length,
		Algorithm: r.Algorithm,
		ElapsedMS: r.ElapsedMillis(),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func writeResults(w io.Writer, format string, results []lps.Result) error {
	switch format {
	case formatJSON:
		return writeJSON(w, results)
	case formatYAML:
		views := make([]resultView, len(results))
		for i, r := range results {
			views[i] = viewOf(r)
		}

		return writeYAML(w, views)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tsubstring\tstart\tend\tlength\ttime_ms")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%q\t%d\t%d\t%d\t%.3f\n", r.Algorithm, r.Substring, r.Start, r.End, r.Length, r.ElapsedMillis())
	}

	return tw.Flush()
}

func writeTrace(w io.Writer, format string, trace *step.Trace) error {
	switch format {
	case formatJSON:
		return writeJSON(w, trace)
	case formatYAML:
		// reuse the JSON field names
		raw, err := json.Marshal(trace)
		if err != nil {
			return err
		}
		var records []map[string]any
		if err := json.Unmarshal(raw, &records); err != nil {
			return err
		}

		return writeYAML(w, records)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tline\ttype\tindices\tdescription")
	i := 0
	for ev := range trace.All() {
		line := "-"
		if ev.Line > 0 {
			line = fmt.Sprint(ev.Line)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, line, ev.Kind, joinInts(ev.Positions), ev.Description)
		i++
	}

	return tw.Flush()
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, ",")
}
