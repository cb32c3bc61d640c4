package benchmark

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable prints the report as one row per length and one column per
// algorithm. Each ok cell shows "time ms / memory KB"; the other cells show
// SKIPPED or ERROR.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "length")
	for _, id := range r.Algorithms {
		fmt.Fprintf(tw, "\t%s", id)
	}
	fmt.Fprintln(tw)

	for i, n := range r.Lengths {
		fmt.Fprintf(tw, "%d", n)
		for _, id := range r.Algorithms {
			c, _ := r.Cell(i, id)
			fmt.Fprintf(tw, "\t%s", c.label())
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func (c Cell) label() string {
	switch c.Status {
	case StatusOK:
		return fmt.Sprintf("%.3f ms / %.1f KB", c.ElapsedMS, c.AllocKB())
	case StatusSkipped:
		return "SKIPPED"
	default:
		return "ERROR"
	}
}
