package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/parcut/parametric"
)

// Write renders a solve result in the output form described in the package
// comment: timings, statistics, breakpoint count, the lambda row, then one
// indicator row per node.
func Write(w io.Writer, res *parametric.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "t %.3f %.3f %.3f\n", res.Times.Read, res.Times.Init, res.Times.Solve)

	stats := res.StatsArray()
	fmt.Fprintf(bw, "s %d %d %d %d %d\n", stats[0], stats[1], stats[2], stats[3], stats[4])

	fmt.Fprintf(bw, "p %d\n", len(res.Breakpoints))

	fmt.Fprint(bw, "l")
	for _, bp := range res.Breakpoints {
		fmt.Fprintf(bw, " %.12g", bp.Lambda)
	}
	fmt.Fprintln(bw)

	for i := 0; i < res.NumNodes; i++ {
		fmt.Fprintf(bw, "n %d", i)
		for _, bp := range res.Breakpoints {
			fmt.Fprintf(bw, " %d", bp.SourceSetIndicator[i])
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dimacs: write: %w", err)
	}
	return nil
}
