// parcut solves the fully parametric s-t minimum cut problem over a text
// input in the DIMACS-like form of package dimacs.
//
//	parcut [flags] [input-file]
//
// Input defaults to stdin, output to stdout. --format table renders the
// breakpoints as a table instead of the machine-readable output form.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/parcut/dimacs"
	"github.com/katalvlaran/parcut/parametric"
)

// Config is the top-level configuration of the parcut CLI.
var Config = new(struct {
	Output  string `long:"output" short:"o" description:"Write results to the named file instead of stdout"`
	Format  string `long:"format" default:"dimacs" choice:"dimacs" choice:"table" description:"Output rendering"`
	Verbose bool   `long:"verbose" short:"v" description:"Log each recursion interval"`

	Args struct {
		InputFile string `positional-arg-name:"input-file"`
	} `positional-args:"yes"`
})

func main() {
	parser := flags.NewParser(Config, flags.Default)
	parser.Usage = "[flags] [input-file]"
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if Config.Args.InputFile != "" {
		f, err := os.Open(Config.Args.InputFile)
		if err != nil {
			log.WithError(err).Fatal("failed to open input file")
		}
		defer f.Close()
		in = f
	}

	readStart := time.Now()
	inst, err := dimacs.Read(in)
	if err != nil {
		log.WithError(err).Fatal("failed to read problem")
	}
	readSeconds := time.Since(readStart).Seconds()
	for _, a := range inst.Discarded {
		log.WithFields(log.Fields{"from": a.From, "to": a.To}).
			Warn("discarding arc that cannot cross any s-t cut")
	}

	opts := parametric.DefaultOptions()
	opts.RoundNegativeCapacity = inst.RoundNegativeCapacity
	opts.Verbose = Config.Verbose

	res, err := parametric.Solve(inst.Network, inst.LambdaLow, inst.LambdaHigh, opts)
	if err != nil {
		log.WithError(err).Fatal("solve failed")
	}
	res.Times.Read = readSeconds

	var out io.Writer = os.Stdout
	if Config.Output != "" {
		f, err := os.Create(Config.Output)
		if err != nil {
			log.WithError(err).Fatal("failed to create output file")
		}
		defer f.Close()
		out = f
	}

	switch Config.Format {
	case "table":
		outputTable(out, res)
	default:
		if err = dimacs.Write(out, res); err != nil {
			log.WithError(err).Fatal("failed to write result")
		}
	}
}

func outputTable(out io.Writer, res *parametric.Result) {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Breakpoint", "Lambda", "Source Set Size"})

	for i, bp := range res.Breakpoints {
		size := 0
		for _, ind := range bp.SourceSetIndicator {
			size += ind
		}
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.12g", bp.Lambda),
			fmt.Sprintf("%d of %d", size, res.NumNodes),
		})
	}
	table.Render()
}
