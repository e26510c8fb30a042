package parametric

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/parcut/network"
	"github.com/katalvlaran/parcut/pseudoflow"
)

// Solve computes every breakpoint of the parametric minimum cut of net on
// [lambdaLow, lambdaHigh].
//
// It returns:
//   - res: breakpoints in ascending lambda order with their source-set
//     indicators, plus engine statistics and init/solve timings
//     (res.Times.Read is left zero; SolveArcMatrix and the CLI fill it)
//   - err: ErrNilNetwork, ErrBadLambdaRange, or a wrapped
//     pseudoflow.ErrNegativeCapacity
//
// Steps:
//  1. Validate arguments and normalize opts.
//  2. Build the boundary sub-instances at lambdaLow and lambdaHigh.
//  3. Degenerate range: one direct solve, one breakpoint.
//  4. Otherwise recurse per the interval-splitting scheme (see package doc)
//     and collapse duplicate lambda values.
func Solve(net *network.Network, lambdaLow, lambdaHigh float64, opts Options) (*Result, error) {
	opts.normalize()

	if net == nil {
		return nil, ErrNilNetwork
	}
	if lambdaLow > lambdaHigh {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadLambdaRange, lambdaLow, lambdaHigh)
	}

	d := &driver{
		cfg: pseudoflow.Config{
			RoundNegativeCapacity: opts.RoundNegativeCapacity,
			Tolerance:             opts.Tolerance,
		},
		tol:     opts.Tolerance,
		verbose: opts.Verbose,
		stats:   &pseudoflow.Stats{},
	}

	res := &Result{NumNodes: net.NumNodes}
	parametricRange := lambdaLow != lambdaHigh

	initStart := time.Now()
	low, err := pseudoflow.NewProblem(net, lambdaLow, d.cfg)
	if err != nil {
		return nil, err
	}
	var high *pseudoflow.Problem
	if parametricRange {
		if high, err = pseudoflow.NewProblem(net, lambdaHigh, d.cfg); err != nil {
			return nil, err
		}
	}
	res.Times.Init = time.Since(initStart).Seconds()

	solveStart := time.Now()
	if parametricRange {
		if err = d.run(low, high); err != nil {
			return nil, err
		}
		d.breakpoints.removeDuplicates(d.tol)
	} else {
		low.Solve(false, d.stats)
		d.breakpoints.add(low.Lambda, low.SourceSetIndicator)
	}
	res.Times.Solve = time.Since(solveStart).Seconds()

	res.Breakpoints = d.breakpoints.items
	res.Stats = *d.stats
	return res, nil
}

// SolveArcMatrix is the flat entry point: arcMatrix holds numArcs rows of
// (from, to, constant, multiplier). It validates the matrix shape, builds
// the network (charged to Times.Read), and delegates to Solve.
func SolveArcMatrix(numNodes, numArcs, source, sink int, arcMatrix []float64, lambdaRange [2]float64, roundNegativeCapacity bool) (*Result, error) {
	readStart := time.Now()
	if len(arcMatrix) != 4*numArcs {
		return nil, fmt.Errorf("%w: got %d values for %d arcs", ErrArcMatrixSize, len(arcMatrix), numArcs)
	}

	arcs := make([]network.Arc, numArcs)
	for i := 0; i < numArcs; i++ {
		arcs[i] = network.Arc{
			From:       int(arcMatrix[i*4+0]),
			To:         int(arcMatrix[i*4+1]),
			Constant:   arcMatrix[i*4+2],
			Multiplier: arcMatrix[i*4+3],
		}
	}
	net, err := network.New(numNodes, source, sink, arcs)
	if err != nil {
		return nil, err
	}
	readSeconds := time.Since(readStart).Seconds()

	opts := DefaultOptions()
	opts.RoundNegativeCapacity = roundNegativeCapacity

	res, err := Solve(net, lambdaRange[0], lambdaRange[1], opts)
	if err != nil {
		return nil, err
	}
	res.Times.Read = readSeconds
	return res, nil
}

// driver carries the recursion state of one top-level solve. All mutable
// state lives here; two runs over the same input produce identical results.
type driver struct {
	cfg         pseudoflow.Config
	tol         float64
	verbose     bool
	stats       *pseudoflow.Stats
	breakpoints breakpointStore
}

// run handles one interval [low.Lambda, high.Lambda]. Both boundary
// problems are solved on demand, so the recursion solves each contracted
// instance exactly once.
func (d *driver) run(low, high *pseudoflow.Problem) error {
	baseLevel := !low.Solved && !high.Solved

	if !low.Solved {
		low.Solve(false, d.stats)
	}
	if !high.Solved {
		high.Solve(true, d.stats)
	}

	if d.verbose {
		fmt.Printf("parametric: interval [%g, %g] cuts %g%+g*lambda / %g%+g*lambda\n",
			low.Lambda, high.Lambda, low.CutConstant, low.CutMultiplier, high.CutConstant, high.CutMultiplier)
	}

	// Intersect the two affine cut-value functions. A denominator within
	// tolerance of zero means the functions are parallel: no intersection.
	var lambdaStar float64
	intersects := math.Abs(high.CutMultiplier-low.CutMultiplier) > d.tol
	if intersects {
		lambdaStar = (low.CutConstant - high.CutConstant) / (high.CutMultiplier - low.CutMultiplier)
	}

	switch {
	case intersects && lambdaStar+d.tol < high.Lambda && lambdaStar-d.tol > low.Lambda:
		// At least two breakpoints: lambdaStar separates the interval into
		// halves each holding at least one. Nodes on the low cut's source
		// side stay there for lambda >= low.Lambda, nodes off the high
		// cut's source side stay off for lambda <= high.Lambda, so both
		// contractions are safe.
		upper, err := low.Contract(lambdaStar, low.SourceSetIndicator, high.SourceSetIndicator, d.cfg)
		if err != nil {
			return err
		}
		if err = d.run(low, upper); err != nil {
			return err
		}

		lower, err := low.Contract(lambdaStar, low.SourceSetIndicator, high.SourceSetIndicator, d.cfg)
		if err != nil {
			return err
		}
		if err = d.run(lower, high); err != nil {
			return err
		}

	case intersects && math.Abs(lambdaStar-high.Lambda) <= d.tol:
		// The cut changes exactly at the upper bound.
		d.breakpoints.add(high.Lambda, low.SourceSetIndicator)

	case intersects && math.Abs(lambdaStar-low.Lambda) <= d.tol:
		d.breakpoints.add(low.Lambda, low.SourceSetIndicator)
	}

	// The recursion only records lambdas where the cut changes; the final
	// segment up to lambdaHigh is recorded once, at the outermost level.
	if baseLevel {
		d.breakpoints.add(high.Lambda, high.SourceSetIndicator)
	}
	return nil
}
