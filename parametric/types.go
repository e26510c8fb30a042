package parametric

import (
	"errors"

	"github.com/katalvlaran/parcut/pseudoflow"
)

var (
	// ErrNilNetwork indicates a nil *network.Network was passed to Solve.
	ErrNilNetwork = errors.New("parametric: network is nil")
	// ErrBadLambdaRange indicates lambdaLow > lambdaHigh.
	ErrBadLambdaRange = errors.New("parametric: lambdaLow must not exceed lambdaHigh")
	// ErrArcMatrixSize indicates the flat arc matrix does not hold exactly
	// four values per arc.
	ErrArcMatrixSize = errors.New("parametric: arc matrix length must be 4*numArcs")
)

// Options configures a parametric solve.
//   - RoundNegativeCapacity: clamp negative realized capacities to zero
//     instead of failing (see pseudoflow.Config).
//   - Tolerance: lambda-comparison and clamping tolerance (default 1e-8).
//   - Verbose: log each recursion interval to stdout.
type Options struct {
	RoundNegativeCapacity bool
	Tolerance             float64
	Verbose               bool
}

// DefaultOptions returns production-safe defaults: exact capacities
// (no rounding), tolerance 1e-8, quiet.
func DefaultOptions() Options {
	return Options{Tolerance: pseudoflow.DefaultTolerance}
}

func (o *Options) normalize() {
	if o.Tolerance <= 0 {
		o.Tolerance = pseudoflow.DefaultTolerance
	}
}

// Timings reports wall-clock seconds spent reading input, building the two
// boundary sub-instances, and running the recursive solve.
type Timings struct {
	Read  float64
	Init  float64
	Solve float64
}

// Result is the outcome of one parametric solve: the breakpoint sequence in
// ascending lambda order (adjacent duplicates removed), the engine's
// operation counters, and the timing triple.
type Result struct {
	NumNodes    int
	Breakpoints []Breakpoint
	Stats       pseudoflow.Stats
	Times       Timings
}

// Lambdas returns the breakpoint lambda values in emission order.
func (r *Result) Lambdas() []float64 {
	out := make([]float64, len(r.Breakpoints))
	for i, bp := range r.Breakpoints {
		out[i] = bp.Lambda
	}
	return out
}

// IndicatorMatrix flattens the cuts into a NumNodes x K matrix in
// column-major layout: column j (entries [j*NumNodes, (j+1)*NumNodes)) is
// breakpoint j's source-set indicator.
func (r *Result) IndicatorMatrix() []int {
	out := make([]int, r.NumNodes*len(r.Breakpoints))
	for j, bp := range r.Breakpoints {
		copy(out[j*r.NumNodes:(j+1)*r.NumNodes], bp.SourceSetIndicator)
	}
	return out
}

// StatsArray returns the counters in the conventional reporting order:
// arc scans, mergers, pushes, relabels, gaps.
func (r *Result) StatsArray() [5]uint64 {
	return [5]uint64{
		r.Stats.ArcScans,
		r.Stats.Mergers,
		r.Stats.Pushes,
		r.Stats.Relabels,
		r.Stats.Gaps,
	}
}
