// Package parametric discovers every breakpoint of the parametric s-t
// minimum cut problem on a network.Network over a lambda range
// [lambdaLow, lambdaHigh].
//
// What:
//
//   - Solve: breakpoints over a validated *network.Network.
//   - SolveArcMatrix: the flat entry point over a length-4M arc matrix of
//     (from, to, constant, multiplier) rows.
//   - Result: breakpoints in ascending lambda order with their source-set
//     indicators, engine statistics, and read/init/solve timings; helpers
//     flatten to a lambda slice, a column-major N x K indicator matrix, and
//     the conventional 5-counter statistics array.
//
// How it works:
//
//   - The driver rests on nested-cut monotonicity: under the
//     signed-multiplier convention S*(low) is contained in S*(lambda) is
//     contained in S*(high) for every lambda in the interval.
//   - Each recursion level solves the low end for a minimal source-side cut
//     and the high end for a maximal one, then intersects their affine
//     cut-value functions Phi(lambda) = cutConstant + cutMultiplier*lambda
//     at lambda* = (cLow - cHigh) / (mHigh - mLow).
//   - lambda* strictly inside the interval means at least two breakpoints:
//     the instance is contracted at lambda* (low-side nodes into the source,
//     high-side complements into the sink) and both halves recurse. lambda*
//     on a bound within tolerance is itself a breakpoint. Otherwise the
//     interval holds none.
//   - The outermost level additionally records lambdaHigh with the high
//     end's cut so the final segment is always represented; adjacent
//     duplicate lambdas are collapsed before returning. A degenerate range
//     (lambdaLow == lambdaHigh) short-circuits to one min-cut solve.
//
// Complexity:
//
//   - At most n breakpoints exist; contraction shrinks every sub-instance,
//     so the sweep costs a small constant number of plain min-cut solves in
//     practice.
//
// Options:
//
//   - RoundNegativeCapacity: clamp negative realized capacities to zero
//     instead of failing (see pseudoflow.Config).
//   - Tolerance: lambda-comparison and clamping tolerance (default 1e-8).
//   - Verbose: print each recursion interval.
//
// Errors (sentinel):
//
//   - ErrNilNetwork: Solve received a nil network.
//   - ErrBadLambdaRange: lambdaLow > lambdaHigh.
//   - ErrArcMatrixSize: SolveArcMatrix received a matrix whose length is not
//     4*numArcs.
//   - pseudoflow.ErrNegativeCapacity: a realized capacity went negative with
//     rounding disabled (wrapped, test with errors.Is).
package parametric
