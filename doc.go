// Package parcut solves the fully parametric s-t minimum cut problem on
// directed capacitated graphs whose source- and sink-adjacent arc capacities
// are affine functions of a scalar parameter lambda.
//
// What:
//
//   - Given a range [lambdaLow, lambdaHigh], the solver produces the complete
//     sequence of breakpoints, the at most n values of lambda at which the
//     minimum source-side cut changes.
//   - Each breakpoint carries the source-set indicator vector that is optimal
//     on its sub-interval, nested under growing lambda.
//   - The engine runs once per contracted sub-instance, and each
//     sub-instance holds only the nodes its boundary cuts leave undecided.
//
// Why:
//
//   - Parametric selection: bipartite project/machine selection, densest
//     subgraph sweeps, energy minimization in vision.
//   - One call replaces a binary search of independent min-cut solves and
//     returns every optimal regime at once.
//
// The work is organized under four subpackages:
//
//	network/    - the "super" graph model: nodes, affine arcs, ingest validation
//	pseudoflow/ - Hochbaum's pseudoflow min-cut engine on normalized trees,
//	              plus the contractible CutProblem sub-instances it solves
//	parametric/ - the recursive breakpoint driver and the public Solve API
//	dimacs/     - reader and writer for the DIMACS-like text interchange form
//
// A command-line front end lives under cmd/parcut.
//
// The engine implements the single-parameter pseudoflow algorithm with
// strong/weak labels, gap relabeling and highest-label strong-root selection
// (Hochbaum, "The Pseudoflow algorithm: A new algorithm for the maximum flow
// problem", Operations Research 58(4), 2008). The parametric driver exploits
// nested-cut monotonicity to contract sub-instances between recursive calls.
//
//	go get github.com/katalvlaran/parcut
package parcut
