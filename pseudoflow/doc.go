// Package pseudoflow implements Hochbaum's pseudoflow algorithm for the s-t
// minimum cut problem, specialized to the needs of the parametric driver in
// package parametric.
//
// What:
//
//   - Problem: a self-contained cut instance with an artificial source (node
//     index 0), an artificial sink (node index 1), the interior nodes still
//     in play, and the sets of original nodes that earlier contractions have
//     already committed to one side.
//   - NewProblem builds the instance for a network.Network at one lambda;
//     Contract derives a smaller instance from a solved one via nested-cut
//     monotonicity; Solve runs the engine exactly once per instance.
//   - Solve(false, ...) yields the minimal source-side minimum cut; Solve
//     (true, ...) solves the reversed graph with source and sink swapped and
//     complements the answer, yielding the maximal source side instead.
//   - Stats counts arc scans, mergers, pushes, relabels and gaps across
//     every Solve sharing the struct; Config carries the rounding flag and
//     tolerance for capacity realization.
//
// How it works:
//
//   - The engine maintains a forest of normalized trees: every non-root node
//     has exactly one parent arc, all excess resides at roots, and tree
//     edges may be oriented either way relative to the arc's native
//     direction.
//   - Strong roots (roots with positive excess) wait in per-label FIFO
//     buckets. The main loop takes the highest-labeled strong root and
//     either merges its tree into a weak neighbor one label below, pushing
//     the excess along the new path, or relabels the tree.
//   - An empty label below occupied ones is a gap: every tree waiting at the
//     label just above the gap is lifted to label n wholesale.
//   - When no strong root remains, the nodes with label >= n form the source
//     side of a minimum cut.
//
// Complexity:
//
//   - Phase 1 with highest-label selection: O(n*m*log n) time.
//   - Memory: O(n + m); every structure the engine allocates (label counts,
//     strong-root buckets, per-node out-of-tree arc lists) is scoped to a
//     single Solve call. There is no package-level state.
//
// Configuration:
//
//   - Config.RoundNegativeCapacity: clamp negative realized capacities to 0
//     instead of failing.
//   - Config.Tolerance: width of the (-Tolerance, 0] band that clamps even
//     without the flag; defaults to DefaultTolerance (1e-8).
//
// Errors (sentinel):
//
//   - ErrNegativeCapacity: a realized capacity fell to or below
//     -Tolerance at this instance's lambda while RoundNegativeCapacity is
//     off. Returned by NewProblem and Contract; test with errors.Is.
//
// The engine compares excess and flow values by exact sign, as the reference
// algorithm does; Config.Tolerance applies only to capacity realization.
package pseudoflow
