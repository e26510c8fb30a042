// Package network defines the "super" graph over which all parametric
// minimum-cut sub-instances are built: a directed graph of N nodes and a
// list of arcs whose capacities are affine in the parameter lambda,
//
//	capacity(lambda) = Constant + Multiplier*lambda.
//
// What:
//
//   - Arc: a (From, To, Constant, Multiplier) quadruple.
//   - Network: the validated model; it owns its arc storage, outlives every
//     sub-instance derived from it, and is never mutated by solvers.
//   - New: the single validating constructor.
//
// Why:
//
//   - The signed-multiplier convention below is what makes parametric cuts
//     monotone, so it is enforced once, at ingest, instead of inside the
//     engine:
//   - Multiplier > 0 is allowed only on source-adjacent arcs (From == Source).
//   - Multiplier < 0 is allowed only on sink-adjacent arcs (To == Sink).
//   - Interior arcs must have Multiplier == 0.
//
// Discarded arcs:
//
//   - Arcs entering the source or leaving the sink can never cross an s-t
//     cut, so they are not rejected: New drops them from Arcs and records
//     them in Discarded so callers can warn about them.
//
// Complexity:
//
//   - New: O(M) time and memory over the input arc list.
//
// Errors (sentinel):
//
//   - ErrBadNodeCount: fewer than two nodes.
//   - ErrNodeRange: a node id outside [0, NumNodes).
//   - ErrSourceSinkEqual: source and sink are the same node.
//   - ErrSelfLoop: an arc with From == To.
//   - ErrSourceMultiplier: a positive multiplier off the source.
//   - ErrSinkMultiplier: a negative multiplier off the sink.
package network
