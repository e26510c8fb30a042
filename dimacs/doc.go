// Package dimacs reads and writes the DIMACS-like text form of the
// parametric minimum cut problem.
//
// What:
//
//   - Read: parses an input stream into an Instance (validated
//     network.Network plus lambda range and round-negative flag).
//   - Write: renders a parametric.Result in the reference output form.
//
// Input form:
//
//	c <free-form comment>            (any number, anywhere)
//	p <N> <M> <lambdaLow> <lambdaHigh> <roundNegative 0|1>
//	n <node> s
//	n <node> t
//	a <from> <to> <constant> <multiplier>
//
//   - The p line must come first; both n lines must precede every a line,
//     since arc validation depends on knowing the source and sink.
//   - Arcs entering the source or leaving the sink are dropped (with the arc
//     count adjusted) and reported through Instance.Discarded rather than
//     silently.
//
// Output form:
//
//	t <readSec> <initSec> <solveSec>
//	s <arcScans> <mergers> <pushes> <relabels> <gaps>
//	p <K>
//	l <lambda_1> ... <lambda_K>
//	n <i> <ind_i1> ... <ind_iK>      (one line per node)
//
//   - Lambda values print with 12 significant digits, timings with
//     millisecond precision.
//
// Complexity:
//
//   - Read: O(M) time, one pass; Write: O(N*K).
//
// Errors (sentinel):
//
//   - ErrMalformedLine: a line that does not parse as its indicator demands.
//   - ErrUnknownIndicator: a line starting with an unknown character.
//   - ErrMissingProblemLine / ErrDuplicateProblemLine: p-line ordering.
//   - ErrDuplicateSource / ErrDuplicateSink / ErrUnknownNodeType: n lines.
//   - ErrArcBeforeNodes: an a line before both n lines.
//   - ErrSourceUnassigned / ErrSinkUnassigned: input ended incomplete.
//   - ErrArcCount: the number of a lines does not match the p line.
//   - ErrBadRoundFlag: a round-negative flag other than 0 or 1.
//   - network sentinels (ErrNodeRange, ErrSelfLoop, ...) pass through from
//     the final network.New validation.
package dimacs
