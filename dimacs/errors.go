package dimacs

import "errors"

var (
	// ErrMalformedLine indicates a line that does not parse as its indicator
	// demands.
	ErrMalformedLine = errors.New("dimacs: malformed line")
	// ErrUnknownIndicator indicates a line starting with an unrecognized
	// character.
	ErrUnknownIndicator = errors.New("dimacs: unknown line indicator")
	// ErrMissingProblemLine indicates an n or a line before the p line.
	ErrMissingProblemLine = errors.New("dimacs: p line must come first")
	// ErrDuplicateProblemLine indicates a second p line.
	ErrDuplicateProblemLine = errors.New("dimacs: duplicate p line")
	// ErrDuplicateSource indicates a second n ... s line.
	ErrDuplicateSource = errors.New("dimacs: source is already defined")
	// ErrDuplicateSink indicates a second n ... t line.
	ErrDuplicateSink = errors.New("dimacs: sink is already defined")
	// ErrUnknownNodeType indicates an n line whose type is neither s nor t.
	ErrUnknownNodeType = errors.New("dimacs: node type must be s or t")
	// ErrArcBeforeNodes indicates an a line before both n lines; arc
	// validation needs the source and sink.
	ErrArcBeforeNodes = errors.New("dimacs: arcs must follow the source and sink lines")
	// ErrSourceUnassigned indicates the input ended without an n ... s line.
	ErrSourceUnassigned = errors.New("dimacs: source is not assigned")
	// ErrSinkUnassigned indicates the input ended without an n ... t line.
	ErrSinkUnassigned = errors.New("dimacs: sink is not assigned")
	// ErrArcCount indicates the number of a lines does not match the p line.
	ErrArcCount = errors.New("dimacs: incorrect number of arcs specified")
	// ErrBadRoundFlag indicates a round-negative flag other than 0 or 1.
	ErrBadRoundFlag = errors.New("dimacs: round-negative flag must be 0 or 1")
)
