package network

import "errors"

var (
	// ErrBadNodeCount indicates the graph has fewer than two nodes; a source
	// and a sink are always required.
	ErrBadNodeCount = errors.New("network: graph must have at least two nodes")
	// ErrNodeRange indicates a node id outside [0, NumNodes).
	ErrNodeRange = errors.New("network: node id out of range")
	// ErrSourceSinkEqual indicates source and sink refer to the same node.
	ErrSourceSinkEqual = errors.New("network: source and sink must differ")
	// ErrSelfLoop indicates an arc with identical endpoints.
	ErrSelfLoop = errors.New("network: self loops are not allowed")
	// ErrSourceMultiplier indicates a strictly positive lambda multiplier on
	// an arc that does not leave the source.
	ErrSourceMultiplier = errors.New("network: only source-adjacent arcs may have a positive multiplier")
	// ErrSinkMultiplier indicates a strictly negative lambda multiplier on an
	// arc that does not enter the sink.
	ErrSinkMultiplier = errors.New("network: only sink-adjacent arcs may have a negative multiplier")
)
