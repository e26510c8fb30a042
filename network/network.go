package network

import "fmt"

// Arc is a directed arc whose capacity is affine in lambda:
// capacity(lambda) = Constant + Multiplier*lambda.
type Arc struct {
	From, To   int
	Constant   float64
	Multiplier float64
}

// Network is the validated super graph. It owns its arc storage and outlives
// every sub-instance derived from it; solvers never mutate it.
type Network struct {
	NumNodes int
	Source   int
	Sink     int

	// Arcs holds every accepted arc, in input order.
	Arcs []Arc

	// Discarded holds arcs that can never cross an s-t cut (To == Source or
	// From == Sink). They are dropped from Arcs but kept here so callers can
	// surface a warning instead of losing them silently.
	Discarded []Arc
}

// New validates and assembles a Network from raw arc quadruples.
//
// Validation rules, checked in order per arc:
//  1. endpoints in [0, numNodes)
//  2. no self loops
//  3. Multiplier > 0 only if From == source
//  4. Multiplier < 0 only if To == sink
//
// Arcs with To == source or From == sink are moved to Discarded rather than
// rejected. All other violations return a wrapped sentinel error naming the
// offending arc.
func New(numNodes, source, sink int, arcs []Arc) (*Network, error) {
	if numNodes < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, numNodes)
	}
	if source < 0 || source >= numNodes {
		return nil, fmt.Errorf("%w: source %d with %d nodes", ErrNodeRange, source, numNodes)
	}
	if sink < 0 || sink >= numNodes {
		return nil, fmt.Errorf("%w: sink %d with %d nodes", ErrNodeRange, sink, numNodes)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: node %d", ErrSourceSinkEqual, source)
	}

	net := &Network{
		NumNodes: numNodes,
		Source:   source,
		Sink:     sink,
		Arcs:     make([]Arc, 0, len(arcs)),
	}

	for _, a := range arcs {
		if a.From < 0 || a.From >= numNodes || a.To < 0 || a.To >= numNodes {
			return nil, fmt.Errorf("%w: arc %d->%d with %d nodes", ErrNodeRange, a.From, a.To, numNodes)
		}
		if a.From == a.To {
			return nil, fmt.Errorf("%w: node %d", ErrSelfLoop, a.From)
		}
		if a.Multiplier > 0 && a.From != source {
			return nil, fmt.Errorf("%w: arc %d->%d multiplier %g", ErrSourceMultiplier, a.From, a.To, a.Multiplier)
		}
		if a.Multiplier < 0 && a.To != sink {
			return nil, fmt.Errorf("%w: arc %d->%d multiplier %g", ErrSinkMultiplier, a.From, a.To, a.Multiplier)
		}
		if a.To == source || a.From == sink {
			net.Discarded = append(net.Discarded, a)
			continue
		}
		net.Arcs = append(net.Arcs, a)
	}

	return net, nil
}

// NumArcs reports the number of accepted arcs.
func (n *Network) NumArcs() int { return len(n.Arcs) }
