package pseudoflow

import (
	"fmt"

	"github.com/katalvlaran/parcut/network"
)

// Problem is one cut sub-instance. Node index 0 is always the artificial
// source and index 1 the artificial sink; sourceSet and sinkSet hold the
// original ids of super-graph nodes that contraction has already committed
// to one side. A Problem is solved at most once, at its own Lambda.
//
// After Solve, SourceSetIndicator covers the full original index space:
// contracted nodes are folded in as 1s (source side) and 0s (sink side), so
// the indicator is directly comparable across sub-instances.
type Problem struct {
	// Lambda is the parameter value at which capacities are realized.
	Lambda float64

	// Solved records whether Solve has run.
	Solved bool

	// SourceSetIndicator is the optimal cut over the original index space,
	// length NumNodesSuper. Valid once Solved.
	SourceSetIndicator []int

	// CutConstant and CutMultiplier are the coefficients of the cut-value
	// function Phi(lambda) = CutConstant + CutMultiplier*lambda;
	// CutValue is its realization at Lambda. Valid once Solved.
	CutConstant   float64
	CutMultiplier float64
	CutValue      float64

	numNodesSuper int
	nodes         []node
	arcs          []arc
	sourceSet     []int
	sinkSet       []int
}

// NumNodes reports the size of the sub-instance's node list, artificial
// source and sink included.
func (p *Problem) NumNodes() int { return len(p.nodes) }

// NumArcs reports the number of arcs in the sub-instance.
func (p *Problem) NumArcs() int { return len(p.arcs) }

// NewProblem builds the initial sub-instance for net at the given lambda:
// the artificial source (originalIndex -1) at index 0 and artificial sink
// (originalIndex -2) at index 1 stand in for net.Source and net.Sink, which
// seed sourceSet and sinkSet; every other node follows in super-graph order.
// Capacities are realized at lambda under cfg, which may fail with
// ErrNegativeCapacity.
func NewProblem(net *network.Network, lambda float64, cfg Config) (*Problem, error) {
	p := &Problem{
		Lambda:        lambda,
		numNodesSuper: net.NumNodes,
		sourceSet:     []int{net.Source},
		sinkSet:       []int{net.Sink},
		nodes:         make([]node, net.NumNodes),
	}

	nodeMap := make([]int, net.NumNodes)
	current := 2
	for i := 0; i < net.NumNodes; i++ {
		switch i {
		case net.Source:
			initNode(&p.nodes[0], 0, artificialSource)
			nodeMap[i] = 0
		case net.Sink:
			initNode(&p.nodes[1], 1, artificialSink)
			nodeMap[i] = 1
		default:
			initNode(&p.nodes[current], current, i)
			nodeMap[i] = current
			current++
		}
	}

	p.arcs = make([]arc, len(net.Arcs))
	for i, a := range net.Arcs {
		p.setArc(i, nodeMap[a.From], nodeMap[a.To], a.Constant, a.Multiplier)
	}

	return p, p.realizeCapacities(cfg)
}

// setArc initializes arc slot i and maintains the endpoint adjacency counts
// that size the out-of-tree lists later.
func (p *Problem) setArc(i, from, to int, constant, multiplier float64) {
	p.arcs[i] = arc{
		from:       &p.nodes[from],
		to:         &p.nodes[to],
		constant:   constant,
		multiplier: multiplier,
		direction:  1,
	}
	p.nodes[from].numAdjacent++
	p.nodes[to].numAdjacent++
}

// realizeCapacities evaluates capacity = constant + multiplier*lambda for
// every arc. Negative results are clamped to zero when the round flag is set
// or the value sits within tolerance of zero; otherwise the instance is
// infeasible at this lambda.
func (p *Problem) realizeCapacities(cfg Config) error {
	tol := cfg.tolerance()
	for i := range p.arcs {
		a := &p.arcs[i]
		a.capacity = a.constant + a.multiplier*p.Lambda
		if a.capacity >= 0 {
			continue
		}
		if cfg.RoundNegativeCapacity || a.capacity > -tol {
			a.capacity = 0
			continue
		}
		return fmt.Errorf("%w: %g on arc %d->%d at lambda=%g; set RoundNegativeCapacity to clamp to 0",
			ErrNegativeCapacity, a.capacity, a.from.originalIndex, a.to.originalIndex, p.Lambda)
	}
	return nil
}

// Contract derives a sub-instance at a new lambda from a solved instance,
// using the nested-cut property: any original node with lowIndicator 1
// (source side of the minimal cut at the low end) moves into the source set,
// any with highIndicator 0 (sink side of the maximal cut at the high end)
// moves into the sink set, and the rest stay interior.
//
// The arc list is rebuilt: interior arcs copy over; arcs whose tail
// collapses into the source merge into one source-adjacent arc per distinct
// head (constants and multipliers summed), symmetrically for heads
// collapsing into the sink; source-to-sink arcs merge into one artificial
// arc, still affine in lambda. Arcs contradicting the contraction (into the
// source or out of the sink) and arcs interior to one side are dropped.
func (p *Problem) Contract(lambda float64, lowIndicator, highIndicator []int, cfg Config) (*Problem, error) {
	np := &Problem{
		Lambda:        lambda,
		numNodesSuper: p.numNodesSuper,
		sourceSet:     append([]int(nil), p.sourceSet...),
		sinkSet:       append([]int(nil), p.sinkSet...),
	}

	// Partition the old interior and build the old-index -> new-index map.
	nodeMap := make([]int, len(p.nodes))
	nodeMap[0] = 0
	nodeMap[1] = 1
	interior := 2
	for i := 2; i < len(p.nodes); i++ {
		original := p.nodes[i].originalIndex
		switch {
		case lowIndicator[original] == 1:
			np.sourceSet = append(np.sourceSet, original)
			nodeMap[i] = 0
		case highIndicator[original] == 0:
			np.sinkSet = append(np.sinkSet, original)
			nodeMap[i] = 1
		default:
			nodeMap[i] = interior
			interior++
		}
	}

	np.nodes = make([]node, interior)
	initNode(&np.nodes[0], 0, artificialSource)
	initNode(&np.nodes[1], 1, artificialSink)
	for i := 2; i < len(p.nodes); i++ {
		if m := nodeMap[i]; m >= 2 {
			initNode(&np.nodes[m], m, p.nodes[i].originalIndex)
		}
	}

	// Rebuild arcs, merging everything that collapsed onto the artificial
	// endpoints. sourceAdjacent[v] / sinkAdjacent[v] remember the slot of
	// the merged arc touching interior node v.
	sourceAdjacent := make([]int, interior)
	sinkAdjacent := make([]int, interior)
	for i := range sourceAdjacent {
		sourceAdjacent[i] = -1
		sinkAdjacent[i] = -1
	}

	np.arcs = make([]arc, 0, len(p.arcs))
	appendArc := func(from, to int, a *arc) {
		np.arcs = append(np.arcs, arc{
			constant:   a.constant,
			multiplier: a.multiplier,
			direction:  1,
		})
		// Endpoint pointers are bound after the slice stops growing.
		np.nodes[from].numAdjacent++
		np.nodes[to].numAdjacent++
	}
	ends := make([][2]int, 0, len(p.arcs))

	for i := range p.arcs {
		a := &p.arcs[i]
		from := nodeMap[a.from.number]
		to := nodeMap[a.to.number]

		switch {
		case from == to || to == 0 || from == 1:
			// Collapsed inside one side, or contradicts the contraction.
		case from == 0:
			if j := sourceAdjacent[to]; j >= 0 {
				np.arcs[j].constant += a.constant
				np.arcs[j].multiplier += a.multiplier
			} else {
				sourceAdjacent[to] = len(np.arcs)
				appendArc(from, to, a)
				ends = append(ends, [2]int{from, to})
			}
		case to == 1:
			if j := sinkAdjacent[from]; j >= 0 {
				np.arcs[j].constant += a.constant
				np.arcs[j].multiplier += a.multiplier
			} else {
				sinkAdjacent[from] = len(np.arcs)
				appendArc(from, to, a)
				ends = append(ends, [2]int{from, to})
			}
		default:
			appendArc(from, to, a)
			ends = append(ends, [2]int{from, to})
		}
	}

	for i := range np.arcs {
		np.arcs[i].from = &np.nodes[ends[i][0]]
		np.arcs[i].to = &np.nodes[ends[i][1]]
	}

	return np, np.realizeCapacities(cfg)
}

// evaluateCut accumulates the affine cut coefficients over every arc that
// crosses from the source side to the sink side of the indicator, the
// artificial endpoints included.
func (p *Problem) evaluateCut() {
	for i := range p.arcs {
		a := &p.arcs[i]
		fromIdx := a.from.originalIndex
		toIdx := a.to.originalIndex
		fromSource := fromIdx == artificialSource || p.SourceSetIndicator[fromIdx] == 1
		toSink := toIdx == artificialSink || p.SourceSetIndicator[toIdx] == 0
		if fromSource && toSink {
			p.CutValue += a.capacity
			p.CutMultiplier += a.multiplier
			p.CutConstant += a.constant
		}
	}
}

// Solve runs the engine on the instance and writes the optimal cut back into
// SourceSetIndicator and the Cut* fields.
//
// With maximalSourceSet false the direct solve yields the minimal source
// side among all minimum cuts. With it true the engine runs on a
// reversed-arc copy with source and sink swapped, and the answer is
// complemented, which yields the maximal source side instead.
func (p *Problem) Solve(maximalSourceSet bool, stats *Stats) {
	p.CutValue = 0
	p.CutMultiplier = 0
	p.CutConstant = 0

	// A fully contracted instance: both endpoints artificial, no interior.
	// The cut is fixed; only the artificial source-to-sink arcs count.
	if len(p.nodes) == 2 {
		p.SourceSetIndicator = make([]int, p.numNodesSuper)
		for _, original := range p.sourceSet {
			p.SourceSetIndicator[original] = 1
		}
		for _, original := range p.sinkSet {
			p.SourceSetIndicator[original] = 0
		}
		for i := range p.arcs {
			a := &p.arcs[i]
			if a.from.originalIndex == artificialSource && a.to.originalIndex == artificialSink {
				p.CutConstant += a.constant
				p.CutMultiplier += a.multiplier
				p.CutValue += a.capacity
			}
		}
		p.Solved = true
		return
	}

	s := &solver{
		nodes:              p.nodes,
		numNodes:           len(p.nodes),
		highestStrongLabel: 1,
		stats:              stats,
	}

	if maximalSourceSet {
		// Solve the reversed graph with source and sink swapped. The copy
		// shares the node arena; only capacities matter to the engine.
		s.source = 1
		s.sink = 0
		s.arcs = make([]arc, len(p.arcs))
		for i := range p.arcs {
			s.arcs[i] = arc{
				from:      p.arcs[i].to,
				to:        p.arcs[i].from,
				capacity:  p.arcs[i].capacity,
				direction: 1,
			}
		}
	} else {
		s.source = 0
		s.sink = 1
		s.arcs = p.arcs
	}

	s.buildStructures()
	s.simpleInitialization()
	s.phase1()

	indicator := make([]int, p.numNodesSuper)
	for i := 2; i < len(p.nodes); i++ {
		inSourceSide := p.nodes[i].label >= len(p.nodes)
		if maximalSourceSet {
			// Source side of the reversed problem is the sink side of the
			// original; complementing yields the maximal source set.
			inSourceSide = !inSourceSide
		}
		if inSourceSide {
			indicator[p.nodes[i].originalIndex] = 1
		}
	}
	for _, original := range p.sourceSet {
		indicator[original] = 1
	}
	for _, original := range p.sinkSet {
		indicator[original] = 0
	}

	// The out-of-tree lists hang off the Problem's node arena; drop them so
	// nothing the engine allocated outlives this call.
	for i := range p.nodes {
		p.nodes[i].outOfTree = nil
	}

	p.SourceSetIndicator = indicator
	p.evaluateCut()
	p.Solved = true
}
