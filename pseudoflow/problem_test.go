package pseudoflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parcut/network"
	"github.com/katalvlaran/parcut/pseudoflow"
)

// diamondNet is the classic tie graph: both {s} and {s,1} are minimum cuts
// of value 5, so the minimal and maximal solves must disagree.
//
//	0 -> 1 (3)   0 -> 2 (2)
//	1 -> 2 (1)   1 -> 3 (2)   2 -> 3 (4)
func diamondNet(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.New(4, 0, 3, []network.Arc{
		{From: 0, To: 1, Constant: 3},
		{From: 0, To: 2, Constant: 2},
		{From: 1, To: 2, Constant: 1},
		{From: 1, To: 3, Constant: 2},
		{From: 2, To: 3, Constant: 4},
	})
	require.NoError(t, err)
	return net
}

func TestSolve_MinimalSourceSet(t *testing.T) {
	p, err := pseudoflow.NewProblem(diamondNet(t), 0, pseudoflow.Config{})
	require.NoError(t, err)

	var stats pseudoflow.Stats
	p.Solve(false, &stats)

	require.True(t, p.Solved)
	require.Equal(t, []int{1, 0, 0, 0}, p.SourceSetIndicator)
	require.InDelta(t, 5.0, p.CutValue, 1e-12)
	require.InDelta(t, 5.0, p.CutConstant, 1e-12)
	require.InDelta(t, 0.0, p.CutMultiplier, 1e-12)
}

func TestSolve_MaximalSourceSet(t *testing.T) {
	p, err := pseudoflow.NewProblem(diamondNet(t), 0, pseudoflow.Config{})
	require.NoError(t, err)

	var stats pseudoflow.Stats
	p.Solve(true, &stats)

	require.Equal(t, []int{1, 1, 0, 0}, p.SourceSetIndicator,
		"among the tied minimum cuts the reverse solve keeps the larger source set")
	require.InDelta(t, 5.0, p.CutValue, 1e-12)
}

func TestSolve_StatsAccumulate(t *testing.T) {
	var stats pseudoflow.Stats

	p, err := pseudoflow.NewProblem(diamondNet(t), 0, pseudoflow.Config{})
	require.NoError(t, err)
	p.Solve(false, &stats)

	require.NotZero(t, stats.ArcScans)
	require.NotZero(t, stats.Pushes)
	require.NotZero(t, stats.Mergers)
}

// TestSolve_TrivialInstance: a two-node network reduces to the artificial
// source-to-sink arc; the engine is never entered.
func TestSolve_TrivialInstance(t *testing.T) {
	net, err := network.New(2, 0, 1, []network.Arc{
		{From: 0, To: 1, Constant: 3, Multiplier: 2},
	})
	require.NoError(t, err)

	p, err := pseudoflow.NewProblem(net, 2, pseudoflow.Config{})
	require.NoError(t, err)
	require.Equal(t, 2, p.NumNodes())

	var stats pseudoflow.Stats
	p.Solve(false, &stats)

	require.Equal(t, []int{1, 0}, p.SourceSetIndicator)
	require.InDelta(t, 3.0, p.CutConstant, 1e-12)
	require.InDelta(t, 2.0, p.CutMultiplier, 1e-12)
	require.InDelta(t, 7.0, p.CutValue, 1e-12)
	require.Zero(t, stats.Pushes)
}

// TestRealizeCapacities_Affine: capacity = constant + multiplier*lambda
// flows through to the realized cut value.
func TestRealizeCapacities_Affine(t *testing.T) {
	net, err := network.New(3, 0, 2, []network.Arc{
		{From: 0, To: 1, Constant: 1, Multiplier: 5},
		{From: 1, To: 2, Constant: 9, Multiplier: -3},
	})
	require.NoError(t, err)

	p, err := pseudoflow.NewProblem(net, 2, pseudoflow.Config{})
	require.NoError(t, err)

	var stats pseudoflow.Stats
	p.Solve(false, &stats)

	// At lambda=2 the chain carries capacities 11 and 3: the cut is {0,1}.
	require.Equal(t, []int{1, 1, 0}, p.SourceSetIndicator)
	require.InDelta(t, 3.0, p.CutValue, 1e-12)
}

func TestRealizeCapacities_NegativeFails(t *testing.T) {
	net, err := network.New(3, 0, 2, []network.Arc{
		{From: 0, To: 1, Constant: 4},
		{From: 1, To: 2, Constant: 2, Multiplier: -1},
	})
	require.NoError(t, err)

	_, err = pseudoflow.NewProblem(net, 3, pseudoflow.Config{})
	require.ErrorIs(t, err, pseudoflow.ErrNegativeCapacity)
}

func TestRealizeCapacities_RoundNegative(t *testing.T) {
	net, err := network.New(3, 0, 2, []network.Arc{
		{From: 0, To: 1, Constant: 4},
		{From: 1, To: 2, Constant: 2, Multiplier: -1},
	})
	require.NoError(t, err)

	p, err := pseudoflow.NewProblem(net, 3, pseudoflow.Config{RoundNegativeCapacity: true})
	require.NoError(t, err)

	var stats pseudoflow.Stats
	p.Solve(false, &stats)

	// The sink arc clamps to 0, so {0,1} is a zero-value cut.
	require.Equal(t, []int{1, 1, 0}, p.SourceSetIndicator)
	require.InDelta(t, 0.0, p.CutValue, 1e-12)
}

// TestRealizeCapacities_ToleranceBand: a tiny negative value clamps even
// without the round flag.
func TestRealizeCapacities_ToleranceBand(t *testing.T) {
	net, err := network.New(3, 0, 2, []network.Arc{
		{From: 0, To: 1, Constant: 4},
		{From: 1, To: 2, Constant: 1e-9, Multiplier: -1},
	})
	require.NoError(t, err)

	p, err := pseudoflow.NewProblem(net, 1e-9*2, pseudoflow.Config{})
	require.NoError(t, err, "values within (-tolerance, 0] clamp to zero")

	var stats pseudoflow.Stats
	p.Solve(false, &stats)
	require.InDelta(t, 0.0, p.CutValue, 1e-12)
}

// TestContract_MovesDecidedNodes: once both boundary cuts agree a node is
// decided, contraction removes it from the interior.
func TestContract_MovesDecidedNodes(t *testing.T) {
	net, err := network.New(4, 0, 3, []network.Arc{
		{From: 0, To: 1, Constant: 0, Multiplier: 1},
		{From: 0, To: 2, Constant: 0, Multiplier: 2},
		{From: 1, To: 3, Constant: 5},
		{From: 2, To: 3, Constant: 3},
	})
	require.NoError(t, err)

	var stats pseudoflow.Stats
	cfg := pseudoflow.Config{}

	low, err := pseudoflow.NewProblem(net, 0, cfg)
	require.NoError(t, err)
	low.Solve(false, &stats)
	require.Equal(t, []int{1, 0, 0, 0}, low.SourceSetIndicator)

	high, err := pseudoflow.NewProblem(net, 1, cfg)
	require.NoError(t, err)
	high.Solve(true, &stats)
	// At lambda=1 the source-side cut {0} of value 3 is uniquely minimum.
	require.Equal(t, []int{1, 0, 0, 0}, high.SourceSetIndicator)

	// Both bounds agree on nodes 1 and 2: the contraction collapses the
	// instance to the two artificial endpoints.
	mid, err := low.Contract(0.5, low.SourceSetIndicator, high.SourceSetIndicator, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, mid.NumNodes())

	mid.Solve(false, &stats)
	require.Equal(t, []int{1, 0, 0, 0}, mid.SourceSetIndicator)
}

// TestContract_MergesCollapsedArcs: arcs inside the contracted source side
// vanish, and arcs with a collapsed endpoint are rebuilt as source-adjacent,
// sink-adjacent or artificial source-to-sink arcs.
func TestContract_MergesCollapsedArcs(t *testing.T) {
	net, err := network.New(5, 0, 4, []network.Arc{
		{From: 0, To: 1, Constant: 10},
		{From: 1, To: 2, Constant: 1},
		{From: 1, To: 3, Constant: 2},
		{From: 2, To: 4, Constant: 1},
		{From: 3, To: 4, Constant: 1},
	})
	require.NoError(t, err)

	var stats pseudoflow.Stats
	cfg := pseudoflow.Config{}

	low, err := pseudoflow.NewProblem(net, 0, cfg)
	require.NoError(t, err)
	low.Solve(false, &stats)
	high, err := pseudoflow.NewProblem(net, 0, cfg)
	require.NoError(t, err)
	high.Solve(true, &stats)

	// The minimum cut value is 2, achieved by both {0,1,3} and {0,1,2,3}:
	// the boundary solves pin nodes 1 and 3 while node 2 stays undecided.
	require.Equal(t, []int{1, 1, 0, 1, 0}, low.SourceSetIndicator)
	require.Equal(t, []int{1, 1, 1, 1, 0}, high.SourceSetIndicator)

	mid, err := low.Contract(0, low.SourceSetIndicator, high.SourceSetIndicator, cfg)
	require.NoError(t, err)
	require.Equal(t, 3, mid.NumNodes(), "only node 2 stays interior")
	// 0->1 and 1->3 vanish inside the source side; 1->2 becomes
	// source-adjacent, 2->4 sink-adjacent, and 3->4 the artificial
	// source-to-sink arc.
	require.Equal(t, 3, mid.NumArcs())

	mid.Solve(false, &stats)
	require.Equal(t, []int{1, 1, 0, 1, 0}, mid.SourceSetIndicator)
	require.InDelta(t, 2.0, mid.CutValue, 1e-12)
	require.InDelta(t, 2.0, mid.CutConstant, 1e-12)
}
