package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parcut/network"
)

// TestNew_Valid builds a small network and checks counts and ordering.
func TestNew_Valid(t *testing.T) {
	arcs := []network.Arc{
		{From: 0, To: 1, Constant: 0, Multiplier: 1},
		{From: 0, To: 2, Constant: 0, Multiplier: 2},
		{From: 1, To: 3, Constant: 5},
		{From: 2, To: 3, Constant: 3},
	}
	net, err := network.New(4, 0, 3, arcs)
	require.NoError(t, err)
	require.Equal(t, 4, net.NumNodes)
	require.Equal(t, 4, net.NumArcs())
	require.Empty(t, net.Discarded)
	require.Equal(t, arcs, net.Arcs, "accepted arcs keep input order")
}

// TestNew_DiscardsUncuttableArcs: arcs into the source or out of the sink
// are recorded, not rejected, and removed from Arcs.
func TestNew_DiscardsUncuttableArcs(t *testing.T) {
	arcs := []network.Arc{
		{From: 0, To: 1, Constant: 2},
		{From: 1, To: 0, Constant: 7}, // into source
		{From: 2, To: 1, Constant: 4}, // out of sink
	}
	net, err := network.New(3, 0, 2, arcs)
	require.NoError(t, err)
	require.Equal(t, 1, net.NumArcs())
	require.Len(t, net.Discarded, 2)
	require.Equal(t, 7.0, net.Discarded[0].Constant)
	require.Equal(t, 4.0, net.Discarded[1].Constant)
}

// TestNew_Validation exercises every rejection rule.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		numNodes int
		source   int
		sink     int
		arcs     []network.Arc
		want     error
	}{
		{"one node", 1, 0, 0, nil, network.ErrBadNodeCount},
		{"source out of range", 3, 3, 1, nil, network.ErrNodeRange},
		{"negative sink", 3, 0, -1, nil, network.ErrNodeRange},
		{"source equals sink", 3, 1, 1, nil, network.ErrSourceSinkEqual},
		{"arc endpoint out of range", 3, 0, 2,
			[]network.Arc{{From: 0, To: 5}}, network.ErrNodeRange},
		{"self loop", 3, 0, 2,
			[]network.Arc{{From: 1, To: 1, Constant: 1}}, network.ErrSelfLoop},
		{"positive multiplier off source", 4, 0, 3,
			[]network.Arc{{From: 1, To: 2, Constant: 1, Multiplier: 2}}, network.ErrSourceMultiplier},
		{"negative multiplier off sink", 4, 0, 3,
			[]network.Arc{{From: 1, To: 2, Constant: 1, Multiplier: -2}}, network.ErrSinkMultiplier},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.New(tc.numNodes, tc.source, tc.sink, tc.arcs)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_MultiplierRulesAtEndpoints: the signed convention allows positive
// multipliers on the source and negative on the sink, including a direct
// source-to-sink arc.
func TestNew_MultiplierRulesAtEndpoints(t *testing.T) {
	arcs := []network.Arc{
		{From: 0, To: 1, Constant: 1, Multiplier: 3},
		{From: 1, To: 2, Constant: 4, Multiplier: -2},
		{From: 0, To: 2, Constant: 1, Multiplier: 5},
	}
	net, err := network.New(3, 0, 2, arcs)
	require.NoError(t, err)
	require.Equal(t, 3, net.NumArcs())
}
