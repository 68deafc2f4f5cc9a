package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ergmgo/ergmnet/effect"
	"github.com/ergmgo/ergmnet/netgraph"
)

func TestObservedStatisticsMatchesManualEdgeCount(t *testing.T) {
	g := netgraph.NewGraph(4)
	g.InsertEdgeUpdateList(0, 1)
	g.InsertEdgeUpdateList(1, 2)
	g.InsertEdgeUpdateList(2, 3)

	effects := []effect.Effect{{Kind: effect.KindEdge}}
	stats := observedStatistics(g, effects)

	require.Len(t, stats, 1)
	require.Equal(t, 3.0, stats[0])
	// the graph itself must be untouched (remove/replay undone in full).
	require.Equal(t, 3, g.FlatLen())
	require.True(t, g.IsEdge(0, 1))
	require.True(t, g.IsEdge(1, 2))
	require.True(t, g.IsEdge(2, 3))
}

func TestObservedStatisticsEmptyGraphIsZero(t *testing.T) {
	g := netgraph.NewGraph(5)
	effects := []effect.Effect{{Kind: effect.KindEdge}}
	stats := observedStatistics(g, effects)
	require.Equal(t, []float64{0}, stats)
}
