package netgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertRemoveArcRoundTrip(t *testing.T) {
	g := NewGraph(5, WithDirected())

	g.InsertArcUpdateList(0, 1)
	require.True(t, g.IsArc(0, 1))
	require.Equal(t, 1, g.ArcCount())
	require.Equal(t, 1, g.FlatLen())

	g.RemoveArcUpdateList(0, 1)
	require.False(t, g.IsArc(0, 1))
	require.Equal(t, 0, g.ArcCount())
	require.Equal(t, 0, g.FlatLen())
}

func TestInvariantI1DirectedMirroring(t *testing.T) {
	g := NewGraph(4, WithDirected())
	g.InsertArc(0, 2)

	require.Equal(t, 1, g.OutDegree(0))
	require.Equal(t, 1, g.InDegree(2))
	require.Contains(t, g.OutNeighbors(0), 2)
	require.Contains(t, g.InNeighbors(2), 0)
}

func TestInvariantI2FlatLengthMatchesArcCount(t *testing.T) {
	g := NewGraph(6, WithDirected())
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	for _, p := range pairs {
		g.InsertArcUpdateList(p[0], p[1])
	}
	require.Equal(t, g.ArcCount(), g.FlatLen())

	g.RemoveArcUpdateList(1, 2)
	require.Equal(t, g.ArcCount(), g.FlatLen())
}

func TestFlatRemovalBySwapWithLastPreservesIndex(t *testing.T) {
	g := NewGraph(5, WithDirected())
	g.InsertArcUpdateList(0, 1)
	g.InsertArcUpdateList(1, 2)
	g.InsertArcUpdateList(2, 3)

	// Remove the middle dyad; the last dyad should be swapped into its slot.
	g.RemoveArcUpdateList(1, 2)
	require.Equal(t, 2, g.FlatLen())

	idx, ok := g.FlatIndexOf(Dyad{I: 2, J: 3})
	require.True(t, ok)
	require.Equal(t, g.FlatAt(idx), Dyad{I: 2, J: 3})
}

func TestUndirectedMirrorsBothEndpoints(t *testing.T) {
	g := NewGraph(3)
	g.InsertEdgeUpdateList(0, 1)

	require.True(t, g.IsEdge(0, 1))
	require.True(t, g.IsEdge(1, 0))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
}

func TestBipartiteRejectsSameModeEdge(t *testing.T) {
	g := NewGraph(6, WithBipartiteSizes(3, 3))

	require.Panics(t, func() { g.InsertEdge(0, 1) })
	require.NotPanics(t, func() { g.InsertEdge(0, 3) })
}

func TestSelfLoopDisallowedByDefault(t *testing.T) {
	g := NewGraph(3, WithDirected())
	require.Panics(t, func() { g.InsertArc(1, 1) })
}

func TestSelfLoopAllowedWithOption(t *testing.T) {
	g := NewGraph(3, WithDirected(), WithLoops())
	require.NotPanics(t, func() { g.InsertArc(1, 1) })
}

func TestConditioningForbidsLoopsRegardlessOfOption(t *testing.T) {
	g := NewGraph(3, WithDirected(), WithLoops())
	g.SetConditioning(true)
	require.Panics(t, func() { g.InsertArc(1, 1) })
}

func TestRemoveMissingArcPanics(t *testing.T) {
	g := NewGraph(3, WithDirected())
	require.Panics(t, func() { g.RemoveArc(0, 1) })
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGraph(4, WithDirected())
	g.InsertArcUpdateList(0, 1)
	g.InsertArcUpdateList(1, 2)

	clone := g.Clone()
	clone.InsertArcUpdateList(2, 3)

	require.False(t, g.IsArc(2, 3))
	require.True(t, clone.IsArc(2, 3))
	require.Equal(t, 2, g.ArcCount())
	require.Equal(t, 3, clone.ArcCount())
}
