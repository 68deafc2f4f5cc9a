package netbuild

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ergmgo/ergmnet/netgraph"
)

func TestPathBuildsExpectedTieCount(t *testing.T) {
	g, err := Path(5)
	require.NoError(t, err)
	require.Equal(t, 4, g.FlatLen())
	require.True(t, g.IsEdge(0, 1))
	require.False(t, g.IsEdge(0, 4))
}

func TestPathRejectsTooFewNodes(t *testing.T) {
	_, err := Path(1)
	require.Error(t, err)
}

func TestCycleClosesTheLoop(t *testing.T) {
	g, err := Cycle(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.FlatLen())
	require.True(t, g.IsEdge(3, 0))
}

func TestStarDirectedMirrorsSpokes(t *testing.T) {
	g, err := Star(5, netgraph.WithDirected())
	require.NoError(t, err)
	require.True(t, g.IsArc(0, 1))
	require.True(t, g.IsArc(1, 0))
	require.Equal(t, 8, g.ArcCount())
}

func TestCompleteBipartiteTiesEveryCrossPair(t *testing.T) {
	g, err := CompleteBipartite(5, 5)
	require.NoError(t, err)
	require.Equal(t, 25, g.FlatLen())
	require.True(t, g.IsEdge(0, 5))
	require.False(t, g.IsEdge(0, 1))
}

func TestCompleteBipartiteRejectsEmptyPartition(t *testing.T) {
	_, err := CompleteBipartite(0, 5)
	require.Error(t, err)
}

func TestRandomSparseIsDeterministicForFixedSeed(t *testing.T) {
	a, err := RandomSparse(10, 0.4, 42)
	require.NoError(t, err)
	b, err := RandomSparse(10, 0.4, 42)
	require.NoError(t, err)
	require.Equal(t, a.FlatLen(), b.FlatLen())
	for i := 0; i < a.FlatLen(); i++ {
		require.Equal(t, a.FlatAt(i), b.FlatAt(i))
	}
}

func TestDirectedTriangleMissingArcDropsOnlyNamedArc(t *testing.T) {
	g, err := DirectedTriangleMissingArc(1, 0)
	require.NoError(t, err)
	require.False(t, g.IsArc(1, 0))
	require.True(t, g.IsArc(0, 1))
	require.Equal(t, 5, g.ArcCount())
}

func TestSnowballZonesComputesPrevWaveDegree(t *testing.T) {
	assignments := []ZoneAssignment{{Node: 0, Zone: 0}, {Node: 1, Zone: 1}, {Node: 2, Zone: 2}}
	ties := []netgraph.Dyad{{I: 1, J: 2}}
	g, err := SnowballZones(3, 2, assignments, ties)
	require.NoError(t, err)
	require.Equal(t, 1, g.Overlay.PrevWaveDegree[2])
	require.Contains(t, g.Overlay.InnerNodes(), 0)
	require.Contains(t, g.Overlay.InnerNodes(), 1)
}

func TestCergmTermsComputesMaxTermNodes(t *testing.T) {
	assignments := []TermAssignment{{Node: 0, Term: 0}, {Node: 1, Term: 1}, {Node: 2, Term: 1}}
	ties := []netgraph.Dyad{{I: 1, J: 2}}
	g, err := CergmTerms(3, 1, assignments, ties)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2}, g.Overlay.MaxTermNodes())
}
