package effect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ergmgo/ergmnet/netattr"
	"github.com/ergmgo/ergmnet/netgraph"
)

// undirectedTriangleCount recounts the undirected triangles of g from
// scratch, used to check the Δ-correctness law from spec.md §8:
// z(g + dyad) - z(g) == Delta(g, e, dyad).
func undirectedTriangleCount(g *netgraph.Graph, n int) int {
	total := 0
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !g.IsEdge(u, v) {
				continue
			}
			total += g.CommonNeighbors(u, v)
		}
	}
	return total / 3
}

func TestArcDeltaMatchesCount(t *testing.T) {
	g := netgraph.NewGraph(4, netgraph.WithDirected())
	e := Effect{Kind: KindArc}
	require.Equal(t, float64(1), Delta(g, e, 0, 1))
}

func TestReciprocityDelta(t *testing.T) {
	g := netgraph.NewGraph(3, netgraph.WithDirected())
	e := Effect{Kind: KindReciprocity}
	require.Equal(t, float64(0), Delta(g, e, 0, 1))

	g.InsertArcUpdateList(1, 0)
	require.Equal(t, float64(1), Delta(g, e, 0, 1))
}

func TestTransitiveTrianglesDeltaMatchesMixedCache(t *testing.T) {
	g := netgraph.NewGraph(4, netgraph.WithDirected())
	g.InsertArcUpdateList(0, 1)
	g.InsertArcUpdateList(1, 2)

	e := Effect{Kind: KindTransitiveTriangles}
	// Adding 0->2 closes the transitive triangle 0->1->2.
	require.Equal(t, float64(1), Delta(g, e, 0, 2))
}

func TestTrianglesDeltaAgainstFromScratchRecount(t *testing.T) {
	g := netgraph.NewGraph(5)
	g.InsertEdgeUpdateList(0, 1)
	g.InsertEdgeUpdateList(1, 2)

	before := undirectedTriangleCount(g, 5)
	e := Effect{Kind: KindTriangles}
	delta := Delta(g, e, 0, 2)

	g.InsertEdgeUpdateList(0, 2)
	after := undirectedTriangleCount(g, 5)

	require.Equal(t, float64(after-before), delta)
}

func TestAltKStarsDecaysTowardDegree(t *testing.T) {
	g := netgraph.NewGraph(4)
	g.InsertEdgeUpdateList(0, 2)
	g.InsertEdgeUpdateList(0, 3)
	e := Effect{Kind: KindAltStars, Lambda: 2}
	// deg(0)=2, deg(1)=0: 2*(1-(1/2)^2) + 0 = 1.5, below the degree 2.
	d := Delta(g, e, 0, 1)
	require.Greater(t, d, 0.0)
	require.InDelta(t, 1.5, d, 1e-9)
}

func TestMatchingDeltaRespectsNA(t *testing.T) {
	g := netgraph.NewGraph(3)
	g.Attrs.Categorical = []*netattr.CategoricalAttr{
		{Name: "grp", Values: []int{1, 1, netattr.NACategorical}},
	}
	e := Effect{Kind: KindMatching, AttrIdx: 0}
	require.Equal(t, float64(1), Delta(g, e, 0, 1))
	require.Equal(t, float64(0), Delta(g, e, 0, 2))
}

func TestJaccardSimilarityDelta(t *testing.T) {
	g := netgraph.NewGraph(2)
	g.Attrs.Set = []*netattr.SetAttr{
		{Name: "tags", Size: 3, Values: [][]int{{0, 1}, {1, 2}}},
	}
	e := Effect{Kind: KindJaccardSimilarity, AttrIdx: 0}
	// intersection {1}, union {0,1,2} => 1/3
	require.InDelta(t, 1.0/3.0, Delta(g, e, 0, 1), 1e-9)
}

func TestBindRejectsFilterMismatch(t *testing.T) {
	g := netgraph.NewGraph(3) // undirected
	_, err := Bind([]Spec{{Name: "Reciprocity"}}, g)
	require.Error(t, err)
}

func TestBindRejectsUnknownName(t *testing.T) {
	g := netgraph.NewGraph(3, netgraph.WithDirected())
	_, err := Bind([]Spec{{Name: "NotARealEffect"}}, g)
	require.Error(t, err)
}

func TestBindRejectsOutOfRangeAttrIndex(t *testing.T) {
	g := netgraph.NewGraph(3, netgraph.WithDirected())
	_, err := Bind([]Spec{{Name: "Sender", AttrIdx: 0}}, g)
	require.Error(t, err)
}

func TestBindAcceptsValidArc(t *testing.T) {
	g := netgraph.NewGraph(3, netgraph.WithDirected())
	effects, err := Bind([]Spec{{Name: "Arc"}}, g)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	require.Equal(t, KindArc, effects[0].Kind)
}
