package netgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUndirectedTwoPathCacheMatchesRecount(t *testing.T) {
	g := NewGraph(5)
	g.InsertEdgeUpdateList(0, 1)
	g.InsertEdgeUpdateList(1, 2)
	g.InsertEdgeUpdateList(2, 3)
	g.InsertEdgeUpdateList(3, 0)

	for u := 0; u < 5; u++ {
		for v := 0; v < 5; v++ {
			if u == v {
				continue
			}
			require.True(t, g.VerifyCache(u, v), "mismatch at (%d,%d)", u, v)
		}
	}
}

func TestDirectedMixedCacheMatchesRecount(t *testing.T) {
	g := NewGraph(5, WithDirected())
	g.InsertArcUpdateList(0, 1)
	g.InsertArcUpdateList(1, 2)
	g.InsertArcUpdateList(2, 3)
	g.InsertArcUpdateList(0, 3)

	for u := 0; u < 5; u++ {
		for v := 0; v < 5; v++ {
			if u == v {
				continue
			}
			require.True(t, g.VerifyCache(u, v), "mixed mismatch at (%d,%d)", u, v)
		}
	}
}

func TestCacheConsistentAfterRemoval(t *testing.T) {
	g := NewGraph(4)
	g.InsertEdgeUpdateList(0, 1)
	g.InsertEdgeUpdateList(1, 2)
	g.InsertEdgeUpdateList(2, 0)

	require.Equal(t, 1, g.CommonNeighbors(0, 1)) // shared neighbour: 2

	g.RemoveEdgeUpdateList(1, 2)
	require.Equal(t, 0, g.CommonNeighbors(0, 1))
	require.True(t, g.VerifyCache(0, 1))
}

func TestDenseAndSparseCacheAgree(t *testing.T) {
	sparse := NewGraph(6)
	dense := NewGraph(6, WithDenseTwoPathCache())

	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}}
	for _, p := range pairs {
		sparse.InsertEdgeUpdateList(p[0], p[1])
		dense.InsertEdgeUpdateList(p[0], p[1])
	}

	for u := 0; u < 6; u++ {
		for v := 0; v < 6; v++ {
			if u == v {
				continue
			}
			require.Equal(t, sparse.CommonNeighbors(u, v), dense.CommonNeighbors(u, v))
		}
	}
}

func TestBipartiteTwoPathCache(t *testing.T) {
	g := NewGraph(6, WithBipartiteSizes(3, 3))
	// A0,A1,A2 = 0,1,2 ; B0,B1,B2 = 3,4,5
	g.InsertEdgeUpdateList(0, 3)
	g.InsertEdgeUpdateList(1, 3)
	g.InsertEdgeUpdateList(0, 4)

	// Two mode-A nodes sharing B0(=3) as a common neighbour: 0 and 1.
	require.Equal(t, 1, g.BipartiteTwoPaths(0, 1))
	// Two mode-B nodes sharing A0(=0) as a common neighbour: 3 and 4.
	require.Equal(t, 1, g.BipartiteTwoPaths(3, 4))
}

func TestCountTwoPathsFallbackMatchesCache(t *testing.T) {
	g := NewGraph(5)
	g.InsertEdgeUpdateList(0, 1)
	g.InsertEdgeUpdateList(1, 2)
	g.InsertEdgeUpdateList(2, 0)

	require.Equal(t, g.CommonNeighbors(0, 1), g.CountTwoPaths(0, 1))
}
