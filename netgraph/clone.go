// File: clone.go
// Role: Clone — deep copy of a Graph (topology, overlay, and caches; the
//       read-only attribute table is shared) so that runctl can hand each concurrent task its own
//       exclusive copy per spec.md §5 ("parallelism, if exposed, must be
//       external: several independent estimation tasks each own a
//       disjoint graph copy").
//
// Grounded on the teacher's core.Clone/CloneEmpty (copy configuration via
// the same GraphOption constructors, then deep-copy adjacency), adapted
// to slice-of-slice adjacency and with no locking (see doc.go).
package netgraph

import "github.com/ergmgo/ergmnet/netattr"

// Clone returns a deep copy of g: identical configuration, a full copy of
// adjacency/degree/flat-incidence state and overlay, and an
// independently-populated two-path cache. The attribute table is not
// copied: the clone shares g's Attrs. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	opts := []GraphOption{}
	if g.directed {
		opts = append(opts, WithDirected())
	}
	if g.bipartite {
		opts = append(opts, WithBipartiteSizes(g.nA, g.nB))
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.denseCache {
		opts = append(opts, WithDenseTwoPathCache())
	}
	if g.cacheDisabled {
		opts = append(opts, WithTwoPathCacheDisabled())
	}
	clone := NewGraph(g.n, opts...)
	clone.conditioning = g.conditioning

	clone.outAdj = cloneIntSlices(g.outAdj)
	if g.directed {
		clone.inAdj = cloneIntSlices(g.inAdj)
		clone.outDegree = append([]int(nil), g.outDegree...)
		clone.inDegree = append([]int(nil), g.inDegree...)
	} else {
		clone.degree = append([]int(nil), g.degree...)
	}
	clone.arcCount = g.arcCount

	clone.flat = append([]Dyad(nil), g.flat...)
	for k, v := range g.flatIndex {
		clone.flatIndex[k] = v
	}
	clone.innerFlat = append([]Dyad(nil), g.innerFlat...)
	for k, v := range g.innerFlatIndex {
		clone.innerFlatIndex[k] = v
	}
	clone.maxtermFlat = append([]Dyad(nil), g.maxtermFlat...)
	for k, v := range g.maxtermFlatIndex {
		clone.maxtermFlatIndex[k] = v
	}

	clone.Attrs = g.Attrs // read-only after load; safe to share, per SPEC_FULL §3 lifecycle.
	clone.Overlay = cloneOverlay(g.Overlay)

	clone.cache = cloneCache(g.cache, g.n, g.denseCache)

	return clone
}

func cloneIntSlices(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, s := range src {
		out[i] = append([]int(nil), s...)
	}
	return out
}

func cloneOverlay(o *netattr.Overlay) *netattr.Overlay {
	clone := *o
	clone.Zone = append([]int(nil), o.Zone...)
	clone.Term = append([]int(nil), o.Term...)
	clone.PrevWaveDegree = append([]int(nil), o.PrevWaveDegree...)
	clone.Rebuild()
	return &clone
}

func cloneCache(src *twoPathCache, n int, dense bool) *twoPathCache {
	dst := &twoPathCache{disabled: src.disabled, directed: src.directed, bipartite: src.bipartite}
	switch {
	case src.bipartite:
		dst.modeA = clonePairStore(src.modeA, n, dense)
		dst.modeB = clonePairStore(src.modeB, n, dense)
	case src.directed:
		dst.mix = clonePairStore(src.mix, n, dense)
		dst.in = clonePairStore(src.in, n, dense)
		dst.out = clonePairStore(src.out, n, dense)
	default:
		dst.plain = clonePairStore(src.plain, n, dense)
	}
	return dst
}

func clonePairStore(src pairStore, n int, dense bool) pairStore {
	switch s := src.(type) {
	case *sparseStore:
		cp := newSparseStore()
		for k, v := range s.m {
			cp.m[k] = v
		}
		return cp
	case *denseStore:
		cp := newDenseStore(n)
		copy(cp.data, s.data)
		return cp
	default:
		return newPairStore(n, dense)
	}
}
