// File: twopath.go
// Role: the two-path cache, an ownership leaf of Graph exposing only
//       get/inc/dec (per spec.md §9's re-architecture note). Holds exact
//       counts of length-2 paths between node pairs, updated incrementally
//       on every accepted arc/edge toggle so alternating/k-triangle change
//       statistics never pay an O(N) recount per proposal.
//
// Storage variant (sparse map vs dense N×N array) is an implementation
// choice selected at construction (WithDenseTwoPathCache); both satisfy
// the same pairStore interface. The dense variant is grounded on the
// teacher's matrix.Dense: a flat row-major []int slice addressed by
// row*cols+col, the same layout idiom applied to an integer count matrix
// instead of matrix.Dense's float64 payload.
package netgraph

// pairStore maps an ordered node pair to a non-negative count. Sparse
// implementations prune zero-valued entries to bound memory; dense
// implementations simply store zero.
type pairStore interface {
	get(u, v int) int
	inc(u, v, delta int)
}

// sparseStore is a hash-map pairStore with zero-pruning, the default for
// large, sparse networks where most pairs never share a two-path.
type sparseStore struct {
	m map[[2]int]int
}

func newSparseStore() *sparseStore {
	return &sparseStore{m: make(map[[2]int]int)}
}

func (s *sparseStore) get(u, v int) int {
	return s.m[[2]int{u, v}]
}

func (s *sparseStore) inc(u, v, delta int) {
	key := [2]int{u, v}
	nv := s.m[key] + delta
	if nv == 0 {
		delete(s.m, key)
		return
	}
	s.m[key] = nv
}

// denseStore is a flat row-major []int pairStore, the teacher's
// matrix.Dense layout idiom applied to integer two-path counts. Preferred
// for small N where N*N ints costs less than map overhead and dense
// access patterns dominate (e.g. repeated alternating-k-triangle effects
// over a small, densely-observed network).
type denseStore struct {
	n    int
	data []int
}

func newDenseStore(n int) *denseStore {
	return &denseStore{n: n, data: make([]int, n*n)}
}

func (d *denseStore) get(u, v int) int {
	return d.data[u*d.n+v]
}

func (d *denseStore) inc(u, v, delta int) {
	d.data[u*d.n+v] += delta
}

func newPairStore(n int, dense bool) pairStore {
	if dense {
		return newDenseStore(n)
	}
	return newSparseStore()
}

// twoPathCache holds the per-kind pairStores for a graph. Exactly one of
// the directed/undirected/bipartite groups is populated, matching the
// owning Graph's mode.
type twoPathCache struct {
	disabled  bool
	directed  bool
	bipartite bool

	// directed
	mix, in, out pairStore
	// undirected
	plain pairStore
	// bipartite
	modeA, modeB pairStore
}

func newTwoPathCache(n int, directed, bipartite, dense bool) *twoPathCache {
	c := &twoPathCache{directed: directed, bipartite: bipartite}
	switch {
	case bipartite:
		c.modeA = newPairStore(n, dense)
		c.modeB = newPairStore(n, dense)
	case directed:
		c.mix = newPairStore(n, dense)
		c.in = newPairStore(n, dense)
		c.out = newPairStore(n, dense)
	default:
		c.plain = newPairStore(n, dense)
	}
	return c
}

// Mixed returns the number of two-paths u -> mid -> v, directed graphs only.
func (g *Graph) Mixed(u, v int) int { return g.cache.mix.get(u, v) }

// InCommon returns the number of mid with u->mid and v->mid, directed only.
func (g *Graph) InCommon(u, v int) int { return g.cache.in.get(u, v) }

// OutCommon returns the number of mid with mid->u and mid->v, directed only.
func (g *Graph) OutCommon(u, v int) int { return g.cache.out.get(u, v) }

// CommonNeighbors returns the number of common neighbours of u and v in an
// undirected graph.
func (g *Graph) CommonNeighbors(u, v int) int { return g.cache.plain.get(u, v) }

// BipartiteTwoPaths returns the number of two-paths between u and v
// restricted to nodes sharing u's mode; u and v must be in the same mode.
func (g *Graph) BipartiteTwoPaths(u, v int) int {
	if g.modeOf(u) == 0 {
		return g.cache.modeA.get(u, v)
	}
	return g.cache.modeB.get(u, v)
}

// CountTwoPaths is the fallback used when the cache is disabled: it walks
// the shorter of the two adjacency lists and counts intersections, per
// spec.md §4.2's documented degraded-mode behaviour. Cost is
// O(min(deg(u), deg(v))); the change-statistics interface calling this is
// identical to the cached path, only the asymptotic cost changes.
func (g *Graph) CountTwoPaths(u, v int) int {
	a, b := g.outAdj[u], g.outAdj[v]
	if g.directed {
		// Mixed two-paths u -> mid -> v: mid ranges over out(u) ∩ in(v).
		a, b = g.outAdj[u], g.inAdj[v]
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	set := make(map[int]struct{}, len(b))
	for _, x := range b {
		set[x] = struct{}{}
	}
	count := 0
	for _, x := range a {
		if x == u || x == v {
			continue
		}
		if _, ok := set[x]; ok {
			count++
		}
	}
	return count
}

// update applies the incremental two-path update for a toggle of the dyad
// (i, j) with the given sign (+1 insert, -1 delete). Must be called AFTER
// the adjacency mutation has already been applied to Graph, so that the
// "other" neighbour sets read here reflect the current graph; this is
// safe because every loop below explicitly excludes i and j themselves,
// so neither loop observes the very tie being toggled.
func (c *twoPathCache) update(g *Graph, i, j, sign int) {
	if c.disabled {
		return
	}
	switch {
	case c.bipartite:
		c.updateBipartite(g, i, j, sign)
	case c.directed:
		c.updateDirected(g, i, j, sign)
	default:
		c.updateUndirected(g, i, j, sign)
	}
}

func skip(v, i, j int) bool { return v == i || v == j }

// updateDirected implements spec.md §4.2's four directed bullets for mix
// and in-common, plus the out-common analogue ("symmetrically") derived
// from the same relation: i gaining j as an out-neighbour makes i a
// common in-neighbour (shared parent) of mid and j for every existing
// mid in out(i) — that loop updates out-common only, since mid and j
// share parent i, not a mixed two-path through i. Mixed two-paths
// u->mid->v are updated solely by the in(j)/in(i)/out(j) loops below,
// which is the only way to reach mid via one forward and one
// appropriately-directed hop without double-counting; see DESIGN.md for
// the derivation, since the original formula's prose left the
// out-common case as "symmetrically" without restating the neighbour
// set.
func (c *twoPathCache) updateDirected(g *Graph, i, j, sign int) {
	for _, mid := range g.outAdj[i] {
		if skip(mid, i, j) {
			continue
		}
		// Out-common: i is now a shared in-neighbour (parent) of mid and j.
		c.out.inc(mid, j, sign)
		c.out.inc(j, mid, sign)
	}
	for _, mid := range g.inAdj[j] {
		if skip(mid, i, j) {
			continue
		}
		c.in.inc(mid, i, sign)
		c.in.inc(i, mid, sign)
	}
	for _, mid := range g.inAdj[i] {
		if skip(mid, i, j) {
			continue
		}
		c.mix.inc(mid, j, sign)
	}
	for _, mid := range g.outAdj[j] {
		if skip(mid, i, j) {
			continue
		}
		c.mix.inc(i, mid, sign)
	}
}

// updateUndirected implements spec.md §4.2's undirected two-path update.
func (c *twoPathCache) updateUndirected(g *Graph, i, j, sign int) {
	for _, mid := range g.outAdj[i] {
		if skip(mid, i, j) {
			continue
		}
		c.plain.inc(mid, j, sign)
		c.plain.inc(j, mid, sign)
	}
	for _, mid := range g.outAdj[j] {
		if skip(mid, i, j) {
			continue
		}
		c.plain.inc(mid, i, sign)
		c.plain.inc(i, mid, sign)
	}
}

// updateBipartite implements spec.md §4.2's bipartite restriction: each
// loop ranges only over neighbours in the opposite mode, updating only
// the same-mode map as the far endpoint of each new pair.
func (c *twoPathCache) updateBipartite(g *Graph, i, j, sign int) {
	storeFor := func(v int) pairStore {
		if g.modeOf(v) == 0 {
			return c.modeA
		}
		return c.modeB
	}
	for _, mid := range g.outAdj[i] {
		if skip(mid, i, j) {
			continue
		}
		s := storeFor(mid) // mid shares j's mode
		s.inc(mid, j, sign)
		s.inc(j, mid, sign)
	}
	for _, mid := range g.outAdj[j] {
		if skip(mid, i, j) {
			continue
		}
		s := storeFor(mid) // mid shares i's mode
		s.inc(mid, i, sign)
		s.inc(i, mid, sign)
	}
}

// VerifyCache recomputes every cached pair touching u or v from scratch
// and reports whether it matches the incremental cache, per spec.md §8's
// testable property "cache[u,v] equals the result of a reference two-path
// recount". Intended for tests and debug assertions, not the hot path.
func (g *Graph) VerifyCache(u, v int) bool {
	if g.cache.disabled {
		return true
	}
	if g.bipartite {
		return g.BipartiteTwoPaths(u, v) == g.CountTwoPaths(u, v)
	}
	if g.directed {
		return g.Mixed(u, v) == g.countMixedReference(u, v)
	}
	return g.CommonNeighbors(u, v) == g.CountTwoPaths(u, v)
}

func (g *Graph) countMixedReference(u, v int) int {
	set := make(map[int]struct{}, len(g.outAdj[u]))
	for _, x := range g.outAdj[u] {
		set[x] = struct{}{}
	}
	count := 0
	for _, x := range g.inAdj[v] {
		if x == u || x == v {
			continue
		}
		if _, ok := set[x]; ok {
			count++
		}
	}
	return count
}
