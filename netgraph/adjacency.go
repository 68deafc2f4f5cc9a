// File: adjacency.go
// Role: arc/edge lifecycle — IsArc/IsEdge, InsertArc/InsertEdge,
//       RemoveArc/RemoveEdge, and the *UpdateList/*UpdateInnerList/
//       *MaxTerm variant families from spec.md §4.1.
//
// Grounded on the teacher's core.AddEdge/RemoveEdge (nested-map adjacency,
// swap-with-last removal, "before returning, update the cache") adapted
// from string vertex IDs + map[string]map[string]struct{} adjacency to
// dense-integer node ids + slice adjacency, and generalized from a single
// directed/undirected graph to the three-way directed/undirected/
// bipartite split spec.md requires.
package netgraph

// IsArc reports whether the directed tie i -> j is present. Panics (via
// checkRange) on an out-of-range id; callers at a system boundary should
// validate first. Complexity: O(min(outDegree(i), inDegree(j))) — a scan
// of the shorter incident list, per spec.md §4.1.
func (g *Graph) IsArc(i, j int) bool {
	g.checkRange(i)
	g.checkRange(j)
	if !g.directed {
		panic(ErrWrongDirectedness)
	}
	list, target := g.shorterList(i, j, true)
	return contains(list, target)
}

// IsEdge reports whether the undirected tie i-j is present.
func (g *Graph) IsEdge(i, j int) bool {
	g.checkRange(i)
	g.checkRange(j)
	if g.directed {
		panic(ErrWrongDirectedness)
	}
	list, target := g.shorterList(i, j, false)
	return contains(list, target)
}

// shorterList returns whichever of i's or j's relevant adjacency list is
// shorter, so membership scans stay proportional to min degree.
func (g *Graph) shorterList(i, j int, directed bool) (list []int, target int) {
	if directed {
		if len(g.outAdj[i]) <= len(g.inAdj[j]) {
			return g.outAdj[i], j
		}
		return g.inAdj[j], i
	}
	if len(g.outAdj[i]) <= len(g.outAdj[j]) {
		return g.outAdj[i], j
	}
	return g.outAdj[j], i
}

func contains(list []int, target int) bool {
	for _, x := range list {
		if x == target {
			return true
		}
	}
	return false
}

// validateToggle runs the shared preconditions for every insert/remove
// entry point: range check, loop policy, bipartite cross-mode requirement.
func (g *Graph) validateToggle(i, j int) {
	g.checkRange(i)
	g.checkRange(j)
	if i == j && !g.loopsAllowed() {
		panic(ErrSelfLoop)
	}
	if g.bipartite && g.modeOf(i) == g.modeOf(j) {
		panic(ErrCrossMode)
	}
}

// InsertArc adds the directed tie i -> j to a directed graph, updates
// in/out adjacency and degree counters, and updates the two-path cache
// before returning, per spec.md §4.1.
func (g *Graph) InsertArc(i, j int) {
	if !g.directed {
		panic(ErrWrongDirectedness)
	}
	g.validateToggle(i, j)
	appendAdjacency(&g.outAdj[i], j)
	appendAdjacency(&g.inAdj[j], i)
	g.outDegree[i]++
	g.inDegree[j]++
	g.arcCount++
	g.cache.update(g, i, j, +1)
	g.touchPrevWaveDegree(i, j, +1)
}

// RemoveArc deletes the directed tie i -> j. Panics with ErrMissingArc
// (an internal-consistency bug) if the arc is not present.
func (g *Graph) RemoveArc(i, j int) {
	if !g.directed {
		panic(ErrWrongDirectedness)
	}
	g.checkRange(i)
	g.checkRange(j)
	if !removeAdjacency(&g.outAdj[i], j) {
		panic(ErrMissingArc)
	}
	removeAdjacency(&g.inAdj[j], i)
	g.outDegree[i]--
	g.inDegree[j]--
	g.arcCount--
	g.cache.update(g, i, j, -1)
	g.touchPrevWaveDegree(i, j, -1)
}

// InsertEdge adds the undirected tie i-j to an undirected graph, mirroring
// adjacency on both endpoints.
func (g *Graph) InsertEdge(i, j int) {
	if g.directed {
		panic(ErrWrongDirectedness)
	}
	g.validateToggle(i, j)
	appendAdjacency(&g.outAdj[i], j)
	if i != j {
		appendAdjacency(&g.outAdj[j], i)
	}
	g.degree[i]++
	g.degree[j]++
	g.arcCount++
	g.cache.update(g, i, j, +1)
	g.touchPrevWaveDegree(i, j, +1)
}

// RemoveEdge deletes the undirected tie i-j.
func (g *Graph) RemoveEdge(i, j int) {
	if g.directed {
		panic(ErrWrongDirectedness)
	}
	g.checkRange(i)
	g.checkRange(j)
	if !removeAdjacency(&g.outAdj[i], j) {
		panic(ErrMissingEdge)
	}
	if i != j {
		removeAdjacency(&g.outAdj[j], i)
	}
	g.degree[i]--
	g.degree[j]--
	g.arcCount--
	g.cache.update(g, i, j, -1)
	g.touchPrevWaveDegree(i, j, -1)
}

// touchPrevWaveDegree updates Overlay.PrevWaveDegree when a toggle's
// endpoints straddle adjacent snowball zones, per spec.md's InsertArc/
// RemoveArc contract ("update prev_wave_degree if the endpoints straddle
// adjacent zones").
func (g *Graph) touchPrevWaveDegree(i, j, sign int) {
	zi, zj := g.Overlay.Zone[i], g.Overlay.Zone[j]
	if zi < 0 || zj < 0 {
		return
	}
	if zj == zi-1 {
		g.Overlay.PrevWaveDegree[i] += sign
	} else if zi == zj-1 {
		g.Overlay.PrevWaveDegree[j] += sign
	}
}

// --- Flat incidence list variants (§4.1: *_updatelist) ---

// InsertArcUpdateList adds i -> j and appends it to the flat incidence
// list, enabling O(1) uniform random tie selection for IFD/TNT.
func (g *Graph) InsertArcUpdateList(i, j int) {
	g.InsertArc(i, j)
	flatAppend(&g.flat, g.flatIndex, Dyad{I: i, J: j})
}

// RemoveArcUpdateListAt removes the arc at known flat-list index idx in
// O(1) via swap-with-last, then removes the underlying tie.
func (g *Graph) RemoveArcUpdateListAt(idx int) {
	d := g.flat[idx]
	flatRemove(&g.flat, g.flatIndex, d)
	g.RemoveArc(d.I, d.J)
}

// RemoveArcUpdateList removes i -> j from both the graph and the flat list
// by value (O(1) via the index map, not a linear scan).
func (g *Graph) RemoveArcUpdateList(i, j int) {
	flatRemove(&g.flat, g.flatIndex, Dyad{I: i, J: j})
	g.RemoveArc(i, j)
}

// InsertEdgeUpdateList adds i-j and appends its canonical form to the
// flat incidence list.
func (g *Graph) InsertEdgeUpdateList(i, j int) {
	g.InsertEdge(i, j)
	flatAppend(&g.flat, g.flatIndex, canonical(i, j))
}

// RemoveEdgeUpdateList removes i-j from both the graph and the flat list.
func (g *Graph) RemoveEdgeUpdateList(i, j int) {
	flatRemove(&g.flat, g.flatIndex, canonical(i, j))
	g.RemoveEdge(i, j)
}

// FlatLen returns the current flat incidence list length, equal to
// ArcCount() per invariant I2.
func (g *Graph) FlatLen() int { return len(g.flat) }

// FlatAt returns the dyad stored at flat incidence index idx, for uniform
// random tie selection by the IFD and TNT samplers.
func (g *Graph) FlatAt(idx int) Dyad { return g.flat[idx] }

// FlatIndexOf returns the flat incidence index of dyad d and whether it
// is present.
func (g *Graph) FlatIndexOf(d Dyad) (int, bool) {
	idx, ok := g.flatIndex[canonicalFor(g, d)]
	return idx, ok
}

func canonicalFor(g *Graph, d Dyad) Dyad {
	if g.directed {
		return d
	}
	return canonical(d.I, d.J)
}

// --- Inner-zone flat list variants (§4.1: *_updateinnerlist) ---

// insertInnerPrecondition enforces that both endpoints have zone <
// MaxZone and |zone[i]-zone[j]| <= 1, the precondition spec.md §4.1
// documents for the *_updateinnerlist family.
func (g *Graph) insertInnerPrecondition(i, j int) {
	if g.Overlay.Zone[i] >= g.Overlay.MaxZone || g.Overlay.Zone[j] >= g.Overlay.MaxZone {
		panic(ErrZoneGap)
	}
	if !g.Overlay.AdjacentZones(i, j) {
		panic(ErrZoneGap)
	}
}

// InsertArcUpdateInnerList adds i -> j to the graph, the flat list, and
// the inner-zones flat list.
func (g *Graph) InsertArcUpdateInnerList(i, j int) {
	g.insertInnerPrecondition(i, j)
	g.InsertArcUpdateList(i, j)
	flatAppend(&g.innerFlat, g.innerFlatIndex, Dyad{I: i, J: j})
}

// RemoveArcUpdateInnerList removes i -> j from the graph, the flat list,
// and the inner-zones flat list.
func (g *Graph) RemoveArcUpdateInnerList(i, j int) {
	flatRemove(&g.innerFlat, g.innerFlatIndex, Dyad{I: i, J: j})
	g.RemoveArcUpdateList(i, j)
}

// InsertEdgeUpdateInnerList adds i-j to the graph, the flat list, and the
// inner-zones flat list.
func (g *Graph) InsertEdgeUpdateInnerList(i, j int) {
	g.insertInnerPrecondition(i, j)
	g.InsertEdgeUpdateList(i, j)
	flatAppend(&g.innerFlat, g.innerFlatIndex, canonical(i, j))
}

// RemoveEdgeUpdateInnerList removes i-j from the graph, the flat list, and
// the inner-zones flat list.
func (g *Graph) RemoveEdgeUpdateInnerList(i, j int) {
	flatRemove(&g.innerFlat, g.innerFlatIndex, canonical(i, j))
	g.RemoveEdgeUpdateList(i, j)
}

// RebuildInnerFlat repopulates the inner-zones flat list from the current
// flat incidence list and the loaded Overlay, for ties that were inserted
// directly (e.g. by netio's loaders, which use the plain *UpdateList
// family) rather than through InsertArcUpdateInnerList/
// InsertEdgeUpdateInnerList. Call once after zones are loaded, before a
// conditioned sampler run begins.
func (g *Graph) RebuildInnerFlat() {
	g.innerFlat = g.innerFlat[:0]
	for k := range g.innerFlatIndex {
		delete(g.innerFlatIndex, k)
	}
	for _, d := range g.flat {
		if g.Overlay.Zone[d.I] >= g.Overlay.MaxZone || g.Overlay.Zone[d.J] >= g.Overlay.MaxZone {
			continue
		}
		if !g.Overlay.AdjacentZones(d.I, d.J) {
			continue
		}
		flatAppend(&g.innerFlat, g.innerFlatIndex, d)
	}
}

// RebuildMaxTermFlat repopulates the cERGM max-term-sender flat list from
// the current flat incidence list and the loaded Overlay, analogous to
// RebuildInnerFlat.
func (g *Graph) RebuildMaxTermFlat() {
	g.maxtermFlat = g.maxtermFlat[:0]
	for k := range g.maxtermFlatIndex {
		delete(g.maxtermFlatIndex, k)
	}
	for _, d := range g.flat {
		if g.Overlay.Term[d.I] != g.Overlay.MaxTerm {
			continue
		}
		flatAppend(&g.maxtermFlat, g.maxtermFlatIndex, d)
	}
}

// InnerFlatLen returns the inner-zones flat list length.
func (g *Graph) InnerFlatLen() int { return len(g.innerFlat) }

// InnerFlatAt returns the dyad at inner-zones flat index idx.
func (g *Graph) InnerFlatAt(idx int) Dyad { return g.innerFlat[idx] }

// --- cERGM max-term flat list variants (§4.1: *_maxterm) ---

// InsertArcMaxTerm adds i -> j to the graph, the flat list, and the
// cERGM max-term-sender flat list. Precondition: i is in MaxTermNodes.
func (g *Graph) InsertArcMaxTerm(i, j int) {
	g.InsertArcUpdateList(i, j)
	flatAppend(&g.maxtermFlat, g.maxtermFlatIndex, Dyad{I: i, J: j})
}

// RemoveArcMaxTerm removes i -> j from the graph, the flat list, and the
// cERGM max-term-sender flat list.
func (g *Graph) RemoveArcMaxTerm(i, j int) {
	flatRemove(&g.maxtermFlat, g.maxtermFlatIndex, Dyad{I: i, J: j})
	g.RemoveArcUpdateList(i, j)
}

// MaxTermFlatLen returns the cERGM flat list length.
func (g *Graph) MaxTermFlatLen() int { return len(g.maxtermFlat) }

// MaxTermFlatAt returns the dyad at cERGM flat index idx.
func (g *Graph) MaxTermFlatAt(idx int) Dyad { return g.maxtermFlat[idx] }

// --- Degree / neighbour accessors ---

// OutDegree returns the out-degree of v (directed graphs).
func (g *Graph) OutDegree(v int) int { return g.outDegree[v] }

// InDegree returns the in-degree of v (directed graphs).
func (g *Graph) InDegree(v int) int { return g.inDegree[v] }

// Degree returns the degree of v (undirected graphs).
func (g *Graph) Degree(v int) int { return g.degree[v] }

// OutNeighbors returns v's out-neighbours (directed) or neighbours
// (undirected). The returned slice aliases internal storage and must not
// be mutated by callers.
func (g *Graph) OutNeighbors(v int) []int { return g.outAdj[v] }

// InNeighbors returns v's in-neighbours (directed graphs only).
func (g *Graph) InNeighbors(v int) []int { return g.inAdj[v] }
