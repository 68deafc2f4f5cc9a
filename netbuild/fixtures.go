// impl fixtures: deterministic topology constructors. Each adapts the
// corresponding teacher builder.impl_*.go shape — early domain validation,
// vertices added first in ascending index order, edges/arcs emitted in a
// single stable pass, sentinel errors on malformed input, never a panic at
// runtime — to netgraph.Graph's dense integer ids instead of core.Graph's
// string ids.
package netbuild

import (
	"math/rand"

	"github.com/ergmgo/ergmnet/netgraph"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodBipartite    = "CompleteBipartite"
	methodRandomSparse = "RandomSparse"
	methodSnowball     = "SnowballZones"
	methodCergm        = "CergmTerms"

	minPathNodes      = 2
	minStarNodes      = 2
	minCompleteNodes  = 1
	minPartitionSize  = 1
	minRandomVertices = 1
)

// Path builds a simple path graph P_n: arcs/edges (i-1)-i for i=1..n-1,
// emitted in increasing i order. Directedness follows opts.
func Path(n int, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	if n < minPathNodes {
		return nil, ErrTooFewVertices(methodPath, n, minPathNodes)
	}
	g := netgraph.NewGraph(n, opts...)
	for i := 1; i < n; i++ {
		addTie(g, i-1, i)
	}
	return g, nil
}

// Cycle builds a cycle graph C_n: Path(n) plus the closing tie (n-1)-0.
func Cycle(n int, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	if n < minPathNodes {
		return nil, ErrTooFewVertices(methodCycle, n, minPathNodes)
	}
	g := netgraph.NewGraph(n, opts...)
	for i := 1; i < n; i++ {
		addTie(g, i-1, i)
	}
	addTie(g, n-1, 0)
	return g, nil
}

// Star builds a star topology with hub node 0 and n-1 leaves 1..n-1,
// spokes emitted hub->leaf in ascending leaf order; directed graphs also
// get the reverse leaf->hub spoke to preserve symmetry (teacher's Star).
func Star(n int, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	if n < minStarNodes {
		return nil, ErrTooFewVertices(methodStar, n, minStarNodes)
	}
	g := netgraph.NewGraph(n, opts...)
	const hub = 0
	for leaf := 1; leaf < n; leaf++ {
		addTie(g, hub, leaf)
		if g.Directed() {
			addTie(g, leaf, hub)
		}
	}
	return g, nil
}

// Complete builds the complete graph K_n over all distinct pairs i<j,
// mirrored as both arcs when directed.
func Complete(n int, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	if n < minCompleteNodes {
		return nil, ErrTooFewVertices(methodComplete, n, minCompleteNodes)
	}
	g := netgraph.NewGraph(n, opts...)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			addTie(g, i, j)
			if g.Directed() {
				addTie(g, j, i)
			}
		}
	}
	return g, nil
}

// CompleteBipartite builds K_{nA,nB}: mode A is ids 0..nA-1, mode B is
// ids nA..nA+nB-1 (netgraph.WithBipartiteSizes convention); every cross
// pair is tied, in ascending (a, b) order.
func CompleteBipartite(nA, nB int, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	if nA < minPartitionSize || nB < minPartitionSize {
		return nil, ErrPartitionTooSmall(methodBipartite, nA, nB, minPartitionSize)
	}
	allOpts := append([]netgraph.GraphOption{netgraph.WithBipartiteSizes(nA, nB)}, opts...)
	g := netgraph.NewGraph(nA+nB, allOpts...)
	for a := 0; a < nA; a++ {
		for b := nA; b < nA+nB; b++ {
			addTie(g, a, b)
			if g.Directed() {
				addTie(g, b, a)
			}
		}
	}
	return g, nil
}

// RandomSparse samples an Erdos-Renyi-like graph over n nodes with
// independent tie probability p, trial order i asc then j asc (j>i when
// undirected), grounded on the teacher's RandomSparse stable-trial-order
// determinism contract. seed drives the RNG; p==0 or p==1 need no RNG.
func RandomSparse(n int, p float64, seed int64, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	if n < minRandomVertices {
		return nil, ErrTooFewVertices(methodRandomSparse, n, minRandomVertices)
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability(methodRandomSparse, p)
	}
	g := netgraph.NewGraph(n, opts...)

	var rng *rand.Rand
	if p > 0 && p < 1 {
		rng = rand.New(rand.NewSource(seed))
	}

	trial := func(i, j int) bool {
		switch {
		case p == 0:
			return false
		case p == 1:
			return true
		default:
			return rng.Float64() <= p
		}
	}

	if g.Directed() {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if trial(i, j) {
					addTie(g, i, j)
				}
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if trial(i, j) {
					addTie(g, i, j)
				}
			}
		}
	}
	return g, nil
}

// addTie inserts an arc (directed graphs) or edge (undirected/bipartite
// graphs) via the flat-list-maintaining insert path, mirroring the
// Graph/CanToggle precondition the sampler itself relies on.
func addTie(g *netgraph.Graph, i, j int) {
	if g.Directed() {
		g.InsertArcUpdateList(i, j)
		return
	}
	g.InsertEdgeUpdateList(i, j)
}
