// File: graph.go
// Role: Graph struct, GraphOption constructors, NewGraph, and the flat
//       incidence-list primitive shared by every insert/remove family.
//
// Determinism: adjacency slices are append-only except for swap-with-last
// removal; iteration order is insertion order, not sorted, since the
// sampler never iterates adjacency for output (only for two-path updates
// and change-statistics sums, both order-independent).
package netgraph

import (
	"github.com/ergmgo/ergmnet/netattr"
)

// Dyad is an ordered pair of distinct node ids. For undirected/bipartite
// edges the pair is stored canonicalized (I < J) in flat incidence lists;
// directed arcs keep sender/receiver order.
type Dyad struct {
	I, J int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected marks the graph as directed (arcs). Mutually exclusive in
// practice with WithBipartiteSizes+undirected-edges use, but spec.md does
// not forbid a directed bipartite graph, so both flags may combine.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithBipartiteSizes marks the graph as bipartite with nA nodes in mode A
// (ids 0..nA-1) and nB nodes in mode B (ids nA..nA+nB-1).
func WithBipartiteSizes(nA, nB int) GraphOption {
	return func(g *Graph) {
		g.bipartite = true
		g.nA = nA
		g.nB = nB
	}
}

// WithLoops permits self-loops. Invariant I6 additionally forbids loops
// whenever snowball or cERGM conditioning is active regardless of this flag.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithDenseTwoPathCache selects a dense N×N array backing for the two-path
// cache instead of the default sparse map; a build-time/construction-time
// choice per spec.md §4.2 ("the storage variant... is an implementation
// choice; the abstract behaviour is the same"). Grounded on the teacher's
// matrix.Dense flat row-major layout.
func WithDenseTwoPathCache() GraphOption {
	return func(g *Graph) { g.denseCache = true }
}

// WithTwoPathCacheDisabled disables the incremental cache entirely; change
// statistics fall back to Graph.CountTwoPaths, an O(min(deg)) scan.
func WithTwoPathCacheDisabled() GraphOption {
	return func(g *Graph) { g.cacheDisabled = true }
}

// Graph is the in-memory network representation: N dense integer node
// ids, forward (and for directed graphs, reverse) adjacency, flat
// incidence lists for O(1) uniform selection/removal, and an owned
// two-path cache and attribute/overlay tables.
type Graph struct {
	directed   bool
	bipartite  bool
	allowLoops bool
	n          int
	nA, nB     int // bipartite partition sizes; nA+nB == n when bipartite

	cacheDisabled bool
	denseCache    bool

	// outAdj[i] lists out-neighbours of i (directed) or all neighbours of i
	// (undirected); inAdj[i] lists in-neighbours of i, populated only when
	// directed.
	outAdj [][]int
	inAdj  [][]int

	outDegree []int
	inDegree  []int // directed only
	degree    []int // undirected only

	arcCount int // total arc/edge count

	flat      []Dyad
	flatIndex map[Dyad]int // canonical dyad -> index in flat

	innerFlat      []Dyad
	innerFlatIndex map[Dyad]int

	maxtermFlat      []Dyad
	maxtermFlatIndex map[Dyad]int

	cache *twoPathCache

	Attrs   *netattr.Table
	Overlay *netattr.Overlay

	// conditioning records whether snowball/cERGM conditioning is active,
	// which per invariant I6 forbids self-loops regardless of allowLoops.
	conditioning bool
}

// NewGraph allocates an empty Graph with n nodes and the given options.
func NewGraph(n int, opts ...GraphOption) *Graph {
	g := &Graph{
		n:              n,
		outAdj:         make([][]int, n),
		flatIndex:      make(map[Dyad]int),
		innerFlatIndex: make(map[Dyad]int),
		maxtermFlatIndex: make(map[Dyad]int),
		Attrs:          netattr.NewTable(),
		Overlay:        netattr.NewOverlay(n),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.inAdj = make([][]int, n)
		g.inDegree = make([]int, n)
		g.outDegree = make([]int, n)
	} else {
		g.degree = make([]int, n)
	}
	g.cache = newTwoPathCache(n, g.directed, g.bipartite, g.denseCache)

	return g
}

// N returns the node count.
func (g *Graph) N() int { return g.n }

// Directed reports whether this graph stores arcs (true) or edges (false).
func (g *Graph) Directed() bool { return g.directed }

// Bipartite reports whether this graph enforces a two-mode partition.
func (g *Graph) Bipartite() bool { return g.bipartite }

// Partition returns the bipartite mode-A and mode-B sizes; both are 0 for
// one-mode graphs.
func (g *Graph) Partition() (nA, nB int) { return g.nA, g.nB }

// ArcCount returns the total arc/edge count, equal to len(flat) per I2.
func (g *Graph) ArcCount() int { return g.arcCount }

// SetConditioning marks whether snowball/cERGM conditioning is active,
// which forbids self-loops per invariant I6 independent of WithLoops.
func (g *Graph) SetConditioning(active bool) { g.conditioning = active }

// loopsAllowed reports whether i==j toggles are currently permitted.
func (g *Graph) loopsAllowed() bool { return g.allowLoops && !g.conditioning }

// modeOf returns 0 for a mode-A node and 1 for a mode-B node. Only
// meaningful when Bipartite() is true.
func (g *Graph) modeOf(v int) int {
	if v < g.nA {
		return 0
	}
	return 1
}

// checkRange panics with ergmerr.Internal-wrapped errOutOfRange if v is
// not a valid node id; callers at the API boundary should validate with
// ErrOutOfRange instead (see validate.go) and never let an out-of-range id
// reach this point in production use.
func (g *Graph) checkRange(v int) {
	if v < 0 || v >= g.n {
		panic(ErrOutOfRange)
	}
}

func canonical(i, j int) Dyad {
	if i <= j {
		return Dyad{I: i, J: j}
	}
	return Dyad{I: j, J: i}
}

// appendAdjacency appends v to *list (out/in/plain adjacency slice).
func appendAdjacency(list *[]int, v int) {
	*list = append(*list, v)
}

// removeAdjacency performs the teacher's swap-with-last unordered removal
// of the first occurrence of v from *list. Returns false if v was absent
// (an internal-consistency bug at the caller).
func removeAdjacency(list *[]int, v int) bool {
	s := *list
	for idx, x := range s {
		if x == v {
			last := len(s) - 1
			s[idx] = s[last]
			*list = s[:last]
			return true
		}
	}
	return false
}

// flatAppend appends d to *list and records its index in index.
func flatAppend(list *[]Dyad, index map[Dyad]int, d Dyad) {
	index[d] = len(*list)
	*list = append(*list, d)
}

// flatRemove performs O(1) swap-with-last removal of d from *list using
// its known position in index, then deletes d's entry and re-points the
// entry for whichever dyad was moved into the vacated slot.
func flatRemove(list *[]Dyad, index map[Dyad]int, d Dyad) bool {
	pos, ok := index[d]
	if !ok {
		return false
	}
	s := *list
	last := len(s) - 1
	moved := s[last]
	s[pos] = moved
	*list = s[:last]
	delete(index, d)
	if moved != d {
		index[moved] = pos
	}
	return true
}
