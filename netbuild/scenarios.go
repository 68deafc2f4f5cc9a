package netbuild

import "github.com/ergmgo/ergmnet/netgraph"

// DirectedTriangleMissingArc builds the complete directed graph on 3 nodes
// (all 6 arcs) and then removes one named arc, yielding the "triangle with
// one arc removed" fixture spec.md §8 scenario 2 names for Reciprocity
// testing. missingI/missingJ name the single arc left absent.
func DirectedTriangleMissingArc(missingI, missingJ int) (*netgraph.Graph, error) {
	g, err := Complete(3, netgraph.WithDirected())
	if err != nil {
		return nil, err
	}
	if g.IsArc(missingI, missingJ) {
		g.RemoveArcUpdateList(missingI, missingJ)
	}
	return g, nil
}

// ZoneAssignment pins one node to a snowball-sample zone.
type ZoneAssignment struct {
	Node int
	Zone int
}

// SnowballZones builds an undirected graph over n nodes, assigns each
// node's Overlay.Zone per assignments (before any tie is added, so
// Graph.InsertEdge's own touchPrevWaveDegree bookkeeping fires correctly),
// sets MaxZone, ties the given edges, and rebuilds the derived
// InnerNodes/MaxTermNodes sets — grounded on spec.md §8 scenario 5 (zones
// {0,1,2}, one zone1->zone2 tie whose zone-2 endpoint already has
// prev_wave_degree 1).
func SnowballZones(n, maxZone int, assignments []ZoneAssignment, ties []netgraph.Dyad, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	g := netgraph.NewGraph(n, opts...)
	g.Overlay.MaxZone = maxZone
	for _, a := range assignments {
		g.Overlay.Zone[a.Node] = a.Zone
	}
	for _, d := range ties {
		addTie(g, d.I, d.J)
	}
	g.Overlay.Rebuild()
	return g, nil
}

// TermAssignment pins one node to a cERGM term bucket.
type TermAssignment struct {
	Node int
	Term int
}

// CergmTerms builds a graph over n nodes, assigns each node's Overlay.Term
// per assignments, sets MaxTerm, ties the given dyads, and rebuilds the
// derived MaxTermNodes set — grounded on spec.md §8 scenario 6 (two-term
// cERGM graph where every accepted toggle must have a max-term sender).
func CergmTerms(n, maxTerm int, assignments []TermAssignment, ties []netgraph.Dyad, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	g := netgraph.NewGraph(n, opts...)
	g.Overlay.MaxTerm = maxTerm
	for _, a := range assignments {
		g.Overlay.Term[a.Node] = a.Term
	}
	for _, d := range ties {
		addTie(g, d.I, d.J)
	}
	g.Overlay.Rebuild()
	return g, nil
}
