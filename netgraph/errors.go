package netgraph

import (
	"errors"

	"github.com/ergmgo/ergmnet/ergmerr"
)

// Sentinel causes, each wrapped in its ergmerr class by the exported
// Err... variables below.
var (
	// ErrOutOfRange indicates a node id outside [0, N).
	errOutOfRange = errors.New("netgraph: node id out of range")

	// ErrMissingArc indicates an attempt to remove an arc that is not present.
	errMissingArc = errors.New("netgraph: remove of missing arc")

	// ErrMissingEdge indicates an attempt to remove an edge that is not present.
	errMissingEdge = errors.New("netgraph: remove of missing edge")

	// ErrSelfLoop indicates an attempt to toggle i==j when loops are disallowed.
	errSelfLoop = errors.New("netgraph: self-loop not allowed")

	// ErrCrossMode indicates a bipartite edge whose endpoints share a mode.
	errCrossMode = errors.New("netgraph: bipartite edge must cross modes")

	// ErrNotBipartite indicates a bipartite-only operation on a one-mode graph.
	errNotBipartite = errors.New("netgraph: graph is not bipartite")

	// ErrWrongDirectedness indicates an arc operation on an undirected graph
	// or an edge operation on a directed graph.
	errWrongDirectedness = errors.New("netgraph: operation incompatible with graph directedness")

	// ErrZoneGap indicates a snowball-conditioned tie spanning non-adjacent zones.
	errZoneGap = errors.New("netgraph: tie spans non-adjacent zones")

	// ErrCacheMismatch indicates a two-path cache entry disagreeing with a
	// reference recount; see Graph.VerifyCache.
	errCacheMismatch = errors.New("netgraph: two-path cache disagrees with recount")
)

// ErrOutOfRange is the public Input-class sentinel for out-of-range node ids.
var ErrOutOfRange = ergmerr.Input(errOutOfRange)

// ErrMissingArc is the public InternalConsistency-class sentinel for
// deleting an arc that does not exist.
var ErrMissingArc = ergmerr.Internal(errMissingArc)

// ErrMissingEdge is the public InternalConsistency-class sentinel for
// deleting an edge that does not exist.
var ErrMissingEdge = ergmerr.Internal(errMissingEdge)

// ErrSelfLoop is the public InternalConsistency-class sentinel for a
// disallowed self-loop.
var ErrSelfLoop = ergmerr.Internal(errSelfLoop)

// ErrCrossMode is the public InternalConsistency-class sentinel for a
// bipartite edge whose endpoints share a mode.
var ErrCrossMode = ergmerr.Internal(errCrossMode)

// ErrNotBipartite is the public InternalConsistency-class sentinel for a
// bipartite-only operation invoked on a one-mode graph.
var ErrNotBipartite = ergmerr.Internal(errNotBipartite)

// ErrWrongDirectedness is the public InternalConsistency-class sentinel for
// an arc operation on an undirected graph, or vice versa.
var ErrWrongDirectedness = ergmerr.Internal(errWrongDirectedness)

// ErrZoneGap is the public InternalConsistency-class sentinel for a
// snowball-conditioned tie whose endpoints are not in the same or an
// adjacent zone.
var ErrZoneGap = ergmerr.Internal(errZoneGap)

// ErrCacheMismatch is the public InternalConsistency-class sentinel for a
// two-path cache entry that disagrees with a fresh recount.
var ErrCacheMismatch = ergmerr.Internal(errCacheMismatch)
