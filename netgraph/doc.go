// Package netgraph provides the in-memory directed/undirected/bipartite
// network representation at the core of ergmnet's MCMC sampler: forward
// and reverse adjacency, flat incidence lists for O(1) uniform dyad
// selection and O(1) removal, and an owned two-path cache kept exactly
// consistent under every accepted arc/edge toggle.
//
// Nodes are dense integers 0..N-1 (not the teacher core.Graph's string
// vertex IDs): spec.md requires that a single proposed-dyad toggle cost
// be essentially independent of global graph size, which favors slice
// indexing over map lookups on the hot path. Bipartite graphs place
// nodes 0..N_A-1 in mode A and N_A..N-1 in mode B.
//
// Unlike the teacher's core.Graph, netgraph.Graph carries NO internal
// locking: spec.md's concurrency model is single-threaded cooperative
// with zero suspension points in the sampler's hot loop, so a mutex here
// would be pure overhead with no caller that needs it. External
// parallelism (package runctl) is achieved by giving each concurrent
// task its own exclusive Graph, never by sharing one under a lock.
//
// Invariants (I1)-(I6) from spec.md §3 are enforced by panics wrapped in
// ergmerr.Internal on the mutating paths; see errors.go.
package netgraph
