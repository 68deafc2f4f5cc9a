// Package netbuild provides deterministic fixture constructors — Path,
// Cycle, Star, Complete, CompleteBipartite, RandomSparse — adapted from the
// teacher's builder package (impl_path.go, impl_cycle.go, impl_star.go,
// impl_complete.go, impl_bipartite.go, impl_random_sparse.go): the same
// functional-option construction style generalized from core.Graph's
// string vertex ids to netgraph.Graph's dense integer ids, and returning
// a netgraph.Graph instead of a core.Graph. Malformed input is reported
// as a returned error, not a panic, and RandomSparse takes an explicit
// seed argument for determinism.
//
// These fixtures back the six concrete scenarios spec.md §8 names for
// Δ-correctness and invariant testing: a triangle, a five-node star, a
// 5x5 bipartite graph, a snowball-zoned network, and a two-term cERGM
// network.
package netbuild
