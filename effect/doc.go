// Package effect implements the closed, enumerated catalogue of ERGM
// change statistics (spec.md §4.3): pure functions that, given a graph
// and a candidate dyad (i, j), return the change in one sufficient
// statistic induced by adding i -> j (or i - j).
//
// Per spec.md §9's re-architecture note, the catalogue is a tagged-variant
// enumeration (Kind + parameters) dispatched by a single Delta function,
// replacing the "typed function-pointer dispatch over parallel arrays of
// callbacks" pattern. This mirrors the teacher builder package's
// HexagramVariant/PlatonicVariant tagged enums (builder/variants.go,
// builder/variants_platonic.go), generalized from "select a topology
// constructor" to "select a pure Δz computation".
//
// Every Delta implementation assumes the invariant spec.md §4.3 states:
// the graph passed in does NOT already contain the dyad (i, j). The
// caller (package sampler) is responsible for the sign flip on deletion.
package effect
