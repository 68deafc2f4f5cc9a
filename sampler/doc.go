// Package sampler implements the Metropolis-Hastings tie-toggling schemes
// of spec.md §4.4/§5: Basic (uniform over all dyads), IFD (improved
// fixed-density, biasing proposals toward the target tie count), and TNT
// (tie/no-tie, splitting proposals between the existing-tie flat list and
// a uniform dyad draw with a Hastings correction).
//
// The hot loop is single-threaded and cooperative per spec.md §5: one
// RunContext owns one netgraph.Graph and one *rand.Rand, and Run never
// spawns a goroutine. External parallelism (package runctl) runs many
// independent RunContexts, each over its own graph clone and its own
// derived RNG stream (see rng.go, grounded on the teacher's tsp/rng.go
// SplitMix64 stream derivation).
package sampler
