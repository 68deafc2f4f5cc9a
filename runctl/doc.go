// Package runctl provides the module's only parallelism, entirely
// external to the single-threaded sampler hot loop (spec.md §5): it
// launches N independent tasks, each over its own netgraph.Graph clone and
// its own derived RNG seed (DeriveTaskRNGSeed, over sampler.DeriveSeed), using
// golang.org/x/sync/errgroup to bound concurrency and propagate the first
// task error. No shared mutable state crosses a goroutine boundary; each
// task's Graph and RunContext are used by exactly one goroutine.
package runctl
