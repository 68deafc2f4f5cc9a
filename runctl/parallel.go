package runctl

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ergmgo/ergmnet/netgraph"
	"github.com/ergmgo/ergmnet/sampler"
)

// TaskFunc builds and runs one independent task given its 0-based index
// and a graph clone it owns exclusively; it must return that task's
// RunContext (for inspecting CurrentStats/AcceptanceRate afterward) and
// any error.
type TaskFunc func(ctx context.Context, index int, graph *netgraph.Graph) (*sampler.RunContext, error)

// RunParallel clones base into n independent graphs, one per task, and
// returns them in task-index order for RunTasks. It runs no task itself,
// does not read ctx, and always returns a nil error.
func RunParallel(ctx context.Context, base *netgraph.Graph, n int) ([]*netgraph.Graph, error) {
	clones := make([]*netgraph.Graph, n)
	for i := 0; i < n; i++ {
		clones[i] = base.Clone()
	}
	return clones, nil
}

// RunTasks runs fn once per entry of clones concurrently via errgroup,
// returning every task's RunContext in order or the first error.
func RunTasks(ctx context.Context, clones []*netgraph.Graph, fn TaskFunc) ([]*sampler.RunContext, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([]*sampler.RunContext, len(clones))
	for i, clone := range clones {
		i, clone := i, clone
		g.Go(func() error {
			rc, err := fn(gctx, i, clone)
			if err != nil {
				return err
			}
			results[i] = rc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DeriveTaskRNGSeed derives task index's RNG seed from a parent seed,
// grounded on sampler.DeriveSeed's SplitMix64 stream derivation so every
// task's stream is reproducible and uncorrelated with its siblings'.
func DeriveTaskRNGSeed(parentSeed int64, index int) int64 {
	return sampler.DeriveSeed(parentSeed, uint64(index))
}
