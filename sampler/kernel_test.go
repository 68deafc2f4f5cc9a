package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ergmgo/ergmnet/effect"
	"github.com/ergmgo/ergmnet/netgraph"
)

func newTestEffects() []effect.Effect {
	return []effect.Effect{{Kind: effect.KindEdge}}
}

func TestRunBasicCommitsAcceptedToggles(t *testing.T) {
	g := netgraph.NewGraph(6)
	ctx := NewRunContext(g, newTestEffects(), []float64{2.0}, 42)

	res, err := Run(ctx, 200)
	require.NoError(t, err)
	require.Equal(t, 200, res.Proposed)
	require.GreaterOrEqual(t, res.Accepted, 0)
	require.Equal(t, ctx.Accepted(), res.Accepted)
}

func TestRunDryRunLeavesGraphUnchanged(t *testing.T) {
	g := netgraph.NewGraph(6)
	ctx := NewRunContext(g, newTestEffects(), []float64{2.0}, 7, WithMode(ModeDryRun))

	before := g.ArcCount()
	_, err := Run(ctx, 200)
	require.NoError(t, err)
	require.Equal(t, before, g.ArcCount())
}

func TestRunWithTraceRecordsMoves(t *testing.T) {
	g := netgraph.NewGraph(4)
	ctx := NewRunContext(g, newTestEffects(), []float64{1.0}, 1, WithTrace())

	_, err := Run(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ctx.Trace(), 10)
}

func TestRunIFDSchemeRespectsDirectedness(t *testing.T) {
	g := netgraph.NewGraph(5, netgraph.WithDirected())
	effects := []effect.Effect{{Kind: effect.KindArc}}
	ctx := NewRunContext(g, effects, []float64{0.5}, 3, WithScheme(SchemeIFD), WithTargetDensity(0.3))

	_, err := Run(ctx, 100)
	require.NoError(t, err)
	require.LessOrEqual(t, g.ArcCount(), 5*4)
}

func TestRunTNTSchemeProposesFromTieListWhenAvailable(t *testing.T) {
	g := netgraph.NewGraph(5)
	g.InsertEdgeUpdateList(0, 1)
	effects := []effect.Effect{{Kind: effect.KindEdge}}
	ctx := NewRunContext(g, effects, []float64{-5.0}, 9, WithScheme(SchemeTNT), WithTNTTieProbability(1.0))

	_, err := Run(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Proposed())
}

func TestNewRunContextSeedZeroIsReproducible(t *testing.T) {
	g1 := netgraph.NewGraph(5)
	g2 := netgraph.NewGraph(5)
	ctx1 := NewRunContext(g1, newTestEffects(), []float64{1.0}, 0)
	ctx2 := NewRunContext(g2, newTestEffects(), []float64{1.0}, 0)

	Run(ctx1, 50)
	Run(ctx2, 50)
	require.Equal(t, g1.ArcCount(), g2.ArcCount())
}

// TestSnowballConditioningRejectsDeleteAtPrevWaveDegreeOne covers spec.md
// §8 scenario 5: a tie from zone 1 to zone 2 whose zone-2 endpoint has
// prev_wave_degree 1 may never be proposed for deletion.
func TestSnowballConditioningRejectsDeleteAtPrevWaveDegreeOne(t *testing.T) {
	// Zones 0..3 with MaxZone=3 so both endpoints of the 1->2 tie are
	// inner nodes (zone < MaxZone): the rejection under test must come
	// from the prev_wave_degree rule, not merely from the inner-nodes
	// domain restriction.
	g := netgraph.NewGraph(4, netgraph.WithDirected())
	g.Overlay.Zone = []int{0, 1, 2, 3}
	g.Overlay.MaxZone = 3
	g.Overlay.Rebuild()
	g.InsertArcUpdateList(1, 2) // loaded like netio would load it, not via the inner-list family
	require.Equal(t, 1, g.Overlay.PrevWaveDegree[2])

	effects := []effect.Effect{{Kind: effect.KindArc}}
	ctx := NewRunContext(g, effects, []float64{-10.0}, 11, WithConditioning(true))

	require.False(t, ctx.allowedBySnowball(1, 2))
	for s := 0; s < 200; s++ {
		_, err := Run(ctx, 1)
		require.NoError(t, err)
		require.True(t, g.IsArc(1, 2), "the prev_wave_degree=1 tie must never be deleted")
	}
}

// TestCergmConditioningRestrictsSenderToMaxTermNodes covers spec.md §8
// scenario 6: every accepted toggle must have its sender in the max-term
// set; proposals with a non-max-term sender are filtered before delta is
// computed.
func TestCergmConditioningRestrictsSenderToMaxTermNodes(t *testing.T) {
	g := netgraph.NewGraph(4, netgraph.WithDirected())
	g.Overlay.Term = []int{0, 1, 1, 0}
	g.Overlay.MaxTerm = 1
	g.Overlay.Rebuild()
	require.ElementsMatch(t, []int{1, 2}, g.Overlay.MaxTermNodes())

	effects := []effect.Effect{{Kind: effect.KindArc}}
	ctx := NewRunContext(g, effects, []float64{0.0}, 13, WithConditioning(true))
	require.True(t, ctx.cergm)
	require.False(t, ctx.snowball)

	require.False(t, ctx.allowedByConditioning(0, 2))
	require.True(t, ctx.allowedByConditioning(1, 2))

	_, err := Run(ctx, 300)
	require.NoError(t, err)
	for i := 0; i < g.N(); i++ {
		if g.Overlay.IsMaxTermNode(i) {
			continue
		}
		for j := 0; j < g.N(); j++ {
			if i == j {
				continue
			}
			require.False(t, g.IsArc(i, j), "a non-max-term sender must never gain an arc")
		}
	}
}

// TestIFDSchemeAppliesAuxiliaryCorrection covers spec.md §4.4's IFD
// auxiliary-V proposal correction: ifdV must move away from zero once
// the chain runs, since the fixed low target density keeps nudging it.
func TestIFDSchemeAppliesAuxiliaryCorrection(t *testing.T) {
	g := netgraph.NewGraph(6, netgraph.WithDirected())
	effects := []effect.Effect{{Kind: effect.KindArc}}
	ctx := NewRunContext(g, effects, []float64{0.0}, 5, WithScheme(SchemeIFD), WithTargetDensity(0.1), WithIFDGain(0.05))

	_, err := Run(ctx, 500)
	require.NoError(t, err)
	require.NotEqual(t, 0.0, ctx.ifdV)
}

// TestTNTSchemeHastingsCorrectionIsFinite covers spec.md §4.4's TNT
// Hastings correction: proposeTNT must never hand step() a non-finite
// correction even when the tie list is short.
func TestTNTSchemeHastingsCorrectionIsFinite(t *testing.T) {
	g := netgraph.NewGraph(5)
	g.InsertEdgeUpdateList(0, 1)
	effects := []effect.Effect{{Kind: effect.KindEdge}}
	ctx := NewRunContext(g, effects, []float64{0.2}, 17, WithScheme(SchemeTNT))

	for s := 0; s < 100; s++ {
		i, j, correction, ok := ctx.proposeDyad()
		require.True(t, ok)
		require.False(t, math.IsNaN(correction) || math.IsInf(correction, 0))
		ctx.step(i, j, correction)
	}
}
