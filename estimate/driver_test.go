package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ergmgo/ergmnet/effect"
	"github.com/ergmgo/ergmnet/netgraph"
	"github.com/ergmgo/ergmnet/sampler"
)

func TestRunEstimateCompletesWithinBudget(t *testing.T) {
	g := netgraph.NewGraph(6)
	effects := []effect.Effect{{Kind: effect.KindEdge}}
	theta := []float64{0.0}
	ctx := sampler.NewRunContext(g, effects, theta, 11)

	observed := []float64{5.0}
	cfg := Config{MaxPhases: 50, StepsPerPhase: 200, Tolerance: 1.5, GainScale: 0.5}

	res, err := RunEstimate(ctx, observed, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, res.Phases)
	require.Len(t, res.Theta, 1)
}

func TestRunEstimateRejectsDimensionMismatch(t *testing.T) {
	g := netgraph.NewGraph(4)
	effects := []effect.Effect{{Kind: effect.KindEdge}}
	ctx := sampler.NewRunContext(g, effects, []float64{0}, 1)

	_, err := RunEstimate(ctx, []float64{1, 2}, DefaultConfig())
	require.Error(t, err)
}
