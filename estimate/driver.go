package estimate

import (
	"math"

	"github.com/ergmgo/ergmnet/sampler"
)

// Config bounds one RunEstimate call.
type Config struct {
	MaxPhases     int
	StepsPerPhase int
	Tolerance     float64 // converged when max|observed-simulated| < Tolerance
	GainScale     float64 // gain at phase p is GainScale / (p + 1)
}

// DefaultConfig returns reasonable bounds for a small-to-medium network.
func DefaultConfig() Config {
	return Config{MaxPhases: 200, StepsPerPhase: 1000, Tolerance: 1e-3, GainScale: 1.0}
}

// PhaseRecord captures one phase's outcome, for diagnostics/output.
type PhaseRecord struct {
	Phase          int
	Theta          []float64
	SimulatedStats []float64
	AcceptanceRate float64
}

// Result is RunEstimate's return value.
type Result struct {
	Theta      []float64
	Converged  bool
	Phases     []PhaseRecord
}

// RunEstimate drives ctx through at most cfg.MaxPhases Robbins-Monro
// phases, each cfg.StepsPerPhase MH steps, updating ctx.Theta toward the
// observed statistics vector until the end-of-phase statistics
// (ctx.CurrentStats after the phase's steps) are within cfg.Tolerance of
// observed or the phase budget is exhausted.
func RunEstimate(ctx *sampler.RunContext, observed []float64, cfg Config) (*Result, error) {
	if len(observed) != len(ctx.Theta) {
		return nil, ErrDimensionMismatch(len(observed), len(ctx.Theta))
	}
	res := &Result{Theta: ctx.Theta}

	for phase := 0; phase < cfg.MaxPhases; phase++ {
		if _, err := sampler.Run(ctx, cfg.StepsPerPhase); err != nil {
			return nil, err
		}

		gain := cfg.GainScale / float64(phase+1)
		maxAbsDiff := 0.0
		for k := range ctx.Theta {
			diff := observed[k] - ctx.CurrentStats[k]
			if d := math.Abs(diff); d > maxAbsDiff {
				maxAbsDiff = d
			}
			ctx.Theta[k] += gain * diff
		}

		snapshot := make([]float64, len(ctx.CurrentStats))
		copy(snapshot, ctx.CurrentStats)
		thetaSnapshot := make([]float64, len(ctx.Theta))
		copy(thetaSnapshot, ctx.Theta)
		res.Phases = append(res.Phases, PhaseRecord{
			Phase:          phase,
			Theta:          thetaSnapshot,
			SimulatedStats: snapshot,
			AcceptanceRate: ctx.AcceptanceRate(),
		})

		if maxAbsDiff < cfg.Tolerance {
			res.Converged = true
			break
		}
	}
	res.Theta = ctx.Theta
	return res, nil
}
