package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ergmgo/ergmnet/effect"
	"github.com/ergmgo/ergmnet/estimate"
	"github.com/ergmgo/ergmnet/netgraph"
	"github.com/ergmgo/ergmnet/netio"
	"github.com/ergmgo/ergmnet/sampler"
	"github.com/ergmgo/ergmnet/telemetry"
)

// runStatus adapts a sampler.RunContext to telemetry.StatusProvider,
// kept at this package boundary so sampler itself stays free of a
// telemetry dependency.
type runStatus struct {
	rc     *sampler.RunContext
	scheme string
}

func (s runStatus) StatusSnapshot() telemetry.StatusSnapshot {
	return telemetry.StatusSnapshot{
		Iteration:      s.rc.Proposed(),
		Proposed:       s.rc.Proposed(),
		Accepted:       s.rc.Accepted(),
		AcceptanceRate: s.rc.AcceptanceRate(),
		Scheme:         s.scheme,
	}
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Args:  cobra.NoArgs,
	Short: "Fit theta against an observed network via Robbins-Monro stochastic approximation",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().Int("max-phases", 0, "override the configured maximum Robbins-Monro phase count")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadParsedConfig()
	if err != nil {
		return err
	}
	logger := newRunLogger(cfg)

	g, err := loadGraph(cfg)
	if err != nil {
		return fmt.Errorf("loading network: %w", err)
	}
	effects, err := bindEffects(cfg, g)
	if err != nil {
		return fmt.Errorf("binding effects: %w", err)
	}
	logger.Info("loaded network", "nodes", g.N(), "effects", len(effects))

	scheme, err := sampler.ParseScheme(cfg.Scheme)
	if err != nil {
		return err
	}
	// Robbins-Monro needs every accepted toggle actually applied to the
	// graph between phases, so estimate always runs in ModeCommit; a
	// configuration naming anything else is a config error here rather
	// than a silently ignored setting.
	if mode, err := sampler.ParseRunMode(cfg.Mode); err != nil {
		return err
	} else if mode != sampler.ModeCommit {
		return fmt.Errorf("config: mode %q is not valid for estimate (estimation requires commit)", cfg.Mode)
	}

	observed := observedStatistics(g, effects)

	ctx := sampler.NewRunContext(g, effects, defaultTheta(effects), cfg.Seed,
		sampler.WithScheme(scheme), sampler.WithTargetDensity(cfg.TargetDensity),
		sampler.WithTNTTieProbability(cfg.TNTTieProb), sampler.WithConditioning(cfg.Conditioning))
	ctx.SetInitialStats(append([]float64(nil), observed...))

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics := telemetry.NewMetrics(reg)
		metrics.Observe(ctx.Proposed(), ctx.Accepted())
		router := telemetry.NewRouter(runStatus{rc: ctx, scheme: scheme.String()}, reg)
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: router}
		go func() {
			logger.Info("status server listening", "addr", cfg.MetricsAddr)
			_ = srv.ListenAndServe()
		}()
	}

	steps := cfg.Steps
	if steps <= 0 {
		steps = 1000
	}
	estCfg := estimate.DefaultConfig()
	estCfg.StepsPerPhase = steps
	if n, _ := cmd.Flags().GetInt("max-phases"); n > 0 {
		estCfg.MaxPhases = n
	}

	res, err := estimate.RunEstimate(ctx, observed, estCfg)
	if err != nil {
		return fmt.Errorf("estimating: %w", err)
	}
	logger.Info("estimation complete", "converged", res.Converged, "phases", len(res.Phases))

	out := os.Stdout
	if cfg.OutputDir != "" {
		f, err := os.Create(cfg.OutputDir + "/theta.txt")
		if err != nil {
			return fmt.Errorf("writing theta: %w", err)
		}
		defer f.Close()
		out = f
	}
	return netio.WriteTheta(out, effects, res.Theta)
}

// observedStatistics recovers the loaded graph's sufficient-statistics
// vector by tearing every present tie out of a clone, then replaying each
// insertion through effect.Delta and summing — the Δ-correctness law
// itself (spec.md §8) used as the only available from-scratch z(g).
func observedStatistics(g *netgraph.Graph, effects []effect.Effect) []float64 {
	work := g.Clone()
	ties := make([]netgraph.Dyad, work.FlatLen())
	for i := range ties {
		ties[i] = work.FlatAt(i)
	}
	for _, d := range ties {
		removeTie(work, d)
	}

	stats := make([]float64, len(effects))
	for _, d := range ties {
		for k, e := range effects {
			stats[k] += effect.Delta(work, e, d.I, d.J)
		}
		insertTie(work, d)
	}
	return stats
}

func removeTie(g *netgraph.Graph, d netgraph.Dyad) {
	if g.Directed() {
		g.RemoveArcUpdateList(d.I, d.J)
		return
	}
	g.RemoveEdgeUpdateList(d.I, d.J)
}

func insertTie(g *netgraph.Graph, d netgraph.Dyad) {
	if g.Directed() {
		g.InsertArcUpdateList(d.I, d.J)
		return
	}
	g.InsertEdgeUpdateList(d.I, d.J)
}
