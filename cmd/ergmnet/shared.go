package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ergmgo/ergmnet/effect"
	"github.com/ergmgo/ergmnet/ergmconf"
	"github.com/ergmgo/ergmnet/netgraph"
	"github.com/ergmgo/ergmnet/netio"
	"github.com/ergmgo/ergmnet/telemetry"
)

// loadParsedConfig reads and parses the --config file required by every
// subcommand.
func loadParsedConfig() (*ergmconf.ParsedConfig, error) {
	if cfgPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	raw, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", cfgPath, err)
	}
	return ergmconf.Parse(string(raw))
}

// newRunLogger builds a telemetry.Logger tagged with a fresh run id
// (uuid.NewString()) for log correlation.
func newRunLogger(cfg *ergmconf.ParsedConfig) *telemetry.Logger {
	level := telemetry.LevelInfo
	if verbose {
		level = telemetry.LevelDebug
	} else if cfg.LogLevel != "" {
		level = telemetry.Level(cfg.LogLevel)
	}
	format := telemetry.FormatJSON
	if cfg.LogFormat != "" {
		format = telemetry.Format(cfg.LogFormat)
	}
	base := telemetry.NewLogger(telemetry.LoggerConfig{Level: level, Format: format, Output: os.Stdout})
	return base.WithField("run_id", uuid.NewString())
}

// loadGraph reads the Pajek network named by cfg.InputPath. It loads no
// attribute files, so the graph's attribute table starts empty.
func loadGraph(cfg *ergmconf.ParsedConfig) (*netgraph.Graph, error) {
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("config: input path required")
	}
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.InputPath, err)
	}
	defer f.Close()
	return netio.ReadPajek(f)
}

// bindEffects resolves the configuration's unbound effect.Spec entries
// against the loaded graph.
func bindEffects(cfg *ergmconf.ParsedConfig, g *netgraph.Graph) ([]effect.Effect, error) {
	return effect.Bind(cfg.Effects, g)
}

// defaultTheta returns a zero-initialized theta vector sized to effects,
// the starting point for estimate and the theta simulate runs with; the
// configuration carries no per-effect coefficient values.
func defaultTheta(effects []effect.Effect) []float64 {
	return make([]float64, len(effects))
}
