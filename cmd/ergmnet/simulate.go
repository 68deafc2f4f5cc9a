package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ergmgo/ergmnet/netgraph"
	"github.com/ergmgo/ergmnet/netio"
	"github.com/ergmgo/ergmnet/runctl"
	"github.com/ergmgo/ergmnet/sampler"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Args:  cobra.NoArgs,
	Short: "Draw networks from a fixed theta via MCMC",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Int("chains", 1, "number of independent parallel chains over the configured --config input (ignored with --manifest)")
	simulateCmd.Flags().String("manifest", "", "YAML manifest naming one distinct network per chain, instead of cloning --config's input")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadParsedConfig()
	if err != nil {
		return err
	}
	logger := newRunLogger(cfg)

	manifestPath, _ := cmd.Flags().GetString("manifest")

	var graphs []*netgraph.Graph
	var names []string
	if manifestPath != "" {
		graphs, names, err = loadManifestGraphs(manifestPath)
		if err != nil {
			return fmt.Errorf("loading manifest: %w", err)
		}
	} else {
		g, err := loadGraph(cfg)
		if err != nil {
			return fmt.Errorf("loading network: %w", err)
		}
		chains, _ := cmd.Flags().GetInt("chains")
		if chains < 1 {
			chains = 1
		}
		graphs, err = runctl.RunParallel(cmd.Context(), g, chains)
		if err != nil {
			return fmt.Errorf("cloning graph for %d chains: %w", chains, err)
		}
		names = make([]string, chains)
		for i := range names {
			names[i] = fmt.Sprintf("chain_%d", i)
		}
	}

	// Effects are bound per graph (inside the task closure below) since a
	// manifest's entries need not share identical node counts or
	// attribute tables.
	scheme, err := sampler.ParseScheme(cfg.Scheme)
	if err != nil {
		return err
	}
	mode, err := sampler.ParseRunMode(cfg.Mode)
	if err != nil {
		return err
	}
	steps := cfg.Steps
	if steps <= 0 {
		steps = 1000
	}

	taskCtx := cmd.Context()
	results, err := runctl.RunTasks(taskCtx, graphs, func(_ context.Context, idx int, g *netgraph.Graph) (*sampler.RunContext, error) {
		effects, err := bindEffects(cfg, g)
		if err != nil {
			return nil, fmt.Errorf("binding effects for %s: %w", names[idx], err)
		}
		seed := runctl.DeriveTaskRNGSeed(cfg.Seed, idx)
		rc := sampler.NewRunContext(g, effects, defaultTheta(effects), seed,
			sampler.WithScheme(scheme), sampler.WithMode(mode),
			sampler.WithTargetDensity(cfg.TargetDensity),
			sampler.WithTNTTieProbability(cfg.TNTTieProb),
			sampler.WithConditioning(cfg.Conditioning))
		if _, err := sampler.Run(rc, steps); err != nil {
			return nil, err
		}
		return rc, nil
	})
	if err != nil {
		return fmt.Errorf("simulating: %w", err)
	}

	for i, rc := range results {
		logger.Info("chain complete", "chain", names[i], "acceptance_rate", rc.AcceptanceRate())
		if cfg.OutputDir == "" {
			continue
		}
		outPath := fmt.Sprintf("%s/%s.net", cfg.OutputDir, names[i])
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("writing %s output: %w", names[i], err)
		}
		err = netio.WritePajek(f, graphs[i])
		f.Close()
		if err != nil {
			return fmt.Errorf("writing %s output: %w", names[i], err)
		}
	}
	return nil
}

// loadManifestGraphs reads a YAML batch manifest and loads each entry's
// Pajek network plus its attribute/overlay sidecar files.
func loadManifestGraphs(path string) ([]*netgraph.Graph, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	manifest, err := netio.ReadManifest(f)
	if err != nil {
		return nil, nil, err
	}

	graphs := make([]*netgraph.Graph, len(manifest.Networks))
	names := make([]string, len(manifest.Networks))
	for i, entry := range manifest.Networks {
		g, err := readManifestEntry(entry)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %q: %w", entry.Name, err)
		}
		graphs[i] = g
		names[i] = entry.Name
	}
	return graphs, names, nil
}

func readManifestEntry(entry netio.NetworkEntry) (*netgraph.Graph, error) {
	nf, err := os.Open(entry.NetworkPath)
	if err != nil {
		return nil, err
	}
	defer nf.Close()
	g, err := netio.ReadPajek(nf)
	if err != nil {
		return nil, err
	}

	for name, path := range entry.Binary {
		if err := readAttrFile(path, func(r *os.File) error { _, err := netio.ReadBinaryAttr(r, name, g); return err }); err != nil {
			return nil, err
		}
	}
	for name, path := range entry.Categorical {
		if err := readAttrFile(path, func(r *os.File) error { _, err := netio.ReadCategoricalAttr(r, name, g); return err }); err != nil {
			return nil, err
		}
	}
	for name, path := range entry.Continuous {
		if err := readAttrFile(path, func(r *os.File) error { _, err := netio.ReadContinuousAttr(r, name, g); return err }); err != nil {
			return nil, err
		}
	}
	for name, path := range entry.Sets {
		if err := readAttrFile(path, func(r *os.File) error { _, err := netio.ReadSetAttr(r, name, g); return err }); err != nil {
			return nil, err
		}
	}
	if entry.ZonesPath != "" {
		if err := readAttrFile(entry.ZonesPath, func(r *os.File) error { return netio.ReadZones(r, g) }); err != nil {
			return nil, err
		}
	}
	if entry.TermsPath != "" {
		if err := readAttrFile(entry.TermsPath, func(r *os.File) error { return netio.ReadTerms(r, g) }); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func readAttrFile(path string, fn func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
