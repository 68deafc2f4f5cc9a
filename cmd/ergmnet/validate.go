package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ergmgo/ergmnet/sampler"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Args:  cobra.NoArgs,
	Short: "Parse a configuration file and bind its effects without sampling",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadParsedConfig()
	if err != nil {
		return err
	}
	g, err := loadGraph(cfg)
	if err != nil {
		return fmt.Errorf("loading network: %w", err)
	}
	effects, err := bindEffects(cfg, g)
	if err != nil {
		return fmt.Errorf("binding effects: %w", err)
	}
	if _, err := sampler.ParseScheme(cfg.Scheme); err != nil {
		return err
	}
	mode, err := sampler.ParseRunMode(cfg.Mode)
	if err != nil {
		return err
	}
	fmt.Printf("config OK: %d nodes, %d effects, scheme=%s, mode=%v\n", g.N(), len(effects), cfg.Scheme, mode)
	return nil
}
