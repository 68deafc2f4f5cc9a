// Command ergmnet drives ERGM estimation, simulation, and configuration
// validation from the command line, grounded on the teacher's
// cmd/chaos-runner (rootCmd + PersistentFlags + one file per subcommand).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "ergmnet",
	Short:   "Exponential random graph model estimation and simulation",
	Long:    `ergmnet fits and simulates exponential random graph models over directed, undirected, and bipartite networks via Metropolis-Hastings MCMC.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "ergmconf configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
