// Package cmd provides the CLI commands for steelcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"steelcost/internal/config"
	"steelcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "steelcost",
	Short: "Explore steel sourcing costs under trade and carbon scenarios",
	Long: `steelcost is a deterministic scenario engine for stylized steel
sourcing economics.

It generates a synthetic per-region, per-year observation table, applies
a trade-policy scenario (tariff, shipping, incentive, carbon price) and
assembles the derived costs into per-year animation frames.

Examples:
  steelcost frames --preset carbon-2030
  steelcost frames --tariff 25 --carbon-price 120 --format json
  steelcost compare --base US --against China --year 2030
  steelcost explore`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.steelcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("steelcost version " + toolVersion)
	},
}

const toolVersion = "1.0.0"
