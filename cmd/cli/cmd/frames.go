// Package cmd - frames command
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"steelcost/core/output"
	"steelcost/core/scenario"
	"steelcost/internal/config"
	"steelcost/internal/errors"
	"steelcost/internal/logging"
)

var (
	framesScenario scenarioFlags
	framesDataset  datasetFlags
	framesFormat   string
	framesPoints   bool
)

// framesCmd represents the frames command
var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Compute per-year animation frames under a scenario",
	Long: `Generate the observation table (or replay a stored snapshot), apply
a scenario and emit the derived frames.

Examples:
  steelcost frames
  steelcost frames --preset high-tariff
  steelcost frames --tariff 25 --shipping 80 --format json
  steelcost frames --scenario-file scenarios.hcl --scenario border-adjust
  steelcost frames --snapshot 6a1f... --carbon-price 120`,
	Args: cobra.NoArgs,
	RunE: runFrames,
}

func init() {
	addScenarioFlags(framesCmd, &framesScenario)
	addDatasetFlags(framesCmd, &framesDataset)
	framesCmd.Flags().StringVarP(&framesFormat, "format", "f", "", "output format (cli, json)")
	framesCmd.Flags().BoolVar(&framesPoints, "points", false, "include chart points in CLI output")
}

func runFrames(cmd *cobra.Command, args []string) error {
	state, preset, fileCfg, err := framesScenario.resolve()
	if err != nil {
		return err
	}

	ds, snapshotID, err := framesDataset.resolve(context.Background(), fileCfg)
	if err != nil {
		return err
	}

	logging.Debug("computing frames",
		zap.Int("observations", len(ds.Observations)),
		zap.Int64("seed", ds.Seed))

	result := &output.Result{
		State:  state,
		Preset: preset,
		Frames: scenario.Frames(ds, state),
		Metadata: output.Metadata{
			StartYear:  ds.StartYear,
			EndYear:    ds.EndYear,
			Seed:       ds.Seed,
			SnapshotID: snapshotID,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Version:    toolVersion,
		},
	}

	return render(result)
}

// render writes a result with the selected formatter
func render(result *output.Result) error {
	format := output.Format(framesFormat)
	if framesFormat == "" {
		format = output.Format(config.Get().Output.DefaultFormat)
	}

	formatter, ok := output.ForFormat(format)
	if !ok {
		return errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
	if cli, isCLI := formatter.(*output.CLIFormatter); isCLI {
		cli.ShowPoints = framesPoints || config.Get().Output.ShowPoints
	}
	return formatter.Render(os.Stdout, result)
}

// addScenarioFlags registers the shared lever flags on a command
func addScenarioFlags(cmd *cobra.Command, f *scenarioFlags) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "preset scenario (baseline, high-tariff, carbon-2030, carbon-2050)")
	cmd.Flags().StringVar(&f.scenarioFile, "scenario-file", "", "HCL scenario definition file")
	cmd.Flags().StringVar(&f.scenarioName, "scenario", "", "scenario block to use from --scenario-file")
	cmd.Flags().Float64VarP(&f.tariff, "tariff", "t", 0, "import tariff in percent of cost")
	cmd.Flags().Float64VarP(&f.shipping, "shipping", "s", 0, "overseas shipping cost in USD/ton")
	cmd.Flags().Float64VarP(&f.incentive, "incentive", "i", 0, "domestic incentive in USD/ton")
	cmd.Flags().Float64VarP(&f.carbonPrice, "carbon-price", "c", 0, "carbon price in USD/ton CO2")
}

// addDatasetFlags registers the shared dataset flags on a command
func addDatasetFlags(cmd *cobra.Command, f *datasetFlags) {
	cmd.Flags().IntVar(&f.startYear, "start-year", 0, "first year to generate")
	cmd.Flags().IntVar(&f.endYear, "end-year", 0, "last year to generate")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "RNG seed (0 draws a fresh seed)")
	cmd.Flags().StringVar(&f.snapshot, "snapshot", "", "replay a stored dataset snapshot by id")
}
