// Package cmd - compare command
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"steelcost/core/compare"
	"steelcost/core/types"
	"steelcost/internal/errors"
)

var (
	compareScenario scenarioFlags
	compareDataset  datasetFlags
	compareBase     string
	compareAgainst  string
	compareYear     int
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two regions' scenario-adjusted costs for a year",
	Long: `Derive both regions' values under a scenario and print the deltas.
A region missing from the table renders as N/A.

Examples:
  steelcost compare --base US --against China --year 2030
  steelcost compare --base US --against EU --year 2025 --preset carbon-2030`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	addScenarioFlags(compareCmd, &compareScenario)
	addDatasetFlags(compareCmd, &compareDataset)
	compareCmd.Flags().StringVar(&compareBase, "base", "US", "reference region")
	compareCmd.Flags().StringVar(&compareAgainst, "against", "China", "comparison region")
	compareCmd.Flags().IntVarP(&compareYear, "year", "y", 0, "year to compare (default: last generated year)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	base, ok := types.ParseRegion(compareBase)
	if !ok {
		return errors.NotFound("region", compareBase)
	}
	against, ok := types.ParseRegion(compareAgainst)
	if !ok {
		return errors.NotFound("region", compareAgainst)
	}

	state, _, fileCfg, err := compareScenario.resolve()
	if err != nil {
		return err
	}

	ds, _, err := compareDataset.resolve(context.Background(), fileCfg)
	if err != nil {
		return err
	}

	year := compareYear
	if year == 0 {
		year = ds.EndYear
	}

	summary := compare.Compare(ds, state, base, against, year)

	delivered, okD := summary.DeliveredDelta()
	co2, okC := summary.CO2Delta()
	adjusted, okA := summary.CarbonAdjustedDelta()

	fmt.Printf("%s vs %s, %d\n\n", base, against, year)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "delivered cost delta\t%s\n", compare.SignedCurrency(delivered, okD))
	fmt.Fprintf(tw, "carbon intensity delta\t%s\n", compare.SignedMass(co2, okC))
	fmt.Fprintf(tw, "carbon-adjusted delta\t%s\n", compare.SignedCurrency(adjusted, okA))
	return tw.Flush()
}
