// Package cmd - presets command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"steelcost/core/types"
)

// presetsCmd lists the canned scenario bundles
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List preset scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTARIFF %\tSHIPPING $/t\tINCENTIVE $/t\tCARBON $/tCO2\tDESCRIPTION")
		for _, p := range types.Presets() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.Name,
				p.State.TariffPercent.StringFixed(0),
				p.State.ShippingCost.StringFixed(0),
				p.State.IncentiveAmount.StringFixed(0),
				p.State.CarbonPrice.StringFixed(0),
				p.Description)
		}
		tw.Flush()
	},
}
