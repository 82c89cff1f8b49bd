// Package output - Human-readable CLI rendering
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"steelcost/core/compare"
)

// CLIFormatter renders results as terminal tables
type CLIFormatter struct {
	// ShowPoints also prints the chart point arrays per frame
	ShowPoints bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the result as terminal tables, one per frame
func (f *CLIFormatter) Render(w io.Writer, result *Result) error {
	s := result.State
	fmt.Fprintf(w, "Scenario: tariff %s%%  shipping $%s/ton  incentive $%s/ton  carbon $%s/tCO2\n",
		s.TariffPercent.StringFixed(1), s.ShippingCost.StringFixed(0),
		s.IncentiveAmount.StringFixed(0), s.CarbonPrice.StringFixed(0))
	if result.Preset != "" {
		fmt.Fprintf(w, "Preset:   %s\n", result.Preset)
	}
	fmt.Fprintf(w, "Years:    %d-%d  (seed %d)\n\n", result.Metadata.StartYear, result.Metadata.EndYear, result.Metadata.Seed)

	for _, frame := range result.Frames {
		fmt.Fprintf(w, "== %d ==\n", frame.Year)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "REGION\tCOST\tDELIVERED\tCARBON-ADJ\tCO2 kg/t\tVOLUME Mt\tBUBBLE")
		for _, row := range frame.Rows {
			fmt.Fprintf(tw, "%s\t$%s\t$%s\t$%s\t%s\t%.1f\t%.1f\n",
				row.Region,
				row.Cost.StringFixed(0),
				row.DeliveredCost.StringFixed(2),
				row.CarbonAdjustedCost.StringFixed(2),
				row.CO2.StringFixed(0),
				row.Volume/1e6,
				row.BubbleSize)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if f.ShowPoints {
			for _, p := range frame.Points {
				fmt.Fprintf(w, "  point x=%s y=%s size=%.1f color=%s %q\n",
					p.X.StringFixed(0), p.Y.StringFixed(2), p.Size, p.Color, p.Label)
			}
		}
		fmt.Fprintln(w)
	}

	if result.Summary != nil {
		renderSummary(w, result.Summary)
	}
	return nil
}

// renderSummary writes the side-by-side region comparison. Missing
// rows render as N/A instead of failing.
func renderSummary(w io.Writer, s *compare.Summary) {
	fmt.Fprintf(w, "%s vs %s, %d:\n", s.BaseRegion, s.AgainstRegion, s.Year)

	delivered, okD := s.DeliveredDelta()
	co2, okC := s.CO2Delta()
	adjusted, okA := s.CarbonAdjustedDelta()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  delivered cost delta\t%s\n", compare.SignedCurrency(delivered, okD))
	fmt.Fprintf(tw, "  carbon intensity delta\t%s\n", compare.SignedMass(co2, okC))
	fmt.Fprintf(tw, "  carbon-adjusted delta\t%s\n", compare.SignedCurrency(adjusted, okA))
	tw.Flush()
}
