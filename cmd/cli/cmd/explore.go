// Package cmd - explore command
package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"steelcost/cmd/cli/explorer"
)

var exploreDataset datasetFlags

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively adjust scenario levers and watch costs move",
	Long: `Open the terminal scenario explorer: four parameter gauges stand in
for the chart demo's sliders, and every adjustment recomputes the
frames in place.

Keys: ↑/↓ select a lever, ←/→ adjust it, [ and ] step the displayed
year, p cycles presets, r regenerates the dataset, q quits.`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	addDatasetFlags(exploreCmd, &exploreDataset)
}

func runExplore(cmd *cobra.Command, args []string) error {
	ds, _, err := exploreDataset.resolve(context.Background(), nil)
	if err != nil {
		return err
	}

	program := tea.NewProgram(explorer.New(ds), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
