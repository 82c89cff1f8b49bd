// Package cmd - watch command
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"steelcost/adapters/scenariohcl"
	"steelcost/core/generator"
	"steelcost/core/output"
	"steelcost/core/scenario"
	"steelcost/internal/logging"
)

var watchScenarioName string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <scenario.hcl>",
	Short: "Recompute frames whenever a scenario file changes",
	Long: `Watch a scenario definition file and re-render the frames on every
save. Each change replaces the whole scenario state before the next
recompute; edits are never applied partially.

Example:
  steelcost watch scenarios.hcl --scenario border-adjust`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchScenarioName, "scenario", "", "scenario block to use (default: first in file)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("scenario file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	if err := recomputeFromFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}

	logging.Info("watching scenario file", zap.String("path", path))

	// Editors emit bursts of events per save; coalesce them with a
	// short settle timer.
	var settle *time.Timer
	settleCh := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if settle != nil {
				settle.Stop()
			}
			settle = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case settleCh <- struct{}{}:
				default:
				}
			})

		case <-settleCh:
			if err := recomputeFromFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("watch error", zap.Error(err))
		}
	}
}

// recomputeFromFile parses the scenario file and renders fresh frames
func recomputeFromFile(path string) error {
	file, err := scenariohcl.Load(path)
	if err != nil {
		return err
	}
	named, ok := file.Scenario(watchScenarioName)
	if !ok {
		return fmt.Errorf("scenario %q not found in %s", watchScenarioName, path)
	}

	cfg := generator.DefaultConfig()
	if file.Generator != nil {
		cfg = *file.Generator
	}
	ds, err := generator.Generate(cfg)
	if err != nil {
		return err
	}

	result := &output.Result{
		State:  named.State,
		Frames: scenario.Frames(ds, named.State),
		Metadata: output.Metadata{
			StartYear: ds.StartYear,
			EndYear:   ds.EndYear,
			Seed:      ds.Seed,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   toolVersion,
		},
	}

	fmt.Printf("\n--- %s @ %s (scenario %q) ---\n\n", filepath.Base(path), time.Now().Format("15:04:05"), named.Name)
	formatter := &output.CLIFormatter{}
	return formatter.Render(os.Stdout, result)
}
