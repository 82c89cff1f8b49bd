// Package main is the entry point for the steelcost CLI.
package main

import (
	"os"

	"steelcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
