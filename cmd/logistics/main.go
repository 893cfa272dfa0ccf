package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		snapshotFile = flag.String(
			"snapshot",
			"",
			"Path to JSON snapshot file containing materials, suppliers and configs",
		)
		outputDir  = flag.String("output", "", "Output directory for results (optional)")
		format     = flag.String("format", "text", "Output format: text, json, csv")
		includeCO2 = flag.Bool("include-co2", false, "Fold CO2 cost into the per-piece total")
		detailed   = flag.Bool("detailed", false, "Attach storage-location breakdown to each result")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		SnapshotFile: *snapshotFile,
		OutputDir:    *outputDir,
		Format:       *format,
		IncludeCO2:   *includeCO2,
		Detailed:     *detailed,
		Verbose:      *verbose,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewCalcCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
