package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/application/services"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/infrastructure/repositories/snapshot"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/interfaces/cli/output"
)

// Config holds configuration for the calc command
type Config struct {
	SnapshotFile string
	OutputDir    string
	Format       string
	IncludeCO2   bool
	Detailed     bool
	Verbose      bool
	Help         bool
}

// CalcCommand handles the main calculation execution logic
type CalcCommand struct {
	config Config
}

// NewCalcCommand creates a new calc command with the given configuration
func NewCalcCommand(config Config) *CalcCommand {
	return &CalcCommand{
		config: config,
	}
}

// Execute runs the calc command
func (c *CalcCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		c.printHeader()
	}

	// Load data from the snapshot file
	if c.config.Verbose {
		fmt.Println("📂 Loading snapshot...")
	}

	repo, err := snapshot.Load(c.config.SnapshotFile)
	if err != nil {
		return fmt.Errorf("error loading snapshot: %w", err)
	}

	if c.config.Verbose {
		materials, _ := repo.GetAllMaterials()
		suppliers, _ := repo.GetAllSuppliers()
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Materials: %d\n", len(materials))
		fmt.Printf("  Suppliers: %d\n", len(suppliers))
		fmt.Printf("  Packaging Configs: %d\n", len(repo.AllPackagingConfigs()))
		fmt.Printf("  Transport Configs: %d\n", len(repo.AllTransportConfigs()))
		fmt.Printf("  Warehouse Configs: %d\n", len(repo.AllWarehouseConfigs()))
		fmt.Println()
	}

	// Run the batch calculation
	if c.config.Verbose {
		fmt.Println("🔄 Running cost calculation...")
	}

	calcService := services.NewCalculationService()
	opts := services.BatchOptions{
		IncludeCO2:        c.config.IncludeCO2,
		DetailedBreakdown: c.config.Detailed,
	}

	startTime := time.Now()
	batch, err := calcService.CalculateAll(ctx, repo, repo, repo, opts)
	calcTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error running calculation: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Calculation completed in %v\n\n", calcTime)
	}

	// Generate output
	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}

	if err := output.Generate(batch, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Cost calculation complete!")
	}

	return nil
}

// validateInputs validates the command configuration
func (c *CalcCommand) validateInputs() error {
	if c.config.SnapshotFile == "" {
		return fmt.Errorf("must specify a -snapshot file")
	}
	if _, err := os.Stat(c.config.SnapshotFile); os.IsNotExist(err) {
		return fmt.Errorf("snapshot file not found: %s", c.config.SnapshotFile)
	}
	switch c.config.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unsupported output format: %s", c.config.Format)
	}
	return nil
}

// printHeader prints the command header information
func (c *CalcCommand) printHeader() {
	fmt.Printf("🚚 Logistics Cost Estimation CLI\n")
	fmt.Printf("Snapshot: %s\n", c.config.SnapshotFile)
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	if c.config.IncludeCO2 {
		fmt.Printf("CO2 cost: included in totals\n")
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *CalcCommand) showHelp() {
	fmt.Printf(`Logistics Cost Estimation CLI - Per-Piece Cost Calculation for Material Sourcing

USAGE:
    logistics -snapshot <file>             # Calculate all pairs from a snapshot file

OPTIONS:
    -snapshot <file>    Path to a JSON snapshot holding materials, suppliers and configs
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, csv (default: text)
    -include-co2        Fold CO2 cost into the per-piece total
    -detailed           Attach storage-location breakdown to each result
    -verbose            Enable verbose output
    -help               Show this help message

SNAPSHOT FILE:
    A versioned JSON document with materials, suppliers, plant locations and
    the per-pair packaging, transport, warehouse, repacking, customs and
    operations configurations, plus global CO2, financing and additional
    cost settings. Produce one with snapshot.Save or any JSON tool.

EXAMPLES:
    # Calculate every configured material-supplier pair
    logistics -snapshot data/project.json -verbose

    # Include CO2 in totals and write CSV results
    logistics -snapshot data/project.json -include-co2 -format csv -output results/

    # Detailed storage breakdown as JSON
    logistics -snapshot data/project.json -detailed -format json
`)
}
