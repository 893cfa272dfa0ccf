package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders a batch result in the specified format.
func Generate(batch *dto.BatchResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(batch, config)
	case "json":
		return generateJSONOutput(batch, config)
	case "csv":
		return generateCSVOutput(batch, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(batch *dto.BatchResult, config Config) error {
	fmt.Printf("📊 Logistics Cost Results\n")
	fmt.Printf("=========================\n\n")
	fmt.Printf("Run ID: %s\n", batch.RunID)
	fmt.Printf("Computed At: %s\n", batch.ComputedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Pairs Calculated: %d\n", len(batch.Results))
	fmt.Printf("Diagnostics: %d\n\n", len(batch.Diagnostics))

	if len(batch.Results) > 0 {
		fmt.Printf("%-12s %-10s %10s %10s %10s %10s %10s %10s %12s %14s\n",
			"Material", "Supplier", "Packaging", "Repacking", "Customs",
			"Transport", "CO2", "Warehouse", "Total/pc", "Total/yr")
		fmt.Printf("%-12s %-10s %10s %10s %10s %10s %10s %10s %12s %14s\n",
			"------------", "----------", "----------", "----------", "----------",
			"----------", "----------", "----------", "------------", "--------------")

		for _, r := range batch.Results {
			fmt.Printf("%-12s %-10s %10s %10s %10s %10s %10s %10s %12s %14s\n",
				r.MaterialID,
				r.SupplierID,
				r.PackagingCostPerPiece.StringFixed(4),
				r.RepackingCostPerPiece.StringFixed(4),
				r.CustomsCostPerPiece.StringFixed(4),
				r.TransportCostPerPiece.StringFixed(4),
				r.CO2CostPerPiece.StringFixed(4),
				r.WarehouseCostPerPiece.StringFixed(4),
				r.TotalCostPerPiece.StringFixed(4),
				r.TotalAnnualCost.StringFixed(2))
		}
		fmt.Println()
	}

	if len(batch.Diagnostics) > 0 {
		fmt.Printf("⚠️  Diagnostics:\n")
		for _, d := range batch.Diagnostics {
			fmt.Printf("  - %s\n", d)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(batch *dto.BatchResult, config Config) error {
	var w io.Writer = os.Stdout
	if config.OutputDir != "" {
		file, err := createOutputFile(config.OutputDir, "cost_results.json")
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if config.Verbose && config.OutputDir != "" {
		fmt.Printf("💾 Results saved to: %s\n", filepath.Join(config.OutputDir, "cost_results.json"))
	}
	return nil
}

// generateCSVOutput creates CSV output with one row per pair
func generateCSVOutput(batch *dto.BatchResult, config Config) error {
	var w io.Writer = os.Stdout
	if config.OutputDir != "" {
		file, err := createOutputFile(config.OutputDir, "cost_results.csv")
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"material_id", "material_desc", "supplier_id", "supplier_name",
		"packaging_cost_per_piece", "repacking_cost_per_piece",
		"customs_cost_per_piece", "transport_cost_per_piece",
		"co2_cost_per_piece", "warehouse_cost_per_piece",
		"interest_cost_per_piece", "additional_cost_per_piece",
		"total_cost_per_piece", "annual_volume", "total_annual_cost",
		"calculation_date",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range batch.Results {
		record := []string{
			string(r.MaterialID),
			r.MaterialDesc,
			string(r.SupplierID),
			r.SupplierName,
			r.PackagingCostPerPiece.String(),
			r.RepackingCostPerPiece.String(),
			r.CustomsCostPerPiece.String(),
			r.TransportCostPerPiece.String(),
			r.CO2CostPerPiece.String(),
			r.WarehouseCostPerPiece.String(),
			r.InterestCostPerPiece.String(),
			r.AdditionalCostPerPiece.String(),
			r.TotalCostPerPiece.String(),
			fmt.Sprintf("%d", r.AnnualVolume),
			r.TotalAnnualCost.String(),
			r.CalculatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	if config.Verbose && config.OutputDir != "" {
		fmt.Printf("💾 Results saved to: %s\n", filepath.Join(config.OutputDir, "cost_results.csv"))
	}
	return nil
}

func createOutputFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}
