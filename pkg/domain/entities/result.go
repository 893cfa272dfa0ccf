package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageDetail breaks down the storage locations a pair occupies.
type StorageDetail struct {
	LocalSupply int64 `json:"local_supply"`
	SafetyStock int64 `json:"safety_stock"`
	Total       int64 `json:"total"`
}

// CalculationResult is the per-pair output of a batch run: every component
// cost per piece, the totals, and a timestamp.
type CalculationResult struct {
	MaterialID   MaterialNumber `json:"material_id"`
	MaterialDesc string         `json:"material_desc"`
	SupplierID   VendorID       `json:"supplier_id"`
	SupplierName string         `json:"supplier_name"`

	PackagingCostPerPiece  decimal.Decimal `json:"packaging_cost_per_piece"`
	RepackingCostPerPiece  decimal.Decimal `json:"repacking_cost_per_piece"`
	CustomsCostPerPiece    decimal.Decimal `json:"customs_cost_per_piece"`
	TransportCostPerPiece  decimal.Decimal `json:"transport_cost_per_piece"`
	CO2CostPerPiece        decimal.Decimal `json:"co2_cost_per_piece"`
	WarehouseCostPerPiece  decimal.Decimal `json:"warehouse_cost_per_piece"`
	InterestCostPerPiece   decimal.Decimal `json:"interest_cost_per_piece"`
	AdditionalCostPerPiece decimal.Decimal `json:"additional_cost_per_piece"`

	TotalCostPerPiece decimal.Decimal `json:"total_cost_per_piece"`
	AnnualVolume      int64           `json:"annual_volume"`
	TotalAnnualCost   decimal.Decimal `json:"total_annual_cost"`

	// Populated only when a detailed breakdown is requested
	StorageLocations *StorageDetail `json:"storage_locations,omitempty"`

	CalculatedAt time.Time `json:"calculation_date"`
}

// ComponentSum returns the sum of all component costs per piece, including
// the interest line.
func (r *CalculationResult) ComponentSum() decimal.Decimal {
	return r.PackagingCostPerPiece.
		Add(r.RepackingCostPerPiece).
		Add(r.CustomsCostPerPiece).
		Add(r.TransportCostPerPiece).
		Add(r.CO2CostPerPiece).
		Add(r.WarehouseCostPerPiece).
		Add(r.InterestCostPerPiece).
		Add(r.AdditionalCostPerPiece)
}
