package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// localSupplyCoverageDays is the short coverage window the local-supply
// storage locations are sized for.
const localSupplyCoverageDays = 5

// WarehouseCostPerPiece computes the storage cost per piece and, when a
// financing config is present, the inventory interest per piece as a
// distinct line.
//
// Safety-stock locations cover lead-time demand; local-supply locations
// cover a fixed 5-working-day window. Both are expressed in storage
// locations of one load unit each:
//
//	cost = total_locations x monthly_cost x 12 / annual_volume
//
// Interest is charged on the average inventory value, taking storage
// locations as half full on average.
func (Calculator) WarehouseCostPerPiece(
	m *entities.Material,
	cfg *entities.WarehouseConfig,
	ops *entities.OperationsConfig,
	pkg *entities.PackagingConfig,
	fin *entities.FinancingConfig,
) (decimal.Decimal, decimal.Decimal, *entities.StorageDetail, []Diagnostic) {
	var diags []Diagnostic
	diag := func(field, msg string) {
		diags = append(diags, Diagnostic{
			MaterialID: m.MaterialNo,
			SupplierID: cfg.SupplierID,
			Component:  ComponentWarehouse,
			Field:      field,
			Message:    msg,
		})
	}

	if m.AnnualVolume <= 0 {
		diag("annual_volume", "zero or unset, cannot compute per-piece warehouse cost")
		return decimal.Zero, decimal.Zero, nil, diags
	}
	if pkg == nil || pkg.FillQtyPerLU() <= 0 {
		diag("fill_qty_per_lu", "zero filling quantity per LU, cannot size storage locations")
		return decimal.Zero, decimal.Zero, nil, diags
	}

	leadTimeDays := 0
	if ops != nil {
		leadTimeDays = ops.LeadTimeDays
	} else {
		diag("lead_time", "operations config absent, safety stock assumes zero lead time")
	}

	fill := decimal.NewFromInt(pkg.FillQtyPerLU())
	localLocations := m.DailyDemand.
		Mul(decimal.NewFromInt(localSupplyCoverageDays)).
		Div(fill).Ceil().IntPart()
	safetyLocations := m.DailyDemand.
		Mul(decimal.NewFromInt(int64(leadTimeDays))).
		Div(fill).Ceil().IntPart()
	totalLocations := localLocations + safetyLocations

	annualVol := decimal.NewFromInt(m.AnnualVolume)
	cost := decimal.NewFromInt(totalLocations).
		Mul(cfg.CostPerLocationMonth).
		Mul(twelve).
		Div(annualVol)

	interest := decimal.Zero
	if fin != nil && fin.AnnualRatePct.IsPositive() {
		if m.PiecePrice.IsPositive() {
			// Locations are half full on average.
			avgInventoryPieces := decimal.NewFromInt(totalLocations).Mul(fill).
				Div(decimal.NewFromInt(2))
			avgInventoryValue := avgInventoryPieces.Mul(m.PiecePrice)
			interest = avgInventoryValue.Mul(fin.AnnualRatePct).Div(hundred).Div(annualVol)
		} else {
			diag("piece_price", "non-positive piece price, inventory interest not computable")
		}
	}

	detail := &entities.StorageDetail{
		LocalSupply: localLocations,
		SafetyStock: safetyLocations,
		Total:       totalLocations,
	}
	return cost, interest, detail, diags
}
