package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// RepackingCostPerPiece computes the repacking cost per piece as the higher
// of two rate bases: the hourly labor rate (one load unit handled per labor
// hour) and the contracted flat rate per load unit. Whichever constraint
// binds first sets the cost. Absence of a repacking config means zero cost.
func (Calculator) RepackingCostPerPiece(
	m *entities.Material,
	cfg *entities.RepackingConfig,
	pkg *entities.PackagingConfig,
) (decimal.Decimal, []Diagnostic) {
	if cfg == nil {
		return decimal.Zero, nil
	}

	var diags []Diagnostic
	if pkg == nil || pkg.FillQtyPerLU() <= 0 {
		diags = append(diags, Diagnostic{
			MaterialID: m.MaterialNo,
			SupplierID: cfg.SupplierID,
			Component:  ComponentRepacking,
			Field:      "fill_qty_per_lu",
			Message:    "zero filling quantity per LU, cannot derive per-piece rate",
		})
		return decimal.Zero, diags
	}

	fill := decimal.NewFromInt(pkg.FillQtyPerLU())
	hourlyBasis := cfg.CostPerHour.Div(fill)
	perLUBasis := cfg.CostPerLU.Div(fill)

	cost := perLUBasis
	if hourlyBasis.GreaterThan(cost) {
		cost = hourlyBasis
	}
	if cost.IsNegative() {
		return decimal.Zero, diags
	}
	return cost, diags
}
