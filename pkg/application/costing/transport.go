package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// TransportCostPerPiece computes the transport cost per piece and, when a
// CO2 config is supplied and inclusion is requested, the CO2 cost per piece
// as a paired output so distance-dependent terms are computed once.
//
// Base cost is cost-per-LU over the filling quantity. Sea transport uses
// the overseas packaging variant of the filling quantity; FCA and FOB
// incoterms add the bonded-warehouse cost over the standard filling
// quantity.
func (c Calculator) TransportCostPerPiece(
	m *entities.Material,
	cfg *entities.TransportConfig,
	pkg *entities.PackagingConfig,
	ops *entities.OperationsConfig,
	loc *entities.Location,
	co2 *entities.CO2Config,
	includeCO2 bool,
) (decimal.Decimal, decimal.Decimal, []Diagnostic) {
	var diags []Diagnostic
	diag := func(field, msg string) {
		diags = append(diags, Diagnostic{
			MaterialID: m.MaterialNo,
			SupplierID: cfg.SupplierID,
			Component:  ComponentTransport,
			Field:      field,
			Message:    msg,
		})
	}

	co2Cost := decimal.Zero
	if includeCO2 && co2 != nil {
		var co2Diags []Diagnostic
		co2Cost, co2Diags = c.CO2CostPerPiece(m, cfg, loc, co2)
		diags = append(diags, co2Diags...)
	}

	standardFill := int64(0)
	if pkg != nil {
		standardFill = pkg.FillQtyPerLU()
	}
	fillUsed := standardFill
	if cfg.Mode1 == entities.Sea && pkg != nil {
		fillUsed = pkg.LUCapacityOverseas
	}
	if fillUsed <= 0 {
		diag("fill_qty_per_lu", "zero filling quantity per LU, transport cost not computable")
		return decimal.Zero, co2Cost, diags
	}

	cost := cfg.CostPerLU.Div(decimal.NewFromInt(fillUsed))

	if ops != nil && ops.BondedWarehouseApplies() && cfg.BondedCostPerLU.IsPositive() {
		if standardFill > 0 {
			cost = cost.Add(cfg.BondedCostPerLU.Div(decimal.NewFromInt(standardFill)))
		} else {
			diag("fill_qty_per_lu", "zero standard filling quantity, bonded warehouse term skipped")
		}
	}

	if cost.IsNegative() {
		cost = decimal.Zero
	}
	return cost, co2Cost, diags
}
