package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// CustomsCostPerPiece computes duty plus tariff on the material piece
// price. Preference usage waives the duty; a non-zero tariff rate always
// applies. Returns zero when no customs config exists or the piece price is
// not positive.
func (Calculator) CustomsCostPerPiece(
	m *entities.Material,
	cfg *entities.CustomsConfig,
) (decimal.Decimal, []Diagnostic) {
	if cfg == nil {
		return decimal.Zero, nil
	}

	var diags []Diagnostic
	if !m.PiecePrice.IsPositive() {
		diags = append(diags, Diagnostic{
			MaterialID: m.MaterialNo,
			SupplierID: cfg.SupplierID,
			Component:  ComponentCustoms,
			Field:      "piece_price",
			Message:    "non-positive piece price, customs cost not computable",
		})
		return decimal.Zero, diags
	}

	dutyCost := decimal.Zero
	if !cfg.PreferenceUsage {
		dutyCost = m.PiecePrice.Mul(cfg.DutyRatePct).Div(hundred)
	}
	tariffCost := m.PiecePrice.Mul(cfg.TariffRatePct).Div(hundred)

	total := dutyCost.Add(tariffCost)
	if total.IsNegative() {
		return decimal.Zero, diags
	}
	return total, diags
}
