package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// CO2CostPerPiece computes the carbon cost of moving one piece:
//
//	emissions_tons = weight_kg x distance_km x energy x conversion / 1000
//	cost = emissions_tons x cost_per_ton
//
// Energy and conversion factors fall back to documented mode defaults, so
// the cost is computable whenever weight and distance are known; if either
// is zero the cost is zero.
func (Calculator) CO2CostPerPiece(
	m *entities.Material,
	cfg *entities.TransportConfig,
	loc *entities.Location,
	co2 *entities.CO2Config,
) (decimal.Decimal, []Diagnostic) {
	if co2 == nil {
		return decimal.Zero, nil
	}

	distance := cfg.DistanceKm
	if distance.IsZero() && loc != nil {
		distance = loc.DistanceKm
	}
	if !m.WeightPerPiece.IsPositive() || !distance.IsPositive() {
		return decimal.Zero, nil
	}

	emissionsTons := m.WeightPerPiece.
		Mul(distance).
		Mul(cfg.EnergyFactor()).
		Mul(cfg.ConversionFactor()).
		Div(decimal.NewFromInt(1000))

	cost := emissionsTons.Mul(co2.CostPerTon)
	if cost.IsNegative() {
		return decimal.Zero, nil
	}
	return cost, nil
}
