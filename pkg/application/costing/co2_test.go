package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

func TestCO2CostPerPiece_RoadDefaults(t *testing.T) {
	calc := NewCalculator()
	cfg := &entities.TransportConfig{
		MaterialID: "MAT-1",
		SupplierID: "V-1",
		Mode1:      entities.Road,
		DistanceKm: decimal.NewFromInt(1000),
	}
	co2 := &entities.CO2Config{CostPerTon: decimal.NewFromInt(100)}

	cost, diags := calc.CO2CostPerPiece(testMaterial(), cfg, nil, co2)
	if len(diags) != 0 {
		t.Fatalf("Expected no diagnostics, got %v", diags)
	}

	// 0.5 * 1000 * 0.04415 / 1000 = 0.022075 tons at 100 €/ton
	if !cost.Equal(decimal.NewFromFloat(2.2075)) {
		t.Errorf("Expected CO2 cost 2.2075, got %s", cost)
	}
}

func TestCO2CostPerPiece_DistanceFallsBackToLocation(t *testing.T) {
	calc := NewCalculator()
	cfg := &entities.TransportConfig{
		MaterialID: "MAT-1",
		SupplierID: "V-1",
		Mode1:      entities.Road,
	}
	loc := &entities.Location{Plant: "Regensburg", DistanceKm: decimal.NewFromInt(1000)}
	co2 := &entities.CO2Config{CostPerTon: decimal.NewFromInt(100)}

	cost, _ := calc.CO2CostPerPiece(testMaterial(), cfg, loc, co2)
	if !cost.Equal(decimal.NewFromFloat(2.2075)) {
		t.Errorf("Expected location distance to drive the cost, got %s", cost)
	}
}

func TestCO2CostPerPiece_ZeroInputsYieldZero(t *testing.T) {
	calc := NewCalculator()
	co2 := &entities.CO2Config{CostPerTon: decimal.NewFromInt(100)}

	noWeight := testMaterial()
	noWeight.WeightPerPiece = decimal.Zero
	cfg := &entities.TransportConfig{Mode1: entities.Road, DistanceKm: decimal.NewFromInt(1000)}
	cost, diags := calc.CO2CostPerPiece(noWeight, cfg, nil, co2)
	if !cost.IsZero() || len(diags) != 0 {
		t.Errorf("Expected silent zero for zero weight, got %s with %v", cost, diags)
	}

	noDistance := &entities.TransportConfig{Mode1: entities.Road}
	cost, diags = calc.CO2CostPerPiece(testMaterial(), noDistance, nil, co2)
	if !cost.IsZero() || len(diags) != 0 {
		t.Errorf("Expected silent zero for zero distance, got %s with %v", cost, diags)
	}

	cost, diags = calc.CO2CostPerPiece(testMaterial(), cfg, nil, nil)
	if !cost.IsZero() || len(diags) != 0 {
		t.Errorf("Expected silent zero without carbon price, got %s with %v", cost, diags)
	}
}
