package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

func TestAdditionalCostPerPiece_Amortization(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()
	m.AnnualVolume = 120000
	m.LifetimeVolume = 700000

	costs := []entities.AdditionalCost{
		{Name: "Supplier audit", Value: decimal.NewFromInt(7000), OneOff: true},
		{Name: "Line fee", Value: decimal.NewFromInt(1200), OneOff: false},
	}

	cost, diags := calc.AdditionalCostPerPiece(m, costs)
	if len(diags) != 0 {
		t.Fatalf("Expected no diagnostics, got %v", diags)
	}

	// 7000/700000 + 1200/120000 = 0.01 + 0.01 = 0.02
	if !cost.Equal(decimal.NewFromFloat(0.02)) {
		t.Errorf("Expected additional cost 0.02, got %s", cost)
	}
}

func TestAdditionalCostPerPiece_EmptyList(t *testing.T) {
	calc := NewCalculator()

	cost, diags := calc.AdditionalCostPerPiece(testMaterial(), nil)
	if !cost.IsZero() || len(diags) != 0 {
		t.Errorf("Expected silent zero for an empty list, got %s with %v", cost, diags)
	}
}

func TestAdditionalCostPerPiece_MissingAmortizationBase(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()
	m.AnnualVolume = 0
	m.LifetimeVolume = 0

	costs := []entities.AdditionalCost{
		{Name: "Supplier audit", Value: decimal.NewFromInt(7000), OneOff: true},
		{Name: "Line fee", Value: decimal.NewFromInt(1200), OneOff: false},
	}

	cost, diags := calc.AdditionalCostPerPiece(m, costs)
	if !cost.IsZero() {
		t.Errorf("Expected zero cost without amortization bases, got %s", cost)
	}
	if len(diags) != 2 {
		t.Fatalf("Expected two diagnostics, got %v", diags)
	}
}
