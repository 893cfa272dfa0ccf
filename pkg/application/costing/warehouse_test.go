package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

func TestWarehouseCostPerPiece_StorageAndInterest(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()
	m.AnnualVolume = 12000

	pkg := &entities.PackagingConfig{FillQtyPerBox: 50, BoxesPerLU: 10} // 500 pcs/LU
	cfg := &entities.WarehouseConfig{
		MaterialID:           "MAT-1",
		SupplierID:           "V-1",
		CostPerLocationMonth: decimal.NewFromInt(10),
	}
	ops := &entities.OperationsConfig{LeadTimeDays: 10}
	fin := &entities.FinancingConfig{AnnualRatePct: decimal.NewFromInt(10)}

	cost, interest, detail, diags := calc.WarehouseCostPerPiece(m, cfg, ops, pkg, fin)
	if len(diags) != 0 {
		t.Fatalf("Expected no diagnostics, got %v", diags)
	}

	// Local supply ceil(5*100/500) = 1, safety stock ceil(10*100/500) = 2.
	if detail == nil {
		t.Fatal("Expected storage detail")
	}
	if detail.LocalSupply != 1 || detail.SafetyStock != 2 || detail.Total != 3 {
		t.Errorf("Expected 1+2=3 storage locations, got %+v", detail)
	}

	// 3 locations * 10 €/month * 12 / 12000 = 0.03
	if !cost.Equal(decimal.NewFromFloat(0.03)) {
		t.Errorf("Expected warehouse cost 0.03, got %s", cost)
	}

	// Avg inventory 3*500/2 = 750 pcs at 10 € = 7500 €, 10% interest
	// over 12000 pcs = 0.0625.
	expectedInterest := decimal.NewFromInt(750).
		Mul(m.PiecePrice).
		Mul(decimal.NewFromInt(10)).Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(12000))
	if !interest.Equal(expectedInterest) {
		t.Errorf("Expected interest %s, got %s", expectedInterest, interest)
	}
}

func TestWarehouseCostPerPiece_MissingOperationsConfig(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()
	pkg := &entities.PackagingConfig{FillQtyPerBox: 50, BoxesPerLU: 10}
	cfg := &entities.WarehouseConfig{
		MaterialID:           "MAT-1",
		SupplierID:           "V-1",
		CostPerLocationMonth: decimal.NewFromInt(10),
	}

	_, _, detail, diags := calc.WarehouseCostPerPiece(m, cfg, nil, pkg, nil)
	if detail == nil {
		t.Fatal("Expected storage detail")
	}
	if detail.SafetyStock != 0 {
		t.Errorf("Expected zero safety stock without lead time, got %d", detail.SafetyStock)
	}
	if len(diags) != 1 || diags[0].Field != "lead_time" {
		t.Fatalf("Expected lead_time diagnostic, got %v", diags)
	}
}

func TestWarehouseCostPerPiece_ZeroAnnualVolume(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()
	m.AnnualVolume = 0

	cfg := &entities.WarehouseConfig{MaterialID: "MAT-1", SupplierID: "V-1"}

	cost, interest, detail, diags := calc.WarehouseCostPerPiece(m, cfg, nil, nil, nil)
	if !cost.IsZero() || !interest.IsZero() || detail != nil {
		t.Errorf("Expected zero outputs without annual volume, got %s, %s, %+v", cost, interest, detail)
	}
	if len(diags) != 1 || diags[0].Field != "annual_volume" {
		t.Fatalf("Expected annual_volume diagnostic, got %v", diags)
	}
}

func TestWarehouseCostPerPiece_ZeroFillQuantity(t *testing.T) {
	calc := NewCalculator()
	cfg := &entities.WarehouseConfig{MaterialID: "MAT-1", SupplierID: "V-1"}

	cost, _, _, diags := calc.WarehouseCostPerPiece(testMaterial(), cfg, nil, nil, nil)
	if !cost.IsZero() {
		t.Errorf("Expected zero cost without a filling quantity, got %s", cost)
	}
	if len(diags) != 1 || diags[0].Field != "fill_qty_per_lu" {
		t.Fatalf("Expected fill_qty_per_lu diagnostic, got %v", diags)
	}
}
