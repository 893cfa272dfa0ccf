package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

func testMaterial() *entities.Material {
	return &entities.Material{
		MaterialNo:     "MAT-1",
		Description:    "Test Part",
		WeightPerPiece: decimal.NewFromFloat(0.5),
		PiecePrice:     decimal.NewFromInt(10),
		DailyDemand:    decimal.NewFromInt(100),
		AnnualVolume:   100000,
		LifetimeVolume: 1000,
	}
}

func TestPackagingCostPerPiece_StandardPackaging(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()

	// 100 pcs/day over a 20 day loop at 50 pcs/box needs 40 boxes,
	// 10 boxes/LU needs 4 pallets.
	cfg := &entities.PackagingConfig{
		MaterialID:      "MAT-1",
		SupplierID:      "V-1",
		PricePerBox:     decimal.NewFromInt(10),
		FillQtyPerBox:   50,
		BoxesPerLU:      10,
		PricePerPallet:  decimal.NewFromInt(5),
		MaintenanceCost: decimal.NewFromInt(80),
		Loop: entities.PackagingLoop{
			PlantStock:        8,
			TransitToSupplier: 2,
			SupplierStock:     8,
			TransitToPlant:    2,
		},
	}

	cost, diags := calc.PackagingCostPerPiece(m, cfg, nil)
	if len(diags) != 0 {
		t.Fatalf("Expected no diagnostics, got %v", diags)
	}

	// (40*10 + 4*5 + 80) / 1000 = 0.5
	expected := decimal.NewFromFloat(0.5)
	if !cost.Equal(expected) {
		t.Errorf("Expected packaging cost %s, got %s", expected, cost)
	}
}

func TestPackagingCostPerPiece_SpecialPackaging(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()

	cfg := &entities.PackagingConfig{
		MaterialID:    "MAT-1",
		SupplierID:    "V-1",
		PricePerBox:   decimal.NewFromInt(10),
		FillQtyPerBox: 50,
		BoxesPerLU:    10,
		Loop: entities.PackagingLoop{
			PlantStock:        10,
			TransitToSupplier: 2,
			SupplierStock:     6,
			TransitToPlant:    2,
		},
		SpecialNeeded:         true,
		SpecialType:           entities.SpecialInlayTray,
		FillQtyPerTray:        20,
		TraysPerSpecialPallet: 25,
		PricePerTray:          decimal.NewFromInt(2),
		PriceSpecialPallet:    decimal.NewFromInt(10),
		PriceSpecialCover:     decimal.NewFromInt(2),
		ToolingCost:           decimal.NewFromInt(690),
	}
	ops := &entities.OperationsConfig{
		MaterialID:         "MAT-1",
		SupplierID:         "V-1",
		SubsupplierUsed:    true,
		SubsupplierBoxDays: 5,
	}

	cost, diags := calc.PackagingCostPerPiece(m, cfg, ops)
	if len(diags) != 0 {
		t.Fatalf("Expected no diagnostics, got %v", diags)
	}

	// Plant fleet: 40 boxes * 10 + 4 pallets * 0 = 400.
	// CoC loop runs 25 days: 125 trays * 2 + 5 special pallets * 12 + 690
	// tooling = 1000.
	// (400 + 1000) / 1000 = 1.4
	expected := decimal.NewFromFloat(1.4)
	if !cost.Equal(expected) {
		t.Errorf("Expected packaging cost %s, got %s", expected, cost)
	}
}

func TestPackagingCostPerPiece_ZeroLifetimeVolume(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()
	m.AnnualVolume = 0
	m.LifetimeVolume = 0

	cfg := &entities.PackagingConfig{
		MaterialID:    "MAT-1",
		SupplierID:    "V-1",
		FillQtyPerBox: 50,
	}

	cost, diags := calc.PackagingCostPerPiece(m, cfg, nil)
	if !cost.IsZero() {
		t.Errorf("Expected zero cost without amortization base, got %s", cost)
	}
	if len(diags) != 1 {
		t.Fatalf("Expected one diagnostic, got %d", len(diags))
	}
	if diags[0].Field != "lifetime_volume" {
		t.Errorf("Expected lifetime_volume diagnostic, got %s", diags[0].Field)
	}
}

func TestPackagingCostPerPiece_ZeroFillQuantity(t *testing.T) {
	calc := NewCalculator()
	m := testMaterial()

	cfg := &entities.PackagingConfig{
		MaterialID: "MAT-1",
		SupplierID: "V-1",
	}

	cost, diags := calc.PackagingCostPerPiece(m, cfg, nil)
	if !cost.IsZero() {
		t.Errorf("Expected zero cost with zero box fill, got %s", cost)
	}
	if len(diags) != 1 || diags[0].Field != "fill_qty_box" {
		t.Fatalf("Expected fill_qty_box diagnostic, got %v", diags)
	}
}
