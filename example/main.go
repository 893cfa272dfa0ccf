package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/application/services"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repository and load a sample sourcing scenario
	repo := memory.NewRepository()
	setupBracketScenario(repo)

	// Create calculation service
	calcService := services.NewCalculationService()

	fmt.Println("🚚 Running logistics cost estimation for steel bracket sourcing...")
	fmt.Println()

	// Execute batch calculation
	batch, err := calcService.CalculateAll(ctx, repo, repo, repo, services.BatchOptions{
		IncludeCO2:        true,
		DetailedBreakdown: true,
	})
	if err != nil {
		fmt.Printf("❌ Calculation failed: %v\n", err)
		return
	}

	// Display results
	fmt.Println("📊 Cost Results:")
	fmt.Printf("  Run ID: %s\n", batch.RunID)
	fmt.Printf("  Pairs Calculated: %d\n", len(batch.Results))
	fmt.Println()

	for _, r := range batch.Results {
		fmt.Printf("📦 %s (%s) from %s (%s)\n", r.MaterialID, r.MaterialDesc, r.SupplierID, r.SupplierName)
		fmt.Printf("  Packaging:  %s €/pc\n", r.PackagingCostPerPiece.StringFixed(4))
		fmt.Printf("  Repacking:  %s €/pc\n", r.RepackingCostPerPiece.StringFixed(4))
		fmt.Printf("  Customs:    %s €/pc\n", r.CustomsCostPerPiece.StringFixed(4))
		fmt.Printf("  Transport:  %s €/pc\n", r.TransportCostPerPiece.StringFixed(4))
		fmt.Printf("  CO2:        %s €/pc\n", r.CO2CostPerPiece.StringFixed(4))
		fmt.Printf("  Warehouse:  %s €/pc\n", r.WarehouseCostPerPiece.StringFixed(4))
		fmt.Printf("  Interest:   %s €/pc\n", r.InterestCostPerPiece.StringFixed(4))
		fmt.Printf("  Additional: %s €/pc\n", r.AdditionalCostPerPiece.StringFixed(4))
		fmt.Printf("  Total:      %s €/pc (%s €/yr)\n",
			r.TotalCostPerPiece.StringFixed(4), r.TotalAnnualCost.StringFixed(2))
		if r.StorageLocations != nil {
			fmt.Printf("  Storage:    %d local supply + %d safety stock locations\n",
				r.StorageLocations.LocalSupply, r.StorageLocations.SafetyStock)
		}
		fmt.Println()
	}

	// Show diagnostics
	if len(batch.Diagnostics) > 0 {
		fmt.Println("⚠️  Diagnostics:")
		for _, d := range batch.Diagnostics {
			fmt.Printf("  - %s\n", d)
		}
		fmt.Println()
	}

	fmt.Println("✅ Cost estimation complete!")
}

func setupBracketScenario(repo *memory.Repository) {
	// Material under sourcing decision
	material, _ := entities.NewMaterial(entities.Material{
		MaterialNo:         "MAT-1001",
		Description:        "Steel Bracket",
		ProjectName:        "Platform X",
		WeightPerPiece:     decimal.NewFromFloat(0.5),
		PiecePrice:         decimal.NewFromFloat(10.00),
		DailyDemand:        decimal.NewFromInt(400),
		AnnualVolume:       100000,
		LifetimeVolume:     700000,
		LifetimeYears:      decimal.NewFromInt(7),
		WorkingDaysPerYear: 250,
	})
	repo.SaveMaterial(material)

	// Candidate suppliers
	domestic, _ := entities.NewSupplier(entities.Supplier{
		VendorID:            "V-100",
		Name:                "Stahlwerk Nord",
		Country:             "DE",
		City:                "Hamburg",
		DeliveryPerformance: decimal.NewFromInt(98),
		DeliveriesPerMonth:  8,
	})
	repo.SaveSupplier(domestic)

	overseas, _ := entities.NewSupplier(entities.Supplier{
		VendorID:            "V-200",
		Name:                "Pacific Metal Co",
		Country:             "CN",
		City:                "Shenzhen",
		DeliveryPerformance: decimal.NewFromInt(92),
		DeliveriesPerMonth:  2,
	})
	repo.SaveSupplier(overseas)

	// Receiving plant
	plant, _ := entities.NewLocation(entities.Location{
		Plant:      "Regensburg",
		Country:    "DE",
		DistanceKm: decimal.NewFromInt(650),
	})
	repo.SaveLocation(plant)

	// Global settings
	repo.SetCO2Config(&entities.CO2Config{CostPerTon: decimal.NewFromInt(85)})
	repo.SetFinancingConfig(&entities.FinancingConfig{AnnualRatePct: decimal.NewFromInt(8)})

	// Domestic supplier: road transport, returnable packaging, no customs
	repo.SavePackagingConfig(&entities.PackagingConfig{
		MaterialID:     "MAT-1001",
		SupplierID:     "V-100",
		PricePerBox:    decimal.NewFromFloat(12.50),
		FillQtyPerBox:  50,
		BoxesPerLU:     24,
		PricePerPallet: decimal.NewFromFloat(9.00),
		Loop: entities.PackagingLoop{
			PlantGoodsReceipt: 1,
			PlantStock:        5,
			PlantProduction:   2,
			PlantDispatch:     1,
			TransitToSupplier: 2,
			SupplierReceipt:   1,
			SupplierStock:     5,
			SupplierDispatch:  1,
			TransitToPlant:    2,
		},
	})
	repo.SaveTransportConfig(&entities.TransportConfig{
		MaterialID: "MAT-1001",
		SupplierID: "V-100",
		Mode1:      entities.Road,
		CostPerLU:  decimal.NewFromFloat(45.00),
		DistanceKm: decimal.NewFromInt(650),
	})
	repo.SaveWarehouseConfig(&entities.WarehouseConfig{
		MaterialID:           "MAT-1001",
		SupplierID:           "V-100",
		CostPerLocationMonth: decimal.NewFromFloat(7.50),
	})
	repo.SaveOperationsConfig(&entities.OperationsConfig{
		MaterialID:   "MAT-1001",
		SupplierID:   "V-100",
		IncotermCode: entities.IncotermDDP,
		LeadTimeDays: 10,
		Currency:     "EUR",
	})

	// Overseas supplier: sea transport, bonded warehouse, customs, repacking
	repo.SavePackagingConfig(&entities.PackagingConfig{
		MaterialID:         "MAT-1001",
		SupplierID:         "V-200",
		PricePerBox:        decimal.NewFromFloat(3.20),
		FillQtyPerBox:      50,
		BoxesPerLU:         24,
		LUCapacityOverseas: 1800,
		Loop: entities.PackagingLoop{
			PlantGoodsReceipt: 1,
			PlantStock:        10,
			PlantProduction:   2,
			TransitToSupplier: 30,
			SupplierReceipt:   1,
			SupplierStock:     10,
			SupplierDispatch:  1,
			TransitToPlant:    30,
		},
	})
	repo.SaveTransportConfig(&entities.TransportConfig{
		MaterialID:      "MAT-1001",
		SupplierID:      "V-200",
		Mode1:           entities.Sea,
		CostPerLU:       decimal.NewFromFloat(120.00),
		BondedCostPerLU: decimal.NewFromFloat(15.00),
		DistanceKm:      decimal.NewFromInt(19000),
	})
	repo.SaveWarehouseConfig(&entities.WarehouseConfig{
		MaterialID:           "MAT-1001",
		SupplierID:           "V-200",
		CostPerLocationMonth: decimal.NewFromFloat(7.50),
	})
	repo.SaveOperationsConfig(&entities.OperationsConfig{
		MaterialID:   "MAT-1001",
		SupplierID:   "V-200",
		IncotermCode: entities.IncotermFOB,
		LeadTimeDays: 45,
		Currency:     "EUR",
	})
	repo.SaveRepackingConfig(&entities.RepackingConfig{
		MaterialID:  "MAT-1001",
		SupplierID:  "V-200",
		CostPerHour: decimal.NewFromFloat(38.00),
		GoodsType:   "standard",
		CostPerLU:   decimal.NewFromFloat(2.50),
	})
	repo.SaveCustomsConfig(&entities.CustomsConfig{
		MaterialID:    "MAT-1001",
		SupplierID:    "V-200",
		HSCode:        "7326 90 98",
		DutyRatePct:   decimal.NewFromFloat(2.5),
		TariffRatePct: decimal.Zero,
	})

	// Project-wide extra costs
	repo.AddAdditionalCost(entities.AdditionalCost{
		Name:   "Supplier audit",
		Value:  decimal.NewFromInt(14000),
		OneOff: true,
	})
}
