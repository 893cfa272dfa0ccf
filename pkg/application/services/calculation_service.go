package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/application/costing"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/application/dto"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/repositories"
)

// BatchOptions controls a calculation run.
type BatchOptions struct {
	// IncludeCO2 folds the CO2 cost into the per-piece total.
	IncludeCO2 bool
	// DetailedBreakdown attaches sub-results such as storage-location
	// counts to each result record.
	DetailedBreakdown bool
}

// CalculationService runs the per-pair cost calculation over every
// material-supplier combination the repository can resolve. Pairs are
// independent; component failures degrade to zero cost with a diagnostic
// and never abort the batch. Only repository failures do.
type CalculationService struct {
	calc costing.Calculator
}

// NewCalculationService creates a CalculationService.
func NewCalculationService() *CalculationService {
	return &CalculationService{calc: costing.NewCalculator()}
}

// CalculateAll resolves every material-supplier pair, computes each
// calculation-ready one, and returns the batch result with accumulated
// diagnostics. Pairs with no mandatory config at all are not pairs and are
// skipped silently; partially configured pairs are reported.
func (s *CalculationService) CalculateAll(
	ctx context.Context,
	materialRepo repositories.MaterialRepository,
	supplierRepo repositories.SupplierRepository,
	configRepo repositories.ConfigRepository,
	opts BatchOptions,
) (*dto.BatchResult, error) {
	materials, err := materialRepo.GetAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	suppliers, err := supplierRepo.GetAllSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	batch := &dto.BatchResult{
		RunID:      uuid.NewString(),
		ComputedAt: time.Now(),
		Results:    make([]entities.CalculationResult, 0, len(materials)),
	}

	for _, m := range materials {
		for _, sup := range suppliers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			cfgs, err := configRepo.FindPairConfigs(m.MaterialNo, sup.VendorID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve configs for %s/%s: %w",
					m.MaterialNo, sup.VendorID, err)
			}

			if !cfgs.Ready() {
				if d, partial := missingConfigDiagnostic(m, sup, cfgs); partial {
					batch.Diagnostics = append(batch.Diagnostics, d)
				}
				continue
			}

			result, diags := s.CalculatePair(m, sup, cfgs, opts)
			batch.Results = append(batch.Results, *result)
			batch.Diagnostics = append(batch.Diagnostics, diags...)
		}
	}

	return batch, nil
}

// CalculatePair computes one calculation-ready pair. Component functions
// are invoked in a fixed order; each contributes its cost and any
// diagnostics, and a degraded component contributes zero.
func (s *CalculationService) CalculatePair(
	m *entities.Material,
	sup *entities.Supplier,
	cfgs *repositories.PairConfigs,
	opts BatchOptions,
) (*entities.CalculationResult, []costing.Diagnostic) {
	var diags []costing.Diagnostic
	collect := func(d []costing.Diagnostic) { diags = append(diags, d...) }

	packaging, d := s.calc.PackagingCostPerPiece(m, cfgs.Packaging, cfgs.Operations)
	collect(d)

	repacking, d := s.calc.RepackingCostPerPiece(m, cfgs.Repacking, cfgs.Packaging)
	collect(d)

	customs, d := s.calc.CustomsCostPerPiece(m, cfgs.Customs)
	collect(d)

	transport, co2Cost, d := s.calc.TransportCostPerPiece(
		m, cfgs.Transport, cfgs.Packaging, cfgs.Operations, cfgs.Location,
		cfgs.CO2, opts.IncludeCO2)
	collect(d)

	warehouse, interest, storage, d := s.calc.WarehouseCostPerPiece(
		m, cfgs.Warehouse, cfgs.Operations, cfgs.Packaging, cfgs.Financing)
	collect(d)

	additional, d := s.calc.AdditionalCostPerPiece(m, cfgs.AdditionalCosts)
	collect(d)

	result := &entities.CalculationResult{
		MaterialID:             m.MaterialNo,
		MaterialDesc:           m.Description,
		SupplierID:             sup.VendorID,
		SupplierName:           sup.Name,
		PackagingCostPerPiece:  packaging,
		RepackingCostPerPiece:  repacking,
		CustomsCostPerPiece:    customs,
		TransportCostPerPiece:  transport,
		CO2CostPerPiece:        co2Cost,
		WarehouseCostPerPiece:  warehouse,
		InterestCostPerPiece:   interest,
		AdditionalCostPerPiece: additional,
		AnnualVolume:           m.AnnualVolume,
		CalculatedAt:           time.Now(),
	}
	result.TotalCostPerPiece = result.ComponentSum()
	result.TotalAnnualCost = result.TotalCostPerPiece.Mul(decimal.NewFromInt(m.AnnualVolume))
	if opts.DetailedBreakdown {
		result.StorageLocations = storage
	}
	return result, diags
}

// IsReady reports whether the pair holds all three mandatory configs
// (packaging, transport, warehouse).
func (s *CalculationService) IsReady(
	configRepo repositories.ConfigRepository,
	materialNo entities.MaterialNumber,
	vendorID entities.VendorID,
) (bool, error) {
	cfgs, err := configRepo.FindPairConfigs(materialNo, vendorID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve configs for %s/%s: %w", materialNo, vendorID, err)
	}
	return cfgs.Ready(), nil
}

// missingConfigDiagnostic reports which mandatory configs a partially
// configured pair lacks. A pair with no mandatory config at all is not
// considered configured and yields no diagnostic.
func missingConfigDiagnostic(
	m *entities.Material,
	sup *entities.Supplier,
	cfgs *repositories.PairConfigs,
) (costing.Diagnostic, bool) {
	present := 0
	var missing []string
	if cfgs.Packaging != nil {
		present++
	} else {
		missing = append(missing, "packaging")
	}
	if cfgs.Transport != nil {
		present++
	} else {
		missing = append(missing, "transport")
	}
	if cfgs.Warehouse != nil {
		present++
	} else {
		missing = append(missing, "warehouse")
	}
	if present == 0 {
		return costing.Diagnostic{}, false
	}
	return costing.Diagnostic{
		MaterialID: m.MaterialNo,
		SupplierID: sup.VendorID,
		Component:  costing.ComponentBatch,
		Field:      "configuration",
		Message:    "pair skipped, missing mandatory config(s): " + strings.Join(missing, ", "),
	}, true
}
