package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// Calculator implements the per-category cost functions. Every method is a
// pure computation over in-memory values: it never panics and never aborts;
// degenerate inputs degrade to a zero cost plus a diagnostic.
type Calculator struct{}

// NewCalculator creates a Calculator.
func NewCalculator() Calculator {
	return Calculator{}
}

var twelve = decimal.NewFromInt(12)
var hundred = decimal.NewFromInt(100)

// PackagingCostPerPiece computes the packaging cost per piece:
//
//	(plant + coc + maintenance + scrap) / lifetime volume
//
// Plant cost sizes the standard box and pallet fleet from the packaging
// loop duration and daily demand. CoC cost covers the special packaging
// fleet and tooling, and is zero when no special packaging is needed.
func (Calculator) PackagingCostPerPiece(
	m *entities.Material,
	cfg *entities.PackagingConfig,
	ops *entities.OperationsConfig,
) (decimal.Decimal, []Diagnostic) {
	var diags []Diagnostic
	diag := func(field, msg string) {
		diags = append(diags, Diagnostic{
			MaterialID: m.MaterialNo,
			SupplierID: cfg.SupplierID,
			Component:  ComponentPackaging,
			Field:      field,
			Message:    msg,
		})
	}

	lifetimeVol := m.EffectiveLifetimeVolume()
	if !lifetimeVol.IsPositive() {
		diag("lifetime_volume", "zero or unset, cannot amortize packaging cost")
		return decimal.Zero, diags
	}
	if cfg.FillQtyPerBox <= 0 {
		diag("fill_qty_box", "zero or negative filling quantity per box")
		return decimal.Zero, diags
	}

	loopDays := decimal.NewFromInt(int64(cfg.Loop.TotalDays()))
	fillPerBox := decimal.NewFromInt(cfg.FillQtyPerBox)

	// Standard fleet at the plant: boxes to cover the loop, pallets to
	// carry the boxes.
	boxes := m.DailyDemand.Mul(loopDays).Div(fillPerBox).Ceil()
	pallets := decimal.Zero
	if cfg.BoxesPerLU > 0 {
		pallets = boxes.Div(decimal.NewFromInt(cfg.BoxesPerLU)).Ceil()
	} else if cfg.PricePerPallet.IsPositive() {
		diag("boxes_per_lu", "zero boxes per LU, pallet fleet not sized")
	}
	plantCost := boxes.Mul(cfg.PricePerBox.Add(cfg.AdditionalPackPrice)).
		Add(pallets.Mul(cfg.PricePerPallet))

	cocCost := decimal.Zero
	if cfg.SpecialNeeded {
		// The CoC loop extends the plant loop by the sub-supplier leg.
		cocLoopDays := loopDays
		if ops != nil && ops.SubsupplierUsed {
			cocLoopDays = cocLoopDays.Add(decimal.NewFromInt(int64(ops.SubsupplierBoxDays)))
		}

		trays := decimal.Zero
		if cfg.FillQtyPerTray > 0 {
			trays = m.DailyDemand.Mul(cocLoopDays).Div(decimal.NewFromInt(cfg.FillQtyPerTray)).Ceil()
		} else {
			diag("fill_qty_tray", "zero filling quantity per tray, tray fleet not sized")
		}
		specialPallets := decimal.Zero
		if cfg.TraysPerSpecialPallet > 0 {
			specialPallets = trays.Div(decimal.NewFromInt(cfg.TraysPerSpecialPallet)).Ceil()
		}
		// Tooling is amortized by the outer division over lifetime volume.
		cocCost = trays.Mul(cfg.PricePerTray).
			Add(specialPallets.Mul(cfg.PriceSpecialPallet.Add(cfg.PriceSpecialCover))).
			Add(cfg.ToolingCost)
	}

	total := plantCost.Add(cocCost).Add(cfg.MaintenanceCost).Add(cfg.EmptiesScrapCost).
		Div(lifetimeVol)
	if total.IsNegative() {
		return decimal.Zero, diags
	}
	return total, diags
}
