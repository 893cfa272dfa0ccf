package entities

import "github.com/shopspring/decimal"

// Special packaging types supported by the CoC strategy
const (
	SpecialInlayTrayPalletSize = "Inlay tray pallet size"
	SpecialInlayTray           = "Inlay tray"
	SpecialStandaloneTray      = "Standalone tray"
)

// PackagingLoop holds the day count of each stage a returnable container
// passes through on its way from plant to supplier and back. The sum of all
// stages is the loop duration; multiplied by daily demand it sizes the
// container fleet.
type PackagingLoop struct {
	PlantGoodsReceipt     int `json:"plant_goods_receipt"`
	PlantStock            int `json:"plant_stock"`
	PlantProduction       int `json:"plant_production"`
	PlantEmptiesReturn    int `json:"plant_empties_return"`
	Cleaning              int `json:"cleaning"`
	PlantDispatch         int `json:"plant_dispatch"`
	TransitToSupplier     int `json:"transit_to_supplier"`
	SupplierReceipt       int `json:"supplier_receipt"`
	SupplierStock         int `json:"supplier_stock"`
	SupplierProduction    int `json:"supplier_production"`
	SupplierStockFinished int `json:"supplier_stock_finished"`
	SupplierDispatch      int `json:"supplier_dispatch"`
	TransitToPlant        int `json:"transit_to_plant"`
}

// TotalDays returns the loop duration in days.
func (l PackagingLoop) TotalDays() int {
	return l.PlantGoodsReceipt + l.PlantStock + l.PlantProduction +
		l.PlantEmptiesReturn + l.Cleaning + l.PlantDispatch +
		l.TransitToSupplier + l.SupplierReceipt + l.SupplierStock +
		l.SupplierProduction + l.SupplierStockFinished + l.SupplierDispatch +
		l.TransitToPlant
}

// PackagingConfig describes the packaging setup agreed for a
// material-supplier pair: standard (plant-owned) boxes and pallets plus an
// optional special (CoC) packaging stage.
type PackagingConfig struct {
	MaterialID MaterialNumber `json:"material_id"`
	SupplierID VendorID       `json:"supplier_id"`

	MaintenanceCost  decimal.Decimal `json:"pack_maint"`    // lifetime maintenance amount
	EmptiesScrapCost decimal.Decimal `json:"empties_scrap"` // lifetime empties scrapping amount

	// Standard packaging
	BoxType             string          `json:"box_type"`
	PricePerBox         decimal.Decimal `json:"price_per_box"`
	AdditionalPackPrice decimal.Decimal `json:"add_pack_price"` // inlays, bags etc. per box
	FillQtyPerBox       int64           `json:"fill_qty_box"`
	BoxesPerLU          int64           `json:"boxes_per_lu"`
	PalletType          string          `json:"pallet_type"`
	PricePerPallet      decimal.Decimal `json:"price_per_pallet"`
	LUCapacityOverseas  int64           `json:"lu_capacity_overseas"` // pieces per LU in overseas packaging

	Loop PackagingLoop `json:"loop_data"`

	// Special (CoC) packaging
	SpecialNeeded         bool            `json:"sp_needed"`
	SpecialType           string          `json:"sp_type"`
	FillQtyPerTray        int64           `json:"fill_qty_tray"`
	ToolingCost           decimal.Decimal `json:"tooling_cost"`
	TraysPerSpecialPallet int64           `json:"trays_per_sp_pal"`
	SpecialPalletsPerLU   int64           `json:"sp_pallets_per_lu"`
	PricePerTray          decimal.Decimal `json:"price_per_tray"`
	PriceSpecialPallet    decimal.Decimal `json:"price_sp_pallet"`
	PriceSpecialCover     decimal.Decimal `json:"price_sp_cover"`
}

// FillQtyPerLU returns the standard filling quantity in pieces per load unit.
func (c *PackagingConfig) FillQtyPerLU() int64 {
	return c.FillQtyPerBox * c.BoxesPerLU
}
