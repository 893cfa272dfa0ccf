package entities

import "github.com/shopspring/decimal"

// RepackingConfig holds the repacking rates for a material-supplier pair.
// Absence of a config means no repacking takes place.
type RepackingConfig struct {
	MaterialID  MaterialNumber  `json:"material_id"`
	SupplierID  VendorID        `json:"supplier_id"`
	CostPerHour decimal.Decimal `json:"rep_cost_hr"`
	GoodsType   string          `json:"goods_type"`
	CostPerLU   decimal.Decimal `json:"rep_cost_lu"`
}
