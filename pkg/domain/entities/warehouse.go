package entities

import "github.com/shopspring/decimal"

// WarehouseConfig holds the storage rate for a material-supplier pair.
type WarehouseConfig struct {
	MaterialID           MaterialNumber  `json:"material_id"`
	SupplierID           VendorID        `json:"supplier_id"`
	CostPerLocationMonth decimal.Decimal `json:"cost_per_loc"`
}
