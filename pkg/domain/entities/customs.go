package entities

import "github.com/shopspring/decimal"

// CustomsConfig holds duty and tariff rates for a material-supplier pair.
// When preference usage is granted the duty is waived entirely; a non-zero
// tariff rate always applies.
type CustomsConfig struct {
	MaterialID      MaterialNumber  `json:"material_id"`
	SupplierID      VendorID        `json:"supplier_id"`
	PreferenceUsage bool            `json:"pref_usage"`
	HSCode          string          `json:"hs_code"`
	DutyRatePct     decimal.Decimal `json:"duty_rate"`
	TariffRatePct   decimal.Decimal `json:"tariff_rate"`
}
