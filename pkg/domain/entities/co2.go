package entities

import "github.com/shopspring/decimal"

// CO2Config holds the price of carbon applied to transport emissions.
type CO2Config struct {
	CostPerTon decimal.Decimal `json:"cost_per_ton"`
}
