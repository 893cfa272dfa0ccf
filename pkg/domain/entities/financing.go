package entities

import "github.com/shopspring/decimal"

// FinancingConfig holds the annual interest rate charged on capital bound
// in inventory.
type FinancingConfig struct {
	AnnualRatePct decimal.Decimal `json:"interest_rate"`
}
