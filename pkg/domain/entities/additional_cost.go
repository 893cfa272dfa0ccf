package entities

import "github.com/shopspring/decimal"

// AdditionalCost is a named cost amortized across volume. One-off costs are
// spread over the lifetime volume, recurring costs over the annual volume.
type AdditionalCost struct {
	Name   string          `json:"cost_name"`
	Value  decimal.Decimal `json:"cost_value"`
	OneOff bool            `json:"one_off"`
}
