package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// AdditionalCostPerPiece amortizes the named additional costs: one-off
// values over lifetime volume, recurring values over annual volume. Returns
// zero for an empty list.
func (Calculator) AdditionalCostPerPiece(
	m *entities.Material,
	costs []entities.AdditionalCost,
) (decimal.Decimal, []Diagnostic) {
	if len(costs) == 0 {
		return decimal.Zero, nil
	}

	var diags []Diagnostic
	diag := func(field, msg string) {
		diags = append(diags, Diagnostic{
			MaterialID: m.MaterialNo,
			Component:  ComponentAdditional,
			Field:      field,
			Message:    msg,
		})
	}

	oneOffSum := decimal.Zero
	recurringSum := decimal.Zero
	for _, c := range costs {
		if c.OneOff {
			oneOffSum = oneOffSum.Add(c.Value)
		} else {
			recurringSum = recurringSum.Add(c.Value)
		}
	}

	total := decimal.Zero
	if oneOffSum.IsPositive() {
		lifetimeVol := m.EffectiveLifetimeVolume()
		if lifetimeVol.IsPositive() {
			total = total.Add(oneOffSum.Div(lifetimeVol))
		} else {
			diag("lifetime_volume", "zero or unset, one-off costs not amortized")
		}
	}
	if recurringSum.IsPositive() {
		if m.AnnualVolume > 0 {
			total = total.Add(recurringSum.Div(decimal.NewFromInt(m.AnnualVolume)))
		} else {
			diag("annual_volume", "zero or unset, recurring costs not amortized")
		}
	}
	return total, diags
}
