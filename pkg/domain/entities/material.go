package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialNumber represents a unique material identifier
type MaterialNumber string

// Material represents a purchased part with its demand and volume profile
type Material struct {
	MaterialNo         MaterialNumber  `json:"material_no"`
	Description        string          `json:"material_desc"`
	ProjectName        string          `json:"project_name"`
	WeightPerPiece     decimal.Decimal `json:"weight_per_pcs"` // kg
	PiecePrice         decimal.Decimal `json:"piece_price"`    // purchase price, used by customs and interest
	Usage              string          `json:"usage"`
	DailyDemand        decimal.Decimal `json:"daily_demand"`
	AnnualVolume       int64           `json:"annual_volume"`
	LifetimeVolume     int64           `json:"lifetime_volume"`
	LifetimeYears      decimal.Decimal `json:"lifetime_years"`
	PeakYear           int             `json:"peak_year"`
	PeakYearVolume     int64           `json:"peak_year_volume"`
	WorkingDaysPerYear int             `json:"working_days"`
	StartOfProduction  string          `json:"sop"`
}

// NewMaterial validates and returns a Material
func NewMaterial(m Material) (*Material, error) {
	if m.MaterialNo == "" {
		return nil, fmt.Errorf("material number cannot be empty")
	}
	if m.WeightPerPiece.IsNegative() {
		return nil, fmt.Errorf("weight per piece cannot be negative, got %s", m.WeightPerPiece)
	}
	if m.AnnualVolume < 0 {
		return nil, fmt.Errorf("annual volume cannot be negative, got %d", m.AnnualVolume)
	}
	if m.LifetimeVolume < 0 {
		return nil, fmt.Errorf("lifetime volume cannot be negative, got %d", m.LifetimeVolume)
	}
	if m.LifetimeYears.IsNegative() {
		return nil, fmt.Errorf("lifetime years cannot be negative, got %s", m.LifetimeYears)
	}
	if m.DailyDemand.IsNegative() {
		return nil, fmt.Errorf("daily demand cannot be negative, got %s", m.DailyDemand)
	}
	if m.PiecePrice.IsNegative() {
		return nil, fmt.Errorf("piece price cannot be negative, got %s", m.PiecePrice)
	}
	if m.WorkingDaysPerYear < 0 {
		return nil, fmt.Errorf("working days per year cannot be negative, got %d", m.WorkingDaysPerYear)
	}
	return &m, nil
}

// EffectiveLifetimeVolume returns the explicit lifetime volume when set,
// otherwise annual volume scaled by lifetime years.
func (m *Material) EffectiveLifetimeVolume() decimal.Decimal {
	if m.LifetimeVolume > 0 {
		return decimal.NewFromInt(m.LifetimeVolume)
	}
	return decimal.NewFromInt(m.AnnualVolume).Mul(m.LifetimeYears)
}
