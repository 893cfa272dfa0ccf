package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Location represents a receiving plant and its distance to the supplier base
type Location struct {
	Plant      string          `json:"plant"`
	Country    string          `json:"country"`
	DistanceKm decimal.Decimal `json:"distance"`
}

// NewLocation validates and returns a Location
func NewLocation(l Location) (*Location, error) {
	if l.Plant == "" {
		return nil, fmt.Errorf("plant name cannot be empty")
	}
	if l.DistanceKm.IsNegative() {
		return nil, fmt.Errorf("distance cannot be negative, got %s", l.DistanceKm)
	}
	return &l, nil
}
