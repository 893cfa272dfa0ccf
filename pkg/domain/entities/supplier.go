package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VendorID represents a unique supplier identifier
type VendorID string

// Supplier represents a vendor delivering materials to the plant
type Supplier struct {
	VendorID            VendorID        `json:"vendor_id"`
	Name                string          `json:"vendor_name"`
	Country             string          `json:"vendor_country"`
	City                string          `json:"city_of_manufacture"`
	ZIP                 string          `json:"vendor_zip"`
	DeliveryPerformance decimal.Decimal `json:"delivery_performance"` // percent, 0-100
	DeliveriesPerMonth  int             `json:"deliveries_per_month"`
}

// NewSupplier validates and returns a Supplier
func NewSupplier(s Supplier) (*Supplier, error) {
	if s.VendorID == "" {
		return nil, fmt.Errorf("vendor id cannot be empty")
	}
	if s.Name == "" {
		return nil, fmt.Errorf("vendor name cannot be empty")
	}
	if s.DeliveryPerformance.IsNegative() || s.DeliveryPerformance.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("delivery performance must be between 0 and 100, got %s", s.DeliveryPerformance)
	}
	if s.DeliveriesPerMonth < 0 {
		return nil, fmt.Errorf("deliveries per month cannot be negative, got %d", s.DeliveriesPerMonth)
	}
	return &s, nil
}
