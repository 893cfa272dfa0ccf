package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransportMode represents the carrier mode of a transport relation
type TransportMode int

const (
	Road TransportMode = iota
	Rail
	Sea
	Air
)

// String method for TransportMode enum
func (m TransportMode) String() string {
	switch m {
	case Road:
		return "Road"
	case Rail:
		return "Rail"
	case Sea:
		return "Sea"
	case Air:
		return "Air"
	default:
		return "Unknown"
	}
}

// ParseTransportMode parses a mode name, case-insensitively.
func ParseTransportMode(s string) (TransportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "road":
		return Road, nil
	case "rail":
		return Rail, nil
	case "sea":
		return Sea, nil
	case "air":
		return Air, nil
	default:
		return Road, fmt.Errorf("invalid transport mode: %s (expected: Road, Rail, Sea, or Air)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m TransportMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *TransportMode) UnmarshalText(text []byte) error {
	parsed, err := ParseTransportMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Industry default energy consumption factors in kg CO2 per ton-km,
// applied when a transport config does not set its own factor.
var defaultEnergyFactors = map[TransportMode]decimal.Decimal{
	Road: decimal.NewFromFloat(0.04415),
	Rail: decimal.NewFromFloat(0.0085),
	Sea:  decimal.NewFromFloat(0.006),
	Air:  decimal.NewFromFloat(0.602), // long-haul air freight
}

// DefaultEnergyFactor returns the industry default energy consumption
// factor for the mode.
func (m TransportMode) DefaultEnergyFactor() decimal.Decimal {
	return defaultEnergyFactors[m]
}

// TransportConfig holds the transport relation agreed for a
// material-supplier pair.
type TransportConfig struct {
	MaterialID MaterialNumber `json:"material_id"`
	SupplierID VendorID       `json:"supplier_id"`

	Mode1 TransportMode  `json:"mode1"`
	Mode2 *TransportMode `json:"mode2,omitempty"` // optional secondary leg

	CostPerLU          decimal.Decimal `json:"cost_lu"`
	BondedCostPerLU    decimal.Decimal `json:"cost_bonded"`
	StackabilityFactor decimal.Decimal `json:"stackability_factor"`
	DistanceKm         decimal.Decimal `json:"distance_km"`

	// CO2 parameters; zero values fall back to mode defaults
	EnergyConsumptionFactor decimal.Decimal `json:"energy_consumption_factor"`
	CO2ConversionFactor     decimal.Decimal `json:"co2_conversion_factor"`
}

// EnergyFactor returns the configured energy consumption factor, or the
// mode default when unset.
func (c *TransportConfig) EnergyFactor() decimal.Decimal {
	if c.EnergyConsumptionFactor.IsPositive() {
		return c.EnergyConsumptionFactor
	}
	return c.Mode1.DefaultEnergyFactor()
}

// ConversionFactor returns the configured CO2 conversion factor, or 1 when
// unset.
func (c *TransportConfig) ConversionFactor() decimal.Decimal {
	if c.CO2ConversionFactor.IsPositive() {
		return c.CO2ConversionFactor
	}
	return decimal.NewFromInt(1)
}
