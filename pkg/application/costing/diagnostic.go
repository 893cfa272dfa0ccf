package costing

import (
	"fmt"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// Component names used in diagnostics
const (
	ComponentPackaging  = "packaging"
	ComponentRepacking  = "repacking"
	ComponentCustoms    = "customs"
	ComponentTransport  = "transport"
	ComponentCO2        = "co2"
	ComponentWarehouse  = "warehouse"
	ComponentAdditional = "additional"
	ComponentBatch      = "batch"
)

// Diagnostic identifies a degraded computation: which pair, which component,
// which field, and why. A component that emits a diagnostic contributes zero
// cost instead of failing the batch.
type Diagnostic struct {
	MaterialID entities.MaterialNumber `json:"material_id"`
	SupplierID entities.VendorID       `json:"supplier_id"`
	Component  string                  `json:"component"`
	Field      string                  `json:"field,omitempty"`
	Message    string                  `json:"message"`
}

// String method for Diagnostic
func (d Diagnostic) String() string {
	if d.Field == "" {
		return fmt.Sprintf("%s %s/%s: %s", d.Component, d.MaterialID, d.SupplierID, d.Message)
	}
	return fmt.Sprintf("%s %s/%s: %s: %s", d.Component, d.MaterialID, d.SupplierID, d.Field, d.Message)
}
