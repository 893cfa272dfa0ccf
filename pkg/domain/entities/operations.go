package entities

// Incoterm codes relevant to the transport cost rules. Only FCA and FOB
// trigger the bonded-warehouse term; the rest are carried for reporting.
const (
	IncotermEXW = "EXW"
	IncotermFCA = "FCA"
	IncotermFOB = "FOB"
	IncotermCIF = "CIF"
	IncotermDAP = "DAP"
	IncotermDDP = "DDP"
)

// OperationsConfig holds the commercial and scheduling terms agreed for a
// material-supplier pair.
type OperationsConfig struct {
	MaterialID         MaterialNumber `json:"material_id"`
	SupplierID         VendorID       `json:"supplier_id"`
	IncotermCode       string         `json:"incoterm_code"`
	IncotermPlace      string         `json:"incoterm_place"`
	PartClass          string         `json:"part_class"`
	CalloffType        string         `json:"calloff_type"`
	LeadTimeDays       int            `json:"lead_time"`
	SubsupplierUsed    bool           `json:"subsupplier_used"`
	SubsupplierBoxDays int            `json:"subsupplier_box_days"`
	PackagingToolOwner string         `json:"packaging_tool_owner"`
	Responsible        string         `json:"responsible"`
	Currency           string         `json:"currency"`
}

// BondedWarehouseApplies reports whether the incoterm puts the bonded
// warehouse leg on the buyer.
func (c *OperationsConfig) BondedWarehouseApplies() bool {
	return c.IncotermCode == IncotermFCA || c.IncotermCode == IncotermFOB
}
