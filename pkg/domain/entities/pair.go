package entities

import "fmt"

// PairKey identifies the material-supplier pair every per-pair
// configuration references.
type PairKey struct {
	MaterialID MaterialNumber
	SupplierID VendorID
}

// String method for PairKey
func (k PairKey) String() string {
	return fmt.Sprintf("%s|%s", k.MaterialID, k.SupplierID)
}
