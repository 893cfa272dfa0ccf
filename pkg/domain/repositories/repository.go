package repositories

import "github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"

// MaterialRepository provides access to material master data
type MaterialRepository interface {
	GetMaterial(materialNo entities.MaterialNumber) (*entities.Material, error)
	GetAllMaterials() ([]*entities.Material, error)
	SaveMaterial(material *entities.Material) error
}

// SupplierRepository provides access to supplier master data
type SupplierRepository interface {
	GetSupplier(vendorID entities.VendorID) (*entities.Supplier, error)
	GetAllSuppliers() ([]*entities.Supplier, error)
	SaveSupplier(supplier *entities.Supplier) error
}

// PairConfigs bundles every configuration that references a
// material-supplier pair. Nil fields mean the config is absent; packaging,
// transport and warehouse are mandatory for a pair to be calculation-ready.
type PairConfigs struct {
	Packaging       *entities.PackagingConfig
	Transport       *entities.TransportConfig
	Warehouse       *entities.WarehouseConfig
	Repacking       *entities.RepackingConfig
	Customs         *entities.CustomsConfig
	Operations      *entities.OperationsConfig
	Location        *entities.Location
	CO2             *entities.CO2Config
	Financing       *entities.FinancingConfig
	AdditionalCosts []entities.AdditionalCost
}

// Ready reports whether all mandatory configs are present.
func (c *PairConfigs) Ready() bool {
	return c.Packaging != nil && c.Transport != nil && c.Warehouse != nil
}

// ConfigRepository resolves the configurations referencing a
// material-supplier pair. The engine only ever reads through this contract.
type ConfigRepository interface {
	FindPairConfigs(materialNo entities.MaterialNumber, vendorID entities.VendorID) (*PairConfigs, error)
}
