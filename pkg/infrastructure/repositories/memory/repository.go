package memory

import (
	"fmt"
	"sort"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/repositories"
)

// Repository provides in-memory storage for every entity collection the
// calculation engine consumes. Per-pair configurations are indexed by
// material-supplier pair key; duplicates are rejected at insert so the
// engine never has to disambiguate.
type Repository struct {
	materials map[entities.MaterialNumber]*entities.Material
	suppliers map[entities.VendorID]*entities.Supplier
	locations map[string]*entities.Location
	plants    []string // insertion order of locations

	packaging  map[entities.PairKey]*entities.PackagingConfig
	transport  map[entities.PairKey]*entities.TransportConfig
	warehouse  map[entities.PairKey]*entities.WarehouseConfig
	repacking  map[entities.PairKey]*entities.RepackingConfig
	customs    map[entities.PairKey]*entities.CustomsConfig
	operations map[entities.PairKey]*entities.OperationsConfig

	co2             *entities.CO2Config
	financing       *entities.FinancingConfig
	additionalCosts []entities.AdditionalCost
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		materials:  make(map[entities.MaterialNumber]*entities.Material),
		suppliers:  make(map[entities.VendorID]*entities.Supplier),
		locations:  make(map[string]*entities.Location),
		packaging:  make(map[entities.PairKey]*entities.PackagingConfig),
		transport:  make(map[entities.PairKey]*entities.TransportConfig),
		warehouse:  make(map[entities.PairKey]*entities.WarehouseConfig),
		repacking:  make(map[entities.PairKey]*entities.RepackingConfig),
		customs:    make(map[entities.PairKey]*entities.CustomsConfig),
		operations: make(map[entities.PairKey]*entities.OperationsConfig),
	}
}

// Verify interface compliance
var (
	_ repositories.MaterialRepository = (*Repository)(nil)
	_ repositories.SupplierRepository = (*Repository)(nil)
	_ repositories.ConfigRepository   = (*Repository)(nil)
)

// --- Materials ---

// SaveMaterial adds a material to the repository.
func (r *Repository) SaveMaterial(m *entities.Material) error {
	if _, exists := r.materials[m.MaterialNo]; exists {
		return fmt.Errorf("duplicate material number: %s", m.MaterialNo)
	}
	r.materials[m.MaterialNo] = m
	return nil
}

// GetMaterial returns the material with the given number.
func (r *Repository) GetMaterial(no entities.MaterialNumber) (*entities.Material, error) {
	m, exists := r.materials[no]
	if !exists {
		return nil, fmt.Errorf("material not found: %s", no)
	}
	return m, nil
}

// GetAllMaterials returns all materials ordered by material number.
func (r *Repository) GetAllMaterials() ([]*entities.Material, error) {
	materials := make([]*entities.Material, 0, len(r.materials))
	for _, m := range r.materials {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool {
		return materials[i].MaterialNo < materials[j].MaterialNo
	})
	return materials, nil
}

// UpdateMaterial replaces an existing material.
func (r *Repository) UpdateMaterial(m *entities.Material) error {
	if _, exists := r.materials[m.MaterialNo]; !exists {
		return fmt.Errorf("material not found: %s", m.MaterialNo)
	}
	r.materials[m.MaterialNo] = m
	return nil
}

// RemoveMaterial deletes a material and every per-pair config referencing it.
func (r *Repository) RemoveMaterial(no entities.MaterialNumber) error {
	if _, exists := r.materials[no]; !exists {
		return fmt.Errorf("material not found: %s", no)
	}
	delete(r.materials, no)
	r.removePairConfigs(func(k entities.PairKey) bool { return k.MaterialID == no })
	return nil
}

// --- Suppliers ---

// SaveSupplier adds a supplier to the repository.
func (r *Repository) SaveSupplier(s *entities.Supplier) error {
	if _, exists := r.suppliers[s.VendorID]; exists {
		return fmt.Errorf("duplicate vendor id: %s", s.VendorID)
	}
	r.suppliers[s.VendorID] = s
	return nil
}

// GetSupplier returns the supplier with the given vendor id.
func (r *Repository) GetSupplier(id entities.VendorID) (*entities.Supplier, error) {
	s, exists := r.suppliers[id]
	if !exists {
		return nil, fmt.Errorf("supplier not found: %s", id)
	}
	return s, nil
}

// GetAllSuppliers returns all suppliers ordered by vendor id.
func (r *Repository) GetAllSuppliers() ([]*entities.Supplier, error) {
	suppliers := make([]*entities.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		suppliers = append(suppliers, s)
	}
	sort.Slice(suppliers, func(i, j int) bool {
		return suppliers[i].VendorID < suppliers[j].VendorID
	})
	return suppliers, nil
}

// UpdateSupplier replaces an existing supplier.
func (r *Repository) UpdateSupplier(s *entities.Supplier) error {
	if _, exists := r.suppliers[s.VendorID]; !exists {
		return fmt.Errorf("supplier not found: %s", s.VendorID)
	}
	r.suppliers[s.VendorID] = s
	return nil
}

// RemoveSupplier deletes a supplier and every per-pair config referencing it.
func (r *Repository) RemoveSupplier(id entities.VendorID) error {
	if _, exists := r.suppliers[id]; !exists {
		return fmt.Errorf("supplier not found: %s", id)
	}
	delete(r.suppliers, id)
	r.removePairConfigs(func(k entities.PairKey) bool { return k.SupplierID == id })
	return nil
}

func (r *Repository) removePairConfigs(match func(entities.PairKey) bool) {
	for k := range r.packaging {
		if match(k) {
			delete(r.packaging, k)
		}
	}
	for k := range r.transport {
		if match(k) {
			delete(r.transport, k)
		}
	}
	for k := range r.warehouse {
		if match(k) {
			delete(r.warehouse, k)
		}
	}
	for k := range r.repacking {
		if match(k) {
			delete(r.repacking, k)
		}
	}
	for k := range r.customs {
		if match(k) {
			delete(r.customs, k)
		}
	}
	for k := range r.operations {
		if match(k) {
			delete(r.operations, k)
		}
	}
}

// --- Locations ---

// SaveLocation adds a plant location.
func (r *Repository) SaveLocation(l *entities.Location) error {
	if _, exists := r.locations[l.Plant]; exists {
		return fmt.Errorf("duplicate plant: %s", l.Plant)
	}
	r.locations[l.Plant] = l
	r.plants = append(r.plants, l.Plant)
	return nil
}

// GetLocation returns the location for a plant name.
func (r *Repository) GetLocation(plant string) (*entities.Location, error) {
	l, exists := r.locations[plant]
	if !exists {
		return nil, fmt.Errorf("location not found: %s", plant)
	}
	return l, nil
}

// GetAllLocations returns all locations in insertion order.
func (r *Repository) GetAllLocations() []*entities.Location {
	locations := make([]*entities.Location, 0, len(r.plants))
	for _, plant := range r.plants {
		locations = append(locations, r.locations[plant])
	}
	return locations
}

// defaultLocation returns the first configured plant location, if any.
func (r *Repository) defaultLocation() *entities.Location {
	if len(r.plants) == 0 {
		return nil
	}
	return r.locations[r.plants[0]]
}

// --- Per-pair configurations ---

// SavePackagingConfig adds a packaging config for its pair. A pair can hold
// at most one config per category.
func (r *Repository) SavePackagingConfig(c *entities.PackagingConfig) error {
	key := entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	if _, exists := r.packaging[key]; exists {
		return fmt.Errorf("duplicate packaging config for pair %s", key)
	}
	r.packaging[key] = c
	return nil
}

// SaveTransportConfig adds a transport config for its pair.
func (r *Repository) SaveTransportConfig(c *entities.TransportConfig) error {
	key := entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	if _, exists := r.transport[key]; exists {
		return fmt.Errorf("duplicate transport config for pair %s", key)
	}
	r.transport[key] = c
	return nil
}

// SaveWarehouseConfig adds a warehouse config for its pair.
func (r *Repository) SaveWarehouseConfig(c *entities.WarehouseConfig) error {
	key := entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	if _, exists := r.warehouse[key]; exists {
		return fmt.Errorf("duplicate warehouse config for pair %s", key)
	}
	r.warehouse[key] = c
	return nil
}

// SaveRepackingConfig adds a repacking config for its pair.
func (r *Repository) SaveRepackingConfig(c *entities.RepackingConfig) error {
	key := entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	if _, exists := r.repacking[key]; exists {
		return fmt.Errorf("duplicate repacking config for pair %s", key)
	}
	r.repacking[key] = c
	return nil
}

// SaveCustomsConfig adds a customs config for its pair.
func (r *Repository) SaveCustomsConfig(c *entities.CustomsConfig) error {
	key := entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	if _, exists := r.customs[key]; exists {
		return fmt.Errorf("duplicate customs config for pair %s", key)
	}
	r.customs[key] = c
	return nil
}

// SaveOperationsConfig adds an operations config for its pair.
func (r *Repository) SaveOperationsConfig(c *entities.OperationsConfig) error {
	key := entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	if _, exists := r.operations[key]; exists {
		return fmt.Errorf("duplicate operations config for pair %s", key)
	}
	r.operations[key] = c
	return nil
}

// RemovePairConfigs deletes every per-pair config for the given pair.
func (r *Repository) RemovePairConfigs(key entities.PairKey) {
	delete(r.packaging, key)
	delete(r.transport, key)
	delete(r.warehouse, key)
	delete(r.repacking, key)
	delete(r.customs, key)
	delete(r.operations, key)
}

// AllPackagingConfigs returns all packaging configs ordered by pair key.
func (r *Repository) AllPackagingConfigs() []*entities.PackagingConfig {
	configs := make([]*entities.PackagingConfig, 0, len(r.packaging))
	for _, c := range r.packaging {
		configs = append(configs, c)
	}
	sortByPair(configs, func(c *entities.PackagingConfig) entities.PairKey {
		return entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	})
	return configs
}

// AllTransportConfigs returns all transport configs ordered by pair key.
func (r *Repository) AllTransportConfigs() []*entities.TransportConfig {
	configs := make([]*entities.TransportConfig, 0, len(r.transport))
	for _, c := range r.transport {
		configs = append(configs, c)
	}
	sortByPair(configs, func(c *entities.TransportConfig) entities.PairKey {
		return entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	})
	return configs
}

// AllWarehouseConfigs returns all warehouse configs ordered by pair key.
func (r *Repository) AllWarehouseConfigs() []*entities.WarehouseConfig {
	configs := make([]*entities.WarehouseConfig, 0, len(r.warehouse))
	for _, c := range r.warehouse {
		configs = append(configs, c)
	}
	sortByPair(configs, func(c *entities.WarehouseConfig) entities.PairKey {
		return entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	})
	return configs
}

// AllRepackingConfigs returns all repacking configs ordered by pair key.
func (r *Repository) AllRepackingConfigs() []*entities.RepackingConfig {
	configs := make([]*entities.RepackingConfig, 0, len(r.repacking))
	for _, c := range r.repacking {
		configs = append(configs, c)
	}
	sortByPair(configs, func(c *entities.RepackingConfig) entities.PairKey {
		return entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	})
	return configs
}

// AllCustomsConfigs returns all customs configs ordered by pair key.
func (r *Repository) AllCustomsConfigs() []*entities.CustomsConfig {
	configs := make([]*entities.CustomsConfig, 0, len(r.customs))
	for _, c := range r.customs {
		configs = append(configs, c)
	}
	sortByPair(configs, func(c *entities.CustomsConfig) entities.PairKey {
		return entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	})
	return configs
}

// AllOperationsConfigs returns all operations configs ordered by pair key.
func (r *Repository) AllOperationsConfigs() []*entities.OperationsConfig {
	configs := make([]*entities.OperationsConfig, 0, len(r.operations))
	for _, c := range r.operations {
		configs = append(configs, c)
	}
	sortByPair(configs, func(c *entities.OperationsConfig) entities.PairKey {
		return entities.PairKey{MaterialID: c.MaterialID, SupplierID: c.SupplierID}
	})
	return configs
}

func sortByPair[T any](configs []T, key func(T) entities.PairKey) {
	sort.Slice(configs, func(i, j int) bool {
		return key(configs[i]).String() < key(configs[j]).String()
	})
}

// --- Global configurations ---

// SetCO2Config sets the carbon price configuration.
func (r *Repository) SetCO2Config(c *entities.CO2Config) { r.co2 = c }

// CO2Config returns the carbon price configuration, or nil.
func (r *Repository) CO2Config() *entities.CO2Config { return r.co2 }

// SetFinancingConfig sets the inventory interest configuration.
func (r *Repository) SetFinancingConfig(c *entities.FinancingConfig) { r.financing = c }

// FinancingConfig returns the inventory interest configuration, or nil.
func (r *Repository) FinancingConfig() *entities.FinancingConfig { return r.financing }

// AddAdditionalCost appends a named additional cost.
func (r *Repository) AddAdditionalCost(c entities.AdditionalCost) {
	r.additionalCosts = append(r.additionalCosts, c)
}

// AdditionalCosts returns all configured additional costs.
func (r *Repository) AdditionalCosts() []entities.AdditionalCost {
	return r.additionalCosts
}

// --- Pair resolution ---

// FindPairConfigs resolves every configuration referencing the pair.
func (r *Repository) FindPairConfigs(no entities.MaterialNumber, id entities.VendorID) (*repositories.PairConfigs, error) {
	key := entities.PairKey{MaterialID: no, SupplierID: id}
	return &repositories.PairConfigs{
		Packaging:       r.packaging[key],
		Transport:       r.transport[key],
		Warehouse:       r.warehouse[key],
		Repacking:       r.repacking[key],
		Customs:         r.customs[key],
		Operations:      r.operations[key],
		Location:        r.defaultLocation(),
		CO2:             r.co2,
		Financing:       r.financing,
		AdditionalCosts: r.additionalCosts,
	}, nil
}
