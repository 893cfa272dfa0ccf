package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

func TestRepository_MaterialCRUD(t *testing.T) {
	repo := NewRepository()

	m := &entities.Material{MaterialNo: "MAT-1", Description: "Bracket"}
	require.NoError(t, repo.SaveMaterial(m))

	// Duplicates are rejected.
	err := repo.SaveMaterial(&entities.Material{MaterialNo: "MAT-1"})
	assert.ErrorContains(t, err, "duplicate material number")

	got, err := repo.GetMaterial("MAT-1")
	require.NoError(t, err)
	assert.Equal(t, "Bracket", got.Description)

	_, err = repo.GetMaterial("MAT-404")
	assert.ErrorContains(t, err, "material not found")

	m2 := &entities.Material{MaterialNo: "MAT-1", Description: "Bracket v2"}
	require.NoError(t, repo.UpdateMaterial(m2))
	got, err = repo.GetMaterial("MAT-1")
	require.NoError(t, err)
	assert.Equal(t, "Bracket v2", got.Description)

	assert.ErrorContains(t, repo.UpdateMaterial(&entities.Material{MaterialNo: "MAT-404"}),
		"material not found")

	require.NoError(t, repo.RemoveMaterial("MAT-1"))
	_, err = repo.GetMaterial("MAT-1")
	assert.Error(t, err)
}

func TestRepository_SupplierCRUD(t *testing.T) {
	repo := NewRepository()

	s := &entities.Supplier{VendorID: "V-1", Name: "Stahlwerk Nord"}
	require.NoError(t, repo.SaveSupplier(s))
	assert.ErrorContains(t, repo.SaveSupplier(&entities.Supplier{VendorID: "V-1"}),
		"duplicate vendor id")

	got, err := repo.GetSupplier("V-1")
	require.NoError(t, err)
	assert.Equal(t, "Stahlwerk Nord", got.Name)

	require.NoError(t, repo.UpdateSupplier(&entities.Supplier{VendorID: "V-1", Name: "Renamed"}))
	got, _ = repo.GetSupplier("V-1")
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, repo.RemoveSupplier("V-1"))
	_, err = repo.GetSupplier("V-1")
	assert.Error(t, err)
}

func TestRepository_GetAllSorted(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.SaveMaterial(&entities.Material{MaterialNo: "MAT-2"}))
	require.NoError(t, repo.SaveMaterial(&entities.Material{MaterialNo: "MAT-1"}))
	require.NoError(t, repo.SaveSupplier(&entities.Supplier{VendorID: "V-2", Name: "B"}))
	require.NoError(t, repo.SaveSupplier(&entities.Supplier{VendorID: "V-1", Name: "A"}))

	materials, err := repo.GetAllMaterials()
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, entities.MaterialNumber("MAT-1"), materials[0].MaterialNo)

	suppliers, err := repo.GetAllSuppliers()
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, entities.VendorID("V-1"), suppliers[0].VendorID)
}

func TestRepository_PairConfigDuplicatesRejected(t *testing.T) {
	repo := NewRepository()

	pkg := &entities.PackagingConfig{MaterialID: "MAT-1", SupplierID: "V-1"}
	require.NoError(t, repo.SavePackagingConfig(pkg))
	assert.ErrorContains(t, repo.SavePackagingConfig(pkg), "duplicate packaging config")

	tr := &entities.TransportConfig{MaterialID: "MAT-1", SupplierID: "V-1"}
	require.NoError(t, repo.SaveTransportConfig(tr))
	assert.ErrorContains(t, repo.SaveTransportConfig(tr), "duplicate transport config")

	// The same category is free for a different pair.
	require.NoError(t, repo.SavePackagingConfig(
		&entities.PackagingConfig{MaterialID: "MAT-1", SupplierID: "V-2"}))
}

func TestRepository_FindPairConfigs(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.SavePackagingConfig(
		&entities.PackagingConfig{MaterialID: "MAT-1", SupplierID: "V-1"}))
	require.NoError(t, repo.SaveTransportConfig(
		&entities.TransportConfig{MaterialID: "MAT-1", SupplierID: "V-1"}))
	require.NoError(t, repo.SaveLocation(
		&entities.Location{Plant: "Regensburg", DistanceKm: decimal.NewFromInt(650)}))
	repo.SetCO2Config(&entities.CO2Config{CostPerTon: decimal.NewFromInt(85)})
	repo.AddAdditionalCost(entities.AdditionalCost{Name: "Audit", Value: decimal.NewFromInt(1000)})

	cfgs, err := repo.FindPairConfigs("MAT-1", "V-1")
	require.NoError(t, err)
	assert.NotNil(t, cfgs.Packaging)
	assert.NotNil(t, cfgs.Transport)
	assert.Nil(t, cfgs.Warehouse)
	assert.False(t, cfgs.Ready())
	assert.Equal(t, "Regensburg", cfgs.Location.Plant)
	assert.NotNil(t, cfgs.CO2)
	assert.Len(t, cfgs.AdditionalCosts, 1)

	// Another pair resolves to nothing pair-scoped but keeps the globals.
	other, err := repo.FindPairConfigs("MAT-2", "V-9")
	require.NoError(t, err)
	assert.Nil(t, other.Packaging)
	assert.NotNil(t, other.CO2)
}

func TestRepository_RemoveMaterialCascades(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.SaveMaterial(&entities.Material{MaterialNo: "MAT-1"}))
	require.NoError(t, repo.SavePackagingConfig(
		&entities.PackagingConfig{MaterialID: "MAT-1", SupplierID: "V-1"}))
	require.NoError(t, repo.SaveCustomsConfig(
		&entities.CustomsConfig{MaterialID: "MAT-1", SupplierID: "V-1"}))
	require.NoError(t, repo.SavePackagingConfig(
		&entities.PackagingConfig{MaterialID: "MAT-2", SupplierID: "V-1"}))

	require.NoError(t, repo.RemoveMaterial("MAT-1"))

	cfgs, err := repo.FindPairConfigs("MAT-1", "V-1")
	require.NoError(t, err)
	assert.Nil(t, cfgs.Packaging)
	assert.Nil(t, cfgs.Customs)

	// Configs of other materials survive.
	assert.Len(t, repo.AllPackagingConfigs(), 1)
}

func TestRepository_RemoveSupplierCascades(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.SaveSupplier(&entities.Supplier{VendorID: "V-1", Name: "A"}))
	require.NoError(t, repo.SaveTransportConfig(
		&entities.TransportConfig{MaterialID: "MAT-1", SupplierID: "V-1"}))
	require.NoError(t, repo.SaveTransportConfig(
		&entities.TransportConfig{MaterialID: "MAT-1", SupplierID: "V-2"}))

	require.NoError(t, repo.RemoveSupplier("V-1"))

	cfgs, err := repo.FindPairConfigs("MAT-1", "V-1")
	require.NoError(t, err)
	assert.Nil(t, cfgs.Transport)
	assert.Len(t, repo.AllTransportConfigs(), 1)
}

func TestRepository_AllConfigsSortedByPair(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.SavePackagingConfig(
		&entities.PackagingConfig{MaterialID: "MAT-2", SupplierID: "V-1"}))
	require.NoError(t, repo.SavePackagingConfig(
		&entities.PackagingConfig{MaterialID: "MAT-1", SupplierID: "V-2"}))
	require.NoError(t, repo.SavePackagingConfig(
		&entities.PackagingConfig{MaterialID: "MAT-1", SupplierID: "V-1"}))

	configs := repo.AllPackagingConfigs()
	require.Len(t, configs, 3)
	assert.Equal(t, entities.MaterialNumber("MAT-1"), configs[0].MaterialID)
	assert.Equal(t, entities.VendorID("V-1"), configs[0].SupplierID)
	assert.Equal(t, entities.VendorID("V-2"), configs[1].SupplierID)
	assert.Equal(t, entities.MaterialNumber("MAT-2"), configs[2].MaterialID)
}

func TestRepository_Locations(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.SaveLocation(&entities.Location{Plant: "Regensburg"}))
	require.NoError(t, repo.SaveLocation(&entities.Location{Plant: "Leipzig"}))
	assert.ErrorContains(t, repo.SaveLocation(&entities.Location{Plant: "Regensburg"}),
		"duplicate plant")

	got, err := repo.GetLocation("Leipzig")
	require.NoError(t, err)
	assert.Equal(t, "Leipzig", got.Plant)

	// Insertion order is preserved; the first plant is the default.
	all := repo.GetAllLocations()
	require.Len(t, all, 2)
	assert.Equal(t, "Regensburg", all[0].Plant)

	cfgs, err := repo.FindPairConfigs("MAT-1", "V-1")
	require.NoError(t, err)
	assert.Equal(t, "Regensburg", cfgs.Location.Plant)
}
