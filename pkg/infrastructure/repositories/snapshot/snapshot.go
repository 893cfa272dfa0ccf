// Package snapshot provides versioned bulk import/export of every entity
// collection as a single JSON document, so a repository can be dumped,
// shared and reloaded without loss.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/infrastructure/repositories/memory"
)

// FormatVersion identifies the snapshot document layout.
const FormatVersion = "1.0.0"

// Document is the on-wire form of a repository snapshot: every entity
// collection keyed by kind, tagged with a version and timestamp.
type Document struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	Materials       []entities.Material         `json:"materials"`
	Suppliers       []entities.Supplier         `json:"suppliers"`
	Locations       []entities.Location         `json:"locations"`
	Operations      []entities.OperationsConfig `json:"operations"`
	Packaging       []entities.PackagingConfig  `json:"packaging"`
	Repacking       []entities.RepackingConfig  `json:"repacking"`
	Customs         []entities.CustomsConfig    `json:"customs"`
	Transport       []entities.TransportConfig  `json:"transport"`
	CO2             *entities.CO2Config         `json:"co2,omitempty"`
	Warehouse       []entities.WarehouseConfig  `json:"warehouse"`
	Financing       *entities.FinancingConfig   `json:"financing,omitempty"`
	AdditionalCosts []entities.AdditionalCost   `json:"additional_costs"`
}

// Export dumps the repository into a snapshot document.
func Export(repo *memory.Repository) (*Document, error) {
	doc := &Document{
		Version:    FormatVersion,
		ExportedAt: time.Now(),
	}

	materials, err := repo.GetAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("failed to export materials: %w", err)
	}
	for _, m := range materials {
		doc.Materials = append(doc.Materials, *m)
	}

	suppliers, err := repo.GetAllSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to export suppliers: %w", err)
	}
	for _, s := range suppliers {
		doc.Suppliers = append(doc.Suppliers, *s)
	}

	for _, l := range repo.GetAllLocations() {
		doc.Locations = append(doc.Locations, *l)
	}
	for _, c := range repo.AllOperationsConfigs() {
		doc.Operations = append(doc.Operations, *c)
	}
	for _, c := range repo.AllPackagingConfigs() {
		doc.Packaging = append(doc.Packaging, *c)
	}
	for _, c := range repo.AllRepackingConfigs() {
		doc.Repacking = append(doc.Repacking, *c)
	}
	for _, c := range repo.AllCustomsConfigs() {
		doc.Customs = append(doc.Customs, *c)
	}
	for _, c := range repo.AllTransportConfigs() {
		doc.Transport = append(doc.Transport, *c)
	}
	for _, c := range repo.AllWarehouseConfigs() {
		doc.Warehouse = append(doc.Warehouse, *c)
	}
	doc.CO2 = repo.CO2Config()
	doc.Financing = repo.FinancingConfig()
	doc.AdditionalCosts = repo.AdditionalCosts()

	return doc, nil
}

// Import loads a snapshot document into a fresh repository.
func Import(doc *Document) (*memory.Repository, error) {
	repo := memory.NewRepository()

	for i := range doc.Materials {
		if err := repo.SaveMaterial(&doc.Materials[i]); err != nil {
			return nil, fmt.Errorf("failed to import material: %w", err)
		}
	}
	for i := range doc.Suppliers {
		if err := repo.SaveSupplier(&doc.Suppliers[i]); err != nil {
			return nil, fmt.Errorf("failed to import supplier: %w", err)
		}
	}
	for i := range doc.Locations {
		if err := repo.SaveLocation(&doc.Locations[i]); err != nil {
			return nil, fmt.Errorf("failed to import location: %w", err)
		}
	}
	for i := range doc.Operations {
		if err := repo.SaveOperationsConfig(&doc.Operations[i]); err != nil {
			return nil, fmt.Errorf("failed to import operations config: %w", err)
		}
	}
	for i := range doc.Packaging {
		if err := repo.SavePackagingConfig(&doc.Packaging[i]); err != nil {
			return nil, fmt.Errorf("failed to import packaging config: %w", err)
		}
	}
	for i := range doc.Repacking {
		if err := repo.SaveRepackingConfig(&doc.Repacking[i]); err != nil {
			return nil, fmt.Errorf("failed to import repacking config: %w", err)
		}
	}
	for i := range doc.Customs {
		if err := repo.SaveCustomsConfig(&doc.Customs[i]); err != nil {
			return nil, fmt.Errorf("failed to import customs config: %w", err)
		}
	}
	for i := range doc.Transport {
		if err := repo.SaveTransportConfig(&doc.Transport[i]); err != nil {
			return nil, fmt.Errorf("failed to import transport config: %w", err)
		}
	}
	for i := range doc.Warehouse {
		if err := repo.SaveWarehouseConfig(&doc.Warehouse[i]); err != nil {
			return nil, fmt.Errorf("failed to import warehouse config: %w", err)
		}
	}
	if doc.CO2 != nil {
		repo.SetCO2Config(doc.CO2)
	}
	if doc.Financing != nil {
		repo.SetFinancingConfig(doc.Financing)
	}
	for _, c := range doc.AdditionalCosts {
		repo.AddAdditionalCost(c)
	}

	return repo, nil
}

// Write serializes a document as indented JSON.
func Write(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Read deserializes a document from JSON.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &doc, nil
}

// Load reads a snapshot file and imports it into a repository.
func Load(path string) (*memory.Repository, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Read(file)
	if err != nil {
		return nil, err
	}
	return Import(doc)
}

// Save exports a repository and writes the snapshot file.
func Save(path string, repo *memory.Repository) error {
	doc, err := Export(repo)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", path, err)
	}
	defer file.Close()

	return Write(file, doc)
}
