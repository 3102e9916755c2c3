package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/osse101/NeuroFarm_Go/configs"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/utils"
	"github.com/osse101/NeuroFarm_Go/internal/validation"
)

// On-disk shapes. Durations are whole seconds so files stay hand-editable.

type fileCatalog struct {
	Crops   []fileCrop   `json:"crops"`
	Animals []fileAnimal `json:"animals"`
	Regions []fileRegion `json:"regions"`
}

type fileCrop struct {
	Name          string `json:"name"`
	GrowthSeconds int64  `json:"growth_seconds"`
	SellPrice     int64  `json:"sell_price"`
	PlantingCost  int64  `json:"planting_cost"`
	Glyph         string `json:"glyph,omitempty"`
}

type fileAnimal struct {
	Name              string `json:"name"`
	ProductName       string `json:"product_name"`
	ProductionSeconds int64  `json:"production_seconds"`
	ProductSellPrice  int64  `json:"product_sell_price"`
	PurchaseCost      int64  `json:"purchase_cost"`
	Glyph             string `json:"glyph,omitempty"`
}

type fileRegion struct {
	Name            string `json:"name"`
	RequiredLevel   int    `json:"required_level"`
	ExplorationCost int64  `json:"exploration_cost"`
	Glyph           string `json:"glyph,omitempty"`
}

// DefaultCatalog returns the catalog the game ships with
func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		Crops: []domain.CropType{
			{Name: "Wheat", GrowthDuration: time.Hour, SellPrice: 10, PlantingCost: 5, Glyph: "🌾"},
			{Name: "Corn", GrowthDuration: 2 * time.Hour, SellPrice: 20, PlantingCost: 10, Glyph: "🌽"},
			{Name: "Tomato", GrowthDuration: 3 * time.Hour, SellPrice: 30, PlantingCost: 15, Glyph: "🍅"},
			{Name: "Potato", GrowthDuration: 4 * time.Hour, SellPrice: 40, PlantingCost: 20, Glyph: "🥔"},
			{Name: "Carrot", GrowthDuration: 90 * time.Minute, SellPrice: 15, PlantingCost: 8, Glyph: "🥕"},
		},
		Animals: []domain.AnimalType{
			{Name: "Chicken", ProductName: "Egg", ProductionInterval: time.Hour, ProductSellPrice: 5, PurchaseCost: 50, Glyph: "🐔"},
			{Name: "Cow", ProductName: "Milk", ProductionInterval: 2 * time.Hour, ProductSellPrice: 15, PurchaseCost: 200, Glyph: "🐄"},
			{Name: "Sheep", ProductName: "Wool", ProductionInterval: 4 * time.Hour, ProductSellPrice: 25, PurchaseCost: 150, Glyph: "🐑"},
			{Name: "Pig", ProductName: "Bacon", ProductionInterval: 3 * time.Hour, ProductSellPrice: 20, PurchaseCost: 100, Glyph: "🐖"},
		},
		Regions: []domain.Region{
			{Name: "Forest", RequiredLevel: 1, ExplorationCost: 10, Glyph: "🌳"},
			{Name: "Mountain", RequiredLevel: 5, ExplorationCost: 30, Glyph: "⛰️"},
			{Name: "Beach", RequiredLevel: 10, ExplorationCost: 50, Glyph: "🏖️"},
			{Name: "Desert", RequiredLevel: 15, ExplorationCost: 70, Glyph: "🏜️"},
		},
	}
}

// Loader validates catalog files against the embedded schema
type Loader struct {
	validator validation.SchemaValidator
}

// NewLoader registers the embedded schema with a fresh validator
func NewLoader() (*Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, configs.CatalogSchema); err != nil {
		return nil, fmt.Errorf("failed to register catalog schema: %w", err)
	}
	return &Loader{validator: v}, nil
}

// LoadFile reads, validates and converts a catalog file
func (l *Loader) LoadFile(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return l.LoadBytes(data)
}

// LoadBytes validates and converts catalog JSON. Schema violations and
// duplicate names are reported as ErrInvalidInput.
func (l *Loader) LoadBytes(data []byte) (domain.Catalog, error) {
	if err := l.validator.ValidateBytes(data, SchemaName); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	var fc fileCatalog
	if err := json.Unmarshal(data, &fc); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	cat := fc.toDomain()
	if err := checkDuplicates(cat); err != nil {
		return domain.Catalog{}, err
	}
	return cat, nil
}

// Export writes cat to path in the file format LoadFile reads
func Export(path string, cat domain.Catalog) error {
	return utils.WriteJSONFile(path, fromDomain(cat))
}

func (fc fileCatalog) toDomain() domain.Catalog {
	cat := domain.Catalog{
		Crops:   make([]domain.CropType, 0, len(fc.Crops)),
		Animals: make([]domain.AnimalType, 0, len(fc.Animals)),
		Regions: make([]domain.Region, 0, len(fc.Regions)),
	}
	for _, c := range fc.Crops {
		cat.Crops = append(cat.Crops, domain.CropType{
			Name:           strings.TrimSpace(c.Name),
			GrowthDuration: time.Duration(c.GrowthSeconds) * time.Second,
			SellPrice:      c.SellPrice,
			PlantingCost:   c.PlantingCost,
			Glyph:          c.Glyph,
		})
	}
	for _, a := range fc.Animals {
		cat.Animals = append(cat.Animals, domain.AnimalType{
			Name:               strings.TrimSpace(a.Name),
			ProductName:        a.ProductName,
			ProductionInterval: time.Duration(a.ProductionSeconds) * time.Second,
			ProductSellPrice:   a.ProductSellPrice,
			PurchaseCost:       a.PurchaseCost,
			Glyph:              a.Glyph,
		})
	}
	for _, r := range fc.Regions {
		cat.Regions = append(cat.Regions, domain.Region{
			Name:            strings.TrimSpace(r.Name),
			RequiredLevel:   r.RequiredLevel,
			ExplorationCost: r.ExplorationCost,
			Glyph:           r.Glyph,
		})
	}
	return cat
}

func fromDomain(cat domain.Catalog) fileCatalog {
	var fc fileCatalog
	for _, c := range cat.Crops {
		fc.Crops = append(fc.Crops, fileCrop{
			Name:          c.Name,
			GrowthSeconds: int64(c.GrowthDuration / time.Second),
			SellPrice:     c.SellPrice,
			PlantingCost:  c.PlantingCost,
			Glyph:         c.Glyph,
		})
	}
	for _, a := range cat.Animals {
		fc.Animals = append(fc.Animals, fileAnimal{
			Name:              a.Name,
			ProductName:       a.ProductName,
			ProductionSeconds: int64(a.ProductionInterval / time.Second),
			ProductSellPrice:  a.ProductSellPrice,
			PurchaseCost:      a.PurchaseCost,
			Glyph:             a.Glyph,
		})
	}
	for _, r := range cat.Regions {
		fc.Regions = append(fc.Regions, fileRegion{
			Name:            r.Name,
			RequiredLevel:   r.RequiredLevel,
			ExplorationCost: r.ExplorationCost,
			Glyph:           r.Glyph,
		})
	}
	return fc
}

// checkDuplicates rejects names that collide case-insensitively within a kind
func checkDuplicates(cat domain.Catalog) error {
	check := func(kind string, names []string) error {
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			key := strings.ToLower(n)
			if seen[key] {
				return fmt.Errorf("%w: %s %q", domain.ErrDuplicateCatalogName, kind, n)
			}
			seen[key] = true
		}
		return nil
	}

	crops := make([]string, 0, len(cat.Crops))
	for _, c := range cat.Crops {
		crops = append(crops, c.Name)
	}
	animals := make([]string, 0, len(cat.Animals))
	for _, a := range cat.Animals {
		animals = append(animals, a.Name)
	}
	regions := make([]string, 0, len(cat.Regions))
	for _, r := range cat.Regions {
		regions = append(regions, r.Name)
	}

	if err := check("crop", crops); err != nil {
		return err
	}
	if err := check("animal", animals); err != nil {
		return err
	}
	return check("region", regions)
}
