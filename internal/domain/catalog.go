package domain

import "time"

// CropType is a catalog entry describing a plantable crop
type CropType struct {
	ID             int64         `json:"id" db:"crop_type_id"`
	Name           string        `json:"name" db:"name"`
	GrowthDuration time.Duration `json:"growth_duration" db:"growth_seconds"`
	SellPrice      int64         `json:"sell_price" db:"sell_price"`
	PlantingCost   int64         `json:"planting_cost" db:"planting_cost"`
	Glyph          string        `json:"glyph" db:"glyph"`
}

// AnimalType is a catalog entry describing a purchasable animal
type AnimalType struct {
	ID                 int64         `json:"id" db:"animal_type_id"`
	Name               string        `json:"name" db:"name"`
	ProductName        string        `json:"product_name" db:"product_name"`
	ProductionInterval time.Duration `json:"production_interval" db:"production_seconds"`
	ProductSellPrice   int64         `json:"product_sell_price" db:"product_sell_price"`
	PurchaseCost       int64         `json:"purchase_cost" db:"purchase_cost"`
	Glyph              string        `json:"glyph" db:"glyph"`
}

// Region is a catalog entry describing an explorable area
type Region struct {
	ID              int64  `json:"id" db:"region_id"`
	Name            string `json:"name" db:"name"`
	RequiredLevel   int    `json:"required_level" db:"required_level"`
	ExplorationCost int64  `json:"exploration_cost" db:"exploration_cost"`
	Glyph           string `json:"glyph" db:"glyph"`
}

// Catalog is the full set of reference data
type Catalog struct {
	Crops   []CropType   `json:"crops"`
	Animals []AnimalType `json:"animals"`
	Regions []Region     `json:"regions"`
}

// SeedReport counts the rows touched by a catalog seed
type SeedReport struct {
	Crops   int `json:"crops"`
	Animals int `json:"animals"`
	Regions int `json:"regions"`
}
