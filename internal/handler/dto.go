package handler

import (
	"math"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/ledger"
	"github.com/osse101/NeuroFarm_Go/internal/plot"
)

// Request bodies

// CreatePlayerRequest registers a player, or returns the existing one
type CreatePlayerRequest struct {
	AccountKey string `json:"account_key" validate:"required,max=128,excludesall=\x00\n\r\t"`
	Language   string `json:"language" validate:"language"`
}

// SetLanguageRequest changes a player's display language
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required,language"`
}

// AmountRequest carries a positive coin or experience amount
type AmountRequest struct {
	Amount int64 `json:"amount" validate:"min=1,max=1000000000"`
}

// CreateFarmRequest names a new farm. An empty name uses the default.
type CreateFarmRequest struct {
	Name string `json:"name" validate:"max=256,excludesall=\x00\n\r\t"`
}

// ExploreRequest names the region to explore
type ExploreRequest struct {
	Region string `json:"region" validate:"required,max=64"`
}

// PlantRequest names the crop to plant
type PlantRequest struct {
	Crop string `json:"crop" validate:"required,max=64"`
}

// PurchaseAnimalRequest names the animal to buy
type PurchaseAnimalRequest struct {
	Animal string `json:"animal" validate:"required,max=64"`
}

// Response bodies. Durations are reported in whole seconds.

// PlayerResponse is a player with derived level progress
type PlayerResponse struct {
	ID                    string    `json:"id"`
	AccountKey            string    `json:"account_key"`
	Language              string    `json:"language"`
	Coins                 int64     `json:"coins"`
	Experience            int64     `json:"experience"`
	Level                 int       `json:"level"`
	NextLevelExperience   int64     `json:"next_level_experience"`
	ExperienceToNextLevel int64     `json:"experience_to_next_level"`
	AtMaxLevel            bool      `json:"at_max_level"`
	CreatedAt             time.Time `json:"created_at"`
}

// CreatePlayerResponse reports whether the call created the player
type CreatePlayerResponse struct {
	PlayerResponse
	Created bool `json:"created"`
}

// BalanceResponse is returned by credit and debit
type BalanceResponse struct {
	Coins int64 `json:"coins"`
}

// PlantedCropResponse is a planted crop with its derived state
type PlantedCropResponse struct {
	ID               int64            `json:"id"`
	FarmID           int64            `json:"farm_id"`
	Crop             string           `json:"crop"`
	Glyph            string           `json:"glyph"`
	PlantedAt        time.Time        `json:"planted_at"`
	ReadyAt          time.Time        `json:"ready_at"`
	HarvestedAt      *time.Time       `json:"harvested_at,omitempty"`
	State            domain.CropState `json:"state"`
	RemainingSeconds int64            `json:"remaining_seconds"`
}

// OwnedAnimalResponse is an owned animal with its readiness
type OwnedAnimalResponse struct {
	ID               int64     `json:"id"`
	FarmID           int64     `json:"farm_id"`
	Animal           string    `json:"animal"`
	Product          string    `json:"product"`
	Glyph            string    `json:"glyph"`
	PurchasedAt      time.Time `json:"purchased_at"`
	LastCollectedAt  time.Time `json:"last_collected_at"`
	NextReadyAt      time.Time `json:"next_ready_at"`
	Ready            bool      `json:"ready"`
	RemainingSeconds int64     `json:"remaining_seconds"`
}

// HarvestResponse is returned by a successful harvest
type HarvestResponse struct {
	Crop        PlantedCropResponse `json:"crop"`
	CoinsGained int64               `json:"coins_gained"`
	CoinsTotal  int64               `json:"coins_total"`
}

// CollectResponse is returned by a successful collection
type CollectResponse struct {
	Animal      OwnedAnimalResponse `json:"animal"`
	CoinsGained int64               `json:"coins_gained"`
	CoinsTotal  int64               `json:"coins_total"`
}

// CropTypeResponse is a crop catalog entry
type CropTypeResponse struct {
	Name          string `json:"name"`
	GrowthSeconds int64  `json:"growth_seconds"`
	SellPrice     int64  `json:"sell_price"`
	PlantingCost  int64  `json:"planting_cost"`
	Glyph         string `json:"glyph"`
}

// AnimalTypeResponse is an animal catalog entry
type AnimalTypeResponse struct {
	Name              string `json:"name"`
	ProductName       string `json:"product_name"`
	ProductionSeconds int64  `json:"production_seconds"`
	ProductSellPrice  int64  `json:"product_sell_price"`
	PurchaseCost      int64  `json:"purchase_cost"`
	Glyph             string `json:"glyph"`
}

// RegionResponse is a region catalog entry
type RegionResponse struct {
	Name            string `json:"name"`
	RequiredLevel   int    `json:"required_level"`
	ExplorationCost int64  `json:"exploration_cost"`
	Glyph           string `json:"glyph"`
}

// SeedResponse reports how many catalog rows a seed touched
type SeedResponse struct {
	Source  string            `json:"source"`
	Results domain.SeedReport `json:"results"`
}

func seconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(math.Ceil(d.Seconds()))
}

func newPlayerResponse(p *domain.Player) PlayerResponse {
	prog := ledger.ProgressFor(p.Experience)
	return PlayerResponse{
		ID:                    p.ID,
		AccountKey:            p.AccountKey,
		Language:              p.Language,
		Coins:                 p.Coins,
		Experience:            p.Experience,
		Level:                 p.Level,
		NextLevelExperience:   prog.NextLevel,
		ExperienceToNextLevel: prog.ToNextLevel,
		AtMaxLevel:            prog.AtMaxLevel,
		CreatedAt:             p.CreatedAt,
	}
}

func newPlantedCropResponse(c domain.PlantedCrop, now time.Time) PlantedCropResponse {
	return PlantedCropResponse{
		ID:               c.ID,
		FarmID:           c.FarmID,
		Crop:             c.CropName,
		Glyph:            c.Glyph,
		PlantedAt:        c.PlantedAt,
		ReadyAt:          c.ReadyAt,
		HarvestedAt:      c.HarvestedAt,
		State:            c.State(now),
		RemainingSeconds: seconds(c.Remaining(now)),
	}
}

func newPlotResponses(plots []plot.Plot) []PlantedCropResponse {
	out := make([]PlantedCropResponse, 0, len(plots))
	for _, p := range plots {
		out = append(out, PlantedCropResponse{
			ID:               p.ID,
			FarmID:           p.FarmID,
			Crop:             p.CropName,
			Glyph:            p.Glyph,
			PlantedAt:        p.PlantedAt,
			ReadyAt:          p.ReadyAt,
			HarvestedAt:      p.HarvestedAt,
			State:            p.State,
			RemainingSeconds: seconds(p.Remaining),
		})
	}
	return out
}

func newOwnedAnimalResponse(a domain.OwnedAnimal, now time.Time) OwnedAnimalResponse {
	return OwnedAnimalResponse{
		ID:               a.ID,
		FarmID:           a.FarmID,
		Animal:           a.AnimalName,
		Product:          a.ProductName,
		Glyph:            a.Glyph,
		PurchasedAt:      a.PurchasedAt,
		LastCollectedAt:  a.LastCollectedAt,
		NextReadyAt:      a.NextReadyAt,
		Ready:            a.Ready(now),
		RemainingSeconds: seconds(a.NextReadyAt.Sub(now)),
	}
}

func newCropTypeResponses(crops []domain.CropType) []CropTypeResponse {
	out := make([]CropTypeResponse, 0, len(crops))
	for _, c := range crops {
		out = append(out, CropTypeResponse{
			Name:          c.Name,
			GrowthSeconds: seconds(c.GrowthDuration),
			SellPrice:     c.SellPrice,
			PlantingCost:  c.PlantingCost,
			Glyph:         c.Glyph,
		})
	}
	return out
}

func newAnimalTypeResponses(animals []domain.AnimalType) []AnimalTypeResponse {
	out := make([]AnimalTypeResponse, 0, len(animals))
	for _, a := range animals {
		out = append(out, AnimalTypeResponse{
			Name:              a.Name,
			ProductName:       a.ProductName,
			ProductionSeconds: seconds(a.ProductionInterval),
			ProductSellPrice:  a.ProductSellPrice,
			PurchaseCost:      a.PurchaseCost,
			Glyph:             a.Glyph,
		})
	}
	return out
}

func newRegionResponses(regions []domain.Region) []RegionResponse {
	out := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, RegionResponse{
			Name:            r.Name,
			RequiredLevel:   r.RequiredLevel,
			ExplorationCost: r.ExplorationCost,
			Glyph:           r.Glyph,
		})
	}
	return out
}
