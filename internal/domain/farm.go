package domain

import "time"

// CropState is the derived lifecycle state of a planted crop
type CropState string

const (
	CropStatePlanted     CropState = "planted"
	CropStateHarvestable CropState = "harvestable"
	CropStateHarvested   CropState = "harvested"
)

// FarmNameFormat builds the default farm name from a display name
const FarmNameFormat = "%s's Farm"

// Farm is the container for a player's crops and animals
type Farm struct {
	ID        int64     `json:"id" db:"farm_id"`
	PlayerID  string    `json:"player_id" db:"player_id"`
	Name      string    `json:"name" db:"name"`
	Level     int       `json:"level" db:"level"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PlantedCrop is one crop instance growing on a farm
type PlantedCrop struct {
	ID          int64      `json:"id" db:"planted_crop_id"`
	FarmID      int64      `json:"farm_id" db:"farm_id"`
	CropTypeID  int64      `json:"crop_type_id" db:"crop_type_id"`
	CropName    string     `json:"crop_name" db:"name"`
	Glyph       string     `json:"glyph" db:"glyph"`
	PlantedAt   time.Time  `json:"planted_at" db:"planted_at"`
	ReadyAt     time.Time  `json:"ready_at"`
	HarvestedAt *time.Time `json:"harvested_at,omitempty" db:"harvested_at"`
}

// State derives the crop's lifecycle state at the given instant
func (c *PlantedCrop) State(now time.Time) CropState {
	switch {
	case c.HarvestedAt != nil:
		return CropStateHarvested
	case !now.Before(c.ReadyAt):
		return CropStateHarvestable
	default:
		return CropStatePlanted
	}
}

// Remaining returns how long until the crop can be harvested, zero if ready
func (c *PlantedCrop) Remaining(now time.Time) time.Duration {
	if d := c.ReadyAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// OwnedAnimal is one animal instance living on a farm
type OwnedAnimal struct {
	ID              int64     `json:"id" db:"owned_animal_id"`
	FarmID          int64     `json:"farm_id" db:"farm_id"`
	AnimalTypeID    int64     `json:"animal_type_id" db:"animal_type_id"`
	AnimalName      string    `json:"animal_name" db:"name"`
	ProductName     string    `json:"product_name" db:"product_name"`
	Glyph           string    `json:"glyph" db:"glyph"`
	PurchasedAt     time.Time `json:"purchased_at" db:"purchased_at"`
	LastCollectedAt time.Time `json:"last_collected_at" db:"last_collected_at"`
	NextReadyAt     time.Time `json:"next_ready_at"`
}

// Ready reports whether the animal's product can be collected at now
func (a *OwnedAnimal) Ready(now time.Time) bool {
	return !now.Before(a.NextReadyAt)
}

// HarvestResult is returned by a successful harvest
type HarvestResult struct {
	Crop       PlantedCrop `json:"crop"`
	CoinsGain  int64       `json:"coins_gained"`
	CoinsTotal int64       `json:"coins_total"`
}

// CollectResult is returned by a successful collection
type CollectResult struct {
	Animal     OwnedAnimal `json:"animal"`
	CoinsGain  int64       `json:"coins_gained"`
	CoinsTotal int64       `json:"coins_total"`
}
