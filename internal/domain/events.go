package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "crop.harvested")
const (
	EventTypePlayerCreated    = "player.created"
	EventTypePlayerLevelUp    = "player.level_up"
	EventTypeCropPlanted      = "crop.planted"
	EventTypeCropHarvested    = "crop.harvested"
	EventTypeAnimalPurchased  = "animal.purchased"
	EventTypeAnimalCollected  = "animal.collected"
	EventTypeRegionExplored   = "region.explored"
	EventTypeFished           = "activity.fished"
	EventTypeChestOpened      = "activity.chest_opened"
	EventTypeCatalogSeeded    = "catalog.seeded"
	EventTypeCooldownRejected = "cooldown.rejected"
)

// PlayerCreatedPayload is the event payload for player.created events
type PlayerCreatedPayload struct {
	PlayerID   string `json:"player_id"`
	AccountKey string `json:"account_key"`
	Timestamp  int64  `json:"timestamp"`
}

// LevelUpPayload is the event payload for player.level_up events
type LevelUpPayload struct {
	PlayerID   string `json:"player_id"`
	AccountKey string `json:"account_key"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	Experience int64  `json:"experience"`
	Source     string `json:"source"`
	Timestamp  int64  `json:"timestamp"`
}

// CropPlantedPayload is the event payload for crop.planted events
type CropPlantedPayload struct {
	PlayerID      string `json:"player_id"`
	FarmID        int64  `json:"farm_id"`
	PlantedCropID int64  `json:"planted_crop_id"`
	CropName      string `json:"crop_name"`
	Cost          int64  `json:"cost"`
	ReadyAt       int64  `json:"ready_at"`
	Timestamp     int64  `json:"timestamp"`
}

// CropHarvestedPayload is the event payload for crop.harvested events
type CropHarvestedPayload struct {
	PlayerID      string `json:"player_id"`
	FarmID        int64  `json:"farm_id"`
	PlantedCropID int64  `json:"planted_crop_id"`
	CropName      string `json:"crop_name"`
	Earned        int64  `json:"earned"`
	Timestamp     int64  `json:"timestamp"`
}

// AnimalPurchasedPayload is the event payload for animal.purchased events
type AnimalPurchasedPayload struct {
	PlayerID      string `json:"player_id"`
	FarmID        int64  `json:"farm_id"`
	OwnedAnimalID int64  `json:"owned_animal_id"`
	AnimalName    string `json:"animal_name"`
	Cost          int64  `json:"cost"`
	Timestamp     int64  `json:"timestamp"`
}

// AnimalCollectedPayload is the event payload for animal.collected events
type AnimalCollectedPayload struct {
	PlayerID      string `json:"player_id"`
	FarmID        int64  `json:"farm_id"`
	OwnedAnimalID int64  `json:"owned_animal_id"`
	AnimalName    string `json:"animal_name"`
	ProductName   string `json:"product_name"`
	Earned        int64  `json:"earned"`
	Timestamp     int64  `json:"timestamp"`
}

// RegionExploredPayload is the event payload for region.explored events
type RegionExploredPayload struct {
	PlayerID   string `json:"player_id"`
	RegionName string `json:"region_name"`
	Cost       int64  `json:"cost"`
	Experience int64  `json:"experience"`
	Timestamp  int64  `json:"timestamp"`
}

// FishedPayload is the event payload for activity.fished events
type FishedPayload struct {
	PlayerID   string `json:"player_id"`
	Catch      string `json:"catch"`
	Experience int64  `json:"experience"`
	Timestamp  int64  `json:"timestamp"`
}

// ChestOpenedPayload is the event payload for activity.chest_opened events
type ChestOpenedPayload struct {
	PlayerID   string `json:"player_id"`
	Coins      int64  `json:"coins"`
	Experience int64  `json:"experience"`
	Timestamp  int64  `json:"timestamp"`
}

// CatalogSeededPayload is the event payload for catalog.seeded events
type CatalogSeededPayload struct {
	Crops     int    `json:"crops"`
	Animals   int    `json:"animals"`
	Regions   int    `json:"regions"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// CooldownRejectedPayload is the event payload for cooldown.rejected events
type CooldownRejectedPayload struct {
	PlayerID  string `json:"player_id"`
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
}
