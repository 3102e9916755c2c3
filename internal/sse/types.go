package sse

// LevelUpPayload is broadcast when a player gains a level
type LevelUpPayload struct {
	PlayerID   string `json:"player_id"`
	AccountKey string `json:"account_key"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	Source     string `json:"source,omitempty"`
}

// CropHarvestedPayload is broadcast when a crop is harvested
type CropHarvestedPayload struct {
	PlayerID string `json:"player_id"`
	FarmID   int64  `json:"farm_id"`
	CropName string `json:"crop_name"`
	Earned   int64  `json:"earned"`
}

// AnimalCollectedPayload is broadcast when an animal's product is collected
type AnimalCollectedPayload struct {
	PlayerID    string `json:"player_id"`
	FarmID      int64  `json:"farm_id"`
	AnimalName  string `json:"animal_name"`
	ProductName string `json:"product_name"`
	Earned      int64  `json:"earned"`
}

// RegionExploredPayload is broadcast when a player explores a region
type RegionExploredPayload struct {
	PlayerID   string `json:"player_id"`
	RegionName string `json:"region_name"`
	Experience int64  `json:"experience"`
}
