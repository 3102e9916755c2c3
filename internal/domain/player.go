package domain

import "time"

// Starting values for a freshly created player
const (
	StartingCoins      int64 = 100
	StartingExperience int64 = 0
	StartingLevel            = 1
)

// Player is the persistent progression state of one account
type Player struct {
	ID         string    `json:"id" db:"player_id"`
	AccountKey string    `json:"account_key" db:"account_key"`
	Language   string    `json:"language" db:"language"`
	Coins      int64     `json:"coins" db:"coins"`
	Experience int64     `json:"experience" db:"experience"`
	Level      int       `json:"level" db:"level"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// LevelChange describes the outcome of an experience award
type LevelChange struct {
	OldLevel   int   `json:"old_level"`
	NewLevel   int   `json:"new_level"`
	Experience int64 `json:"experience"`
	Gained     int64 `json:"gained"`
}

// LeveledUp reports whether the award crossed at least one level threshold
func (c LevelChange) LeveledUp() bool {
	return c.NewLevel > c.OldLevel
}

// ExploreResult is returned by a successful exploration
type ExploreResult struct {
	Region         string      `json:"region"`
	Glyph          string      `json:"glyph"`
	CoinsSpent     int64       `json:"coins_spent"`
	ExperienceGain int64       `json:"experience_gained"`
	CoinsRemaining int64       `json:"coins_remaining"`
	Level          LevelChange `json:"level"`
}

// FishResult is returned by a fishing trip
type FishResult struct {
	Catch          string      `json:"catch"`
	ExperienceGain int64       `json:"experience_gained"`
	Level          LevelChange `json:"level"`
}

// ChestResult is returned when a chest is opened
type ChestResult struct {
	Coins          int64       `json:"coins"`
	CoinsTotal     int64       `json:"coins_total"`
	ExperienceGain int64       `json:"experience_gained"`
	Level          LevelChange `json:"level"`
}
