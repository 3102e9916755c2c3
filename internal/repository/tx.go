package repository

import (
	"context"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// PlayerTx is a transaction scoped to ledger mutations. Every mutating
// method is a single guarded statement: it either applies fully or reports
// why the guard rejected it.
type PlayerTx interface {
	Tx

	// GetPlayer reads the player row inside the transaction
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)

	// AdjustCoins applies a signed delta, refusing any result below zero.
	// Returns the new balance, ErrInsufficientFunds or ErrPlayerNotFound.
	AdjustCoins(ctx context.Context, playerID string, delta int64) (int64, error)

	// AddExperience adds a non-negative amount and returns the updated player
	AddExperience(ctx context.Context, playerID string, amount int64) (*domain.Player, error)

	// RaiseLevel sets level to max(level, newLevel)
	RaiseLevel(ctx context.Context, playerID string, newLevel int) error

	// ChargeExploration deducts cost and adds experience only when the player
	// has the required level and enough coins. LevelTooLow is reported before
	// InsufficientFunds.
	ChargeExploration(ctx context.Context, playerID string, requiredLevel int, cost, experience int64) (*domain.Player, error)
}

// FarmTx extends PlayerTx with the farm-scoped guarded updates
type FarmTx interface {
	PlayerTx

	InsertPlantedCrop(ctx context.Context, farmID int64, crop domain.CropType, plantedAt time.Time) (*domain.PlantedCrop, error)

	// HarvestCrop marks a ready, unharvested crop as harvested at now.
	// Returns ErrPlantedCropNotFound, ErrAlreadyHarvested or ErrNotReady when
	// the guard rejects the update.
	HarvestCrop(ctx context.Context, farmID, plantedCropID int64, now time.Time) (*HarvestRecord, error)

	InsertOwnedAnimal(ctx context.Context, farmID int64, animal domain.AnimalType, purchasedAt time.Time) (*domain.OwnedAnimal, error)

	// CollectAnimal resets last_collected_at to now when the production
	// interval has elapsed. Returns ErrOwnedAnimalNotFound or ErrNotReady
	// when the guard rejects the update.
	CollectAnimal(ctx context.Context, farmID, ownedAnimalID int64, now time.Time) (*CollectRecord, error)
}

// HarvestRecord is what a successful harvest update returns
type HarvestRecord struct {
	Crop      domain.PlantedCrop
	PlayerID  string
	SellPrice int64
}

// CollectRecord is what a successful collect update returns
type CollectRecord struct {
	Animal    domain.OwnedAnimal
	PlayerID  string
	SellPrice int64
}
