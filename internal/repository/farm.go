package repository

import (
	"context"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// Farm defines the interface for farm, crop and animal persistence
type Farm interface {
	GetFarmByID(ctx context.Context, farmID int64) (*domain.Farm, error)
	GetFarmByPlayer(ctx context.Context, playerID string) (*domain.Farm, error)

	// CreateFarm inserts the player's farm unless one exists and returns
	// whichever row ends up stored.
	CreateFarm(ctx context.Context, playerID, name string) (*domain.Farm, error)

	// ListPlantedCrops returns unharvested crops ordered by planting time
	ListPlantedCrops(ctx context.Context, farmID int64) ([]domain.PlantedCrop, error)

	// ListOwnedAnimals returns animals ordered by purchase time
	ListOwnedAnimals(ctx context.Context, farmID int64) ([]domain.OwnedAnimal, error)

	BeginTx(ctx context.Context) (FarmTx, error)
}
