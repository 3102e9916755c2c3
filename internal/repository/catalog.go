package repository

import (
	"context"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// Catalog defines the interface for reference data persistence
type Catalog interface {
	// SeedCatalog upserts every entry by name in a single transaction
	SeedCatalog(ctx context.Context, catalog domain.Catalog) (*domain.SeedReport, error)

	// Lookups are case-insensitive and return ErrUnknownCrop,
	// ErrUnknownAnimal or ErrUnknownRegion on a miss.
	GetCropTypeByName(ctx context.Context, name string) (*domain.CropType, error)
	GetAnimalTypeByName(ctx context.Context, name string) (*domain.AnimalType, error)
	GetRegionByName(ctx context.Context, name string) (*domain.Region, error)

	ListCropTypes(ctx context.Context) ([]domain.CropType, error)
	ListAnimalTypes(ctx context.Context) ([]domain.AnimalType, error)
	ListRegions(ctx context.Context) ([]domain.Region, error)
}
