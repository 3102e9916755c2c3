package husbandry

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// Service defines the husbandry manager: buying animals and collecting
// their products
type Service interface {
	Purchase(ctx context.Context, farmID int64, animalName string, now time.Time) (*domain.OwnedAnimal, error)
	ListOwned(ctx context.Context, farmID int64) ([]domain.OwnedAnimal, error)
	Collect(ctx context.Context, farmID, ownedAnimalID int64, now time.Time) (*domain.CollectResult, error)
}

type service struct {
	repo      repository.Farm
	catalog   catalog.Service
	publisher event.Publisher
}

// NewService creates a new husbandry manager
func NewService(repo repository.Farm, catalogSvc catalog.Service, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   catalogSvc,
		publisher: publisher,
	}
}

func (s *service) Purchase(ctx context.Context, farmID int64, animalName string, now time.Time) (*domain.OwnedAnimal, error) {
	animal, err := s.catalog.AnimalByName(ctx, animalName)
	if err != nil {
		return nil, err
	}

	f, err := s.repo.GetFarmByID(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to get farm %d: %w", farmID, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.AdjustCoins(ctx, f.PlayerID, -animal.PurchaseCost); err != nil {
		return nil, fmt.Errorf("failed to pay for %s: %w", animal.Name, err)
	}
	owned, err := tx.InsertOwnedAnimal(ctx, farmID, *animal, now)
	if err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", animal.Name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Animal purchased", "farm_id", farmID, "owned_animal_id", owned.ID, "animal", animal.Name)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewAnimalPurchasedEvent(f.PlayerID, owned, animal.PurchaseCost))
	}
	return owned, nil
}

func (s *service) ListOwned(ctx context.Context, farmID int64) ([]domain.OwnedAnimal, error) {
	if _, err := s.repo.GetFarmByID(ctx, farmID); err != nil {
		return nil, fmt.Errorf("failed to get farm %d: %w", farmID, err)
	}
	animals, err := s.repo.ListOwnedAnimals(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals for farm %d: %w", farmID, err)
	}
	return animals, nil
}

func (s *service) Collect(ctx context.Context, farmID, ownedAnimalID int64, now time.Time) (*domain.CollectResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	rec, err := tx.CollectAnimal(ctx, farmID, ownedAnimalID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to collect from animal %d: %w", ownedAnimalID, err)
	}
	balance, err := tx.AdjustCoins(ctx, rec.PlayerID, rec.SellPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to pay out collection: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Animal product collected",
		"farm_id", farmID, "owned_animal_id", ownedAnimalID, "product", rec.Animal.ProductName, "earned", rec.SellPrice)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewAnimalCollectedEvent(rec.PlayerID, &rec.Animal, rec.SellPrice))
	}

	return &domain.CollectResult{
		Animal:     rec.Animal,
		CoinsGain:  rec.SellPrice,
		CoinsTotal: balance,
	}, nil
}
