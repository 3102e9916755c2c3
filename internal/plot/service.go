package plot

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

// Plot is a planted crop together with its state at a given instant
type Plot struct {
	domain.PlantedCrop
	State     domain.CropState `json:"state"`
	Remaining time.Duration    `json:"remaining"`
}

// Service defines the plot manager: planting, listing and harvesting crops
type Service interface {
	Plant(ctx context.Context, farmID int64, cropName string, now time.Time) (*domain.PlantedCrop, error)
	ListPlanted(ctx context.Context, farmID int64, now time.Time) ([]Plot, error)
	Harvest(ctx context.Context, farmID, plantedCropID int64, now time.Time) (*domain.HarvestResult, error)
}

type service struct {
	repo      repository.Farm
	catalog   catalog.Service
	publisher event.Publisher
}

// NewService creates a new plot manager
func NewService(repo repository.Farm, catalogSvc catalog.Service, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   catalogSvc,
		publisher: publisher,
	}
}

func (s *service) Plant(ctx context.Context, farmID int64, cropName string, now time.Time) (*domain.PlantedCrop, error) {
	log := logger.FromContext(ctx)

	crop, err := s.catalog.CropByName(ctx, cropName)
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

	if _, err := tx.AdjustCoins(ctx, f.PlayerID, -crop.PlantingCost); err != nil {
		return nil, fmt.Errorf("failed to pay for %s: %w", crop.Name, err)
	}
	planted, err := tx.InsertPlantedCrop(ctx, farmID, *crop, now)
	if err != nil {
		return nil, fmt.Errorf("failed to plant %s: %w", crop.Name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Crop planted", "farm_id", farmID, "planted_crop_id", planted.ID, "crop", crop.Name, "ready_at", planted.ReadyAt)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewCropPlantedEvent(f.PlayerID, planted, crop.PlantingCost))
	}
	return planted, nil
}

func (s *service) ListPlanted(ctx context.Context, farmID int64, now time.Time) ([]Plot, error) {
	if _, err := s.repo.GetFarmByID(ctx, farmID); err != nil {
		return nil, fmt.Errorf("failed to get farm %d: %w", farmID, err)
	}

	crops, err := s.repo.ListPlantedCrops(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crops for farm %d: %w", farmID, err)
	}

	plots := make([]Plot, 0, len(crops))
	for i := range crops {
		plots = append(plots, Plot{
			PlantedCrop: crops[i],
			State:       crops[i].State(now),
			Remaining:   crops[i].Remaining(now),
		})
	}
	return plots, nil
}

func (s *service) Harvest(ctx context.Context, farmID, plantedCropID int64, now time.Time) (*domain.HarvestResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	rec, err := tx.HarvestCrop(ctx, farmID, plantedCropID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to harvest crop %d: %w", plantedCropID, err)
	}
	balance, err := tx.AdjustCoins(ctx, rec.PlayerID, rec.SellPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to pay out harvest: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Crop harvested",
		"farm_id", farmID, "planted_crop_id", plantedCropID, "crop", rec.Crop.CropName, "earned", rec.SellPrice)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewCropHarvestedEvent(rec.PlayerID, &rec.Crop, rec.SellPrice))
	}

	return &domain.HarvestResult{
		Crop:       rec.Crop,
		CoinsGain:  rec.SellPrice,
		CoinsTotal: balance,
	}, nil
}
