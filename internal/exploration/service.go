package exploration

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/ledger"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
	"github.com/osse101/NeuroFarm_Go/internal/utils"
)

// Service defines the exploration gate
type Service interface {
	// Explore charges the region's cost and awards experience when the
	// player meets the level requirement
	Explore(ctx context.Context, playerID, regionName string, now time.Time) (*domain.ExploreResult, error)
}

type service struct {
	repo      repository.Player
	catalog   catalog.Service
	publisher event.Publisher
	rng       utils.RandomSource
}

// NewService creates a new exploration gate. A nil rng uses the default source.
func NewService(repo repository.Player, catalogSvc catalog.Service, publisher event.Publisher, rng utils.RandomSource) Service {
	if rng == nil {
		rng = utils.DefaultRandomSource()
	}
	return &service{
		repo:      repo,
		catalog:   catalogSvc,
		publisher: publisher,
		rng:       rng,
	}
}

func (s *service) Explore(ctx context.Context, playerID, regionName string, now time.Time) (*domain.ExploreResult, error) {
	region, err := s.catalog.RegionByName(ctx, regionName)
	if err != nil {
		return nil, err
	}

	reward := int64(utils.RandomIntFrom(s.rng, domain.ExploreMinExperience, domain.ExploreMaxExperience))

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.ChargeExploration(ctx, playerID, region.RequiredLevel, region.ExplorationCost, reward)
	if err != nil {
		return nil, fmt.Errorf("failed to explore %s: %w", region.Name, err)
	}
	change, err := ledger.SettleLevel(ctx, tx, player, reward)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result := &domain.ExploreResult{
		Region:         region.Name,
		Glyph:          region.Glyph,
		CoinsSpent:     region.ExplorationCost,
		ExperienceGain: reward,
		CoinsRemaining: player.Coins,
		Level:          change,
	}

	logger.FromContext(ctx).Info("Region explored",
		"player_id", playerID, "region", region.Name, "experience", reward, "at", now)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewRegionExploredEvent(playerID, result))
	}
	ledger.PublishLevelUp(ctx, s.publisher, player, change, domain.ExperienceSourceExplore)
	return result, nil
}
