package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/cooldown"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/ledger"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
	"github.com/osse101/NeuroFarm_Go/internal/utils"
)

// Service defines the cooldown-gated pastimes
type Service interface {
	Fish(ctx context.Context, playerID string, now time.Time) (*domain.FishResult, error)
	OpenChest(ctx context.Context, playerID string, now time.Time) (*domain.ChestResult, error)
}

type service struct {
	repo      repository.Player
	cooldowns cooldown.Service
	publisher event.Publisher
	rng       utils.RandomSource
}

// NewService creates a new pastime service. A nil rng uses the default source.
func NewService(repo repository.Player, cooldowns cooldown.Service, publisher event.Publisher, rng utils.RandomSource) Service {
	if rng == nil {
		rng = utils.DefaultRandomSource()
	}
	return &service{
		repo:      repo,
		cooldowns: cooldowns,
		publisher: publisher,
		rng:       rng,
	}
}

func (s *service) Fish(ctx context.Context, playerID string, now time.Time) (*domain.FishResult, error) {
	var (
		result *domain.FishResult
		player *domain.Player
	)

	err := s.cooldowns.EnforceCooldown(ctx, playerID, domain.ActionFish, func() error {
		catch := utils.Pick(s.rng, domain.FishCatches)
		gain := int64(utils.RandomIntFrom(s.rng, domain.FishMinExperience, domain.FishMaxExperience))

		p, change, err := s.awardInTx(ctx, playerID, 0, gain)
		if err != nil {
			return err
		}
		player = p
		result = &domain.FishResult{Catch: catch, ExperienceGain: gain, Level: change}
		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, playerID, domain.ActionFish, err)
	}

	logger.FromContext(ctx).Info("Player went fishing", "player_id", playerID, "catch", result.Catch, "experience", result.ExperienceGain, "at", now)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewFishedEvent(playerID, result))
	}
	ledger.PublishLevelUp(ctx, s.publisher, player, result.Level, domain.ExperienceSourceFish)
	return result, nil
}

func (s *service) OpenChest(ctx context.Context, playerID string, now time.Time) (*domain.ChestResult, error) {
	var (
		result *domain.ChestResult
		player *domain.Player
	)

	err := s.cooldowns.EnforceCooldown(ctx, playerID, domain.ActionOpenChest, func() error {
		coins := int64(utils.RandomIntFrom(s.rng, domain.ChestMinCoins, domain.ChestMaxCoins))
		gain := int64(utils.RandomIntFrom(s.rng, domain.ChestMinExperience, domain.ChestMaxExperience))

		p, change, err := s.awardInTx(ctx, playerID, coins, gain)
		if err != nil {
			return err
		}
		player = p
		result = &domain.ChestResult{Coins: coins, CoinsTotal: p.Coins, ExperienceGain: gain, Level: change}
		return nil
	})
	if err != nil {
		return nil, s.rejected(ctx, playerID, domain.ActionOpenChest, err)
	}

	logger.FromContext(ctx).Info("Player opened a chest", "player_id", playerID, "coins", result.Coins, "experience", result.ExperienceGain, "at", now)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewChestOpenedEvent(playerID, result))
	}
	ledger.PublishLevelUp(ctx, s.publisher, player, result.Level, domain.ExperienceSourceChest)
	return result, nil
}

// awardInTx credits coins (when positive) and experience in one transaction
// and settles the resulting level
func (s *service) awardInTx(ctx context.Context, playerID string, coins, experience int64) (*domain.Player, domain.LevelChange, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, domain.LevelChange{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if coins > 0 {
		if _, err := tx.AdjustCoins(ctx, playerID, coins); err != nil {
			return nil, domain.LevelChange{}, fmt.Errorf("failed to credit coins: %w", err)
		}
	}
	player, err := tx.AddExperience(ctx, playerID, experience)
	if err != nil {
		return nil, domain.LevelChange{}, fmt.Errorf("failed to add experience: %w", err)
	}
	change, err := ledger.SettleLevel(ctx, tx, player, experience)
	if err != nil {
		return nil, domain.LevelChange{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.LevelChange{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return player, change, nil
}

// rejected publishes a cooldown rejection when err is one, and returns err
func (s *service) rejected(ctx context.Context, playerID, action string, err error) error {
	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		logger.FromContext(ctx).Debug("Action on cooldown", "player_id", playerID, "action", action, "remaining", cd.Remaining)
		if s.publisher != nil {
			s.publisher.PublishWithRetry(ctx, event.NewCooldownRejectedEvent(playerID, action))
		}
	}
	return err
}
