package farm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// DefaultName is used when a farm is created without a name
const DefaultName = "My Farm"

// MaxNameLength bounds farm names in characters
const MaxNameLength = 64

// Service defines the farm registry
type Service interface {
	// GetOrCreate returns the player's farm, creating it on first use
	GetOrCreate(ctx context.Context, playerID, name string) (*domain.Farm, error)
	Get(ctx context.Context, farmID int64) (*domain.Farm, error)
	GetByPlayer(ctx context.Context, playerID string) (*domain.Farm, error)
}

type service struct {
	repo repository.Farm
}

// NewService creates a new farm registry
func NewService(repo repository.Farm) Service {
	return &service{repo: repo}
}

func (s *service) GetOrCreate(ctx context.Context, playerID, name string) (*domain.Farm, error) {
	f, err := s.repo.GetFarmByPlayer(ctx, playerID)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, domain.ErrFarmNotFound) {
		return nil, fmt.Errorf("failed to get farm for player %s: %w", playerID, err)
	}

	f, err = s.repo.CreateFarm(ctx, playerID, normalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create farm for player %s: %w", playerID, err)
	}
	logger.FromContext(ctx).Info("Farm ready", "farm_id", f.ID, "player_id", playerID)
	return f, nil
}

func (s *service) Get(ctx context.Context, farmID int64) (*domain.Farm, error) {
	f, err := s.repo.GetFarmByID(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to get farm %d: %w", farmID, err)
	}
	return f, nil
}

func (s *service) GetByPlayer(ctx context.Context, playerID string) (*domain.Farm, error) {
	f, err := s.repo.GetFarmByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get farm for player %s: %w", playerID, err)
	}
	return f, nil
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if r := []rune(name); len(r) > MaxNameLength {
		return string(r[:MaxNameLength])
	}
	return name
}
