package repository

import (
	"context"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByAccount(ctx context.Context, accountKey string) (*domain.Player, error)

	// CreatePlayer inserts a player with starting values unless one already
	// exists for accountKey. created is false when another caller won the race.
	CreatePlayer(ctx context.Context, accountKey, language string) (player *domain.Player, created bool, err error)

	UpdateLanguage(ctx context.Context, playerID, language string) error

	BeginTx(ctx context.Context) (PlayerTx, error)
}
