package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

const playerColumns = `player_id, account_key, language, coins, experience, level, created_at, updated_at`

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.AccountKey, &p.Language, &p.Coins, &p.Experience, &p.Level, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPlayerByID returns the player or domain.ErrPlayerNotFound
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return getPlayer(ctx, r.db, `SELECT `+playerColumns+` FROM players WHERE player_id = $1`, id)
}

// GetPlayerByAccount returns the player bound to an external account key
func (r *PlayerRepository) GetPlayerByAccount(ctx context.Context, accountKey string) (*domain.Player, error) {
	return getPlayer(ctx, r.db, `SELECT `+playerColumns+` FROM players WHERE account_key = $1`, accountKey)
}

// CreatePlayer inserts a new player with starting values. When the account
// already exists the stored row is returned with created=false.
func (r *PlayerRepository) CreatePlayer(ctx context.Context, accountKey, language string) (*domain.Player, bool, error) {
	query := `
		INSERT INTO players (account_key, language, coins, experience, level)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_key) DO NOTHING
		RETURNING ` + playerColumns

	p, err := scanPlayer(r.db.QueryRow(ctx, query, accountKey, language,
		domain.StartingCoins, domain.StartingExperience, domain.StartingLevel))
	if err == nil {
		return p, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, wrap(ErrMsgFailedToInsertPlayer, err)
	}

	// Lost the race; the winner's row is authoritative
	p, err = r.GetPlayerByAccount(ctx, accountKey)
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}

// UpdateLanguage sets the player's display language
func (r *PlayerRepository) UpdateLanguage(ctx context.Context, playerID, language string) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `UPDATE players SET language = $2, updated_at = NOW() WHERE player_id = $1`, id, language)
	if err != nil {
		return wrap(ErrMsgFailedToUpdateLanguage, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// BeginTx starts a ledger transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	return beginGameTx(ctx, r.db)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getPlayer(ctx context.Context, q querier, query string, arg any) (*domain.Player, error) {
	p, err := scanPlayer(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, wrap(ErrMsgFailedToGetPlayer, err)
	}
	return p, nil
}
