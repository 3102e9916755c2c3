package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/database"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
}

// NewPostgresService creates a new cooldown service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{
		db:     db,
		config: config,
	}
}

// CheckCooldown checks if a player's action is on cooldown (unlocked read)
func (b *postgresBackend) CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error) {
	// Dev mode bypasses all cooldowns
	if b.config.DevMode {
		return false, 0, nil
	}

	lastUsed, err := b.getLastUsed(ctx, b.db, playerID, action)
	if err != nil {
		return false, 0, database.WrapError(ErrMsgCheckCooldownFailed, err)
	}

	onCooldown, remaining := checkCooldown(b.config.now(), lastUsed, b.config.GetCooldownDuration(action))
	return onCooldown, remaining, nil
}

// EnforceCooldown atomically checks cooldown and executes action if allowed
// Uses check-then-lock pattern for performance
func (b *postgresBackend) EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	// PHASE 1: Cheap unlocked check - fast rejection for most repeat requests
	onCooldown, remaining, err := b.CheckCooldown(ctx, playerID, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	// Dev mode - just execute
	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "player_id", playerID)
		if err := fn(); err != nil {
			return err
		}
		// Still record the use so GetLastUsed reflects it
		return b.updateCooldown(ctx, playerID, action, b.config.now())
	}

	// PHASE 2: Transaction with advisory lock
	// Advisory locks work even when no row exists (unlike SELECT FOR UPDATE)
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return database.WrapError(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, SQLAdvisoryLock, hashPlayerAction(playerID, action)); err != nil {
		return database.WrapError(ErrMsgAcquireLockFailed, err)
	}

	// Recheck cooldown with exclusive lock acquired
	lastUsed, err := b.getLastUsed(ctx, tx, playerID, action)
	if err != nil {
		return database.WrapError(ErrMsgGetCooldownTxFailed, err)
	}

	now := b.config.now()
	if onCooldown, remaining := checkCooldown(now, lastUsed, b.config.GetCooldownDuration(action)); onCooldown {
		log.Debug(LogMsgRaceConditionDetected,
			"action", action, "player_id", playerID, "remaining", remaining)
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	// fn failing rolls back and leaves the cooldown untouched
	if err := fn(); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, SQLUpsertCooldown, playerID, action, now); err != nil {
		return database.WrapError(ErrMsgUpdateCooldownFailed, err)
	}

	// Commit transaction (releases advisory lock automatically)
	if err := tx.Commit(ctx); err != nil {
		return database.WrapError(ErrMsgCommitTransactionFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced, "action", action, "player_id", playerID)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *postgresBackend) ResetCooldown(ctx context.Context, playerID, action string) error {
	if _, err := uuid.Parse(playerID); err != nil {
		return nil
	}
	if _, err := b.db.Exec(ctx, SQLDeleteCooldown, playerID, action); err != nil {
		return database.WrapError(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

// GetLastUsed returns when action was last performed
func (b *postgresBackend) GetLastUsed(ctx context.Context, playerID, action string) (*time.Time, error) {
	return b.getLastUsed(ctx, b.db, playerID, action)
}

// getLastUsed reads the last use, nil when the action was never recorded
func (b *postgresBackend) getLastUsed(ctx context.Context, q querier, playerID, action string) (*time.Time, error) {
	if _, err := uuid.Parse(playerID); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrPlayerNotFound, playerID)
	}

	var lastUsed time.Time
	err := q.QueryRow(ctx, SQLSelectLastUsed, playerID, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No cooldown record
		}
		return nil, database.WrapError(ErrMsgGetLastUsedFailed, err)
	}
	return &lastUsed, nil
}

// updateCooldown updates cooldown outside transaction
func (b *postgresBackend) updateCooldown(ctx context.Context, playerID, action string, timestamp time.Time) error {
	_, err := b.db.Exec(ctx, SQLUpsertCooldown, playerID, action, timestamp)
	return err
}

// hashPlayerAction creates a consistent int64 hash from playerID + action for advisory locking
func hashPlayerAction(playerID, action string) int64 {
	h := sha256.Sum256([]byte(playerID + HashSeparator + action))
	// Use first 8 bytes as int64, masking MSB to ensure positive value and avoid overflow warning
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
