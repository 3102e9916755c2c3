package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/NeuroFarm_Go/internal/database"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(ErrMsgFailedToRollbackTransaction, "error", err)
	}
}

// parsePlayerUUID parses a player ID. A malformed ID can never match a row,
// so it is reported as a missing player.
func parsePlayerUUID(playerID string) (uuid.UUID, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q", domain.ErrPlayerNotFound, ErrMsgInvalidPlayerID, playerID)
	}
	return u, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

func fromSeconds(s int64) time.Duration {
	return time.Duration(s) * time.Second
}

// wrap is database.WrapError under a shorter name
func wrap(msg string, err error) error {
	return database.WrapError(msg, err)
}
