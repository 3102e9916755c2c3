package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// SQLSTATE codes that mean the server went away rather than rejected the query
var unavailableCodes = map[string]bool{
	"57P01": true, // admin_shutdown
	"57P02": true, // crash_shutdown
	"57P03": true, // cannot_connect_now
	"53300": true, // too_many_connections
}

// IsUnavailable reports whether err means the store could not be reached in
// time, as opposed to a query the store refused.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrStorageUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") || unavailableCodes[pgErr.Code]
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// WrapError annotates a storage failure with msg. Connectivity failures and
// timeouts additionally match domain.ErrStorageUnavailable.
func WrapError(msg string, err error) error {
	if err == nil {
		return nil
	}
	if IsUnavailable(err) && !errors.Is(err, domain.ErrStorageUnavailable) {
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}
