package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

const eventLogColumns = `id, event_type, player_id, payload, metadata, created_at`

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) repository.EventLog {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the audit log. A player id that is not a
// UUID is stored as NULL.
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, playerID *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO event_log (event_type, player_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
		}
	}

	var pid *uuid.UUID
	if playerID != nil {
		if id, err := uuid.Parse(*playerID); err == nil {
			pid = &id
		}
	}

	_, err = r.db.Exec(ctx, query, eventType, pid, payloadJSON, metadataJSON)
	return wrap(ErrMsgFailedToLogEvent, err)
}

// GetEvents retrieves events based on filter criteria
func (r *eventLogRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + eventLogColumns + ` FROM event_log WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.PlayerID != nil {
		fmt.Fprintf(&queryBuilder, " AND player_id::text = $%d", argNum)
		args = append(args, *filter.PlayerID)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at <= $%d", argNum)
		args = append(args, *filter.Until)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, wrap(ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// GetEventsByPlayer retrieves events for a specific player
func (r *eventLogRepository) GetEventsByPlayer(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error) {
	return r.GetEvents(ctx, repository.EventLogFilter{PlayerID: &playerID, Limit: limit})
}

// GetEventsByType retrieves events of a specific type
func (r *eventLogRepository) GetEventsByType(ctx context.Context, eventType string, limit int) ([]repository.EventLogEntry, error) {
	return r.GetEvents(ctx, repository.EventLogFilter{EventType: &eventType, Limit: limit})
}

// CleanupOldEvents removes events older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM event_log
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, wrap(ErrMsgFailedToCleanupEvents, err)
	}

	return result.RowsAffected(), nil
}

// scanEvents scans rows into log entries
func (r *eventLogRepository) scanEvents(rows pgx.Rows) ([]repository.EventLogEntry, error) {
	var events []repository.EventLogEntry

	for rows.Next() {
		var evt repository.EventLogEntry
		var payloadJSON, metadataJSON []byte
		var pid *uuid.UUID

		err := rows.Scan(
			&evt.ID,
			&evt.EventType,
			&pid,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, wrap(ErrMsgFailedToQueryEvents, err)
		}
		if pid != nil {
			id := pid.String()
			evt.PlayerID = &id
		}

		// Unmarshal payload
		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, err
		}

		// Unmarshal metadata if present
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, err
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
