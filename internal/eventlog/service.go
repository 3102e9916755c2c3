package eventlog

import (
	"context"
	"fmt"

	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// Recent returns a player's most recent logged events, newest first
	Recent(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.EventLog
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	event.SubscribeAll(bus, s.handleEvent)
	logger.FromContext(context.Background()).Info(LogMsgSubscribed, "types", len(event.AllTypes))
	return nil
}

// handleEvent processes and logs events to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := toMap(evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}
	metadata, err := toMap(evt.Metadata)
	if err != nil {
		metadata = nil
	}

	var playerID *string
	if pid, ok := payload[PayloadKeyPlayerID].(string); ok && pid != "" {
		playerID = &pid
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), playerID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldPlayerID, playerID)
	return nil
}

// toMap converts a typed payload into the JSON object stored in the log
func toMap(v interface{}) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return event.DecodePayload[map[string]interface{}](v)
}

func (s *service) Recent(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	events, err := s.repo.GetEventsByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get events for player %s: %w", playerID, err)
	}
	return events, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
