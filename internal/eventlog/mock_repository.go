package eventlog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// MockRepository is a mock implementation of repository.EventLog
type MockRepository struct {
	mock.Mock
}

var _ repository.EventLog = (*MockRepository)(nil)

func (m *MockRepository) LogEvent(ctx context.Context, eventType string, playerID *string, payload, metadata map[string]interface{}) error {
	args := m.Called(ctx, eventType, playerID, payload, metadata)
	return args.Error(0)
}

func (m *MockRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

func (m *MockRepository) GetEventsByPlayer(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, playerID, limit)
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

func (m *MockRepository) GetEventsByType(ctx context.Context, eventType string, limit int) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, eventType, limit)
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
