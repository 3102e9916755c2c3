package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/eventlog"
	"github.com/osse101/NeuroFarm_Go/internal/metrics"
	"github.com/osse101/NeuroFarm_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	SSEHub          *sse.Hub
}

// RegisterEventHandlers subscribes the metrics collector, the event log and
// the SSE bridge to the bus.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSEBridgeInitialized)
	}

	return nil
}
