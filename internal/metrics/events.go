package metrics

import (
	"context"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.PlayerCreated:
		PlayersCreated.Inc()

	case event.CropPlanted:
		p, err := event.DecodePayload[domain.CropPlantedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CropsPlanted.WithLabelValues(p.CropName).Inc()
		CoinsSpent.WithLabelValues(SourcePlant).Add(float64(p.Cost))

	case event.CropHarvested:
		p, err := event.DecodePayload[domain.CropHarvestedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CropsHarvested.WithLabelValues(p.CropName).Inc()
		CoinsEarned.WithLabelValues(SourceHarvest).Add(float64(p.Earned))

	case event.AnimalPurchased:
		p, err := event.DecodePayload[domain.AnimalPurchasedPayload](evt.Payload)
		if err != nil {
			return err
		}
		AnimalsPurchased.WithLabelValues(p.AnimalName).Inc()
		CoinsSpent.WithLabelValues(SourceAnimal).Add(float64(p.Cost))

	case event.AnimalCollected:
		p, err := event.DecodePayload[domain.AnimalCollectedPayload](evt.Payload)
		if err != nil {
			return err
		}
		AnimalCollections.WithLabelValues(p.ProductName).Inc()
		CoinsEarned.WithLabelValues(SourceCollect).Add(float64(p.Earned))

	case event.RegionExplored:
		p, err := event.DecodePayload[domain.RegionExploredPayload](evt.Payload)
		if err != nil {
			return err
		}
		Explorations.WithLabelValues(p.RegionName).Inc()
		CoinsSpent.WithLabelValues(SourceExplore).Add(float64(p.Cost))

	case event.ChestOpened:
		p, err := event.DecodePayload[domain.ChestOpenedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CoinsEarned.WithLabelValues(SourceChest).Add(float64(p.Coins))

	case event.PlayerLevelUp:
		p, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
		if err != nil {
			return err
		}
		LevelUps.WithLabelValues(p.Source).Inc()

	case event.CooldownRejected:
		p, err := event.DecodePayload[domain.CooldownRejectedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CooldownHits.WithLabelValues(p.Action).Inc()
	}
	return nil
}
