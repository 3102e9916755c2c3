package sse

import (
	"context"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the event types forwarded to clients
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.PlayerLevelUp, s.handleLevelUp)
	s.bus.Subscribe(event.CropHarvested, s.handleCropHarvested)
	s.bus.Subscribe(event.AnimalCollected, s.handleAnimalCollected)
	s.bus.Subscribe(event.RegionExplored, s.handleRegionExplored)

	logger.FromContext(context.Background()).Info(LogMsgSubscribed,
		"types", []string{EventTypeLevelUp, EventTypeCropHarvested, EventTypeAnimalCollected, EventTypeRegionExplored})
}

func (s *Subscriber) handleLevelUp(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeLevelUp, LevelUpPayload{
		PlayerID:   p.PlayerID,
		AccountKey: p.AccountKey,
		OldLevel:   p.OldLevel,
		NewLevel:   p.NewLevel,
		Source:     p.Source,
	})
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"event_type", EventTypeLevelUp, "player_id", p.PlayerID, "new_level", p.NewLevel)
	return nil
}

func (s *Subscriber) handleCropHarvested(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.CropHarvestedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeCropHarvested, CropHarvestedPayload{
		PlayerID: p.PlayerID,
		FarmID:   p.FarmID,
		CropName: p.CropName,
		Earned:   p.Earned,
	})
	return nil
}

func (s *Subscriber) handleAnimalCollected(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.AnimalCollectedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeAnimalCollected, AnimalCollectedPayload{
		PlayerID:    p.PlayerID,
		FarmID:      p.FarmID,
		AnimalName:  p.AnimalName,
		ProductName: p.ProductName,
		Earned:      p.Earned,
	})
	return nil
}

func (s *Subscriber) handleRegionExplored(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.RegionExploredPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRegionExplored, RegionExploredPayload{
		PlayerID:   p.PlayerID,
		RegionName: p.RegionName,
		Experience: p.Experience,
	})
	return nil
}
