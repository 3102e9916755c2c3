package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Domain event types
const (
	PlayerCreated    Type = domain.EventTypePlayerCreated
	PlayerLevelUp    Type = domain.EventTypePlayerLevelUp
	CropPlanted      Type = domain.EventTypeCropPlanted
	CropHarvested    Type = domain.EventTypeCropHarvested
	AnimalPurchased  Type = domain.EventTypeAnimalPurchased
	AnimalCollected  Type = domain.EventTypeAnimalCollected
	RegionExplored   Type = domain.EventTypeRegionExplored
	Fished           Type = domain.EventTypeFished
	ChestOpened      Type = domain.EventTypeChestOpened
	CatalogSeeded    Type = domain.EventTypeCatalogSeeded
	CooldownRejected Type = domain.EventTypeCooldownRejected
)

// AllTypes lists every domain event type, for subscribers that record everything
var AllTypes = []Type{
	PlayerCreated, PlayerLevelUp,
	CropPlanted, CropHarvested,
	AnimalPurchased, AnimalCollected,
	RegionExplored, Fished, ChestOpened,
	CatalogSeeded, CooldownRejected,
}

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// Type-safe event constructors

// NewPlayerCreatedEvent creates a new player created event
func NewPlayerCreatedEvent(p *domain.Player) Event {
	return newEvent(PlayerCreated, domain.PlayerCreatedPayload{
		PlayerID:   p.ID,
		AccountKey: p.AccountKey,
		Timestamp:  time.Now().Unix(),
	})
}

// NewLevelUpEvent creates a new level up event. Source names what granted
// the experience (award, explore, fish, chest).
func NewLevelUpEvent(p *domain.Player, change domain.LevelChange, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLevelUp,
		Payload: domain.LevelUpPayload{
			PlayerID:   p.ID,
			AccountKey: p.AccountKey,
			OldLevel:   change.OldLevel,
			NewLevel:   change.NewLevel,
			Experience: change.Experience,
			Source:     source,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{"source": source},
	}
}

// NewCropPlantedEvent creates a new crop planted event
func NewCropPlantedEvent(playerID string, crop *domain.PlantedCrop, cost int64) Event {
	return newEvent(CropPlanted, domain.CropPlantedPayload{
		PlayerID:      playerID,
		FarmID:        crop.FarmID,
		PlantedCropID: crop.ID,
		CropName:      crop.CropName,
		Cost:          cost,
		ReadyAt:       crop.ReadyAt.Unix(),
		Timestamp:     time.Now().Unix(),
	})
}

// NewCropHarvestedEvent creates a new crop harvested event
func NewCropHarvestedEvent(playerID string, crop *domain.PlantedCrop, earned int64) Event {
	return newEvent(CropHarvested, domain.CropHarvestedPayload{
		PlayerID:      playerID,
		FarmID:        crop.FarmID,
		PlantedCropID: crop.ID,
		CropName:      crop.CropName,
		Earned:        earned,
		Timestamp:     time.Now().Unix(),
	})
}

// NewAnimalPurchasedEvent creates a new animal purchased event
func NewAnimalPurchasedEvent(playerID string, animal *domain.OwnedAnimal, cost int64) Event {
	return newEvent(AnimalPurchased, domain.AnimalPurchasedPayload{
		PlayerID:      playerID,
		FarmID:        animal.FarmID,
		OwnedAnimalID: animal.ID,
		AnimalName:    animal.AnimalName,
		Cost:          cost,
		Timestamp:     time.Now().Unix(),
	})
}

// NewAnimalCollectedEvent creates a new animal collected event
func NewAnimalCollectedEvent(playerID string, animal *domain.OwnedAnimal, earned int64) Event {
	return newEvent(AnimalCollected, domain.AnimalCollectedPayload{
		PlayerID:      playerID,
		FarmID:        animal.FarmID,
		OwnedAnimalID: animal.ID,
		AnimalName:    animal.AnimalName,
		ProductName:   animal.ProductName,
		Earned:        earned,
		Timestamp:     time.Now().Unix(),
	})
}

// NewRegionExploredEvent creates a new region explored event
func NewRegionExploredEvent(playerID string, result *domain.ExploreResult) Event {
	return newEvent(RegionExplored, domain.RegionExploredPayload{
		PlayerID:   playerID,
		RegionName: result.Region,
		Cost:       result.CoinsSpent,
		Experience: result.ExperienceGain,
		Timestamp:  time.Now().Unix(),
	})
}

// NewFishedEvent creates a new fished event
func NewFishedEvent(playerID string, result *domain.FishResult) Event {
	return newEvent(Fished, domain.FishedPayload{
		PlayerID:   playerID,
		Catch:      result.Catch,
		Experience: result.ExperienceGain,
		Timestamp:  time.Now().Unix(),
	})
}

// NewChestOpenedEvent creates a new chest opened event
func NewChestOpenedEvent(playerID string, result *domain.ChestResult) Event {
	return newEvent(ChestOpened, domain.ChestOpenedPayload{
		PlayerID:   playerID,
		Coins:      result.Coins,
		Experience: result.ExperienceGain,
		Timestamp:  time.Now().Unix(),
	})
}

// NewCatalogSeededEvent creates a new catalog seeded event
func NewCatalogSeededEvent(report *domain.SeedReport, source string) Event {
	return newEvent(CatalogSeeded, domain.CatalogSeededPayload{
		Crops:     report.Crops,
		Animals:   report.Animals,
		Regions:   report.Regions,
		Source:    source,
		Timestamp: time.Now().Unix(),
	})
}

// NewCooldownRejectedEvent creates a new cooldown rejected event
func NewCooldownRejectedEvent(playerID, action string) Event {
	return newEvent(CooldownRejected, domain.CooldownRejectedPayload{
		PlayerID:  playerID,
		Action:    action,
		Timestamp: time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the narrow interface services use to emit events after commit
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	// Handlers run synchronously, in subscription order
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every domain event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}
