package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestSubscribeAll_ReceivesEveryDomainType(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}
	SubscribeAll(bus, func(ctx context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	for _, typ := range AllTypes {
		if err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: typ}); err != nil {
			t.Fatalf("Publish(%s) returned error: %v", typ, err)
		}
	}

	for _, typ := range AllTypes {
		if seen[typ] != 1 {
			t.Errorf("Expected one delivery of %s, got %d", typ, seen[typ])
		}
	}
}

func TestNewLevelUpEvent_DecodesFromJSONShape(t *testing.T) {
	p := &domain.Player{ID: "p-1", AccountKey: "acct"}
	evt := NewLevelUpEvent(p, domain.LevelChange{OldLevel: 1, NewLevel: 3, Experience: 300}, domain.ExperienceSourceExplore)

	if evt.Type != PlayerLevelUp || evt.Version != EventSchemaVersion {
		t.Fatalf("unexpected envelope: %+v", evt)
	}
	if got := evt.GetMetadataValue("source"); got != domain.ExperienceSourceExplore {
		t.Errorf("Expected source metadata %q, got %v", domain.ExperienceSourceExplore, got)
	}

	// Round-trip through a generic map as a serialized consumer would see it
	raw, err := json.Marshal(evt.Payload)
	if err != nil {
		t.Fatal(err)
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatal(err)
	}

	payload, err := DecodePayload[domain.LevelUpPayload](generic)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.NewLevel != 3 || payload.AccountKey != "acct" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}
	for i, w := range want {
		if got := CalculateRetryDelay(base, i+1); got != w {
			t.Errorf("attempt %d: expected %v, got %v", i+1, w, got)
		}
	}
}
