package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/testing/leaktest"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e, ok := <-c.EventChannel:
		require.True(t, ok, "client channel closed")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	hub := startHub(t)

	all := hub.Register(nil)
	levelOnly := hub.Register([]string{EventTypeLevelUp})
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(EventTypeCropHarvested, CropHarvestedPayload{CropName: "Wheat"})
	hub.Broadcast(EventTypeLevelUp, LevelUpPayload{NewLevel: 2})

	assert.Equal(t, EventTypeCropHarvested, receive(t, all).Type)
	assert.Equal(t, EventTypeLevelUp, receive(t, all).Type)
	assert.Equal(t, EventTypeLevelUp, receive(t, levelOnly).Type)

	hub.Unregister(levelOnly.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	_, ok := <-levelOnly.EventChannel
	assert.False(t, ok)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	hub.Start()
	c := hub.Register(nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())

	late := hub.Register(nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: EventTypeLevelUp, Payload: LevelUpPayload{NewLevel: 3}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: player.level_up\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
	assert.Contains(t, s, `"new_level":3`)
}

func TestSubscriber_ForwardsDomainEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	ctx := context.Background()
	p := &domain.Player{ID: "p1", AccountKey: "1234"}
	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent(p, domain.LevelChange{OldLevel: 1, NewLevel: 2}, domain.ExperienceSourceFish)))
	require.NoError(t, bus.Publish(ctx, event.NewCropPlantedEvent("p1", &domain.PlantedCrop{CropName: "Wheat"}, 5)))
	require.NoError(t, bus.Publish(ctx, event.NewRegionExploredEvent("p1", &domain.ExploreResult{Region: "Forest", ExperienceGain: 12})))

	got := receive(t, c)
	require.Equal(t, EventTypeLevelUp, got.Type)
	payload := got.Payload.(LevelUpPayload)
	assert.Equal(t, "1234", payload.AccountKey)
	assert.Equal(t, 2, payload.NewLevel)
	assert.Equal(t, domain.ExperienceSourceFish, payload.Source)

	// crop.planted is not forwarded
	got = receive(t, c)
	assert.Equal(t, EventTypeRegionExplored, got.Type)
	assert.Equal(t, int64(12), got.Payload.(RegionExploredPayload).Experience)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+EventTypeLevelUp, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	next := func() (string, map[string]interface{}) {
		var typ string
		var data map[string]interface{}
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event: "):
				typ = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &data))
			case line == "":
				return typ, data
			}
		}
	}

	typ, _ := next()
	assert.Equal(t, EventTypeConnected, typ)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	hub.Broadcast(EventTypeCropHarvested, CropHarvestedPayload{CropName: "Corn"})
	hub.Broadcast(EventTypeLevelUp, LevelUpPayload{AccountKey: "42", NewLevel: 5})

	typ, data := next()
	assert.Equal(t, EventTypeLevelUp, typ)
	payload := data["payload"].(map[string]interface{})
	assert.Equal(t, "42", payload["account_key"])
	assert.Equal(t, float64(5), payload["new_level"])
}

func TestHub_StopReleasesGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		hub.Register(nil)
		hub.Register([]string{EventTypeLevelUp})
		hub.Broadcast(EventTypeLevelUp, LevelUpPayload{})
		hub.Stop()
	})
}
