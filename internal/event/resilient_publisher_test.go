package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

var errBusDown = errors.New("bus down")

// flakyBus fails the first failures publishes, then succeeds. A negative
// failures count fails forever. With hold set, every attempt after the
// first blocks until hold is closed.
type flakyBus struct {
	mu        sync.Mutex
	failures  int
	attempts  int
	delivered []Event
	hold      chan struct{}
}

func (b *flakyBus) Publish(ctx context.Context, e Event) error {
	b.mu.Lock()
	b.attempts++
	n := b.attempts
	b.mu.Unlock()

	if b.hold != nil && n > 1 {
		<-b.hold
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failures < 0 || n <= b.failures {
		return errBusDown
	}
	b.delivered = append(b.delivered, e)
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) Attempts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempts
}

func (b *flakyBus) Delivered() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event(nil), b.delivered...)
}

func harvestEvent(id int64) Event {
	return NewCropHarvestedEvent("player-1", &domain.PlantedCrop{ID: id, FarmID: 7, CropName: "Wheat"}, 10)
}

func newPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	return rp, path
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestResilientPublisher_DeliversInline(t *testing.T) {
	bus := &flakyBus{}
	rp, path := newPublisher(t, bus, 3, time.Millisecond)

	rp.PublishWithRetry(context.Background(), harvestEvent(1))

	// Inline success never touches the retry queue
	require.Len(t, bus.Delivered(), 1)
	assert.Equal(t, CropHarvested, bus.Delivered()[0].Type)

	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	bus := &flakyBus{failures: 2}
	rp, path := newPublisher(t, bus, 5, time.Millisecond)

	rp.PublishWithRetry(context.Background(), harvestEvent(2))

	assert.Eventually(t, func() bool { return len(bus.Delivered()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, bus.Attempts())

	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_DeadLettersAfterMaxRetries(t *testing.T) {
	bus := &flakyBus{failures: -1}
	rp, path := newPublisher(t, bus, 3, time.Millisecond)

	rp.PublishWithRetry(context.Background(), harvestEvent(3))

	// One inline attempt plus maxRetries retries
	assert.Eventually(t, func() bool { return bus.Attempts() == 4 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Equal(t, CropHarvested, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, errBusDown.Error(), entries[0].LastError)

	payload, err := DecodePayload[domain.CropHarvestedPayload](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(3), payload.PlantedCropID)
	assert.Equal(t, "Wheat", payload.CropName)
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	// A long delay keeps events parked in the queue until shutdown
	bus := &flakyBus{failures: 1}
	rp, path := newPublisher(t, bus, 5, time.Hour)

	rp.PublishWithRetry(context.Background(), harvestEvent(4))
	require.Equal(t, 1, bus.Attempts())

	require.NoError(t, rp.Shutdown(context.Background()))

	// Shutdown cuts the backoff short and the final attempt succeeds
	require.Len(t, bus.Delivered(), 1)
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ShutdownDeadLettersUndeliverable(t *testing.T) {
	bus := &flakyBus{failures: -1}
	rp, path := newPublisher(t, bus, 5, time.Hour)

	rp.PublishWithRetry(context.Background(), harvestEvent(5))
	rp.PublishWithRetry(context.Background(), harvestEvent(6))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Len(t, readDeadLetters(t, path), 2)
}

func TestResilientPublisher_PublishAfterShutdownDeadLetters(t *testing.T) {
	bus := &flakyBus{failures: -1}
	rp, path := newPublisher(t, bus, 5, time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	// The file is closed, so the write fails and is only logged
	rp.PublishWithRetry(context.Background(), harvestEvent(7))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ShutdownTwice(t *testing.T) {
	rp, _ := newPublisher(t, &flakyBus{}, 3, time.Millisecond)

	require.NoError(t, rp.Shutdown(context.Background()))
	assert.ErrorIs(t, rp.Shutdown(context.Background()), ErrPublisherShutdown)
}

func TestResilientPublisher_ShutdownHonoursContext(t *testing.T) {
	hold := make(chan struct{})
	defer close(hold)

	bus := &flakyBus{failures: -1, hold: hold}
	rp, _ := newPublisher(t, bus, 5, time.Millisecond)

	rp.PublishWithRetry(context.Background(), harvestEvent(8))
	// Wait for the retry worker to block inside Publish
	assert.Eventually(t, func() bool { return bus.Attempts() == 2 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, rp.Shutdown(ctx), context.DeadlineExceeded)
}

func TestResilientPublisher_ActsAsBus(t *testing.T) {
	bus := NewMemoryBus()
	rp, _ := newPublisher(t, bus, 3, time.Millisecond)
	defer rp.Shutdown(context.Background())

	var got []Type
	rp.Subscribe(PlayerLevelUp, func(ctx context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	change := domain.LevelChange{OldLevel: 1, NewLevel: 2, Experience: 100}
	require.NoError(t, rp.Publish(context.Background(), NewLevelUpEvent(&domain.Player{ID: "p"}, change, domain.ExperienceSourceFish)))
	assert.Equal(t, []Type{PlayerLevelUp}, got)
}

func TestCalculateRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 2 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{5, 32 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateRetryDelay(2*time.Second, tt.attempt), "attempt %d", tt.attempt)
	}
}
