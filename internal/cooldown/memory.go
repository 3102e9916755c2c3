package cooldown

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// memoryBackend implements Service in process. A single mutex gives the
// same mutual exclusion the advisory lock gives the Postgres backend.
type memoryBackend struct {
	mu       sync.Mutex
	config   Config
	lastUsed map[string]time.Time
}

// NewMemoryService creates a cooldown service that keeps state in memory
func NewMemoryService(config Config) Service {
	return &memoryBackend{
		config:   config,
		lastUsed: make(map[string]time.Time),
	}
}

func memoryKey(playerID, action string) string {
	return playerID + HashSeparator + action
}

func (b *memoryBackend) CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	onCooldown, remaining := b.check(playerID, action)
	return onCooldown, remaining, nil
}

func (b *memoryBackend) check(playerID, action string) (bool, time.Duration) {
	last, ok := b.lastUsed[memoryKey(playerID, action)]
	if !ok {
		return false, 0
	}
	return checkCooldown(b.config.now(), &last, b.config.GetCooldownDuration(action))
}

func (b *memoryBackend) EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action, "player_id", playerID)
	} else if onCooldown, remaining := b.check(playerID, action); onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if err := fn(); err != nil {
		return err
	}

	b.lastUsed[memoryKey(playerID, action)] = b.config.now()
	return nil
}

func (b *memoryBackend) ResetCooldown(ctx context.Context, playerID, action string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lastUsed, memoryKey(playerID, action))
	return nil
}

func (b *memoryBackend) GetLastUsed(ctx context.Context, playerID, action string) (*time.Time, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	last, ok := b.lastUsed[memoryKey(playerID, action)]
	if !ok {
		return nil, nil
	}
	return &last, nil
}
