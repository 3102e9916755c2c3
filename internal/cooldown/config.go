package cooldown

import (
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations
	// If not specified, defaults from domain package are used
	Cooldowns map[string]time.Duration

	// Now overrides the clock; nil means time.Now
	Now func() time.Time
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action string) time.Duration {
	// Check custom overrides first
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}

	// Fall back to defaults
	switch action {
	case domain.ActionFish:
		return domain.FishCooldownDuration
	case domain.ActionOpenChest:
		return domain.OpenChestCooldownDuration
	default:
		return DefaultCooldownDuration
	}
}

func (c *Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
