package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// Service manages per-player action cooldowns
type Service interface {
	// CheckCooldown checks if a player's action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration, error)
	CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error)

	// EnforceCooldown atomically checks the cooldown and runs fn if allowed.
	// The cooldown is only recorded when fn succeeds.
	EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error

	// ResetCooldown manually resets a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, playerID, action string) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(ctx context.Context, playerID, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Unwrap places the error in the domain's precondition family
func (e ErrOnCooldown) Unwrap() error {
	return domain.ErrOnCooldown
}

// checkCooldown reports whether an action last used at lastUsed is still
// cooling down at now, and for how long
func checkCooldown(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}

	return false, 0
}
