package cooldown

import "time"

// DefaultCooldownDuration applies to actions with no configured duration
const DefaultCooldownDuration = 5 * time.Minute

// Advisory lock keys are derived from "<player>:<action>"; the mask keeps
// the key a non-negative bigint.
const (
	HashSeparator         = ":"
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

const (
	SQLAdvisoryLock   = "SELECT pg_advisory_xact_lock($1)"
	SQLSelectLastUsed = `SELECT last_used_at FROM player_cooldowns WHERE player_id = $1 AND action_name = $2`
	SQLDeleteCooldown = `DELETE FROM player_cooldowns WHERE player_id = $1 AND action_name = $2`
	SQLUpsertCooldown = `
		INSERT INTO player_cooldowns (player_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, action_name) DO UPDATE SET last_used_at = EXCLUDED.last_used_at`
)

const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown"
	ErrMsgBeginTransactionFailed  = "failed to begin cooldown transaction"
	ErrMsgAcquireLockFailed       = "failed to lock cooldown"
	ErrMsgGetCooldownTxFailed     = "failed to read cooldown under lock"
	ErrMsgUpdateCooldownFailed    = "failed to record cooldown"
	ErrMsgCommitTransactionFailed = "failed to commit cooldown transaction"
	ErrMsgResetCooldownFailed     = "failed to reset cooldown"
	ErrMsgGetLastUsedFailed       = "failed to get last used"
)

const (
	LogMsgDevModeBypass         = "Cooldowns disabled, skipping check"
	LogMsgRaceConditionDetected = "Concurrent request lost the cooldown race"
	LogMsgCooldownEnforced      = "Cooldown recorded"
)

// Player-facing cooldown messages, e.g. "You can fish again in 4m 10s"
const (
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)

const SecondsPerMinute = 60
