package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/i18n"
)

// errorKeys maps API error codes to the message shown to players
var errorKeys = map[string]string{
	domain.CodeUnknownCrop:         i18n.KeyErrCropNotFound,
	domain.CodeUnknownAnimal:       i18n.KeyErrAnimalNotFound,
	domain.CodeUnknownRegion:       i18n.KeyErrRegionNotFound,
	domain.CodeInsufficientFunds:   i18n.KeyErrNotEnoughCoins,
	domain.CodeLevelTooLow:         i18n.KeyErrLevelTooLow,
	domain.CodeNotReady:            i18n.KeyErrNotReady,
	domain.CodeAlreadyHarvested:    i18n.KeyErrAlreadyHarvested,
	domain.CodeOnCooldown:          i18n.KeyErrOnCooldown,
	domain.CodePlayerNotFound:      i18n.KeyErrNotFound,
	domain.CodeFarmNotFound:        i18n.KeyErrNotFound,
	domain.CodePlantedCropNotFound: i18n.KeyErrNotFound,
	domain.CodeOwnedAnimalNotFound: i18n.KeyErrNotFound,
	domain.CodeNotFound:            i18n.KeyErrNotFound,
	domain.CodeInvalidInput:        i18n.KeyErrInvalidInput,
	domain.CodePreconditionFailed:  i18n.KeyErrInvalidInput,
	domain.CodeStorageUnavailable:  i18n.KeyErrUnavailable,
	domain.CodeInternalError:       i18n.KeyErrInternal,
}

// friendlyError renders err in lang. name is the crop, animal or region the
// player asked for, used by the unknown-name messages. Transport failures
// read as the service being unavailable.
func friendlyError(lang string, err error, name string) string {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return i18n.Text(lang, i18n.KeyErrUnavailable)
	}

	key, ok := errorKeys[apiErr.Code]
	if !ok {
		if apiErr.Status >= 500 {
			return i18n.Text(lang, i18n.KeyErrUnavailable)
		}
		return i18n.Text(lang, i18n.KeyErrInternal)
	}

	msg := i18n.Format(lang, key, map[string]any{
		"name": name,
		"time": formatDuration(time.Duration(apiErr.RetryAfterSeconds) * time.Second),
	})
	if apiErr.Suggestion != "" {
		msg += "\n" + i18n.Format(lang, i18n.KeyDidYouMean, map[string]any{"name": apiErr.Suggestion})
	}
	return msg
}

// formatDuration renders d as "1h 5m", "4m 3s" or "12s"
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// secondsDuration converts an API seconds field to a duration
func secondsDuration(secs int64) time.Duration {
	return time.Duration(secs) * time.Second
}

// levelUpLine returns the level-up message for change, or "" if the player
// did not level up
func levelUpLine(lang, mention string, change domain.LevelChange) string {
	if !change.LeveledUp() {
		return ""
	}
	return i18n.Format(lang, i18n.KeyLevelUp, map[string]any{"user": mention, "level": change.NewLevel})
}

// joinLines joins the non-empty lines
func joinLines(lines ...string) string {
	out := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// mentionFromAccountKey returns a Discord mention for accountKey, or the key
// itself when it does not belong to a Discord user
func mentionFromAccountKey(accountKey string) string {
	if id, ok := strings.CutPrefix(accountKey, AccountKeyPrefix); ok && id != "" {
		return "<@" + id + ">"
	}
	return accountKey
}
