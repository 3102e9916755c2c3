package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// SettleLevel raises the stored level to match the experience already added
// to p inside tx. p must carry the level read before the experience update.
// The returned change is also applied to p.
func SettleLevel(ctx context.Context, tx repository.PlayerTx, p *domain.Player, gained int64) (domain.LevelChange, error) {
	change := domain.LevelChange{
		OldLevel:   p.Level,
		NewLevel:   p.Level,
		Experience: p.Experience,
		Gained:     gained,
	}

	newLevel := LevelForExperience(p.Experience)
	if newLevel <= p.Level {
		return change, nil
	}
	if err := tx.RaiseLevel(ctx, p.ID, newLevel); err != nil {
		return change, fmt.Errorf("%s: %w", ErrMsgRaiseLevel, err)
	}
	change.NewLevel = newLevel
	p.Level = newLevel
	return change, nil
}

// PublishLevelUp logs and publishes a level-up when change crossed a threshold.
// Call it only after the transaction that produced change has committed.
func PublishLevelUp(ctx context.Context, publisher event.Publisher, p *domain.Player, change domain.LevelChange, source string) {
	if !change.LeveledUp() {
		return
	}
	logger.FromContext(ctx).Info(LogMsgLevelUp,
		"player_id", p.ID, "old_level", change.OldLevel, "new_level", change.NewLevel, "source", source)
	if publisher != nil {
		publisher.PublishWithRetry(ctx, event.NewLevelUpEvent(p, change, source))
	}
}
