package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// Service defines the player ledger: coins, experience and level
type Service interface {
	// GetOrCreate returns the player for accountKey, creating it with the
	// starting balance when absent. created reports whether this call
	// inserted the row.
	GetOrCreate(ctx context.Context, accountKey, language string) (player *domain.Player, created bool, err error)
	GetByAccount(ctx context.Context, accountKey string) (*domain.Player, error)
	Get(ctx context.Context, playerID string) (*domain.Player, error)

	// Credit and Debit return the new balance
	Credit(ctx context.Context, playerID string, amount int64) (int64, error)
	Debit(ctx context.Context, playerID string, amount int64) (int64, error)

	AwardExperience(ctx context.Context, playerID string, amount int64) (*domain.LevelChange, error)
	SetLanguage(ctx context.Context, playerID, code string) error
}

type service struct {
	repo      repository.Player
	publisher event.Publisher
}

// NewService creates a new ledger service
func NewService(repo repository.Player, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *service) GetOrCreate(ctx context.Context, accountKey, language string) (*domain.Player, bool, error) {
	if language == "" {
		language = domain.DefaultLanguage
	}
	if !domain.IsSupportedLanguage(language) {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, language)
	}

	player, err := s.repo.GetPlayerByAccount(ctx, accountKey)
	if err == nil {
		return player, false, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, false, fmt.Errorf("%s: %w", ErrMsgGetPlayer, err)
	}

	player, created, err := s.repo.CreatePlayer(ctx, accountKey, language)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrMsgCreatePlayer, err)
	}

	if created {
		logger.FromContext(ctx).Info(LogMsgPlayerCreated, "player_id", player.ID, "account_key", accountKey)
		if s.publisher != nil {
			s.publisher.PublishWithRetry(ctx, event.NewPlayerCreatedEvent(player))
		}
	}
	return player, created, nil
}

func (s *service) GetByAccount(ctx context.Context, accountKey string) (*domain.Player, error) {
	player, err := s.repo.GetPlayerByAccount(ctx, accountKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlayer, err)
	}
	return player, nil
}

func (s *service) Get(ctx context.Context, playerID string) (*domain.Player, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlayer, err)
	}
	return player, nil
}

func (s *service) Credit(ctx context.Context, playerID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrNonPositiveAmount
	}
	return s.adjust(ctx, playerID, amount)
}

func (s *service) Debit(ctx context.Context, playerID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrNonPositiveAmount
	}
	return s.adjust(ctx, playerID, -amount)
}

func (s *service) adjust(ctx context.Context, playerID string, delta int64) (int64, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	balance, err := tx.AdjustCoins(ctx, playerID, delta)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgAdjustCoins, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	logger.FromContext(ctx).Debug(LogMsgCoinsAdjusted, "player_id", playerID, "delta", delta, "balance", balance)
	return balance, nil
}

func (s *service) AwardExperience(ctx context.Context, playerID string, amount int64) (*domain.LevelChange, error) {
	if amount <= 0 {
		return nil, domain.ErrNonPositiveAmount
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.AddExperience(ctx, playerID, amount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAddExperience, err)
	}
	change, err := SettleLevel(ctx, tx, player, amount)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	PublishLevelUp(ctx, s.publisher, player, change, domain.ExperienceSourceAward)
	return &change, nil
}

func (s *service) SetLanguage(ctx context.Context, playerID, code string) error {
	if !domain.IsSupportedLanguage(code) {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, code)
	}
	if err := s.repo.UpdateLanguage(ctx, playerID, code); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpdateLanguage, err)
	}
	logger.FromContext(ctx).Info(LogMsgLanguageUpdated, "player_id", playerID, "language", code)
	return nil
}
