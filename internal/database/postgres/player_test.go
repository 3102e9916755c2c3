package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

func TestPlayerRepository_CreatePlayerIsIdempotent(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	first, created, err := repo.CreatePlayer(ctx, "idempotent-account", domain.LanguageChineseSimplified)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.StartingCoins, first.Coins)
	assert.Equal(t, int64(domain.StartingExperience), first.Experience)
	assert.Equal(t, domain.StartingLevel, first.Level)

	second, created, err := repo.CreatePlayer(ctx, "idempotent-account", domain.LanguageEnglish)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.LanguageChineseSimplified, second.Language)
}

func TestPlayerRepository_ConcurrentCreateYieldsOnePlayer(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	const workers = 10
	var (
		wg      sync.WaitGroup
		created atomic.Int32
		ids     sync.Map
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, isNew, err := repo.CreatePlayer(ctx, "race-account", domain.DefaultLanguage)
			if !assert.NoError(t, err) {
				return
			}
			if isNew {
				created.Add(1)
			}
			ids.Store(p.ID, struct{}{})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	count := 0
	ids.Range(func(_, _ any) bool { count++; return true })
	assert.Equal(t, 1, count)
}

func TestPlayerRepository_GetMissing(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	_, err := repo.GetPlayerByAccount(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = repo.GetPlayerByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlayerRepository_UpdateLanguage(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()
	p := newTestPlayer(t, pool)

	require.NoError(t, repo.UpdateLanguage(ctx, p.ID, domain.LanguageChineseTraditional))

	got, err := repo.GetPlayerByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageChineseTraditional, got.Language)
}

func TestPlayerTx_AdjustCoinsNeverNegative(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()
	p := newTestPlayer(t, pool)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.AdjustCoins(ctx, p.ID, -101)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	require.NoError(t, tx.Rollback(ctx))

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	balance, err := tx.AdjustCoins(ctx, p.ID, -100)
	require.NoError(t, err)
	assert.Zero(t, balance)
	require.NoError(t, tx.Commit(ctx))

	assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)
}

func TestPlayerTx_ConcurrentDebitsStayNonNegative(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()
	p := newTestPlayer(t, pool)

	// 100 coins, 20 debits of 10: exactly 10 may succeed
	const debits = 20
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := 0; i < debits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := repo.BeginTx(ctx)
			if !assert.NoError(t, err) {
				return
			}
			defer func() { _ = tx.Rollback(ctx) }()

			if _, err := tx.AdjustCoins(ctx, p.ID, -10); err != nil {
				assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
				return
			}
			if assert.NoError(t, tx.Commit(ctx)) {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetPlayerByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(10), succeeded.Load())
	assert.Zero(t, got.Coins)
}

func TestPlayerTx_ChargeExplorationOrdering(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()
	p := newTestPlayer(t, pool)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	// Both guards fail: level is reported first
	_, err = tx.ChargeExploration(ctx, p.ID, 5, 1000, 10)
	assert.ErrorIs(t, err, domain.ErrLevelTooLow)

	_, err = tx.ChargeExploration(ctx, p.ID, 1, 1000, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	updated, err := tx.ChargeExploration(ctx, p.ID, 1, 10, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(90), updated.Coins)
	assert.Equal(t, int64(25), updated.Experience)

	require.NoError(t, tx.RaiseLevel(ctx, p.ID, 3))
	require.NoError(t, tx.RaiseLevel(ctx, p.ID, 2))
	current, err := tx.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, current.Level)
}
