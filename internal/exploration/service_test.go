package exploration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/testing/fakestore"
	"github.com/osse101/NeuroFarm_Go/internal/utils"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T, rng utils.RandomSource) (Service, *fakestore.Store, *fakestore.Publisher, string) {
	t.Helper()
	ctx := context.Background()
	store := fakestore.New()
	pub := &fakestore.Publisher{}

	catalogSvc := catalog.NewService(store, nil, 16, time.Minute)
	_, err := catalogSvc.Seed(ctx, catalog.DefaultCatalog(), catalog.SourceDefault)
	require.NoError(t, err)

	p, _, err := store.CreatePlayer(ctx, "explorer", domain.LanguageEnglish)
	require.NoError(t, err)

	return NewService(store, catalogSvc, pub, rng), store, pub, p.ID
}

func TestExplore_Forest(t *testing.T) {
	// Intn(41) yields 25, so the reward is 10+25
	svc, store, pub, playerID := setup(t, utils.NewFixedSource(25))

	res, err := svc.Explore(context.Background(), playerID, "forest", now)
	require.NoError(t, err)
	assert.Equal(t, "Forest", res.Region)
	assert.Equal(t, int64(10), res.CoinsSpent)
	assert.Equal(t, int64(35), res.ExperienceGain)
	assert.Equal(t, int64(90), res.CoinsRemaining)
	assert.False(t, res.Level.LeveledUp())

	p, err := store.GetPlayerByID(context.Background(), playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(90), p.Coins)
	assert.Equal(t, int64(35), p.Experience)

	assert.Equal(t, []event.Type{event.RegionExplored}, pub.Types())
}

func TestExplore_RewardRange(t *testing.T) {
	svc, store, _, playerID := setup(t, utils.NewRandomSource(7))
	store.SetCoins(playerID, 10_000)

	for i := 0; i < 50; i++ {
		res, err := svc.Explore(context.Background(), playerID, "Forest", now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.ExperienceGain, int64(domain.ExploreMinExperience))
		assert.LessOrEqual(t, res.ExperienceGain, int64(domain.ExploreMaxExperience))
	}
}

func TestExplore_LevelsUp(t *testing.T) {
	svc, store, pub, playerID := setup(t, utils.NewFixedSource(40))
	ctx := context.Background()

	// 50 XP per trip: the second trip reaches the 100 XP threshold
	_, err := svc.Explore(ctx, playerID, "Forest", now)
	require.NoError(t, err)
	res, err := svc.Explore(ctx, playerID, "Forest", now)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelChange{OldLevel: 1, NewLevel: 2, Experience: 100, Gained: 50}, res.Level)

	p, err := store.GetPlayerByID(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Level)

	assert.Equal(t, []event.Type{event.RegionExplored, event.RegionExplored, event.PlayerLevelUp}, pub.Types())
}

func TestExplore_Gating(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		coins  int64
		region string
		want   error
	}{
		{"level checked before funds", 1, 0, "Mountain", domain.ErrLevelTooLow},
		{"level too low with funds", 4, 1000, "Mountain", domain.ErrLevelTooLow},
		{"insufficient funds", 5, 29, "Mountain", domain.ErrInsufficientFunds},
		{"unknown region", 1, 100, "Moon", domain.ErrUnknownRegion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, pub, playerID := setup(t, utils.NewFixedSource(0))
			store.SetLevel(playerID, tt.level)
			store.SetCoins(playerID, tt.coins)

			_, err := svc.Explore(context.Background(), playerID, tt.region, now)
			assert.ErrorIs(t, err, tt.want)

			p, err := store.GetPlayerByID(context.Background(), playerID)
			require.NoError(t, err)
			assert.Equal(t, tt.coins, p.Coins)
			assert.Zero(t, p.Experience)
			assert.Empty(t, pub.Events())
		})
	}
}

func TestExplore_MissingPlayer(t *testing.T) {
	svc, _, _, _ := setup(t, nil)
	_, err := svc.Explore(context.Background(), "ghost", "Forest", now)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
