package plot

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/testing/fakestore"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc      Service
	store    *fakestore.Store
	pub      *fakestore.Publisher
	playerID string
	farmID   int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := fakestore.New()
	pub := &fakestore.Publisher{}

	catalogSvc := catalog.NewService(store, nil, 16, time.Minute)
	_, err := catalogSvc.Seed(ctx, catalog.DefaultCatalog(), catalog.SourceDefault)
	require.NoError(t, err)

	p, _, err := store.CreatePlayer(ctx, "farmer", domain.LanguageEnglish)
	require.NoError(t, err)
	f, err := store.CreateFarm(ctx, p.ID, "Test Farm")
	require.NoError(t, err)

	return &fixture{
		svc:      NewService(store.FarmRepo(), catalogSvc, pub),
		store:    store,
		pub:      pub,
		playerID: p.ID,
		farmID:   f.ID,
	}
}

func (f *fixture) coins(t *testing.T) int64 {
	t.Helper()
	p, err := f.store.GetPlayerByID(context.Background(), f.playerID)
	require.NoError(t, err)
	return p.Coins
}

func TestWheatLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	planted, err := f.svc.Plant(ctx, f.farmID, "Wheat", t0)
	require.NoError(t, err)
	assert.Equal(t, t0.Add(time.Hour), planted.ReadyAt)
	assert.Equal(t, int64(95), f.coins(t))

	_, err = f.svc.Harvest(ctx, f.farmID, planted.ID, t0.Add(3599*time.Second))
	assert.ErrorIs(t, err, domain.ErrNotReady)
	assert.Equal(t, int64(95), f.coins(t))

	res, err := f.svc.Harvest(ctx, f.farmID, planted.ID, t0.Add(3600*time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.CoinsGain)
	assert.Equal(t, int64(105), res.CoinsTotal)
	assert.Equal(t, int64(105), f.coins(t))

	_, err = f.svc.Harvest(ctx, f.farmID, planted.ID, t0.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrAlreadyHarvested)
	assert.Equal(t, int64(105), f.coins(t))

	assert.Equal(t, []event.Type{event.CropPlanted, event.CropHarvested}, f.pub.Types())
}

func TestPlant_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Plant(ctx, f.farmID, "Wheet", t0)
	var unk *domain.UnknownNameError
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, "Wheat", unk.Suggestion)
	assert.ErrorIs(t, err, domain.ErrUnknownCrop)

	_, err = f.svc.Plant(ctx, 404, "Wheat", t0)
	assert.ErrorIs(t, err, domain.ErrFarmNotFound)

	f.store.SetCoins(f.playerID, 4)
	_, err = f.svc.Plant(ctx, f.farmID, "Wheat", t0)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(4), f.coins(t))

	plots, err := f.svc.ListPlanted(ctx, f.farmID, t0)
	require.NoError(t, err)
	assert.Empty(t, plots)
	assert.Empty(t, f.pub.Events())
}

func TestHarvest_ScopedToFarm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, _, err := f.store.CreatePlayer(ctx, "neighbour", domain.LanguageEnglish)
	require.NoError(t, err)
	otherFarm, err := f.store.CreateFarm(ctx, other.ID, "Other")
	require.NoError(t, err)

	planted, err := f.svc.Plant(ctx, f.farmID, "Wheat", t0)
	require.NoError(t, err)

	_, err = f.svc.Harvest(ctx, otherFarm.ID, planted.ID, t0.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrPlantedCropNotFound)

	_, err = f.svc.Harvest(ctx, f.farmID, 9999, t0.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrPlantedCropNotFound)
}

func TestHarvest_ConcurrentSucceedsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	planted, err := f.svc.Plant(ctx, f.farmID, "Corn", t0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var ok atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.Harvest(ctx, f.farmID, planted.ID, t0.Add(3*time.Hour)); err == nil {
				ok.Add(1)
			} else {
				assert.ErrorIs(t, err, domain.ErrAlreadyHarvested)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int64(100-10+20), f.coins(t))
}

func TestListPlanted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	wheat, err := f.svc.Plant(ctx, f.farmID, "wheat", t0)
	require.NoError(t, err)
	carrot, err := f.svc.Plant(ctx, f.farmID, "Carrot", t0.Add(time.Minute))
	require.NoError(t, err)
	corn, err := f.svc.Plant(ctx, f.farmID, "Corn", t0.Add(time.Minute))
	require.NoError(t, err)

	now := t0.Add(time.Hour)
	plots, err := f.svc.ListPlanted(ctx, f.farmID, now)
	require.NoError(t, err)
	require.Len(t, plots, 3)

	assert.Equal(t, []int64{wheat.ID, carrot.ID, corn.ID}, []int64{plots[0].ID, plots[1].ID, plots[2].ID})
	assert.Equal(t, domain.CropStateHarvestable, plots[0].State)
	assert.Zero(t, plots[0].Remaining)
	assert.Equal(t, domain.CropStatePlanted, plots[1].State)
	assert.Equal(t, 31*time.Minute, plots[1].Remaining)

	_, err = f.svc.Harvest(ctx, f.farmID, wheat.ID, now)
	require.NoError(t, err)

	plots, err = f.svc.ListPlanted(ctx, f.farmID, now)
	require.NoError(t, err)
	assert.Len(t, plots, 2)

	_, err = f.svc.ListPlanted(ctx, 404, now)
	assert.ErrorIs(t, err, domain.ErrFarmNotFound)
}

func TestStorageUnavailable(t *testing.T) {
	f := newFixture(t)
	planted, err := f.svc.Plant(context.Background(), f.farmID, "Wheat", t0)
	require.NoError(t, err)

	f.store.SetUnavailable(true)
	_, err = f.svc.Harvest(context.Background(), f.farmID, planted.ID, t0.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
