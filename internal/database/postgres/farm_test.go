package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

func setupFarm(t *testing.T) (*FarmRepository, *domain.Player, *domain.Farm) {
	t.Helper()
	pool := setupTestPool(t)
	seedTestCatalog(t, pool)
	p := newTestPlayer(t, pool)

	repo := NewFarmRepository(pool)
	farm, err := repo.CreateFarm(context.Background(), p.ID, "Test Farm")
	require.NoError(t, err)
	return repo, p, farm
}

func wheat(t *testing.T) domain.CropType {
	t.Helper()
	crop, err := NewCatalogRepository(setupTestPool(t)).GetCropTypeByName(context.Background(), "wheat")
	require.NoError(t, err)
	return *crop
}

func chicken(t *testing.T) domain.AnimalType {
	t.Helper()
	animal, err := NewCatalogRepository(setupTestPool(t)).GetAnimalTypeByName(context.Background(), "CHICKEN")
	require.NoError(t, err)
	return *animal
}

func inTx(t *testing.T, repo *FarmRepository, fn func(tx repository.FarmTx) error) error {
	t.Helper()
	ctx := context.Background()
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func TestFarmRepository_CreateFarmOnePerPlayer(t *testing.T) {
	repo, p, farm := setupFarm(t)
	ctx := context.Background()

	again, err := repo.CreateFarm(ctx, p.ID, "Another Name")
	require.NoError(t, err)
	assert.Equal(t, farm.ID, again.ID)
	assert.Equal(t, "Test Farm", again.Name)

	byPlayer, err := repo.GetFarmByPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, farm.ID, byPlayer.ID)

	_, err = repo.GetFarmByID(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrFarmNotFound)
}

func TestFarmTx_WheatLifecycle(t *testing.T) {
	repo, p, farm := setupFarm(t)
	ctx := context.Background()
	crop := wheat(t)
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var planted *domain.PlantedCrop
	err := inTx(t, repo, func(tx repository.FarmTx) error {
		balance, err := tx.AdjustCoins(ctx, p.ID, -crop.PlantingCost)
		if err != nil {
			return err
		}
		assert.Equal(t, int64(95), balance)
		planted, err = tx.InsertPlantedCrop(ctx, farm.ID, crop, t0)
		return err
	})
	require.NoError(t, err)
	assert.True(t, planted.ReadyAt.Equal(t0.Add(time.Hour)))

	err = inTx(t, repo, func(tx repository.FarmTx) error {
		_, err := tx.HarvestCrop(ctx, farm.ID, planted.ID, t0.Add(3599*time.Second))
		return err
	})
	assert.ErrorIs(t, err, domain.ErrNotReady)

	err = inTx(t, repo, func(tx repository.FarmTx) error {
		rec, err := tx.HarvestCrop(ctx, farm.ID, planted.ID, t0.Add(3600*time.Second))
		if err != nil {
			return err
		}
		assert.Equal(t, p.ID, rec.PlayerID)
		assert.Equal(t, int64(10), rec.SellPrice)
		balance, err := tx.AdjustCoins(ctx, rec.PlayerID, rec.SellPrice)
		assert.Equal(t, int64(105), balance)
		return err
	})
	require.NoError(t, err)

	err = inTx(t, repo, func(tx repository.FarmTx) error {
		_, err := tx.HarvestCrop(ctx, farm.ID, planted.ID, t0.Add(2*time.Hour))
		return err
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyHarvested)

	err = inTx(t, repo, func(tx repository.FarmTx) error {
		_, err := tx.HarvestCrop(ctx, farm.ID, planted.ID+1000, t0.Add(2*time.Hour))
		return err
	})
	assert.ErrorIs(t, err, domain.ErrPlantedCropNotFound)

	crops, err := repo.ListPlantedCrops(ctx, farm.ID)
	require.NoError(t, err)
	assert.Empty(t, crops)
}

func TestFarmTx_ConcurrentHarvestSucceedsOnce(t *testing.T) {
	repo, _, farm := setupFarm(t)
	ctx := context.Background()
	crop := wheat(t)
	t0 := time.Now().Add(-2 * time.Hour)

	var planted *domain.PlantedCrop
	require.NoError(t, inTx(t, repo, func(tx repository.FarmTx) error {
		var err error
		planted, err = tx.InsertPlantedCrop(ctx, farm.ID, crop, t0)
		return err
	}))

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := inTx(t, repo, func(tx repository.FarmTx) error {
				_, err := tx.HarvestCrop(ctx, farm.ID, planted.ID, time.Now())
				return err
			})
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyHarvested)
	}
	assert.Equal(t, 1, successes)
}

func TestFarmRepository_ListPlantedCropsOrdering(t *testing.T) {
	repo, _, farm := setupFarm(t)
	ctx := context.Background()
	crop := wheat(t)
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var ids []int64
	require.NoError(t, inTx(t, repo, func(tx repository.FarmTx) error {
		for _, at := range []time.Time{t0.Add(time.Minute), t0, t0} {
			pc, err := tx.InsertPlantedCrop(ctx, farm.ID, crop, at)
			if err != nil {
				return err
			}
			ids = append(ids, pc.ID)
		}
		return nil
	}))

	crops, err := repo.ListPlantedCrops(ctx, farm.ID)
	require.NoError(t, err)
	require.Len(t, crops, 3)
	assert.Equal(t, []int64{ids[1], ids[2], ids[0]}, []int64{crops[0].ID, crops[1].ID, crops[2].ID})
	assert.Equal(t, "Wheat", crops[0].CropName)
	assert.True(t, crops[0].ReadyAt.Equal(t0.Add(time.Hour)))
}

func TestFarmTx_ChickenCollectResetsWindow(t *testing.T) {
	repo, p, farm := setupFarm(t)
	ctx := context.Background()
	animal := chicken(t)
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var owned *domain.OwnedAnimal
	require.NoError(t, inTx(t, repo, func(tx repository.FarmTx) error {
		balance, err := tx.AdjustCoins(ctx, p.ID, -animal.PurchaseCost)
		if err != nil {
			return err
		}
		assert.Equal(t, int64(50), balance)
		owned, err = tx.InsertOwnedAnimal(ctx, farm.ID, animal, t0)
		return err
	}))

	collect := func(at time.Time) (*repository.CollectRecord, error) {
		var rec *repository.CollectRecord
		err := inTx(t, repo, func(tx repository.FarmTx) error {
			var err error
			rec, err = tx.CollectAnimal(ctx, farm.ID, owned.ID, at)
			return err
		})
		return rec, err
	}

	rec, err := collect(t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(5), rec.SellPrice)
	assert.True(t, rec.Animal.NextReadyAt.Equal(t0.Add(2*time.Hour)))

	_, err = collect(t0.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrNotReady)

	_, err = collect(t0.Add(2 * time.Hour))
	require.NoError(t, err)

	_, err = collect(t0.Add(3 * time.Hour).Add(-time.Second))
	assert.ErrorIs(t, err, domain.ErrNotReady)

	animals, err := repo.ListOwnedAnimals(ctx, farm.ID)
	require.NoError(t, err)
	require.Len(t, animals, 1)
	assert.Equal(t, "Egg", animals[0].ProductName)
}
