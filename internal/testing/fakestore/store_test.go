package fakestore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

func TestRollbackRestoresState(t *testing.T) {
	s := New()
	ctx := context.Background()
	p, _, err := s.CreatePlayer(ctx, "acct", domain.DefaultLanguage)
	require.NoError(t, err)

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	balance, err := tx.AdjustCoins(ctx, p.ID, -40)
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)
	_, err = tx.AddExperience(ctx, p.ID, 30)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))
	assert.ErrorIs(t, tx.Commit(ctx), domain.ErrTxClosed)

	got, err := s.GetPlayerByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingCoins, got.Coins)
	assert.Zero(t, got.Experience)
}

func TestGuardsMatchStorage(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.SeedCatalog(ctx, domain.Catalog{
		Crops: []domain.CropType{{Name: "Wheat", GrowthDuration: time.Hour, SellPrice: 10, PlantingCost: 5}},
	})
	require.NoError(t, err)
	p, _, _ := s.CreatePlayer(ctx, "acct", domain.DefaultLanguage)
	farms := s.FarmRepo()
	farm, err := farms.CreateFarm(ctx, p.ID, "F")
	require.NoError(t, err)
	wheat, err := s.GetCropTypeByName(ctx, "WHEAT")
	require.NoError(t, err)

	t0 := time.Unix(0, 0)
	tx, err := farms.BeginTx(ctx)
	require.NoError(t, err)
	pc, err := tx.InsertPlantedCrop(ctx, farm.ID, *wheat, t0)
	require.NoError(t, err)
	_, err = tx.HarvestCrop(ctx, farm.ID, pc.ID, t0.Add(time.Hour-time.Second))
	assert.ErrorIs(t, err, domain.ErrNotReady)
	_, err = tx.HarvestCrop(ctx, farm.ID+1, pc.ID, t0.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrPlantedCropNotFound)
	rec, err := tx.HarvestCrop(ctx, farm.ID, pc.ID, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(10), rec.SellPrice)
	_, err = tx.HarvestCrop(ctx, farm.ID, pc.ID, t0.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrAlreadyHarvested)
	require.NoError(t, tx.Commit(ctx))
}

func TestUnavailable(t *testing.T) {
	s := New()
	s.SetUnavailable(true)
	_, err := s.GetPlayerByAccount(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, 1, s.Calls("GetPlayerByAccount"))
}
