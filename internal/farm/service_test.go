package farm

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/testing/fakestore"
)

func newPlayer(t *testing.T, store *fakestore.Store, key string) string {
	t.Helper()
	p, _, err := store.CreatePlayer(context.Background(), key, domain.LanguageEnglish)
	require.NoError(t, err)
	return p.ID
}

func TestGetOrCreate(t *testing.T) {
	store := fakestore.New()
	svc := NewService(store.FarmRepo())
	ctx := context.Background()
	playerID := newPlayer(t, store, "alice")

	f, err := svc.GetOrCreate(ctx, playerID, "Alice's Farm")
	require.NoError(t, err)
	assert.Equal(t, "Alice's Farm", f.Name)
	assert.Equal(t, 1, f.Level)

	again, err := svc.GetOrCreate(ctx, playerID, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, f.ID, again.ID)
	assert.Equal(t, "Alice's Farm", again.Name)
	assert.Equal(t, 1, store.Calls("CreateFarm"))
}

func TestGetOrCreate_Concurrent(t *testing.T) {
	store := fakestore.New()
	svc := NewService(store.FarmRepo())
	playerID := newPlayer(t, store, "bob")

	var wg sync.WaitGroup
	ids := make([]int64, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, err := svc.GetOrCreate(context.Background(), playerID, "")
			if assert.NoError(t, err) {
				ids[i] = f.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestGetOrCreate_Errors(t *testing.T) {
	store := fakestore.New()
	svc := NewService(store.FarmRepo())

	_, err := svc.GetOrCreate(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	store.SetUnavailable(true)
	_, err = svc.GetOrCreate(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Zero(t, store.Calls("CreateFarm")-1)
}

func TestGetters(t *testing.T) {
	store := fakestore.New()
	svc := NewService(store.FarmRepo())
	ctx := context.Background()
	playerID := newPlayer(t, store, "carol")

	_, err := svc.GetByPlayer(ctx, playerID)
	assert.ErrorIs(t, err, domain.ErrFarmNotFound)

	f, err := svc.GetOrCreate(ctx, playerID, "")
	require.NoError(t, err)

	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, playerID, got.PlayerID)

	got, err = svc.GetByPlayer(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, DefaultName, normalizeName("   "))
	assert.Equal(t, "Dana's Farm", normalizeName(" Dana's Farm "))
	assert.Len(t, []rune(normalizeName(strings.Repeat("农", 100))), MaxNameLength)
}
