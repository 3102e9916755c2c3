package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/mocks"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-06-%02d_10-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2024-06-03_10-00-00.log")
	assert.Contains(t, names, "session_2024-06-04_10-00-00.log")
	assert.Contains(t, names, "session_2024-06-12_10-00-00.log")
}

func TestSeedCatalog_Default(t *testing.T) {
	svc := mocks.NewMockCatalogService(t)
	want := &domain.SeedReport{Crops: 3, Animals: 2, Regions: 2}
	svc.On("Seed", mock.Anything, catalog.DefaultCatalog(), catalog.SourceDefault).Return(want, nil)

	got, err := SeedCatalog(context.Background(), svc, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSeedCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "crops": [{"name": "Rice", "growth_seconds": 60, "sell_price": 3, "planting_cost": 1}],
  "animals": [],
  "regions": []
}`), 0o600))

	svc := mocks.NewMockCatalogService(t)
	svc.On("Seed", mock.Anything, mock.MatchedBy(func(c domain.Catalog) bool {
		return len(c.Crops) == 1 && c.Crops[0].Name == "Rice"
	}), catalog.SourceFile).Return(&domain.SeedReport{Crops: 1}, nil)

	report, err := SeedCatalog(context.Background(), svc, path)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Crops)
}

func TestSeedCatalog_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		_, err := SeedCatalog(context.Background(), svc, filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		boom := errors.New("boom")
		svc.On("Seed", mock.Anything, mock.Anything, catalog.SourceDefault).Return(nil, boom)

		_, err := SeedCatalog(context.Background(), svc, "")
		assert.ErrorIs(t, err, boom)
	})
}

func TestGracefulShutdown_SkipsNilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
