package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/NeuroFarm_Go/internal/database"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

var (
	testPool     *pgxpool.Pool
	testPoolOnce sync.Once
	testPoolErr  error
	terminateFn  func()
)

// setupTestPool starts one Postgres container per package run and applies
// the goose migrations. Tests skip when Docker is unavailable.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testPoolOnce.Do(func() {
		testPool, terminateFn, testPoolErr = startContainer(context.Background())
	})
	if testPoolErr != nil {
		t.Skipf("Skipping integration test: %v", testPoolErr)
	}
	return testPool
}

func startContainer(ctx context.Context) (pool *pgxpool.Pool, terminate func(), err error) {
	// Handle potential panics from testcontainers when Docker is missing
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("container setup panicked (likely Docker issue): %v", r)
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start postgres container: %w", err)
	}
	terminate = func() {
		_ = pgContainer.Terminate(ctx)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err = database.NewPool(ctx, connStr, 20, time.Minute, 5*time.Minute)
	if err != nil {
		terminate()
		return nil, nil, err
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		terminate()
		return nil, nil, err
	}

	return pool, func() {
		pool.Close()
		terminate()
	}, nil
}

// seedTestCatalog upserts a small catalog matching the default crop, animal
// and region values used across tests
func seedTestCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := NewCatalogRepository(pool).SeedCatalog(context.Background(), domain.Catalog{
		Crops: []domain.CropType{
			{Name: "Wheat", GrowthDuration: time.Hour, SellPrice: 10, PlantingCost: 5, Glyph: "🌾"},
		},
		Animals: []domain.AnimalType{
			{Name: "Chicken", ProductName: "Egg", ProductionInterval: time.Hour, ProductSellPrice: 5, PurchaseCost: 50, Glyph: "🐔"},
		},
		Regions: []domain.Region{
			{Name: "Forest", RequiredLevel: 1, ExplorationCost: 10, Glyph: "🌳"},
			{Name: "Mountain", RequiredLevel: 5, ExplorationCost: 30, Glyph: "⛰️"},
		},
	})
	if err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
}

// newTestPlayer creates a player with a unique account key
func newTestPlayer(t *testing.T, pool *pgxpool.Pool) *domain.Player {
	t.Helper()
	key := fmt.Sprintf("test-%s-%d", t.Name(), time.Now().UnixNano())
	p, _, err := NewPlayerRepository(pool).CreatePlayer(context.Background(), key, domain.DefaultLanguage)
	if err != nil {
		t.Fatalf("failed to create player: %v", err)
	}
	return p
}
