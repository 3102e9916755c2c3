package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/bootstrap"
	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/config"
	"github.com/osse101/NeuroFarm_Go/internal/database/postgres"
)

const seedTimeout = time.Minute

// newCatalogService builds a catalog service over pool. Seeds run outside
// the server, so nothing is published.
func newCatalogService(pool *pgxpool.Pool) catalog.Service {
	return catalog.NewService(postgres.NewCatalogRepository(pool), nil,
		config.DefaultCatalogCacheSize, config.DefaultCatalogTTL)
}

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed the catalog (built-in default, or -file <path>)"
}

func (c *SeedCommand) Run(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	file := fs.String("file", "", "Catalog file to load instead of the built-in default")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	report, err := bootstrap.SeedCatalog(ctx, newCatalogService(pool), *file)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	PrintSuccess("Catalog seeded: %d crops, %d animals, %d regions", report.Crops, report.Animals, report.Regions)
	return nil
}
