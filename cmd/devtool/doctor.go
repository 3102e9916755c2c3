package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/database"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose the local setup (tools, database, migrations, catalog)"
}

type diagnosis struct {
	name  string
	check func(ctx context.Context) error
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running doctor")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	checks := []diagnosis{
		{"Tools", func(context.Context) error { return (&CheckDepsCommand{}).Run(nil) }},
		{"Database", c.checkDatabase},
		{"Migrations", c.checkMigrations},
		{"Catalog", c.checkCatalog},
	}

	failed := 0
	for _, d := range checks {
		if err := d.check(ctx); err != nil {
			PrintError("%s: %v", d.name, err)
			failed++
			continue
		}
		PrintSuccess("%s OK", d.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	PrintSuccess("Farm is ready to run")
	return nil
}

func (c *DoctorCommand) checkDatabase(ctx context.Context) error {
	pool, err := openPool(ctx)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", redactPassword(dbURL(dbName())), err)
	}
	pool.Close()
	return nil
}

func (c *DoctorCommand) checkMigrations(ctx context.Context) error {
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	statuses, err := database.MigrationStatuses(ctx, pool)
	if err != nil {
		return err
	}
	pending := 0
	for _, s := range statuses {
		if !s.Applied {
			pending++
		}
	}
	if pending > 0 {
		return fmt.Errorf("%d pending, run `devtool migrate up`", pending)
	}
	return nil
}

func (c *DoctorCommand) checkCatalog(ctx context.Context) error {
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	crops, err := newCatalogService(pool).ListCrops(ctx)
	if err != nil {
		return err
	}
	if len(crops) == 0 {
		return fmt.Errorf("no crops defined, run `devtool seed`")
	}
	return nil
}
