package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/database"
)

const migrateTimeout = 2 * time.Minute

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, create")
	}
	subcmd := args[0]

	// create only writes a file, no DB connection needed
	if subcmd == "create" {
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		migrationType := "sql"
		if len(args) > 2 {
			migrationType = args[2]
		}
		return runCommandVerbose("go", "run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", "migrations", "create", args[1], migrationType)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch subcmd {
	case "up":
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		if err := database.MigrateDown(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Rolled back one migration")
	case "status":
		statuses, err := database.MigrationStatuses(ctx, pool)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			if s.Applied {
				PrintSuccess("%05d %s", s.Version, s.Path)
			} else {
				PrintWarning("%05d %s (pending)", s.Version, s.Path)
			}
		}
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
	return nil
}
