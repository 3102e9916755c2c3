package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/bootstrap"
)

const (
	migrateAttempts = 3
	migrateBackoff  = 5 * time.Second
	backupDir       = "/tmp"
)

type EntrypointCommand struct{}

func (c *EntrypointCommand) Name() string {
	return "entrypoint"
}

func (c *EntrypointCommand) Description() string {
	return "Container entrypoint: wait for db, back up, migrate, seed, then exec the binary"
}

func (c *EntrypointCommand) Run(args []string) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: devtool entrypoint [--] <binary> [args...]")
	}

	// Inside compose the database is reachable by service name
	if os.Getenv("DB_HOST") == "" {
		_ = os.Setenv("DB_HOST", "db")
	}

	if err := (&WaitForDBCommand{}).Run(nil); err != nil {
		return fmt.Errorf("database never became ready: %w", err)
	}
	if backupWanted() {
		c.backup()
	}
	if err := c.migrate(); err != nil {
		return err
	}
	if os.Getenv("SEED_CATALOG") == "true" {
		if err := c.seed(); err != nil {
			return err
		}
	}
	return execBinary(args)
}

func backupWanted() bool {
	return getEnv("ENVIRONMENT", "") == envProduction || os.Getenv("CREATE_BACKUP") == "true"
}

// backup dumps the database before migrating. A fresh database with no
// players table has nothing worth saving. Failures only warn.
func (c *EntrypointCommand) backup() {
	ctx, cancel := context.WithTimeout(context.Background(), dbAdminTimeout)
	defer cancel()

	if !playersTableExists(ctx) {
		PrintInfo("Fresh database, skipping backup")
		return
	}
	if _, err := exec.LookPath("pg_dump"); err != nil {
		PrintWarning("pg_dump not found, skipping backup")
		return
	}

	PrintHeader("Backing up " + dbName())
	path := filepath.Join(backupDir, fmt.Sprintf("%s_backup_%s.sql", appName, time.Now().Format("20060102_150405")))
	out, err := os.Create(path)
	if err != nil {
		PrintWarning("Could not create %s: %v", path, err)
		return
	}
	defer out.Close()

	dump, err := command("pg_dump",
		"-h", getEnv("DB_HOST", defaultDBHost),
		"-p", getEnv("DB_PORT", defaultDBPort),
		"-U", getEnv("DB_USER", defaultDBUser),
		"-d", dbName())
	if err != nil {
		PrintWarning("Backup skipped: %v", err)
		return
	}
	dump.Env = append(os.Environ(), "PGPASSWORD="+getEnv("DB_PASSWORD", defaultDBPassword))
	dump.Stdout, dump.Stderr = out, stderr

	if err := dump.Run(); err != nil {
		PrintWarning("Backup failed: %v", err)
		return
	}
	PrintSuccess("Backup written to %s", path)
}

func playersTableExists(ctx context.Context) bool {
	pool, err := openPool(ctx)
	if err != nil {
		return false
	}
	defer pool.Close()

	var exists bool
	err = pool.QueryRow(ctx, `SELECT to_regclass('public.players') IS NOT NULL`).Scan(&exists)
	return err == nil && exists
}

func (c *EntrypointCommand) migrate() error {
	var err error
	for attempt := 1; attempt <= migrateAttempts; attempt++ {
		if err = (&MigrateCommand{}).Run([]string{"up"}); err == nil {
			return nil
		}
		PrintWarning("Migration attempt %d/%d failed: %v", attempt, migrateAttempts, err)
		if attempt < migrateAttempts {
			time.Sleep(migrateBackoff)
		}
	}
	return fmt.Errorf("migrations failed after %d attempts: %w", migrateAttempts, err)
}

// seed loads CATALOG_PATH when set, otherwise the built-in catalog
func (c *EntrypointCommand) seed() error {
	ctx, cancel := context.WithTimeout(context.Background(), dbAdminTimeout)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	report, err := bootstrap.SeedCatalog(ctx, newCatalogService(pool), os.Getenv("CATALOG_PATH"))
	if err != nil {
		return fmt.Errorf("catalog seed failed: %w", err)
	}
	PrintSuccess("Catalog seeded: %d crops, %d animals, %d regions", report.Crops, report.Animals, report.Regions)
	return nil
}

// execBinary replaces the devtool process so the app receives signals directly
func execBinary(args []string) error {
	path, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("executable not found: %w", err)
	}
	if err := checkHostile(args...); err != nil {
		return err
	}

	PrintHeader("Starting " + filepath.Base(path))
	return syscall.Exec(path, args, os.Environ()) // #nosec G204 -- arguments checked above
}
