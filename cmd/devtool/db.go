package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/config"
	"github.com/osse101/NeuroFarm_Go/internal/database"
)

const (
	defaultDBUser     = "postgres"
	defaultDBPassword = "postgres"
	defaultDBHost     = "localhost"
	defaultDBPort     = "5432"

	devtoolMaxConns     = 4
	devtoolConnIdle     = time.Minute
	devtoolConnLifetime = 10 * time.Minute
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// dbName returns the configured database name
func dbName() string {
	return getEnv("DB_NAME", config.DefaultDBName)
}

// dbURL returns DB_URL, or builds one from the DB_* variables pointed at name
func dbURL(name string) string {
	if u := os.Getenv("DB_URL"); u != "" && name == dbName() {
		return u
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getEnv("DB_USER", defaultDBUser), getEnv("DB_PASSWORD", defaultDBPassword)),
		Host:     getEnv("DB_HOST", defaultDBHost) + ":" + getEnv("DB_PORT", defaultDBPort),
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// redactPassword masks the password in a connection string for display
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "***")
	}
	return u.String()
}

// openPool connects to the application database
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	connStr := dbURL(dbName())
	PrintInfo("Connecting to database: %s", redactPassword(connStr))

	pool, err := database.NewPool(ctx, connStr, devtoolMaxConns, devtoolConnIdle, devtoolConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}
