package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port           int
	APIKey         string // API key for authentication
	TrustedProxies []string
	Version        string

	// Logging
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string

	// Database
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	DBMaxConnIdle  time.Duration
	DBMaxConnLife  time.Duration
	AutoMigrate    bool
	SeedOnStartup  bool
	CatalogPath    string
	CatalogTTL     time.Duration
	CatalogCacheSz int

	// Game
	DefaultLanguage   string
	DevMode           bool
	FishCooldown      time.Duration
	OpenChestCooldown time.Duration

	// Events
	EventMaxRetries       int
	EventRetryDelay       time.Duration
	DeadLetterPath        string
	EventLogRetentionDays int
	EventLogCleanupEvery  time.Duration
	WorkerCount           int
	WorkerQueueSize       int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
		Version:        getEnv("APP_VERSION", DefaultVersion),

		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:     getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdle),
		DBMaxConnLife:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLife),
		AutoMigrate:    getEnvAsBool("DB_AUTO_MIGRATE", true),
		SeedOnStartup:  getEnvAsBool("CATALOG_SEED_ON_STARTUP", true),
		CatalogPath:    getEnv("CATALOG_PATH", ""),
		CatalogTTL:     getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogTTL),
		CatalogCacheSz: getEnvAsInt("CATALOG_CACHE_SIZE", DefaultCatalogCacheSize),

		DefaultLanguage:   getEnv("DEFAULT_LANGUAGE", DefaultLanguage),
		DevMode:           getEnvAsBool("DEV_MODE", false),
		FishCooldown:      getEnvAsDuration("FISH_COOLDOWN", DefaultFishCooldown),
		OpenChestCooldown: getEnvAsDuration("OPEN_CHEST_COOLDOWN", DefaultOpenChestCooldown),

		EventMaxRetries:       getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:       getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		DeadLetterPath:        getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		EventLogRetentionDays: getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDays),
		EventLogCleanupEvery:  getEnvAsDuration("EVENT_LOG_CLEANUP_INTERVAL", DefaultEventLogCleanupEvery),
		WorkerCount:           getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:       getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.DBMaxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", cfg.DBMaxConns)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
