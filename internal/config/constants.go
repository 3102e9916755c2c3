package config

import "time"

// Default values used when the environment leaves a setting unset
const (
	DefaultPort        = "8080"
	DefaultVersion     = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultDBName      = "neurofarm"
	DefaultLanguage    = "en"

	DefaultDBMaxConns    = 20
	DefaultDBMaxConnIdle = 5 * time.Minute
	DefaultDBMaxConnLife = 30 * time.Minute

	DefaultCatalogTTL       = 10 * time.Minute
	DefaultCatalogCacheSize = 256

	DefaultFishCooldown      = 5 * time.Minute
	DefaultOpenChestCooldown = time.Hour

	DefaultEventMaxRetries       = 5
	DefaultEventRetryDelay       = 2 * time.Second
	DefaultDeadLetterPath        = "logs/event_deadletter.jsonl"
	DefaultEventLogRetentionDays = 30
	DefaultEventLogCleanupEvery  = 24 * time.Hour
	DefaultWorkerCount           = 4
	DefaultWorkerQueueSize       = 100
)

const (
	// Configuration file paths
	ConfigPathCatalog       = "configs/catalog.json"
	ConfigPathCatalogSchema = "configs/schemas/catalog.schema.json"
)
