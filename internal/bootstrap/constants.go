package bootstrap

import "time"

// ServiceName tags every log line
const ServiceName = "neurofarm"

// Each run logs to logs/session_<timestamp>.log and keeps the newest
// LogFileRetentionCount older sessions.
const (
	DirPermission          = 0755
	LogFilePermission      = 0644
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting NeuroFarm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

const (
	EventDefaultMaxRetries = 5
	// Base delay; doubles per attempt
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

const (
	LogMsgSeedingCatalog  = "Seeding catalog"
	LogMsgCatalogSeeded   = "Catalog seeded"
	ErrMsgFailedLoadFile  = "failed to load catalog file"
	ErrMsgFailedSeed      = "failed to seed catalog"
	ErrMsgFailedNewLoader = "failed to build catalog loader"
)

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgSSEBridgeInitialized       = "SSE bridge initialized"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

const (
	// WorkerJobTimeout bounds a single scheduled job
	WorkerJobTimeout = 10 * time.Minute

	LogMsgBackgroundJobsStarted = "Background jobs started"
)

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
