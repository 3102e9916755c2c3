package eventlog

// JSON payload field keys
const (
	PayloadKeyPlayerID = "player_id"
)

// Log messages - service events
const (
	LogMsgEventPayloadInvalid = "Event payload could not be converted, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event to database"
	LogMsgEventLogged         = "Event logged to database"
	LogMsgSubscribed          = "Event log subscribed to domain events"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldPlayerID      = "player_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retention_days"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deleted_count"
)

// DefaultRecentLimit caps Recent queries that pass no limit
const DefaultRecentLimit = 50
