package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
	MetricNameSSEClients         = "sse_clients_connected"
)

// Business metric names
const (
	MetricNamePlayersCreated    = "players_created_total"
	MetricNameCropsPlanted      = "crops_planted_total"
	MetricNameCropsHarvested    = "crops_harvested_total"
	MetricNameAnimalsPurchased  = "animals_purchased_total"
	MetricNameAnimalCollections = "animal_collections_total"
	MetricNameExplorations      = "explorations_total"
	MetricNameCoinsEarned       = "coins_earned_total"
	MetricNameCoinsSpent        = "coins_spent_total"
	MetricNameLevelUps          = "level_ups_total"
	MetricNameCooldownHits      = "cooldown_hits_total"
)

// Discord metric names
const (
	MetricNameDiscordCommands = "discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
	HelpTextSSEClients         = "Current number of connected SSE clients"
)

// Business metric help text
const (
	HelpTextPlayersCreated    = "Total number of players created"
	HelpTextCropsPlanted      = "Total number of crops planted"
	HelpTextCropsHarvested    = "Total number of crops harvested"
	HelpTextAnimalsPurchased  = "Total number of animals purchased"
	HelpTextAnimalCollections = "Total number of animal products collected"
	HelpTextExplorations      = "Total number of region explorations"
	HelpTextCoinsEarned       = "Total coins paid out to players"
	HelpTextCoinsSpent        = "Total coins spent by players"
	HelpTextLevelUps          = "Total number of player level-ups"
	HelpTextCooldownHits      = "Total number of actions rejected by a cooldown"
)

// Discord metric help text
const (
	HelpTextDiscordCommands = "Total number of Discord commands handled"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCrop    = "crop"
	LabelAnimal  = "animal"
	LabelProduct = "product"
	LabelRegion  = "region"
	LabelSource  = "source"
	LabelAction  = "action"
	LabelCommand = "command"
)

// Coin flow sources
const (
	SourceHarvest = "harvest"
	SourceCollect = "collect"
	SourceChest   = "chest"
	SourcePlant   = "plant"
	SourceAnimal  = "animal"
	SourceExplore = "explore"
)

// Discord command outcomes
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"
