package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction   = "failed to commit transaction"
	ErrMsgFailedToRollbackTransaction = "failed to rollback transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToGetPlayer      = "failed to get player"
	ErrMsgFailedToInsertPlayer   = "failed to insert player"
	ErrMsgFailedToUpdateLanguage = "failed to update language"
	ErrMsgFailedToAdjustCoins    = "failed to adjust coins"
	ErrMsgFailedToAddExperience  = "failed to add experience"
	ErrMsgFailedToRaiseLevel     = "failed to raise level"
	ErrMsgFailedToChargeExplore  = "failed to charge exploration"
	ErrMsgInvalidPlayerID        = "invalid player id"
)

// Error Messages - Farm Operations
const (
	ErrMsgFailedToGetFarm         = "failed to get farm"
	ErrMsgFailedToInsertFarm      = "failed to insert farm"
	ErrMsgFailedToListCrops       = "failed to list planted crops"
	ErrMsgFailedToListAnimals     = "failed to list owned animals"
	ErrMsgFailedToInsertCrop      = "failed to insert planted crop"
	ErrMsgFailedToHarvestCrop     = "failed to harvest crop"
	ErrMsgFailedToInsertAnimal    = "failed to insert owned animal"
	ErrMsgFailedToCollectAnimal   = "failed to collect from animal"
	ErrMsgFailedToClassifyFailure = "failed to classify rejected update"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToUpsertCrop   = "failed to upsert crop type"
	ErrMsgFailedToUpsertAnimal = "failed to upsert animal type"
	ErrMsgFailedToUpsertRegion = "failed to upsert region"
	ErrMsgFailedToGetCatalog   = "failed to get catalog entry"
	ErrMsgFailedToListCatalog  = "failed to list catalog"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToQueryEvents   = "failed to query events"
	ErrMsgFailedToCleanupEvents = "failed to cleanup events"
)

// PostgreSQL Error Codes
const (
	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation = "23503"
)
