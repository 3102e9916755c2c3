package ledger

// Log messages
const (
	LogMsgPlayerCreated   = "Player created"
	LogMsgLevelUp         = "Player leveled up"
	LogMsgCoinsAdjusted   = "Player coins adjusted"
	LogMsgLanguageUpdated = "Player language updated"
)

// Error messages
const (
	ErrMsgGetPlayer      = "failed to get player"
	ErrMsgCreatePlayer   = "failed to create player"
	ErrMsgBeginTx        = "failed to begin transaction"
	ErrMsgCommitTx       = "failed to commit transaction"
	ErrMsgAdjustCoins    = "failed to adjust coins"
	ErrMsgAddExperience  = "failed to add experience"
	ErrMsgRaiseLevel     = "failed to raise level"
	ErrMsgUpdateLanguage = "failed to update language"
)
