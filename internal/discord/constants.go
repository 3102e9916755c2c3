package discord

import "time"

// Embed colors
const (
	ColorSuccess = 0x2ecc71
	ColorInfo    = 0x3498db
	ColorWarning = 0xf39c12
	ColorError   = 0xe74c3c
	ColorGold    = 0xffd700
)

// Footer constants for standardized embed footers
const (
	FooterNeuroFarm      = "NeuroFarm"
	FooterNeuroFarmAdmin = "NeuroFarm Admin"
)

// AccountKeyPrefix namespaces Discord user ids as API account keys
const AccountKeyPrefix = "discord:"

// API client settings
const (
	APIRequestTimeout = 10 * time.Second
	APIMaxRetries     = 3
	APIRetryBaseDelay = 500 * time.Millisecond
)

// MaxAutocompleteChoices is Discord's limit for autocomplete results
const MaxAutocompleteChoices = 25

// Command names
const (
	CmdHello          = "hello"
	CmdHelp           = "help"
	CmdProfile        = "profile"
	CmdPlant          = "plant"
	CmdCrops          = "crops"
	CmdHarvest        = "harvest"
	CmdBreed          = "breed"
	CmdAnimals        = "animals"
	CmdCollect        = "collect"
	CmdExplore        = "explore"
	CmdMarket         = "market"
	CmdShop           = "shop"
	CmdFish           = "fish"
	CmdOpenChest      = "open_chest"
	CmdChangeLanguage = "change_language"
	CmdSync           = "sync"
)

// Command option names
const (
	OptCrop     = "crop"
	OptCropID   = "crop_id"
	OptAnimal   = "animal"
	OptAnimalID = "animal_id"
	OptRegion   = "region"
	OptLanguage = "language"
)

// Log messages
const (
	LogMsgBotRunning          = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgDeferFailed         = "Failed to send deferred response"
	LogMsgEditFailed          = "Failed to edit interaction response"
	LogMsgCommandFailed       = "Command failed"
	LogMsgRetryingRequest     = "Retrying API request"
	LogMsgRequestFailed       = "API request failed"
	LogMsgAutocompleteFailed  = "Autocomplete lookup failed"
	LogMsgUnhandledAutocomple = "Unhandled autocomplete command"
)
