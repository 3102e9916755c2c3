package domain

import "time"

// Action names used for cooldown tracking
const (
	ActionFish      = "fish"
	ActionOpenChest = "open_chest"
)

// Default cooldown durations
const (
	FishCooldownDuration      = 5 * time.Minute
	OpenChestCooldownDuration = time.Hour
)

// Experience and coin reward ranges (inclusive)
const (
	ExploreMinExperience = 10
	ExploreMaxExperience = 50

	FishMinExperience = 5
	FishMaxExperience = 20

	ChestMinCoins      = 10
	ChestMaxCoins      = 100
	ChestMinExperience = 5
	ChestMaxExperience = 20
)

// Level curve: advancing from level N costs floor(LevelBaseExperience * N^LevelExponent)
const (
	LevelBaseExperience = 100.0
	LevelExponent       = 1.5
	MaxLevel            = 100
)

// Language codes
const (
	LanguageEnglish            = "en"
	LanguageChineseSimplified  = "zh_CN"
	LanguageChineseTraditional = "zh_TW"
	DefaultLanguage            = LanguageEnglish
)

// Experience sources recorded on level-up events
const (
	ExperienceSourceAward   = "award"
	ExperienceSourceExplore = "explore"
	ExperienceSourceFish    = "fish"
	ExperienceSourceChest   = "chest"
)

// FishCatches are the possible results of a fishing trip
var FishCatches = []string{
	"a small fish",
	"a big fish",
	"a boot",
	"seaweed",
	"a treasure chest",
}

// SupportedLanguages lists the display languages with locale files
var SupportedLanguages = []string{LanguageEnglish, LanguageChineseSimplified, LanguageChineseTraditional}

// IsSupportedLanguage reports whether code names a supported display language
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
