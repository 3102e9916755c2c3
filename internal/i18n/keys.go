package i18n

// Message keys shared by every locale file
const (
	KeyHello            = "hello"
	KeyHelpText         = "help_text"
	KeyProfileTitle     = "profile_title"
	KeyProfileCoins     = "profile_coins"
	KeyProfileLevel     = "profile_level"
	KeyProfileXP        = "profile_experience"
	KeyProfileNextLevel = "profile_next_level"
	KeyProfileMaxLevel  = "profile_max_level"
	KeyPlantSuccess     = "plant_success"
	KeyHarvestTime      = "harvest_time"
	KeyCropsTitle       = "crops_title"
	KeyCropsEmpty       = "crops_empty"
	KeyCropReady        = "crop_ready"
	KeyCropGrowing      = "crop_growing"
	KeyHarvestSuccess   = "harvest_success"
	KeyHarvestAll       = "harvest_all"
	KeyHarvestNone      = "harvest_none"
	KeyBreedSuccess     = "breed_success"
	KeyAnimalsTitle     = "animals_title"
	KeyAnimalsEmpty     = "animals_empty"
	KeyAnimalReady      = "animal_ready"
	KeyAnimalWaiting    = "animal_waiting"
	KeyCollectSuccess   = "collect_success"
	KeyCollectAll       = "collect_all"
	KeyCollectNone      = "collect_none"
	KeyExploreResult    = "explore_result"
	KeyLevelUp          = "level_up"
	KeyMarketWelcome    = "market_welcome"
	KeyShopWelcome      = "shop_welcome"
	KeyFishingResult    = "fishing_result"
	KeyChestOpened      = "chest_opened"
	KeyLanguageChanged  = "language_changed"
	KeySyncDone         = "sync_done"
	KeySyncDenied       = "sync_denied"
	KeyDidYouMean       = "did_you_mean"

	KeyErrCropNotFound     = "err_crop_not_found"
	KeyErrAnimalNotFound   = "err_animal_not_found"
	KeyErrRegionNotFound   = "err_region_not_found"
	KeyErrNotEnoughCoins   = "err_not_enough_coins"
	KeyErrLevelTooLow      = "err_level_too_low"
	KeyErrNotReady         = "err_not_ready"
	KeyErrAlreadyHarvested = "err_already_harvested"
	KeyErrOnCooldown       = "err_on_cooldown"
	KeyErrNotFound         = "err_not_found"
	KeyErrInvalidInput     = "err_invalid_input"
	KeyErrUnavailable      = "err_unavailable"
	KeyErrInternal         = "err_internal"
)
