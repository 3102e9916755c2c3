package domain

import "errors"

// API error codes. These are the stable `code` values the HTTP layer returns
// and the Discord bot translates into localized messages.
const (
	CodePlayerNotFound      = "player_not_found"
	CodeFarmNotFound        = "farm_not_found"
	CodeUnknownCrop         = "unknown_crop"
	CodeUnknownAnimal       = "unknown_animal"
	CodeUnknownRegion       = "unknown_region"
	CodePlantedCropNotFound = "planted_crop_not_found"
	CodeOwnedAnimalNotFound = "owned_animal_not_found"
	CodeNotFound            = "not_found"

	CodeInsufficientFunds  = "insufficient_funds"
	CodeLevelTooLow        = "level_too_low"
	CodeNotReady           = "not_ready"
	CodeAlreadyHarvested   = "already_harvested"
	CodeOnCooldown         = "on_cooldown"
	CodePreconditionFailed = "precondition_failed"

	CodeInvalidInput       = "invalid_input"
	CodeStorageUnavailable = "storage_unavailable"
	CodeInternalError      = "internal_error"
)

var specificCodes = []struct {
	err  error
	code string
}{
	{ErrPlayerNotFound, CodePlayerNotFound},
	{ErrFarmNotFound, CodeFarmNotFound},
	{ErrUnknownCrop, CodeUnknownCrop},
	{ErrUnknownAnimal, CodeUnknownAnimal},
	{ErrUnknownRegion, CodeUnknownRegion},
	{ErrPlantedCropNotFound, CodePlantedCropNotFound},
	{ErrOwnedAnimalNotFound, CodeOwnedAnimalNotFound},
	{ErrOnCooldown, CodeOnCooldown},
	{ErrInsufficientFunds, CodeInsufficientFunds},
	{ErrLevelTooLow, CodeLevelTooLow},
	{ErrNotReady, CodeNotReady},
	{ErrAlreadyHarvested, CodeAlreadyHarvested},
}

// ErrorCode returns the stable code for err. Specific errors take precedence
// over their family; unclassified errors map to CodeInternalError.
func ErrorCode(err error) string {
	for _, sc := range specificCodes {
		if errors.Is(err, sc.err) {
			return sc.code
		}
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrPreconditionFailed):
		return CodePreconditionFailed
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	}
	return CodeInternalError
}
