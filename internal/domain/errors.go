package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Kinds
	ErrMsgNotFound           = "not found"
	ErrMsgPreconditionFailed = "precondition failed"
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgInvalidInput       = "invalid input"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Catalog errors
	ErrMsgUnknownCrop   = "unknown crop"
	ErrMsgUnknownAnimal = "unknown animal"
	ErrMsgUnknownRegion = "unknown region"

	// Farm errors
	ErrMsgFarmNotFound         = "farm not found"
	ErrMsgPlantedCropNotFound  = "planted crop not found"
	ErrMsgOwnedAnimalNotFound  = "owned animal not found"
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgLevelTooLow          = "level too low"
	ErrMsgNotReady             = "not ready"
	ErrMsgAlreadyHarvested     = "already harvested"
	ErrMsgOnCooldown           = "action on cooldown"
	ErrMsgUnsupportedLanguage  = "unsupported language"
	ErrMsgNonPositiveAmount    = "amount must be positive"
	ErrMsgTxClosed             = "tx is closed"
	ErrMsgDuplicateCatalogName = "duplicate catalog name"
)

// Error kinds. Every specific error below unwraps to exactly one of these,
// so callers can branch on the family with errors.Is.
var (
	ErrNotFound           = errors.New(ErrMsgNotFound)
	ErrPreconditionFailed = errors.New(ErrMsgPreconditionFailed)
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// NotFound family
	ErrPlayerNotFound      = newKindError(ErrNotFound, ErrMsgPlayerNotFound)
	ErrUnknownCrop         = newKindError(ErrNotFound, ErrMsgUnknownCrop)
	ErrUnknownAnimal       = newKindError(ErrNotFound, ErrMsgUnknownAnimal)
	ErrUnknownRegion       = newKindError(ErrNotFound, ErrMsgUnknownRegion)
	ErrFarmNotFound        = newKindError(ErrNotFound, ErrMsgFarmNotFound)
	ErrPlantedCropNotFound = newKindError(ErrNotFound, ErrMsgPlantedCropNotFound)
	ErrOwnedAnimalNotFound = newKindError(ErrNotFound, ErrMsgOwnedAnimalNotFound)

	// PreconditionFailed family
	ErrInsufficientFunds = newKindError(ErrPreconditionFailed, ErrMsgInsufficientFunds)
	ErrLevelTooLow       = newKindError(ErrPreconditionFailed, ErrMsgLevelTooLow)
	ErrNotReady          = newKindError(ErrPreconditionFailed, ErrMsgNotReady)
	ErrAlreadyHarvested  = newKindError(ErrPreconditionFailed, ErrMsgAlreadyHarvested)
	ErrOnCooldown        = newKindError(ErrPreconditionFailed, ErrMsgOnCooldown)

	// InvalidInput family
	ErrUnsupportedLanguage  = newKindError(ErrInvalidInput, ErrMsgUnsupportedLanguage)
	ErrNonPositiveAmount    = newKindError(ErrInvalidInput, ErrMsgNonPositiveAmount)
	ErrDuplicateCatalogName = newKindError(ErrInvalidInput, ErrMsgDuplicateCatalogName)

	// Transaction already committed or rolled back
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

type kindError struct {
	msg  string
	kind error
}

func newKindError(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// UnknownNameError is returned when a catalog lookup misses. Kind is one of
// ErrUnknownCrop, ErrUnknownAnimal or ErrUnknownRegion. Suggestion holds the
// closest known name, or is empty when nothing is close enough.
type UnknownNameError struct {
	Kind       error
	Name       string
	Suggestion string
}

func (e *UnknownNameError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s %q (did you mean %q?)", e.Kind.Error(), e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s %q", e.Kind.Error(), e.Name)
}

func (e *UnknownNameError) Unwrap() error { return e.Kind }
