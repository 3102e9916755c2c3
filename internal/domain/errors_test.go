package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorFamilies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"player not found", ErrPlayerNotFound, ErrNotFound},
		{"unknown crop", ErrUnknownCrop, ErrNotFound},
		{"unknown animal", ErrUnknownAnimal, ErrNotFound},
		{"unknown region", ErrUnknownRegion, ErrNotFound},
		{"planted crop not found", ErrPlantedCropNotFound, ErrNotFound},
		{"insufficient funds", ErrInsufficientFunds, ErrPreconditionFailed},
		{"level too low", ErrLevelTooLow, ErrPreconditionFailed},
		{"not ready", ErrNotReady, ErrPreconditionFailed},
		{"already harvested", ErrAlreadyHarvested, ErrPreconditionFailed},
		{"on cooldown", ErrOnCooldown, ErrPreconditionFailed},
		{"non-positive amount", ErrNonPositiveAmount, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("plant: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)
		})
	}

	assert.NotErrorIs(t, ErrNotReady, ErrNotFound)
	assert.NotErrorIs(t, ErrUnknownCrop, ErrUnknownAnimal)
}

func TestUnknownNameError(t *testing.T) {
	err := error(&UnknownNameError{Kind: ErrUnknownCrop, Name: "Wheet", Suggestion: "Wheat"})

	assert.ErrorIs(t, err, ErrUnknownCrop)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `did you mean "Wheat"`)

	var unk *UnknownNameError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &unk))
	assert.Equal(t, "Wheat", unk.Suggestion)

	bare := &UnknownNameError{Kind: ErrUnknownRegion, Name: "Moon"}
	assert.Equal(t, `unknown region "Moon"`, bare.Error())
}

func TestPlantedCropState(t *testing.T) {
	planted := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	crop := PlantedCrop{PlantedAt: planted, ReadyAt: planted.Add(time.Hour)}

	assert.Equal(t, CropStatePlanted, crop.State(planted.Add(59*time.Minute)))
	assert.Equal(t, time.Minute, crop.Remaining(planted.Add(59*time.Minute)))
	assert.Equal(t, CropStateHarvestable, crop.State(planted.Add(time.Hour)))
	assert.Zero(t, crop.Remaining(planted.Add(2*time.Hour)))

	harvested := planted.Add(time.Hour)
	crop.HarvestedAt = &harvested
	assert.Equal(t, CropStateHarvested, crop.State(planted.Add(3*time.Hour)))
}

func TestLevelChangeLeveledUp(t *testing.T) {
	assert.True(t, LevelChange{OldLevel: 1, NewLevel: 2}.LeveledUp())
	assert.False(t, LevelChange{OldLevel: 3, NewLevel: 3}.LeveledUp())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("wrap: %w", ErrPlayerNotFound), CodePlayerNotFound},
		{&UnknownNameError{Kind: ErrUnknownCrop, Name: "Wheet"}, CodeUnknownCrop},
		{ErrOnCooldown, CodeOnCooldown},
		{ErrLevelTooLow, CodeLevelTooLow},
		{ErrUnsupportedLanguage, CodeInvalidInput},
		{fmt.Errorf("%w: pool closed", ErrStorageUnavailable), CodeStorageUnavailable},
		{errors.New("boom"), CodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}
