package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type languageStruct struct {
	Language string `json:"language" validate:"language"`
}

func TestValidator_LanguageValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		language string
		wantErr  bool
	}{
		{"english", "en", false},
		{"simplified chinese", "zh_CN", false},
		{"traditional chinese", "zh_TW", false},
		{"empty allowed", "", false},
		{"bcp47 form rejected", "zh-CN", true},
		{"unsupported", "fr", true},
		{"wrong case", "EN", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(languageStruct{Language: tt.language})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_RequestStructs(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		req     interface{}
		wantErr bool
	}{
		{"create player", CreatePlayerRequest{AccountKey: "discord:1"}, false},
		{"create player missing key", CreatePlayerRequest{}, true},
		{"create player long key", CreatePlayerRequest{AccountKey: strings.Repeat("k", 129)}, true},
		{"create player control chars", CreatePlayerRequest{AccountKey: "a\nb"}, true},
		{"amount", AmountRequest{Amount: 1}, false},
		{"zero amount", AmountRequest{Amount: 0}, true},
		{"negative amount", AmountRequest{Amount: -5}, true},
		{"plant", PlantRequest{Crop: "Wheat"}, false},
		{"plant missing crop", PlantRequest{}, true},
		{"language required", SetLanguageRequest{}, true},
		{"language ok", SetLanguageRequest{Language: "zh_TW"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(SetLanguageRequest{Language: "fr"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Contains(t, fields["language"], "zh_CN")

	err = GetValidator().ValidateStruct(AmountRequest{Amount: 0})
	require.Error(t, err)
	assert.Equal(t, "Must be at least 1", FormatValidationError(err)["amount"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}
