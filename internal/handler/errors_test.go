package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/NeuroFarm_Go/internal/cooldown"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"player not found", fmt.Errorf("get: %w", domain.ErrPlayerNotFound), http.StatusNotFound, domain.CodePlayerNotFound},
		{"farm not found", domain.ErrFarmNotFound, http.StatusNotFound, domain.CodeFarmNotFound},
		{"planted crop not found", domain.ErrPlantedCropNotFound, http.StatusNotFound, domain.CodePlantedCropNotFound},
		{"owned animal not found", domain.ErrOwnedAnimalNotFound, http.StatusNotFound, domain.CodeOwnedAnimalNotFound},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusConflict, domain.CodeInsufficientFunds},
		{"level too low", domain.ErrLevelTooLow, http.StatusConflict, domain.CodeLevelTooLow},
		{"not ready", domain.ErrNotReady, http.StatusConflict, domain.CodeNotReady},
		{"already harvested", domain.ErrAlreadyHarvested, http.StatusConflict, domain.CodeAlreadyHarvested},
		{"on cooldown", domain.ErrOnCooldown, http.StatusTooManyRequests, domain.CodeOnCooldown},
		{"invalid input", domain.ErrNonPositiveAmount, http.StatusBadRequest, domain.CodeInvalidInput},
		{"unsupported language", domain.ErrUnsupportedLanguage, http.StatusBadRequest, domain.CodeInvalidInput},
		{"storage unavailable", fmt.Errorf("%w: timeout", domain.ErrStorageUnavailable), http.StatusServiceUnavailable, domain.CodeStorageUnavailable},
		{"unclassified", errors.New("pq: relation does not exist"), http.StatusInternalServerError, domain.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotContains(t, resp.Error, "pq:")
		})
	}
}

func TestMapServiceError_Suggestion(t *testing.T) {
	err := fmt.Errorf("plant: %w", &domain.UnknownNameError{Kind: domain.ErrUnknownCrop, Name: "Wheet", Suggestion: "Wheat"})

	status, resp := mapServiceError(err)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.CodeUnknownCrop, resp.Code)
	assert.Equal(t, "Wheat", resp.Suggestion)
}

func TestRespondServiceError_RetryAfter(t *testing.T) {
	err := fmt.Errorf("fish: %w", cooldown.ErrOnCooldown{Action: domain.ActionFish, Remaining: 90*time.Second + 200*time.Millisecond})

	w := httptest.NewRecorder()
	respondServiceError(w, httptest.NewRequest(http.MethodPost, "/", nil), "Fish", err)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "91", w.Header().Get(HeaderRetryAfter))
	assert.JSONEq(t, `{"error":"Action is on cooldown. Try again later","code":"on_cooldown","retry_after_seconds":91}`, w.Body.String())
}
