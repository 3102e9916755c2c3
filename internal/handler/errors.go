package handler

import (
	"errors"
	"math"
	"net/http"

	"github.com/osse101/NeuroFarm_Go/internal/cooldown"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidFarmID         = "Invalid farm id"
	ErrMsgInvalidCropID         = "Invalid crop id"
	ErrMsgInvalidAnimalID       = "Invalid animal id"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgCatalogLoaderMissing  = "Catalog file seeding is not configured"
)

// User-facing messages for each error code
const (
	ErrMsgPlayerNotFoundError      = "Player not found"
	ErrMsgFarmNotFoundError        = "Farm not found"
	ErrMsgUnknownCropError         = "Unknown crop"
	ErrMsgUnknownAnimalError       = "Unknown animal"
	ErrMsgUnknownRegionError       = "Unknown region"
	ErrMsgPlantedCropNotFoundError = "Crop not found on this farm"
	ErrMsgOwnedAnimalNotFoundError = "Animal not found on this farm"
	ErrMsgResourceNotFoundErr      = "Resource not found"
	ErrMsgNotEnoughCoinsError      = "Not enough coins"
	ErrMsgLevelTooLowError         = "Your level is too low"
	ErrMsgNotReadyError            = "Not ready yet"
	ErrMsgAlreadyHarvestedError    = "Crop was already harvested"
	ErrMsgOnCooldownError          = "Action is on cooldown. Try again later"
	ErrMsgPreconditionFailedError  = "Request cannot be completed right now"
	ErrMsgInvalidRequestError      = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError         = "Server is temporarily unavailable. Please try again later."
	ErrMsgGenericServerError       = "Something went wrong"
)

type errorMapping struct {
	status  int
	message string
}

// errorTable maps every API error code to its HTTP status and message
var errorTable = map[string]errorMapping{
	domain.CodePlayerNotFound:      {http.StatusNotFound, ErrMsgPlayerNotFoundError},
	domain.CodeFarmNotFound:        {http.StatusNotFound, ErrMsgFarmNotFoundError},
	domain.CodeUnknownCrop:         {http.StatusNotFound, ErrMsgUnknownCropError},
	domain.CodeUnknownAnimal:       {http.StatusNotFound, ErrMsgUnknownAnimalError},
	domain.CodeUnknownRegion:       {http.StatusNotFound, ErrMsgUnknownRegionError},
	domain.CodePlantedCropNotFound: {http.StatusNotFound, ErrMsgPlantedCropNotFoundError},
	domain.CodeOwnedAnimalNotFound: {http.StatusNotFound, ErrMsgOwnedAnimalNotFoundError},
	domain.CodeNotFound:            {http.StatusNotFound, ErrMsgResourceNotFoundErr},

	domain.CodeInsufficientFunds:  {http.StatusConflict, ErrMsgNotEnoughCoinsError},
	domain.CodeLevelTooLow:        {http.StatusConflict, ErrMsgLevelTooLowError},
	domain.CodeNotReady:           {http.StatusConflict, ErrMsgNotReadyError},
	domain.CodeAlreadyHarvested:   {http.StatusConflict, ErrMsgAlreadyHarvestedError},
	domain.CodePreconditionFailed: {http.StatusConflict, ErrMsgPreconditionFailedError},
	domain.CodeOnCooldown:         {http.StatusTooManyRequests, ErrMsgOnCooldownError},

	domain.CodeInvalidInput:       {http.StatusBadRequest, ErrMsgInvalidRequestError},
	domain.CodeStorageUnavailable: {http.StatusServiceUnavailable, ErrMsgUnavailableError},
	domain.CodeInternalError:      {http.StatusInternalServerError, ErrMsgGenericServerError},
}

// mapServiceError converts a service error into the HTTP status and the
// response body clients see. Internal details never reach the body.
func mapServiceError(err error) (int, ErrorResponse) {
	code := domain.ErrorCode(err)
	m, ok := errorTable[code]
	if !ok {
		code = domain.CodeInternalError
		m = errorTable[code]
	}

	resp := ErrorResponse{Error: m.message, Code: code}

	var unk *domain.UnknownNameError
	if errors.As(err, &unk) {
		resp.Suggestion = unk.Suggestion
	}

	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		resp.RetryAfterSeconds = int64(math.Ceil(cd.Remaining.Seconds()))
	}

	return m.status, resp
}

// respondServiceError logs a failed service call and writes the mapped
// error response. Server-side failures log at error level, client ones at
// info.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, resp := mapServiceError(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err, "code", resp.Code)
	} else {
		log.Info(op+" rejected", "error", err, "code", resp.Code)
	}

	if resp.RetryAfterSeconds > 0 {
		w.Header().Set(HeaderRetryAfter, formatInt(resp.RetryAfterSeconds))
	}
	respondJSON(w, status, resp)
}
