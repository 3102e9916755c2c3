package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// URL parameter names
const (
	ParamAccountKey = "account_key"
	ParamFarmID     = "farm_id"
	ParamCropID     = "crop_id"
	ParamAnimalID   = "animal_id"
	QueryParamLimit = "limit"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// On failure the error response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req PlantRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Code:   domain.CodeInvalidInput,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// pathInt64 parses a positive integer URL parameter. On failure it writes a
// 400 response and returns false.
func pathInt64(w http.ResponseWriter, r *http.Request, name, errMsg string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid path parameter", "param", name, "value", raw)
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, errMsg)
		return 0, false
	}
	return id, true
}

// queryLimit reads an optional positive limit, clamped to max
func queryLimit(w http.ResponseWriter, r *http.Request, def, max int) (int, bool) {
	raw := r.URL.Query().Get(QueryParamLimit)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, ErrMsgInvalidLimit)
		return 0, false
	}
	if n > max {
		n = max
	}
	return n, true
}
