package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/NeuroFarm_Go/internal/activity"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/eventlog"
	"github.com/osse101/NeuroFarm_Go/internal/exploration"
	"github.com/osse101/NeuroFarm_Go/internal/farm"
	"github.com/osse101/NeuroFarm_Go/internal/ledger"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// Event history limits
const (
	DefaultEventLimit = 20
	MaxEventLimit     = 100
)

// PlayerHandler serves the player-scoped routes under /players/{account_key}
type PlayerHandler struct {
	ledger   ledger.Service
	farms    farm.Service
	explorer exploration.Service
	pastimes activity.Service
	eventLog eventlog.Service
	now      func() time.Time
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(ledgerSvc ledger.Service, farmSvc farm.Service, explorationSvc exploration.Service, activitySvc activity.Service, eventLogSvc eventlog.Service) *PlayerHandler {
	return &PlayerHandler{
		ledger:   ledgerSvc,
		farms:    farmSvc,
		explorer: explorationSvc,
		pastimes: activitySvc,
		eventLog: eventLogSvc,
		now:      time.Now,
	}
}

// WithClock replaces the time source used for game actions
func (h *PlayerHandler) WithClock(now func() time.Time) *PlayerHandler {
	h.now = now
	return h
}

// resolvePlayer loads the player named by the account_key URL parameter.
// On failure the error response has been written.
func (h *PlayerHandler) resolvePlayer(w http.ResponseWriter, r *http.Request, op string) (*domain.Player, bool) {
	key := chi.URLParam(r, ParamAccountKey)
	p, err := h.ledger.GetByAccount(r.Context(), key)
	if err != nil {
		respondServiceError(w, r, op, err)
		return nil, false
	}
	return p, true
}

// CreatePlayer handles player registration
// @Summary Register a player
// @Description Returns the player for account_key, creating it with the starting balance when absent
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest true "Player registration"
// @Success 200 {object} CreatePlayerResponse "Existing player"
// @Success 201 {object} CreatePlayerResponse "Player created"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
		return
	}

	p, created, err := h.ledger.GetOrCreate(r.Context(), req.AccountKey, req.Language)
	if err != nil {
		respondServiceError(w, r, "Create player", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		logger.FromContext(r.Context()).Info("Player registered", "player_id", p.ID)
	}
	respondJSON(w, status, CreatePlayerResponse{PlayerResponse: newPlayerResponse(p), Created: created})
}

// GetPlayer returns a player's balance and progress
// @Summary Get a player
// @Tags players
// @Produce json
// @Param account_key path string true "Account key"
// @Success 200 {object} PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{account_key} [get]
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolvePlayer(w, r, "Get player")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newPlayerResponse(p))
}

// SetLanguage changes a player's display language
// @Summary Set display language
// @Tags players
// @Accept json
// @Produce json
// @Param account_key path string true "Account key"
// @Param request body SetLanguageRequest true "Language"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{account_key}/language [put]
func (h *PlayerHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req SetLanguageRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set language"); err != nil {
		return
	}
	p, ok := h.resolvePlayer(w, r, "Set language")
	if !ok {
		return
	}

	if err := h.ledger.SetLanguage(r.Context(), p.ID, req.Language); err != nil {
		respondServiceError(w, r, "Set language", err)
		return
	}
	p.Language = req.Language
	respondJSON(w, http.StatusOK, newPlayerResponse(p))
}

// Credit adds coins to a player
// @Summary Credit coins
// @Tags players
// @Accept json
// @Produce json
// @Param account_key path string true "Account key"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{account_key}/credit [post]
func (h *PlayerHandler) Credit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "Credit", h.ledger.Credit)
}

// Debit removes coins from a player, refusing to go below zero
// @Summary Debit coins
// @Tags players
// @Accept json
// @Produce json
// @Param account_key path string true "Account key"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Router /players/{account_key}/debit [post]
func (h *PlayerHandler) Debit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "Debit", h.ledger.Debit)
}

func (h *PlayerHandler) adjust(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context, playerID string, amount int64) (int64, error)) {
	var req AmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, op); err != nil {
		return
	}
	p, ok := h.resolvePlayer(w, r, op)
	if !ok {
		return
	}

	balance, err := fn(r.Context(), p.ID, req.Amount)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{Coins: balance})
}

// AwardExperience grants experience and settles the level
// @Summary Award experience
// @Tags players
// @Accept json
// @Produce json
// @Param account_key path string true "Account key"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} domain.LevelChange
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{account_key}/experience [post]
func (h *PlayerHandler) AwardExperience(w http.ResponseWriter, r *http.Request) {
	var req AmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Award experience"); err != nil {
		return
	}
	p, ok := h.resolvePlayer(w, r, "Award experience")
	if !ok {
		return
	}

	change, err := h.ledger.AwardExperience(r.Context(), p.ID, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Award experience", err)
		return
	}
	respondJSON(w, http.StatusOK, change)
}

// CreateFarm returns the player's farm, creating it on first use
// @Summary Get or create a player's farm
// @Tags farms
// @Accept json
// @Produce json
// @Param account_key path string true "Account key"
// @Param request body CreateFarmRequest false "Farm name"
// @Success 200 {object} domain.Farm
// @Failure 404 {object} ErrorResponse
// @Router /players/{account_key}/farm [post]
func (h *PlayerHandler) CreateFarm(w http.ResponseWriter, r *http.Request) {
	var req CreateFarmRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Create farm"); err != nil {
			return
		}
	}
	p, ok := h.resolvePlayer(w, r, "Create farm")
	if !ok {
		return
	}

	f, err := h.farms.GetOrCreate(r.Context(), p.ID, req.Name)
	if err != nil {
		respondServiceError(w, r, "Create farm", err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// Explore spends coins to explore a region
// @Summary Explore a region
// @Tags activities
// @Accept json
// @Produce json
// @Param account_key path string true "Account key"
// @Param request body ExploreRequest true "Region"
// @Success 200 {object} domain.ExploreResult
// @Failure 404 {object} ErrorResponse "Unknown region, with a suggestion when one is close"
// @Failure 409 {object} ErrorResponse "Level too low or insufficient funds"
// @Router /players/{account_key}/explore [post]
func (h *PlayerHandler) Explore(w http.ResponseWriter, r *http.Request) {
	var req ExploreRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Explore"); err != nil {
		return
	}
	p, ok := h.resolvePlayer(w, r, "Explore")
	if !ok {
		return
	}

	res, err := h.explorer.Explore(r.Context(), p.ID, req.Region, h.now())
	if err != nil {
		respondServiceError(w, r, "Explore", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Fish goes fishing
// @Summary Go fishing
// @Tags activities
// @Produce json
// @Param account_key path string true "Account key"
// @Success 200 {object} domain.FishResult
// @Failure 429 {object} ErrorResponse "On cooldown, retry_after_seconds set"
// @Router /players/{account_key}/fish [post]
func (h *PlayerHandler) Fish(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolvePlayer(w, r, "Fish")
	if !ok {
		return
	}

	res, err := h.pastimes.Fish(r.Context(), p.ID, h.now())
	if err != nil {
		respondServiceError(w, r, "Fish", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// OpenChest opens a treasure chest
// @Summary Open a chest
// @Tags activities
// @Produce json
// @Param account_key path string true "Account key"
// @Success 200 {object} domain.ChestResult
// @Failure 429 {object} ErrorResponse "On cooldown, retry_after_seconds set"
// @Router /players/{account_key}/chest [post]
func (h *PlayerHandler) OpenChest(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolvePlayer(w, r, "Open chest")
	if !ok {
		return
	}

	res, err := h.pastimes.OpenChest(r.Context(), p.ID, h.now())
	if err != nil {
		respondServiceError(w, r, "Open chest", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// RecentEvents returns the player's latest logged events
// @Summary Recent player events
// @Tags players
// @Produce json
// @Param account_key path string true "Account key"
// @Param limit query int false "Max events (default 20, max 100)"
// @Success 200 {array} repository.EventLogEntry
// @Failure 404 {object} ErrorResponse
// @Router /players/{account_key}/events [get]
func (h *PlayerHandler) RecentEvents(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r, DefaultEventLimit, MaxEventLimit)
	if !ok {
		return
	}
	p, ok := h.resolvePlayer(w, r, "Recent events")
	if !ok {
		return
	}

	entries, err := h.eventLog.Recent(r.Context(), p.ID, limit)
	if err != nil {
		respondServiceError(w, r, "Recent events", err)
		return
	}
	if entries == nil {
		entries = []repository.EventLogEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
