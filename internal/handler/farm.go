package handler

import (
	"net/http"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/farm"
	"github.com/osse101/NeuroFarm_Go/internal/husbandry"
	"github.com/osse101/NeuroFarm_Go/internal/plot"
)

// FarmHandler serves the farm-scoped routes under /farms/{farm_id}
type FarmHandler struct {
	farms     farm.Service
	plots     plot.Service
	husbandry husbandry.Service
	now       func() time.Time
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service, plotSvc plot.Service, husbandrySvc husbandry.Service) *FarmHandler {
	return &FarmHandler{
		farms:     farmSvc,
		plots:     plotSvc,
		husbandry: husbandrySvc,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for game actions
func (h *FarmHandler) WithClock(now func() time.Time) *FarmHandler {
	h.now = now
	return h
}

// GetFarm returns a farm
// @Summary Get a farm
// @Tags farms
// @Produce json
// @Param farm_id path int true "Farm ID"
// @Success 200 {object} domain.Farm
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /farms/{farm_id} [get]
func (h *FarmHandler) GetFarm(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathInt64(w, r, ParamFarmID, ErrMsgInvalidFarmID)
	if !ok {
		return
	}

	f, err := h.farms.Get(r.Context(), farmID)
	if err != nil {
		respondServiceError(w, r, "Get farm", err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// Plant plants a crop on the farm
// @Summary Plant a crop
// @Description Debits the planting cost and starts the growth timer
// @Tags crops
// @Accept json
// @Produce json
// @Param farm_id path int true "Farm ID"
// @Param request body PlantRequest true "Crop"
// @Success 201 {object} PlantedCropResponse
// @Failure 404 {object} ErrorResponse "Unknown crop, with a suggestion when one is close"
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Router /farms/{farm_id}/crops [post]
func (h *FarmHandler) Plant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}
	farmID, ok := pathInt64(w, r, ParamFarmID, ErrMsgInvalidFarmID)
	if !ok {
		return
	}

	now := h.now()
	pc, err := h.plots.Plant(r.Context(), farmID, req.Crop, now)
	if err != nil {
		respondServiceError(w, r, "Plant", err)
		return
	}
	respondJSON(w, http.StatusCreated, newPlantedCropResponse(*pc, now))
}

// ListCrops lists the farm's planted crops with their state
// @Summary List planted crops
// @Tags crops
// @Produce json
// @Param farm_id path int true "Farm ID"
// @Success 200 {array} PlantedCropResponse
// @Failure 404 {object} ErrorResponse
// @Router /farms/{farm_id}/crops [get]
func (h *FarmHandler) ListCrops(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathInt64(w, r, ParamFarmID, ErrMsgInvalidFarmID)
	if !ok {
		return
	}

	plots, err := h.plots.ListPlanted(r.Context(), farmID, h.now())
	if err != nil {
		respondServiceError(w, r, "List crops", err)
		return
	}
	respondJSON(w, http.StatusOK, newPlotResponses(plots))
}

// Harvest harvests one ready crop
// @Summary Harvest a crop
// @Description Marks the crop harvested and credits its sell price. Succeeds at most once per crop.
// @Tags crops
// @Produce json
// @Param farm_id path int true "Farm ID"
// @Param crop_id path int true "Planted crop ID"
// @Success 200 {object} HarvestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Not ready or already harvested"
// @Router /farms/{farm_id}/crops/{crop_id}/harvest [post]
func (h *FarmHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathInt64(w, r, ParamFarmID, ErrMsgInvalidFarmID)
	if !ok {
		return
	}
	cropID, ok := pathInt64(w, r, ParamCropID, ErrMsgInvalidCropID)
	if !ok {
		return
	}

	now := h.now()
	res, err := h.plots.Harvest(r.Context(), farmID, cropID, now)
	if err != nil {
		respondServiceError(w, r, "Harvest", err)
		return
	}
	respondJSON(w, http.StatusOK, HarvestResponse{
		Crop:        newPlantedCropResponse(res.Crop, now),
		CoinsGained: res.CoinsGain,
		CoinsTotal:  res.CoinsTotal,
	})
}

// PurchaseAnimal buys an animal for the farm
// @Summary Buy an animal
// @Tags animals
// @Accept json
// @Produce json
// @Param farm_id path int true "Farm ID"
// @Param request body PurchaseAnimalRequest true "Animal"
// @Success 201 {object} OwnedAnimalResponse
// @Failure 404 {object} ErrorResponse "Unknown animal, with a suggestion when one is close"
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Router /farms/{farm_id}/animals [post]
func (h *FarmHandler) PurchaseAnimal(w http.ResponseWriter, r *http.Request) {
	var req PurchaseAnimalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase animal"); err != nil {
		return
	}
	farmID, ok := pathInt64(w, r, ParamFarmID, ErrMsgInvalidFarmID)
	if !ok {
		return
	}

	now := h.now()
	oa, err := h.husbandry.Purchase(r.Context(), farmID, req.Animal, now)
	if err != nil {
		respondServiceError(w, r, "Purchase animal", err)
		return
	}
	respondJSON(w, http.StatusCreated, newOwnedAnimalResponse(*oa, now))
}

// ListAnimals lists the farm's animals
// @Summary List owned animals
// @Tags animals
// @Produce json
// @Param farm_id path int true "Farm ID"
// @Success 200 {array} OwnedAnimalResponse
// @Failure 404 {object} ErrorResponse
// @Router /farms/{farm_id}/animals [get]
func (h *FarmHandler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathInt64(w, r, ParamFarmID, ErrMsgInvalidFarmID)
	if !ok {
		return
	}

	animals, err := h.husbandry.ListOwned(r.Context(), farmID)
	if err != nil {
		respondServiceError(w, r, "List animals", err)
		return
	}

	now := h.now()
	out := make([]OwnedAnimalResponse, 0, len(animals))
	for _, a := range animals {
		out = append(out, newOwnedAnimalResponse(a, now))
	}
	respondJSON(w, http.StatusOK, out)
}

// CollectAnimal collects an animal's product
// @Summary Collect from an animal
// @Description Credits the product price and restarts the production interval
// @Tags animals
// @Produce json
// @Param farm_id path int true "Farm ID"
// @Param animal_id path int true "Owned animal ID"
// @Success 200 {object} CollectResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Not ready"
// @Router /farms/{farm_id}/animals/{animal_id}/collect [post]
func (h *FarmHandler) CollectAnimal(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathInt64(w, r, ParamFarmID, ErrMsgInvalidFarmID)
	if !ok {
		return
	}
	animalID, ok := pathInt64(w, r, ParamAnimalID, ErrMsgInvalidAnimalID)
	if !ok {
		return
	}

	now := h.now()
	res, err := h.husbandry.Collect(r.Context(), farmID, animalID, now)
	if err != nil {
		respondServiceError(w, r, "Collect", err)
		return
	}
	respondJSON(w, http.StatusOK, CollectResponse{
		Animal:      newOwnedAnimalResponse(res.Animal, now),
		CoinsGained: res.CoinsGain,
		CoinsTotal:  res.CoinsTotal,
	})
}
