package handler

import (
	"io"
	"net/http"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// CatalogHandler serves the read-only catalog and the admin seed route
type CatalogHandler struct {
	catalog catalog.Service
	loader  *catalog.Loader
	path    string
}

// NewCatalogHandler creates a catalog handler. path is the catalog file
// seeded when the seed request has no body; empty means the built-in catalog.
func NewCatalogHandler(catalogSvc catalog.Service, loader *catalog.Loader, path string) *CatalogHandler {
	return &CatalogHandler{catalog: catalogSvc, loader: loader, path: path}
}

// ListCrops lists every crop type
// @Summary List crops
// @Tags catalog
// @Produce json
// @Success 200 {array} CropTypeResponse
// @Router /catalog/crops [get]
func (h *CatalogHandler) ListCrops(w http.ResponseWriter, r *http.Request) {
	crops, err := h.catalog.ListCrops(r.Context())
	if err != nil {
		respondServiceError(w, r, "List crop catalog", err)
		return
	}
	respondJSON(w, http.StatusOK, newCropTypeResponses(crops))
}

// ListAnimals lists every animal type
// @Summary List animals
// @Tags catalog
// @Produce json
// @Success 200 {array} AnimalTypeResponse
// @Router /catalog/animals [get]
func (h *CatalogHandler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	animals, err := h.catalog.ListAnimals(r.Context())
	if err != nil {
		respondServiceError(w, r, "List animal catalog", err)
		return
	}
	respondJSON(w, http.StatusOK, newAnimalTypeResponses(animals))
}

// ListRegions lists every region
// @Summary List regions
// @Tags catalog
// @Produce json
// @Success 200 {array} RegionResponse
// @Router /catalog/regions [get]
func (h *CatalogHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.catalog.ListRegions(r.Context())
	if err != nil {
		respondServiceError(w, r, "List region catalog", err)
		return
	}
	respondJSON(w, http.StatusOK, newRegionResponses(regions))
}

// Seed upserts the catalog
// @Summary Seed the catalog
// @Description Upserts every entry by name. A JSON catalog body is validated and seeded; without a body the configured file, or the built-in catalog, is used.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body object false "Catalog document"
// @Success 200 {object} SeedResponse
// @Failure 400 {object} ErrorResponse "Invalid catalog document"
// @Router /admin/catalog/seed [post]
func (h *CatalogHandler) Seed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Warn("Failed to read seed body", "error", err)
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, ErrMsgInvalidRequest)
		return
	}

	cat := catalog.DefaultCatalog()
	source := catalog.SourceDefault

	if len(body) > 0 || h.path != "" {
		if h.loader == nil {
			respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, ErrMsgCatalogLoaderMissing)
			return
		}
		if len(body) > 0 {
			cat, err = h.loader.LoadBytes(body)
		} else {
			cat, err = h.loader.LoadFile(h.path)
		}
		if err != nil {
			respondServiceError(w, r, "Load catalog", err)
			return
		}
		source = catalog.SourceFile
	}

	report, err := h.catalog.Seed(r.Context(), cat, source)
	if err != nil {
		respondServiceError(w, r, "Seed catalog", err)
		return
	}
	respondJSON(w, http.StatusOK, SeedResponse{Source: source, Results: *report})
}
