package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/handler"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

type testServices struct {
	player  *handler.PlayerHandler
	farm    *handler.FarmHandler
	catalog *handler.CatalogHandler
}

// newTestRouter mounts the handlers on the same paths the server uses
func newTestRouter(s testServices) http.Handler {
	r := chi.NewRouter()
	if h := s.player; h != nil {
		r.Post("/players", h.CreatePlayer)
		r.Route("/players/{account_key}", func(r chi.Router) {
			r.Get("/", h.GetPlayer)
			r.Put("/language", h.SetLanguage)
			r.Post("/credit", h.Credit)
			r.Post("/debit", h.Debit)
			r.Post("/experience", h.AwardExperience)
			r.Post("/farm", h.CreateFarm)
			r.Post("/explore", h.Explore)
			r.Post("/fish", h.Fish)
			r.Post("/chest", h.OpenChest)
			r.Get("/events", h.RecentEvents)
		})
	}
	if h := s.farm; h != nil {
		r.Route("/farms/{farm_id}", func(r chi.Router) {
			r.Get("/", h.GetFarm)
			r.Post("/crops", h.Plant)
			r.Get("/crops", h.ListCrops)
			r.Post("/crops/{crop_id}/harvest", h.Harvest)
			r.Post("/animals", h.PurchaseAnimal)
			r.Get("/animals", h.ListAnimals)
			r.Post("/animals/{animal_id}/collect", h.CollectAnimal)
		})
	}
	if h := s.catalog; h != nil {
		r.Get("/catalog/crops", h.ListCrops)
		r.Get("/catalog/animals", h.ListAnimals)
		r.Get("/catalog/regions", h.ListRegions)
		r.Post("/admin/catalog/seed", h.Seed)
	}
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
