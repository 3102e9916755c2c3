package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/handler"
	"github.com/osse101/NeuroFarm_Go/internal/server"
	"github.com/osse101/NeuroFarm_Go/internal/sse"
	"github.com/osse101/NeuroFarm_Go/mocks"
)

const testAPIKey = "test-key"

type testServer struct {
	router  http.Handler
	ledger  *mocks.MockLedgerService
	farms   *mocks.MockFarmService
	catalog *mocks.MockCatalogService
	hub     *sse.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		ledger:  mocks.NewMockLedgerService(t),
		farms:   mocks.NewMockFarmService(t),
		catalog: mocks.NewMockCatalogService(t),
		hub:     sse.NewHub(),
	}
	ts.hub.Start()
	t.Cleanup(ts.hub.Stop)

	loader, err := catalog.NewLoader()
	require.NoError(t, err)

	srv := server.NewServer(server.Options{Port: 0, APIKey: testAPIKey}, nil, server.Handlers{
		Player: handler.NewPlayerHandler(ts.ledger, ts.farms,
			mocks.NewMockExplorationService(t), mocks.NewMockActivityService(t), mocks.NewMockEventLogService(t)),
		Farm: handler.NewFarmHandler(ts.farms,
			mocks.NewMockPlotService(t), mocks.NewMockHusbandryService(t)),
		Catalog: handler.NewCatalogHandler(ts.catalog, loader, ""),
		SSEHub:  ts.hub,
	})
	ts.router = srv.Handler()
	return ts
}

func (ts *testServer) request(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set(server.HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, server.HeaderValueNoSniff, rec.Header().Get(server.HeaderContentType))

	rec = ts.request(t, http.MethodGet, "/version", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	var info handler.VersionInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&info))
	assert.NotEmpty(t, info.GoVersion)

	rec = ts.request(t, http.MethodGet, "/metrics", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_APIRequiresKey(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/catalog/crops", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	ts.catalog.AssertNotCalled(t, "ListCrops", mock.Anything)
}

func TestServer_CatalogRoute(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.On("ListCrops", mock.Anything).Return(catalog.DefaultCatalog().Crops, nil)

	rec := ts.request(t, http.MethodGet, "/api/v1/catalog/crops", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var crops []handler.CropTypeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&crops))
	assert.Len(t, crops, len(catalog.DefaultCatalog().Crops))
}

func TestServer_PlayerRouteMapsErrors(t *testing.T) {
	ts := newTestServer(t)
	ts.ledger.On("GetByAccount", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)

	rec := ts.request(t, http.MethodGet, "/api/v1/players/ghost", "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, domain.CodePlayerNotFound, body.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	ts := newTestServer(t)

	huge := `{"account_key":"` + strings.Repeat("a", server.MaxRequestBodyBytes) + `"}`
	rec := ts.request(t, http.MethodPost, "/api/v1/players", huge, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/nope", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_EventStream(t *testing.T) {
	ts := newTestServer(t)

	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events", nil)
	require.NoError(t, err)
	req.Header.Set(server.HeaderAPIKey, testAPIKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	buf := make([]byte, 512)
	n, err := resp.Body.Read(buf)
	require.NoError(t, err)
	assert.Contains(t, string(buf[:n]), sse.EventTypeConnected)
}
