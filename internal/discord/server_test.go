package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(tc *TestContext, channelID string) *Bot {
	return &Bot{
		Session:  tc.Session,
		Client:   tc.APIClient,
		Registry: NewCommandRegistry(),
		cfg:      Config{NotificationChannelID: channelID},
	}
}

func TestHTTPServer_HealthDegradedWhenGatewayDown(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := NewHTTPServer("0", newTestBot(tc, ""), nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "degraded", status.Status)
	assert.True(t, status.APIReachable)
	assert.False(t, status.Connected)
	assert.False(t, status.EventsConnected)
}

func TestHTTPServer_HealthyWhenConnected(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	tc.Session.DataReady = true

	srv := NewHTTPServer("0", newTestBot(tc, ""), nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestHTTPServer_Announce(t *testing.T) {
	tc := SetupTestContext(t)

	var posted *discordgo.MessageSend
	inner := tc.DiscordMocks.RoundTripFunc
	tc.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPost && strings.Contains(req.URL.Path, "/channels/chan-1/messages") {
			posted = &discordgo.MessageSend{}
			_ = json.NewDecoder(req.Body).Decode(posted)
		}
		return inner(req)
	}

	srv := NewHTTPServer("0", newTestBot(tc, "chan-1"), nil)
	body := `{"title":"Harvest festival","description":"Double coins today"}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/announce", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, posted)
	require.Len(t, posted.Embeds, 1)
	assert.Equal(t, "Harvest festival", posted.Embeds[0].Title)
	assert.Equal(t, ColorSuccess, posted.Embeds[0].Color)
}

func TestHTTPServer_AnnounceRejectsBadBodies(t *testing.T) {
	tc := SetupTestContext(t)
	srv := NewHTTPServer("0", newTestBot(tc, ""), nil)

	for _, body := range []string{"not json", `{}`} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/announce", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/announce", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
