package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/internal/handler"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake NeuroFarm API and a Discord session whose REST
// calls are captured instead of sent
type TestContext struct {
	Server       *httptest.Server
	Router       chi.Router
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	edits     []discordgo.WebhookEdit
	responses []discordgo.InteractionResponse
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	r := chi.NewRouter()
	server := httptest.NewServer(r)

	client := NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = 0

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Server:    server,
		Router:    r,
		APIClient: client,
		Session:   session,
	}

	tc.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Body != nil {
				body, _ := io.ReadAll(req.Body)
				tc.capture(req.Method, req.URL.Path, body)
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: tc.DiscordMocks}

	t.Cleanup(server.Close)
	return tc
}

func (tc *TestContext) capture(method, path string, body []byte) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	switch {
	case method == http.MethodPatch:
		var edit discordgo.WebhookEdit
		if json.Unmarshal(body, &edit) == nil {
			tc.edits = append(tc.edits, edit)
		}
	case method == http.MethodPost && strings.HasSuffix(path, "/callback"):
		var resp discordgo.InteractionResponse
		if json.Unmarshal(body, &resp) == nil {
			tc.responses = append(tc.responses, resp)
		}
	}
}

// LastEdit returns the most recent interaction response edit
func (tc *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	require.NotEmpty(t, tc.edits, "no interaction response edit was sent")
	return tc.edits[len(tc.edits)-1]
}

// LastEmbed returns the first embed of the most recent edit
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Embeds, "last edit carried no embeds")
	require.NotEmpty(t, *edit.Embeds)
	return (*edit.Embeds)[0]
}

// LastContent returns the text content of the most recent edit
func (tc *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Content, "last edit carried no content")
	return *edit.Content
}

// LastResponse returns the most recent interaction callback
func (tc *TestContext) LastResponse(t *testing.T) discordgo.InteractionResponse {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	require.NotEmpty(t, tc.responses, "no interaction response was sent")
	return tc.responses[len(tc.responses)-1]
}

// StubPlayer serves player registration and farm lookup for Discord user 123
func (tc *TestContext) StubPlayer(player handler.PlayerResponse, farmID int64) {
	tc.Router.Post("/api/v1/players", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.CreatePlayerResponse{PlayerResponse: player})
	})
	tc.Router.Post("/api/v1/players/{account_key}/farm", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]any{"id": farmID, "player_id": player.ID, "name": "Test Farm", "level": 1})
	})
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteAPIError writes an API error body
func WriteAPIError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, handler.ErrorResponse{Error: message, Code: code})
}

// newCommandInteraction builds a slash command interaction from user 123
func newCommandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "interaction-1",
			AppID:  "app-1",
			Token:  "token-1",
			Type:   discordgo.InteractionApplicationCommand,
			Locale: discordgo.EnglishUS,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "123", Username: "Tester"},
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOption(name string, value int64) *discordgo.ApplicationCommandInteractionDataOption {
	// Option values arrive from the gateway as JSON numbers
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func testPlayer() handler.PlayerResponse {
	return handler.PlayerResponse{
		ID:                    "p-1",
		AccountKey:            "discord:123",
		Language:              "en",
		Coins:                 100,
		Experience:            40,
		Level:                 1,
		NextLevelExperience:   100,
		ExperienceToNextLevel: 60,
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
