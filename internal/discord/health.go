package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/metrics"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	EventsConnected  bool      `json:"events_connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime      = time.Now()
	commandCounter int64

	lastCommandMu   sync.RWMutex
	lastCommandTime time.Time
)

// RecordCommand counts a handled command by outcome
func RecordCommand(command, status string) {
	atomic.AddInt64(&commandCounter, 1)
	lastCommandMu.Lock()
	lastCommandTime = time.Now()
	lastCommandMu.Unlock()
	metrics.DiscordCommands.WithLabelValues(command, status).Inc()
}

func lastCommand() time.Time {
	lastCommandMu.RLock()
	defer lastCommandMu.RUnlock()
	return lastCommandTime
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady
	eventsConnected := h.events != nil && h.events.IsConnected()

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.bot.Client.BaseURL+"/healthz", nil)
		if err == nil {
			if resp, err := h.bot.Client.Client.Do(req); err == nil {
				apiReachable = resp.StatusCode == http.StatusOK
				_ = resp.Body.Close()
			}
		}
	}

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		EventsConnected:  eventsConnected,
		CommandsReceived: atomic.LoadInt64(&commandCounter),
		LastCommandTime:  lastCommand(),
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	// Headers are already sent, nothing useful to do on failure
	_ = json.NewEncoder(w).Encode(health)
}
