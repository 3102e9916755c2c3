package discord

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/sse"
)

var errStreamClosed = errors.New("stream closed unexpectedly")

// SSEEvent is an event received from the API's stream
type SSEEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SSEEventHandler handles one event type
type SSEEventHandler func(event SSEEvent) error

// SSEClient follows the API's event stream and reconnects with exponential
// backoff. Handlers run on the reading goroutine.
type SSEClient struct {
	baseURL    string
	apiKey     string
	eventTypes []string
	httpClient *http.Client

	mu       sync.RWMutex
	handlers map[string][]SSEEventHandler

	connected atomic.Bool
	lastID    atomic.Value // string
	cancel    context.CancelFunc
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewSSEClient(baseURL, apiKey string, eventTypes []string) *SSEClient {
	return &SSEClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		eventTypes: eventTypes,
		// Streams are long-lived, so no client timeout
		httpClient: &http.Client{},
		handlers:   make(map[string][]SSEEventHandler),
		cancel:     func() {},
	}
}

// OnEvent adds a handler for eventType. Register handlers before Start.
func (c *SSEClient) OnEvent(eventType string, handler SSEEventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventType] = append(c.handlers[eventType], handler)
}

// Start follows the stream until ctx is cancelled or Stop is called
func (c *SSEClient) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	go c.run(ctx)
}

// Stop cancels any in-flight read and waits for the loop to exit
func (c *SSEClient) Stop() {
	c.stopOnce.Do(func() { c.cancel() })
	c.wg.Wait()
}

// IsConnected reports whether a stream is currently open
func (c *SSEClient) IsConnected() bool {
	return c.connected.Load()
}

func (c *SSEClient) run(ctx context.Context) {
	defer c.wg.Done()
	defer slog.Info(sseLogMsgClientStopped)

	backoff := sseInitialBackoff
	failures := 0
	for ctx.Err() == nil {
		opened, err := c.follow(ctx)
		c.connected.Store(false)
		if ctx.Err() != nil {
			return
		}
		if opened {
			// A stream that was up resets the backoff
			backoff, failures = sseInitialBackoff, 0
		}
		failures++
		slog.Warn(sseLogMsgConnectionFailed, "error", err, "backoff", backoff, "consecutive_failures", failures)

		t := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
		backoff = min(time.Duration(float64(backoff)*sseBackoffMultiplier), sseMaxBackoff)
	}
}

func (c *SSEClient) streamURL() string {
	u := c.baseURL + "/api/v1/events"
	if len(c.eventTypes) > 0 {
		u += "?" + sse.QueryParamTypes + "=" + url.QueryEscape(strings.Join(c.eventTypes, ","))
	}
	return u
}

// follow opens one stream and reads it until it ends. opened reports whether
// the server accepted the connection.
func (c *SSEClient) follow(ctx context.Context) (opened bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.streamURL(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if id, _ := c.lastID.Load().(string); id != "" {
		req.Header.Set("Last-Event-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return false, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.connected.Store(true)
	slog.Info(sseLogMsgClientConnected, "url", req.URL.Redacted())
	return true, c.readEvents(ctx, resp.Body)
}

// frame accumulates the fields of one event until the blank line ending it
type frame struct {
	id, event string
	data      []string
}

func (f *frame) field(line string) {
	name, value, _ := strings.Cut(line, ":")
	value = strings.TrimPrefix(value, " ")
	switch name {
	case "id":
		f.id = value
	case "event":
		f.event = value
	case "data":
		f.data = append(f.data, value)
	}
}

// readEvents parses text/event-stream framing. It returns when the body
// ends, which is always an error for a stream meant to stay open.
func (c *SSEClient) readEvents(ctx context.Context, body io.Reader) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 4096), sseBufferSize)

	var f frame
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		switch {
		case line == "":
			if len(f.data) > 0 {
				c.dispatch(f)
			}
			f = frame{}
		case strings.HasPrefix(line, ":"):
			// comment
		default:
			f.field(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	return errStreamClosed
}

func (c *SSEClient) dispatch(f frame) {
	if f.id != "" {
		c.lastID.Store(f.id)
	}
	if f.event == sse.EventTypeKeepalive || f.event == sse.EventTypeConnected {
		return
	}

	data := strings.Join(f.data, "\n")
	var event SSEEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "data", data)
		return
	}
	// The event and id lines win over the copies inside the data
	if f.event != "" {
		event.Type = f.event
	}
	if f.id != "" {
		event.ID = f.id
	}

	c.mu.RLock()
	handlers := c.handlers[event.Type]
	c.mu.RUnlock()

	for _, h := range handlers {
		if err := h(event); err != nil {
			slog.Error(sseLogMsgHandlerError, "event_type", event.Type, "error", err)
		}
	}
}
