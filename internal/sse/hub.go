package sse

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/NeuroFarm_Go/internal/metrics"
)

// Event is one message on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected stream. EventChannel is closed when the client is
// unregistered or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event

	types map[string]struct{} // empty means every type
}

func (c *Client) wants(eventType string) bool {
	if len(c.types) == 0 {
		return true
	}
	_, ok := c.types[eventType]
	return ok
}

// Hub fans events out to connected clients. The client set is owned by the
// run loop, so registration goes through channels.
type Hub struct {
	register   chan *Client
	unregister chan string
	events     chan Event
	done       chan struct{}

	connected atomic.Int64
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan string),
		events:     make(chan Event, BroadcastBufferSize),
		done:       make(chan struct{}),
	}
}

// Start launches the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	clients := make(map[string]*Client)
	setCount := func() {
		h.connected.Store(int64(len(clients)))
		metrics.SSEClients.Set(float64(len(clients)))
	}

	for {
		select {
		case c := <-h.register:
			clients[c.ID] = c
			setCount()

		case id := <-h.unregister:
			if c, ok := clients[id]; ok {
				delete(clients, id)
				close(c.EventChannel)
				setCount()
			}

		case ev := <-h.events:
			for _, c := range clients {
				if !c.wants(ev.Type) {
					continue
				}
				// A full client buffer drops the event for that client only
				select {
				case c.EventChannel <- ev:
				default:
				}
			}

		case <-h.done:
			for id, c := range clients {
				delete(clients, id)
				close(c.EventChannel)
			}
			setCount()
			return
		}
	}
}

// Register adds a client interested in eventTypes, or in everything when
// eventTypes is empty. After Stop the returned client's channel is already
// closed.
func (h *Hub) Register(eventTypes []string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		types:        make(map[string]struct{}, len(eventTypes)),
	}
	for _, t := range eventTypes {
		c.types[t] = struct{}{}
	}

	select {
	case h.register <- c:
	case <-h.done:
		close(c.EventChannel)
	}
	return c
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.done:
	}
}

// Broadcast queues an event without blocking. Events are dropped when the
// queue is full.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	ev := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	select {
	case h.events <- ev:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount reports connected clients
func (h *Hub) ClientCount() int {
	return int(h.connected.Load())
}

// FormatSSEMessage renders event in text/event-stream framing
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.Grow(len(data) + len(event.ID) + len(event.Type) + 24)
	b.WriteString("id: ")
	b.WriteString(event.ID)
	b.WriteString("\nevent: ")
	b.WriteString(event.Type)
	b.WriteString("\ndata: ")
	b.Write(data)
	b.WriteString("\n\n")
	return b.Bytes(), nil
}
