package fakestore

import (
	"context"
	"sync"

	"github.com/osse101/NeuroFarm_Go/internal/event"
)

// Publisher records published events
type Publisher struct {
	mu     sync.Mutex
	events []event.Event
}

var _ event.Publisher = (*Publisher)(nil)

func (p *Publisher) PublishWithRetry(ctx context.Context, e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

// Events returns a copy of everything published so far
func (p *Publisher) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.Event(nil), p.events...)
}

// Types returns the published event types in order
func (p *Publisher) Types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
