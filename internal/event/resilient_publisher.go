package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/logger"
)

// ErrPublisherShutdown is returned when Shutdown is called twice
var ErrPublisherShutdown = errors.New("resilient publisher already shut down")

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
	nextAt   time.Time
}

// ResilientPublisher wraps a Bus with retry and dead-letter handling.
// The first publish happens inline; failures are queued for a background
// worker that retries with exponential backoff and dead-letters events
// whose retries run out.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

var _ Publisher = (*ResilientPublisher)(nil)

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry publishes an event and never reports failure to the
// caller; a failed publish is retried in the background.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	rp.enqueue(retryEntry{
		event:    event,
		attempts: 1,
		lastErr:  err,
		nextAt:   time.Now().Add(CalculateRetryDelay(rp.retryDelay, 1)),
	})
}

// Publish implements Bus so the publisher can stand in for the inner bus
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-rp.shutdown:
		rp.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
		return
	default:
	}

	select {
	case rp.retryQueue <- entry:
	default:
		rp.writeDeadLetter(entry, LogMsgRetryQueueFull)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case entry := <-rp.retryQueue:
			rp.waitUntil(entry.nextAt)
			rp.retry(entry)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

// waitUntil sleeps until t, returning early on shutdown
func (rp *ResilientPublisher) waitUntil(t time.Time) {
	d := time.Until(t)
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-rp.shutdown:
	}
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	err := rp.bus.Publish(ctx, entry.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempts)
		return
	}

	entry.lastErr = err
	if entry.attempts >= rp.maxRetries {
		rp.writeDeadLetter(entry, LogMsgEventRetryExhausted)
		return
	}

	entry.attempts++
	entry.nextAt = time.Now().Add(CalculateRetryDelay(rp.retryDelay, entry.attempts))
	log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)

	select {
	case <-rp.shutdown:
		rp.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
	default:
		// The worker is the only consumer, so a full queue means dead-letter
		select {
		case rp.retryQueue <- entry:
		default:
			rp.writeDeadLetter(entry, LogMsgRetryQueueFull)
		}
	}
}

// drain makes one final attempt at every queued event without waiting
func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			drained++
			if err := rp.bus.Publish(context.Background(), entry.event); err != nil {
				entry.lastErr = err
				rp.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
			}
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry, reason string) {
	log := logger.FromContext(context.Background())
	log.Warn(reason, "event_type", entry.event.Type, "attempts", entry.attempts)
	if err := rp.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry worker after draining the queue, then closes
// the dead-letter file.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	err := ErrPublisherShutdown
	rp.shutdownOnce.Do(func() {
		close(rp.shutdown)

		done := make(chan struct{})
		go func() {
			rp.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			err = rp.deadLetter.Close()
		case <-ctx.Done():
			logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
			err = ctx.Err()
		}
	})
	return err
}
