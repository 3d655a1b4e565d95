package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Clock is the interface we use for time operations.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) clockwork.Ticker
}

// EventStore defines what the worker needs from the outbox repository
type EventStore interface {
	FetchUnsent(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

type Config struct {
	PollInterval time.Duration
	BatchSize    int32
}

func DefaultConfig() Config {
	return Config{
		PollInterval: 5 * time.Second,
		BatchSize:    100,
	}
}

// Worker relays unsent outbox events to a Publisher. Delivery is at least
// once: an event published but not marked sent is published again on the next
// cycle and de-duplicated downstream by its id.
type Worker struct {
	store     EventStore
	publisher Publisher
	config    Config
	clock     Clock
	wakeCh    chan struct{}
}

func NewWorker(store EventStore, publisher Publisher, cfg Config) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	return &Worker{
		store:     store,
		publisher: publisher,
		config:    cfg,
		clock:     clockwork.NewRealClock(),
		wakeCh:    make(chan struct{}, 1),
	}
}

// Wake asks the worker to drain now instead of waiting for the next tick.
func (w *Worker) Wake() {
	select {
	case w.wakeCh <- struct{}{}:
	default:
	}
}

// Run drains once at startup, then on every poll tick and wake-up until ctx
// is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	log.Info().
		Dur("poll_interval", w.config.PollInterval).
		Int32("batch_size", w.config.BatchSize).
		Msg("outbox worker started")

	w.drain(ctx, "startup")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("outbox worker shutting down")
			return nil
		case <-ticker.Chan():
			w.drain(ctx, "tick")
		case <-w.wakeCh:
			w.drain(ctx, "wake")
		}
	}
}

func (w *Worker) drain(ctx context.Context, trigger string) {
	start := w.clock.Now()
	published, err := w.Drain(ctx)
	if err != nil {
		log.Error().Err(err).Str("trigger", trigger).Int("published", published).Msg("outbox drain failed")
		return
	}
	if published > 0 {
		log.Info().
			Str("trigger", trigger).
			Int("published", published).
			Dur("took", w.clock.Now().Sub(start)).
			Msg("outbox drained")
	}
}

// Drain publishes unsent events batch by batch until a batch comes back short
// or an event fails. Failed events stay unsent for the next cycle.
func (w *Worker) Drain(ctx context.Context) (int, error) {
	published := 0
	for {
		events, err := w.store.FetchUnsent(ctx, w.config.BatchSize)
		if err != nil {
			return published, fmt.Errorf("failed to fetch unsent events: %w", err)
		}

		var result *multierror.Error
		for _, event := range events {
			if err := w.publisher.Publish(ctx, event); err != nil {
				result = multierror.Append(result, fmt.Errorf("publish event %s (%s): %w", event.ID, event.EventType, err))
				continue
			}
			if err := w.store.MarkSent(ctx, event.ID); err != nil {
				result = multierror.Append(result, fmt.Errorf("mark event %s sent: %w", event.ID, err))
				continue
			}
			published++
		}

		if err := result.ErrorOrNil(); err != nil {
			return published, err
		}
		if len(events) < int(w.config.BatchSize) {
			return published, nil
		}
	}
}
